// Package platform names Unity build targets and supplies the default one.
package platform

import "slices"

// Unity build targets.
const (
	StandaloneOSX       = "StandaloneOSX"
	StandaloneWindows   = "StandaloneWindows"
	StandaloneWindows64 = "StandaloneWindows64"
	StandaloneLinux64   = "StandaloneLinux64"
	IOS                 = "iOS"
	Android             = "Android"
	WebGL               = "WebGL"
	WSAPlayer           = "WSAPlayer"
	PS4                 = "PS4"
	XboxOne             = "XboxOne"
	TvOS                = "tvOS"
	Switch              = "Switch"
	Lumin               = "Lumin"
	BJM                 = "BJM"
	Stadia              = "Stadia"
	Facebook            = "Facebook"
	NoTarget            = "NoTarget"
	Test                = "Test"
)

var all = []string{
	StandaloneOSX, StandaloneWindows, StandaloneWindows64, StandaloneLinux64,
	IOS, Android, WebGL, WSAPlayer, PS4, XboxOne, TvOS, Switch,
	Lumin, BJM, Stadia, Facebook, NoTarget, Test,
}

// All returns every known build target.
func All() []string {
	return slices.Clone(all)
}

// Default returns the build target used when none is configured.
func Default() string {
	return StandaloneWindows64
}

// Valid reports whether target is a known build target. Names are case-sensitive.
func Valid(target string) bool {
	return slices.Contains(all, target)
}

// IsAndroid reports whether target builds an Android player.
func IsAndroid(target string) bool {
	return target == Android
}

// Defaults supplies the default build target to an input resolver.
// The zero value uses Default; Target overrides it.
type Defaults struct {
	Target string
}

// DefaultTarget returns d.Target, or Default() when it is empty.
func (d Defaults) DefaultTarget() string {
	if d.Target != "" {
		return d.Target
	}
	return Default()
}
