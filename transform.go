package buildinput

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToEnvVarFormat converts an input key to the environment variable name it
// may also be supplied under.
//
// A space is inserted before every ASCII uppercase letter, the result is
// trimmed and uppercased, and spaces become underscores:
//
//	androidVersionCode -> ANDROID_VERSION_CODE
//	GitSHA             -> GIT_S_H_A
func ToEnvVarFormat(key string) string {
	var b strings.Builder
	b.Grow(len(key) * 2)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	// Casers keep internal state, so one is built per call.
	spaced := cases.Upper(language.Und).String(strings.TrimSpace(b.String()))
	return strings.ReplaceAll(spaced, " ", "_")
}
