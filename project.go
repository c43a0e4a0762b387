package buildinput

import (
	"path"
	"strings"
)

// Unity project layout checked when projectPath is unset.
const testProjectDir = "test-project"

var projectVersionFile = path.Join("ProjectSettings", "ProjectVersion.txt")

// ProjectPath returns the path of the Unity project to build, without a
// trailing slash.
//
// When unset, "test-project" is used if it holds a Unity project and the
// working directory does not; otherwise ".".
func (in *Input) ProjectPath() string {
	p := in.Get(KeyProjectPath)
	if p == "" {
		p = in.detectProjectPath()
	}
	return strings.TrimSuffix(p, "/")
}

func (in *Input) detectProjectPath() string {
	if in.exists(path.Join(testProjectDir, projectVersionFile)) && !in.exists(projectVersionFile) {
		return testProjectDir
	}
	return "."
}

func (in *Input) exists(name string) bool {
	_, err := in.fsys.Stat(name)
	return err == nil
}
