// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteUnityProject marks dir as a Unity project by writing
// ProjectSettings/ProjectVersion.txt for the given editor version.
// Returns dir.
func WriteUnityProject(t *testing.T, dir, editorVersion string) string {
	t.Helper()

	settings := filepath.Join(dir, "ProjectSettings")
	if err := os.MkdirAll(settings, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", settings, err)
	}

	content := "m_EditorVersion: " + editorVersion + "\n"
	if err := os.WriteFile(filepath.Join(settings, "ProjectVersion.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write ProjectVersion.txt: %v", err)
	}

	return dir
}

// TempFileString creates a temporary file with string content.
// Returns the file path. File is automatically cleaned up when the test ends.
func TempFileString(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create temp file %s: %v", name, err)
	}

	return path
}
