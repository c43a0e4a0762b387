package buildinput

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/randalmurphal/buildinput/testutil"
)

func TestInput_ProjectPath(t *testing.T) {
	unityProject := &fstest.MapFile{Data: []byte("m_EditorVersion: 2022.3.10f1\n")}

	tests := []struct {
		name    string
		options map[string]string
		fsys    fstest.MapFS
		want    string
	}{
		{
			name:    "explicit with trailing slash",
			options: map[string]string{"projectPath": "./mygame/"},
			fsys:    fstest.MapFS{},
			want:    "./mygame",
		},
		{
			name:    "only one trailing slash removed",
			options: map[string]string{"projectPath": "mygame//"},
			fsys:    fstest.MapFS{},
			want:    "mygame/",
		},
		{
			name:    "explicit wins over detection",
			options: map[string]string{"projectPath": "game"},
			fsys: fstest.MapFS{
				"test-project/ProjectSettings/ProjectVersion.txt": unityProject,
			},
			want: "game",
		},
		{
			name: "test project detected",
			fsys: fstest.MapFS{
				"test-project/ProjectSettings/ProjectVersion.txt": unityProject,
			},
			want: "test-project",
		},
		{
			name: "root project preferred",
			fsys: fstest.MapFS{
				"ProjectSettings/ProjectVersion.txt":              unityProject,
				"test-project/ProjectSettings/ProjectVersion.txt": unityProject,
			},
			want: ".",
		},
		{
			name: "nothing found",
			fsys: fstest.MapFS{},
			want: ".",
		},
		{
			name: "test project without marker",
			fsys: fstest.MapFS{
				"test-project/Assets/Scene.unity": unityProject,
			},
			want: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTestInput(nil, tt.options, nil, WithFS(tt.fsys))

			if got := in.ProjectPath(); got != tt.want {
				t.Errorf("ProjectPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInput_ProjectPath_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteUnityProject(t, filepath.Join(dir, "test-project"), "2021.3.5f1")
	t.Chdir(dir)

	in := New(Sources{Env: MapLookup(nil)})

	if got := in.ProjectPath(); got != "test-project" {
		t.Errorf("ProjectPath() = %q, want %q", got, "test-project")
	}

	testutil.WriteUnityProject(t, dir, "2021.3.5f1")

	if got := in.ProjectPath(); got != "." {
		t.Errorf("ProjectPath() with root project = %q, want %q", got, ".")
	}
}
