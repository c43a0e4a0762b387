package git

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/randalmurphal/buildinput/testutil"
)

func newMockReader(t *testing.T) (*RepoReader, *MockRunner) {
	t.Helper()

	runner := NewMockRunner()
	runner.OnCommand("git", "rev-parse", "--git-dir").Return(".git", nil)
	return NewRepoReader(t.TempDir(), WithReaderRunner(runner)), runner
}

func TestRepoReader_Branch_Mock(t *testing.T) {
	t.Run("on branch", func(t *testing.T) {
		r, runner := newMockReader(t)
		runner.OnCommand("git", "rev-parse", "--abbrev-ref", "HEAD").Return("release/1.0", nil)

		got, err := r.Branch(context.Background())
		if err != nil {
			t.Fatalf("Branch: %v", err)
		}
		if got != "release/1.0" {
			t.Errorf("Branch = %q, want %q", got, "release/1.0")
		}
	})

	t.Run("detached head is empty", func(t *testing.T) {
		r, runner := newMockReader(t)
		runner.OnCommand("git", "rev-parse", "--abbrev-ref", "HEAD").Return("HEAD", nil)

		got, err := r.Branch(context.Background())
		if err != nil {
			t.Fatalf("Branch: %v", err)
		}
		if got != "" {
			t.Errorf("Branch = %q, want empty", got)
		}
	})
}

func TestRepoReader_Remote_Mock(t *testing.T) {
	t.Run("origin slug", func(t *testing.T) {
		r, runner := newMockReader(t)
		runner.OnCommand("git", "remote", "get-url", "origin").Return("https://github.com/acme/game.git", nil)

		got, err := r.Remote(context.Background())
		if err != nil {
			t.Fatalf("Remote: %v", err)
		}
		if got != "acme/game" {
			t.Errorf("Remote = %q, want %q", got, "acme/game")
		}
	})

	t.Run("custom remote", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "rev-parse", "--git-dir").Return(".git", nil)
		runner.OnCommand("git", "remote", "get-url", "upstream").Return("git@github.com:up/stream.git", nil)
		r := NewRepoReader(t.TempDir(), WithReaderRunner(runner), WithRemote("upstream"))

		got, err := r.Remote(context.Background())
		if err != nil {
			t.Fatalf("Remote: %v", err)
		}
		if got != "up/stream" {
			t.Errorf("Remote = %q, want %q", got, "up/stream")
		}
	})

	t.Run("no remote", func(t *testing.T) {
		r, runner := newMockReader(t)
		runner.OnCommand("git", "remote", "get-url", "origin").Return("", errors.New("error: No such remote 'origin'"))

		if _, err := r.Remote(context.Background()); err == nil {
			t.Error("expected error for missing remote")
		}
	})

	t.Run("unparseable remote", func(t *testing.T) {
		r, runner := newMockReader(t)
		runner.OnCommand("git", "remote", "get-url", "origin").Return("/srv/git/game", nil)

		_, err := r.Remote(context.Background())
		if !errors.Is(err, ErrInvalidRemoteURL) {
			t.Errorf("error = %v, want ErrInvalidRemoteURL", err)
		}
	})
}

func TestRepoReader_Sha_Mock(t *testing.T) {
	r, runner := newMockReader(t)
	runner.OnCommand("git", "rev-parse", "HEAD").Return("0123456789abcdef0123456789abcdef01234567", nil)

	got, err := r.Sha()
	if err != nil {
		t.Fatalf("Sha: %v", err)
	}
	if got != "0123456789abcdef0123456789abcdef01234567" {
		t.Errorf("Sha = %q", got)
	}
}

func TestRepoReader_NotGitRepo(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "rev-parse", "--git-dir").Return("", errors.New("fatal: not a git repository"))
	r := NewRepoReader(t.TempDir(), WithReaderRunner(runner))
	ctx := context.Background()

	if _, err := r.Branch(ctx); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("Branch error = %v, want ErrNotGitRepo", err)
	}
	if _, err := r.Remote(ctx); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("Remote error = %v, want ErrNotGitRepo", err)
	}
	if _, err := r.Sha(); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("Sha error = %v, want ErrNotGitRepo", err)
	}
	if _, err := r.IsClean(ctx); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("IsClean error = %v, want ErrNotGitRepo", err)
	}
}

// =============================================================================
// Real repository tests
// =============================================================================

func TestRepoReader_RealRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := testutil.SetupTestRepo(t)
	testutil.CreateBranch(t, dir, "feature/inputs")
	testutil.AddRemote(t, dir, "origin", "git@github.com:acme/game.git")

	r := NewRepoReader(dir)
	ctx := testutil.TestContext(t)

	branch, err := r.Branch(ctx)
	if err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if branch != "feature/inputs" {
		t.Errorf("Branch = %q, want %q", branch, "feature/inputs")
	}

	slug, err := r.Remote(ctx)
	if err != nil {
		t.Fatalf("Remote: %v", err)
	}
	if slug != "acme/game" {
		t.Errorf("Remote = %q, want %q", slug, "acme/game")
	}

	sha, err := r.Sha()
	if err != nil {
		t.Fatalf("Sha: %v", err)
	}
	if want := testutil.GetHeadSHA(t, dir); sha != want {
		t.Errorf("Sha = %q, want %q", sha, want)
	}

	clean, err := r.IsClean(ctx)
	if err != nil {
		t.Fatalf("IsClean: %v", err)
	}
	if !clean {
		t.Error("fresh repository should be clean")
	}

	testutil.CommitFile(t, dir, "Assets/Player.cs", "class Player {}", "Add player")
	testutil.DetachHead(t, dir)

	branch, err = r.Branch(ctx)
	if err != nil {
		t.Fatalf("Branch on detached HEAD: %v", err)
	}
	if branch != "" {
		t.Errorf("Branch on detached HEAD = %q, want empty", branch)
	}
}

func TestRepoReader_RealDirectoryNotRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	r := NewRepoReader(t.TempDir())

	if _, err := r.Branch(context.Background()); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("Branch error = %v, want ErrNotGitRepo", err)
	}
}
