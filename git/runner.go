package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// CommandRunner executes external commands.
// ExecRunner runs real processes; MockRunner replays canned output in tests.
type CommandRunner interface {
	// Run executes name with args in dir and returns trimmed stdout.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner that executes real commands.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements CommandRunner. On failure the returned error carries stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return strings.TrimSpace(stdout.String()), fmt.Errorf("%s: %w", name, err)
		}
		return strings.TrimSpace(stdout.String()), fmt.Errorf("%s: %w: %s", name, err, msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// =============================================================================
// MockRunner
// =============================================================================

// MockRunner is a CommandRunner for tests. Commands are matched exactly by
// name and arguments; OnAnyCommand sets the fallback response.
type MockRunner struct {
	mu        sync.Mutex
	responses map[string]*MockResponse
	fallback  *MockResponse
	calls     [][]string
}

// MockResponse is the canned result for a matched command.
type MockResponse struct {
	output string
	err    error
}

// Return sets the output and error for the command.
func (r *MockResponse) Return(output string, err error) {
	r.output = output
	r.err = err
}

// NewMockRunner creates an empty MockRunner. Unmatched commands fail.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		responses: make(map[string]*MockResponse),
	}
}

// OnCommand registers a response for an exact command line.
func (m *MockRunner) OnCommand(name string, args ...string) *MockResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp := &MockResponse{}
	m.responses[commandKey(name, args)] = resp
	return resp
}

// OnAnyCommand registers the response for commands with no exact match.
func (m *MockRunner) OnAnyCommand() *MockResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fallback = &MockResponse{}
	return m.fallback
}

// Run implements CommandRunner.
func (m *MockRunner) Run(_ context.Context, _ string, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, append([]string{name}, args...))

	if resp, ok := m.responses[commandKey(name, args)]; ok {
		return resp.output, resp.err
	}
	if m.fallback != nil {
		return m.fallback.output, m.fallback.err
	}
	return "", fmt.Errorf("mock: unexpected command: %s", commandKey(name, args))
}

// WasCalled reports whether a command starting with name and args was run.
func (m *MockRunner) WasCalled(name string, args ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := append([]string{name}, args...)
	for _, call := range m.calls {
		if hasPrefix(call, want) {
			return true
		}
	}
	return false
}

// CallCount returns how many commands named name were run.
func (m *MockRunner) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, call := range m.calls {
		if call[0] == name {
			n++
		}
	}
	return n
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func hasPrefix(call, want []string) bool {
	if len(call) < len(want) {
		return false
	}
	for i := range want {
		if call[i] != want[i] {
			return false
		}
	}
	return true
}
