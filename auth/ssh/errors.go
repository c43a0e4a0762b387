package ssh

import "errors"

// SSH agent errors.
var (
	// ErrNoSSHAgent is returned when no agent socket is configured.
	ErrNoSSHAgent = errors.New("ssh-agent not available")

	// ErrNoSSHKeys is returned when the agent holds no keys.
	ErrNoSSHKeys = errors.New("no SSH keys in agent")
)
