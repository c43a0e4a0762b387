package ssh

import (
	"fmt"
	"io"
	"net"
	"os"

	"golang.org/x/crypto/ssh/agent"
)

// AgentConnection wraps an SSH agent with its underlying connection
// for proper resource cleanup.
type AgentConnection struct {
	agent.ExtendedAgent
	conn io.Closer
}

// Close closes the underlying connection to the SSH agent.
func (a *AgentConnection) Close() error {
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}

// DialAgent connects to the SSH agent listening on socket, or on
// SSH_AUTH_SOCK when socket is empty. This is the socket a build forwards
// into its container through the sshAgent input.
// The returned AgentConnection should be closed when done.
func DialAgent(socket string) (*AgentConnection, error) {
	if socket == "" {
		socket = os.Getenv("SSH_AUTH_SOCK")
	}
	if socket == "" {
		return nil, ErrNoSSHAgent
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("connect to ssh-agent: %w", err)
	}

	return &AgentConnection{
		ExtendedAgent: agent.NewClient(conn),
		conn:          conn,
	}, nil
}

// KeyInfo describes a key held by an agent.
type KeyInfo struct {
	// KeyType is the key algorithm (e.g., "ssh-ed25519", "ssh-rsa").
	KeyType string

	// Fingerprint is the SHA256 fingerprint of the key.
	Fingerprint string

	// Comment is the comment the key was added with.
	Comment string
}

// ListAgentKeys lists all keys currently in the SSH agent.
func ListAgentKeys(ag agent.Agent) ([]KeyInfo, error) {
	keys, err := ag.List()
	if err != nil {
		return nil, fmt.Errorf("list agent keys: %w", err)
	}

	infos := make([]KeyInfo, 0, len(keys))
	for _, key := range keys {
		infos = append(infos, KeyInfo{
			KeyType:     key.Format,
			Fingerprint: ComputeFingerprint(key.Blob),
			Comment:     key.Comment,
		})
	}
	return infos, nil
}
