// Package ssh inspects the SSH agent a build forwards for private
// dependency checkout.
//
// # Listing Agent Keys
//
//	conn, err := ssh.DialAgent(in.SSHAgent()) // "" falls back to SSH_AUTH_SOCK
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
//
//	keys, err := ssh.ListAgentKeys(conn)
//	for _, key := range keys {
//	    fmt.Printf("%s %s %s\n", key.KeyType, key.Fingerprint, key.Comment)
//	}
package ssh
