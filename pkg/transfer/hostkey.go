package transfer

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// hostKeyCallback verifies the server against ~/.ssh/known_hosts.
// Unknown hosts are recorded and accepted with a warning; a key that
// conflicts with a recorded one rejects the connection.
func (c *Client) hostKeyCallback() (ssh.HostKeyCallback, error) {
	khPath := c.settings.KnownHostsPath()
	if err := ensureKnownHosts(khPath); err != nil {
		return nil, fmt.Errorf("failed to prepare known_hosts: %w", err)
	}

	kh, err := knownhosts.New(khPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts: %w", err)
	}

	return func(host string, remote net.Addr, pubKey ssh.PublicKey) error {
		hErr := kh(host, remote, pubKey)
		if hErr == nil {
			return nil
		}

		var keyErr *knownhosts.KeyError
		if errors.As(hErr, &keyErr) {
			if len(keyErr.Want) > 0 {
				// Recorded key differs, refuse to connect
				return fmt.Errorf("host key mismatch for %s: %w", host, keyErr)
			}
			c.logger.Warnf("Host %s is not in known_hosts, recording its key", host)
			return appendHostKey(khPath, host, remote, pubKey)
		}
		return hErr
	}, nil
}

func ensureKnownHosts(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	return f.Close()
}

// appendHostKey records the key under the dialed hostname, which is
// what verification matches against on the next connection, plus the
// resolved address when it differs.
func appendHostKey(path, host string, remote net.Addr, pubKey ssh.PublicKey) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	addresses := []string{knownhosts.Normalize(host)}
	if rAddr := knownhosts.Normalize(remote.String()); rAddr != addresses[0] {
		addresses = append(addresses, rAddr)
	}

	_, err = f.WriteString(knownhosts.Line(addresses, pubKey) + "\n")
	return err
}
