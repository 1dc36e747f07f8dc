// Package transfer wraps one SFTP session per operation: connect,
// perform a single unit of work, disconnect. Sessions are never kept
// open across operations and never leak on error paths.
package transfer

import (
	"fmt"
	"os"

	"github.com/negative-space-software/fileshare-cli/pkg/conf"
	"github.com/negative-space-software/fileshare-cli/pkg/slog"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type Client struct {
	settings *conf.Settings
	logger   *slog.Logger
}

func NewClient(settings *conf.Settings, logger *slog.Logger) *Client {
	return &Client{
		settings: settings,
		logger:   logger,
	}
}

// session bundles the SSH transport with the SFTP client riding on it
type session struct {
	conn *ssh.Client
	sftp *sftp.Client
}

func (s *session) Close() {
	_ = s.sftp.Close()
	_ = s.conn.Close()
}

func (c *Client) connect() (*session, error) {
	keyPath := c.settings.KeyPath()
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", keyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", keyPath, err)
	}

	hostKeyCb, err := c.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	sshConfig := &ssh.ClientConfig{
		User:            c.settings.Get(conf.KeyServerUser),
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCb,
		Timeout:         conf.Timeout,
	}

	addr := c.settings.Addr()
	c.logger.Debugf("Dialing %s as %s", addr, sshConfig.User)
	conn, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	sftpCli, err := sftp.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open sftp session on %s: %w", addr, err)
	}
	c.logger.Infof("Connected to %s as %s", addr, sshConfig.User)

	return &session{conn: conn, sftp: sftpCli}, nil
}

// TestConnection connects and immediately disconnects; success means
// the key, host and credentials are all usable
func (c *Client) TestConnection() error {
	s, err := c.connect()
	if err != nil {
		return err
	}
	s.Close()
	return nil
}
