package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/negative-space-software/fileshare-cli/pkg/conf"
	"github.com/negative-space-software/fileshare-cli/pkg/spath"

	"github.com/pkg/sftp"
)

// progressReader reports bytes read from the wrapped reader. Updates
// arrive at the copy buffer granularity, not evenly spaced.
type progressReader struct {
	r       io.Reader
	written int64
	total   int64
	name    string
	report  ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	pr.written += int64(n)
	if pr.report != nil {
		pr.report(pr.written, pr.total, pr.name)
	}
	return n, err
}

func ensureRemoteDir(cli *sftp.Client, dir string) error {
	if _, err := cli.Stat(dir); err == nil {
		return nil
	}
	return cli.MkdirAll(dir)
}

func (c *Client) remoteDir() string {
	return c.settings.Get(conf.KeyServerDir)
}

func (c *Client) publicURL(name string) string {
	return c.settings.PublicBase() + "/" + name
}

// UploadFile transfers one local file into the configured remote
// directory and returns its remote name and public URL
func (c *Client) UploadFile(localPath string, progress ProgressFunc) (*Result, error) {
	fi, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access local path: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a file", localPath)
	}

	s, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err = ensureRemoteDir(s.sftp, c.remoteDir()); err != nil {
		return nil, fmt.Errorf("failed to create remote directory %s: %w", c.remoteDir(), err)
	}

	name := filepath.Base(localPath)
	remotePath := spath.Join(c.remoteDir(), name)
	if err = c.uploadOne(s.sftp, localPath, remotePath, fi.Size(), name, progress); err != nil {
		return nil, err
	}

	return &Result{Name: name, URL: c.publicURL(name)}, nil
}

// UploadFolder recursively transfers a local directory, preserving its
// relative structure. A failure partway aborts the operation; files
// already transferred stay on the remote host.
func (c *Client) UploadFolder(localPath string, progress ProgressFunc) (*Result, error) {
	fi, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access local path: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", localPath)
	}

	s, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	name := filepath.Base(localPath)
	remoteRoot := spath.Join(c.remoteDir(), name)
	if err = ensureRemoteDir(s.sftp, remoteRoot); err != nil {
		return nil, fmt.Errorf("failed to create remote directory %s: %w", remoteRoot, err)
	}

	wErr := filepath.Walk(localPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, rErr := filepath.Rel(localPath, path)
		if rErr != nil {
			return rErr
		}
		if rel == "." {
			return nil
		}

		remotePath := spath.Join(remoteRoot, spath.ToSlash(rel))
		if info.IsDir() {
			return ensureRemoteDir(s.sftp, remotePath)
		}
		return c.uploadOne(s.sftp, path, remotePath, info.Size(), spath.ToSlash(rel), progress)
	})
	if wErr != nil {
		return nil, fmt.Errorf("failed to upload folder: %w", wErr)
	}

	return &Result{Name: name, URL: c.publicURL(name)}, nil
}

func (c *Client) uploadOne(cli *sftp.Client, localPath, remotePath string, size int64, name string, progress ProgressFunc) error {
	c.logger.Debugf("Uploading %s to %s", localPath, remotePath)

	lFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer func() { _ = lFile.Close() }()

	rFile, err := cli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}
	defer func() { _ = rFile.Close() }()

	pr := &progressReader{r: lFile, total: size, name: name, report: progress}
	if _, err = io.Copy(rFile, pr); err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}

	// Files are served by the web server running on the remote host
	if err = cli.Chmod(remotePath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", remotePath, err)
	}
	return nil
}
