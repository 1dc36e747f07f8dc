package transfer

import (
	"fmt"
	"os"

	"github.com/negative-space-software/fileshare-cli/pkg/spath"
)

// remoteFS is the slice of *sftp.Client the removal logic needs, kept
// narrow so it can be exercised against a fake
type remoteFS interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Remove(path string) error
	RemoveDirectory(path string) error
}

// DeleteFile removes one named object from the remote directory,
// recursively when it is a directory. A missing path is an error.
func (c *Client) DeleteFile(name string) error {
	s, err := c.connect()
	if err != nil {
		return err
	}
	defer s.Close()

	return deleteOne(s.sftp, spath.Join(c.remoteDir(), name))
}

// DeleteMultipleFiles attempts each named deletion in order over a
// single session. One item failing does not stop the rest; the result
// slice carries a per-item outcome in submission order.
func (c *Client) DeleteMultipleFiles(names []string) ([]DeleteResult, error) {
	s, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	results := deleteEach(s.sftp, c.remoteDir(), names)
	for _, r := range results {
		if !r.OK {
			c.logger.Errorf("Failed to delete %s: %v", r.Name, r.Err)
		}
	}
	return results, nil
}

func deleteOne(fs remoteFS, path string) error {
	fi, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("remote path %s not found: %w", path, err)
	}

	if fi.IsDir() {
		return removeDirectoryRecursive(fs, path)
	}
	if err = fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func deleteEach(fs remoteFS, dir string, names []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(names))
	for _, name := range names {
		err := deleteOne(fs, spath.Join(dir, name))
		results = append(results, DeleteResult{
			Name: name,
			OK:   err == nil,
			Err:  err,
		})
	}
	return results
}

// removeDirectoryRecursive removes a directory and all its contents.
// The sftp protocol has no recursive remove, so the tree is walked
// bottom-up.
func removeDirectoryRecursive(fs remoteFS, dirPath string) error {
	entries, err := fs.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		path := spath.Join(dirPath, entry.Name())
		if entry.IsDir() {
			if err = removeDirectoryRecursive(fs, path); err != nil {
				return err
			}
			continue
		}
		if err = fs.Remove(path); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", path, err)
		}
	}

	if err = fs.RemoveDirectory(dirPath); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", dirPath, err)
	}
	return nil
}
