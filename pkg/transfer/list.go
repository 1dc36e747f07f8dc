package transfer

import (
	"fmt"
	"os"
	"sort"
)

// ListFiles returns the entries of the configured remote directory. A
// directory that does not exist yet yields an empty list, not an error.
func (c *Client) ListFiles() ([]Entry, error) {
	s, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	c.logger.Debugf("Listing %s", c.remoteDir())
	return listEntries(s.sftp, c.remoteDir())
}

func listEntries(fs remoteFS, dir string) ([]Entry, error) {
	infos, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		// ReadDir does not return "." or "..", but keep the guard in
		// case the server behaves otherwise
		if fi.Name() == "." || fi.Name() == ".." {
			continue
		}
		entries = append(entries, Entry{
			Name:    fi.Name(),
			Kind:    kindOf(fi),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func kindOf(fi os.FileInfo) string {
	if fi.IsDir() {
		return "directory"
	}
	return "file"
}
