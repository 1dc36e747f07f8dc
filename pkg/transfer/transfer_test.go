package transfer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/negative-space-software/fileshare-cli/pkg/conf"
	"github.com/negative-space-software/fileshare-cli/pkg/slog"
)

// fakeFS is an in-memory remoteFS; paths map to a directory flag
type fakeFS struct {
	paths map[string]bool
}

type fakeInfo struct {
	name string
	dir  bool
}

func (fi fakeInfo) Name() string       { return fi.name }
func (fi fakeInfo) Size() int64        { return 0 }
func (fi fakeInfo) Mode() os.FileMode  { return 0644 }
func (fi fakeInfo) ModTime() time.Time { return time.Time{} }
func (fi fakeInfo) IsDir() bool        { return fi.dir }
func (fi fakeInfo) Sys() interface{}   { return nil }

func (f *fakeFS) Stat(path string) (os.FileInfo, error) {
	dir, ok := f.paths[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return fakeInfo{name: path, dir: dir}, nil
}

func (f *fakeFS) ReadDir(path string) ([]os.FileInfo, error) {
	if dir, ok := f.paths[path]; !ok || !dir {
		return nil, os.ErrNotExist
	}
	var infos []os.FileInfo
	for p, dir := range f.paths {
		if strings.HasPrefix(p, path+"/") && !strings.Contains(p[len(path)+1:], "/") {
			infos = append(infos, fakeInfo{name: p[len(path)+1:], dir: dir})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

func (f *fakeFS) Remove(path string) error {
	if dir, ok := f.paths[path]; !ok || dir {
		return fmt.Errorf("cannot remove %s", path)
	}
	delete(f.paths, path)
	return nil
}

func (f *fakeFS) RemoveDirectory(path string) error {
	if dir, ok := f.paths[path]; !ok || !dir {
		return fmt.Errorf("cannot remove directory %s", path)
	}
	for p := range f.paths {
		if strings.HasPrefix(p, path+"/") {
			return fmt.Errorf("directory %s not empty", path)
		}
	}
	delete(f.paths, path)
	return nil
}

func TestBatchDeleteIsolation(t *testing.T) {
	fs := &fakeFS{paths: map[string]bool{
		"/files":       true,
		"/files/a.txt": false,
		"/files/c.txt": false,
	}}

	results := deleteEach(fs, "/files", []string{"a.txt", "b.txt", "c.txt"})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantOK := []bool{true, false, true}
	wantNames := []string{"a.txt", "b.txt", "c.txt"}
	for i, r := range results {
		if r.Name != wantNames[i] {
			t.Errorf("result %d name = %q, want %q (order must follow submission)", i, r.Name, wantNames[i])
		}
		if r.OK != wantOK[i] {
			t.Errorf("result %d OK = %v, want %v", i, r.OK, wantOK[i])
		}
		if !r.OK && r.Err == nil {
			t.Errorf("result %d failed without an error detail", i)
		}
	}
}

func TestDeleteOneRecursive(t *testing.T) {
	fs := &fakeFS{paths: map[string]bool{
		"/files":                  true,
		"/files/photos":           true,
		"/files/photos/a.png":     false,
		"/files/photos/sub":       true,
		"/files/photos/sub/b.png": false,
		"/files/other.txt":        false,
	}}

	if err := deleteOne(fs, "/files/photos"); err != nil {
		t.Fatalf("deleteOne failed: %v", err)
	}

	for p := range fs.paths {
		if strings.HasPrefix(p, "/files/photos") {
			t.Errorf("path %s survived recursive delete", p)
		}
	}
	if _, ok := fs.paths["/files/other.txt"]; !ok {
		t.Error("unrelated file was removed")
	}
}

func TestDeleteOneMissing(t *testing.T) {
	fs := &fakeFS{paths: map[string]bool{"/files": true}}
	if err := deleteOne(fs, "/files/nope.txt"); err == nil {
		t.Error("expected error for missing path")
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	t.Setenv("FILESHARE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	settings, err := conf.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewClient(settings, slog.NewLogger("test"))
}

func TestPublicURL(t *testing.T) {
	c := newTestClient(t)

	url := c.publicURL("report.pdf")
	if !strings.HasSuffix(url, "/report.pdf") {
		t.Errorf("URL %q does not end with /report.pdf", url)
	}
	if !strings.HasPrefix(url, "https://") {
		t.Errorf("URL %q is not https", url)
	}
}

func TestProgressReaderGranularity(t *testing.T) {
	payload := strings.Repeat("x", 10)
	var updates []int64
	pr := &progressReader{
		r:     strings.NewReader(payload),
		total: int64(len(payload)),
		name:  "payload",
		report: func(written, total int64, name string) {
			if total != int64(len(payload)) {
				t.Errorf("total = %d, want %d", total, len(payload))
			}
			if name != "payload" {
				t.Errorf("name = %q", name)
			}
			updates = append(updates, written)
		},
	}

	n, err := io.Copy(io.Discard, pr)
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if n != int64(len(payload)) {
		t.Fatalf("copied %d bytes, want %d", n, len(payload))
	}
	if len(updates) == 0 {
		t.Fatal("no progress updates reported")
	}
	if last := updates[len(updates)-1]; last != int64(len(payload)) {
		t.Errorf("last update = %d, want %d", last, len(payload))
	}
	// Written counts never go backwards
	for i := 1; i < len(updates); i++ {
		if updates[i] < updates[i-1] {
			t.Errorf("progress went backwards: %v", updates)
		}
	}
}

func TestListEntriesMissingDir(t *testing.T) {
	fs := &fakeFS{paths: map[string]bool{}}

	entries, err := listEntries(fs, "/files")
	if err != nil {
		t.Fatalf("missing remote directory must not be an error, got: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want an empty list", entries)
	}
}

func TestListEntriesNormalization(t *testing.T) {
	fs := &fakeFS{paths: map[string]bool{
		"/files":            true,
		"/files/zeta.txt":   false,
		"/files/alpha":      true,
		"/files/report.pdf": false,
	}}

	entries, err := listEntries(fs, "/files")
	if err != nil {
		t.Fatalf("listEntries failed: %v", err)
	}

	wantNames := []string{"alpha", "report.pdf", "zeta.txt"}
	wantKinds := []string{"directory", "file", "file"}
	if len(entries) != len(wantNames) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantNames))
	}
	for i, e := range entries {
		if e.Name != wantNames[i] {
			t.Errorf("entry %d name = %q, want %q (entries must be sorted)", i, e.Name, wantNames[i])
		}
		if e.Kind != wantKinds[i] {
			t.Errorf("entry %d kind = %q, want %q", i, e.Kind, wantKinds[i])
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := kindOf(fakeInfo{name: "a", dir: true}); got != "directory" {
		t.Errorf("kindOf(dir) = %q", got)
	}
	if got := kindOf(fakeInfo{name: "a"}); got != "file" {
		t.Errorf("kindOf(file) = %q", got)
	}
}
