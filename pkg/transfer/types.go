package transfer

import "time"

// Entry is one listed remote object
type Entry struct {
	Name    string
	Kind    string // "file" or "directory"
	Size    int64
	ModTime time.Time
}

// Result is the outcome of one upload
type Result struct {
	Name string
	URL  string
}

// DeleteResult is the per-item outcome of a batch delete
type DeleteResult struct {
	Name string
	OK   bool
	Err  error
}

// ProgressFunc receives transfer progress at the granularity of the
// underlying copy buffer
type ProgressFunc func(written, total int64, name string)
