package conout

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	progressBarWidth = 30

	// minPercentStep limits redraws, the bar only moves when the
	// transfer advanced by at least one full percent
	minPercentStep = 1
)

// ProgressBar draws an in-place progress line, overwriting itself with
// a carriage return on every redraw.
type ProgressBar struct {
	out         io.Writer
	name        string
	total       int64
	lastPercent int
	started     bool
}

func NewProgressBar(out io.Writer, name string, total int64) *ProgressBar {
	return &ProgressBar{
		out:         out,
		name:        name,
		total:       total,
		lastPercent: -1,
	}
}

// Update redraws the bar when the completed percentage advanced by at
// least minPercentStep since the last draw
func (pb *ProgressBar) Update(written int64) {
	percent := 100
	if pb.total > 0 {
		percent = int(float64(written) / float64(pb.total) * 100.0)
	}
	if percent > 100 {
		percent = 100
	}
	if pb.started && percent-pb.lastPercent < minPercentStep {
		return
	}
	pb.started = true
	pb.lastPercent = percent

	fmt.Fprintf(pb.out, "\r%s %s %3d%% (%s/%s)",
		pb.name,
		drawBar(percent, progressBarWidth),
		percent,
		humanize.Bytes(uint64(written)),
		humanize.Bytes(uint64(pb.total)),
	)
}

// Done clears the progress line so the completion banner starts clean
func (pb *ProgressBar) Done() {
	if !pb.started {
		return
	}
	fmt.Fprintf(pb.out, "\r%s\r", strings.Repeat(" ", 80))
}

func drawBar(percent, width int) string {
	completed := percent * width / 100
	bar := "["
	for i := 0; i < width; i++ {
		switch {
		case i < completed:
			bar += "="
		case i == completed:
			bar += ">"
		default:
			bar += " "
		}
	}
	return bar + "]"
}
