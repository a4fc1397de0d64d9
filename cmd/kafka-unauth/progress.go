package main

import (
	"io"

	"github.com/lolocompany/kafka-unauth/pkg"
	"github.com/schollz/progressbar/v3"
)

// ProgressBarReporter wraps a progressbar.ProgressBar to implement pkg.ProgressReporter
type ProgressBarReporter struct {
	bar *progressbar.ProgressBar
}

func (p *ProgressBarReporter) Add(delta int64) {
	if p.bar != nil {
		_ = p.bar.Add64(delta)
	}
}

func (p *ProgressBarReporter) Close() error {
	if p.bar != nil {
		return p.bar.Close()
	}
	return nil
}

// NewDrainProgressReporter creates a spinner that counts messages while the
// consume probe drains the test topic. The total is unknown up front.
func NewDrainProgressReporter(w io.Writer) pkg.ProgressReporter {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Draining test topic"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &ProgressBarReporter{bar: bar}
}
