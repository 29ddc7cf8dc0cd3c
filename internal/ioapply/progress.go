package ioapply

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// progress wraps an optional progress bar, a nil bar is a no-op.
type progress struct {
	bar *pb.ProgressBar
}

// newProgress creates a new progress bar with consistent
// settings when progress output is enabled.
func (a *applier) newProgress(
	kind maintenance.Kind,
	total int,
) progress {
	if !a.progress || total == 0 {
		return progress{}
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", kind.Operation()+" ")
	bar.Set(pb.CleanOnFinish, true)
	return progress{bar: bar}
}

func (p progress) increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
