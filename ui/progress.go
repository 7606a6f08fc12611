package ui

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// Progress tracks bytes read through readers it wraps
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress returns nil when stdout is not a terminal, a nil Progress
// passes readers through unchanged.
func StartProgress(total int64) *Progress {
	if !SupportsANSICodes() || total <= 0 {
		return nil
	}
	bar := pb.New64(total)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(os.Stdout)
	bar.Start()
	return &Progress{bar: bar}
}

func (p *Progress) Wrap(r io.Reader) io.Reader {
	if p == nil {
		return r
	}
	return p.bar.NewProxyReader(r)
}

func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
