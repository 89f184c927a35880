package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/s2datasets/pkg/observability"
)

var _ observability.Hooks = (*transferHooks)(nil)

// transferHooks reports client events to the CLI: retries and finished
// files go to the logger, byte counts to the spinner. It also keeps the
// totals printed after a download command.
type transferHooks struct {
	logger  *log.Logger
	spinner *Spinner

	files int
	bytes int64
	size  int64 // announced size of the current file, -1 if unknown
}

func newTransferHooks(logger *log.Logger) *transferHooks {
	return &transferHooks{logger: logger}
}

// attach directs progress updates to s until the next attach.
func (h *transferHooks) attach(s *Spinner) { h.spinner = s }

func (h *transferHooks) OnRequest(_ context.Context, method, host, path string, attempt int) {
	if attempt > 1 {
		h.warn("retrying request", "host", host, "path", path, "attempt", attempt)
		return
	}
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *transferHooks) OnResponse(_ context.Context, _, _, path string, status int, d time.Duration) {
	h.logger.Debug("response", "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *transferHooks) OnError(_ context.Context, _, _, path string, err error) {
	h.logger.Debug("request error", "path", path, "err", err)
}

func (h *transferHooks) OnDownloadStart(_ context.Context, _, dest string, size int64) {
	h.size = size
	if size >= 0 {
		h.logger.Debug("downloading", "dest", dest, "size", humanize.Bytes(uint64(size)))
	} else {
		h.logger.Debug("downloading", "dest", dest)
	}
	h.progress(dest, 0)
}

func (h *transferHooks) OnDownloadProgress(_ context.Context, dest string, written int64) {
	h.progress(dest, written)
}

func (h *transferHooks) OnDownloadComplete(_ context.Context, _, dest string, written int64, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.files++
	h.bytes += written
	h.logger.Debug("saved", "file", filepath.Base(dest), "size", humanize.Bytes(uint64(written)), "duration", d.Round(time.Millisecond))
}

// warn logs msg without tearing a spinner frame drawn on the same terminal.
func (h *transferHooks) warn(msg string, keyvals ...any) {
	if h.spinner == nil {
		h.logger.Warn(msg, keyvals...)
		return
	}
	h.spinner.Suspend(func() { h.logger.Warn(msg, keyvals...) })
}

func (h *transferHooks) progress(dest string, written int64) {
	if h.spinner == nil {
		return
	}
	msg := fmt.Sprintf("%s %s", filepath.Base(dest), humanize.Bytes(uint64(written)))
	if h.size > 0 {
		msg += " / " + humanize.Bytes(uint64(h.size))
	}
	h.spinner.SetMessage(msg)
}
