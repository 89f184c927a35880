package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestTransferHooksTotals(t *testing.T) {
	var logs bytes.Buffer
	h := newTransferHooks(newLogger(&logs, log.InfoLevel))
	ctx := context.Background()

	h.OnDownloadStart(ctx, "http://x/a", "/out/a.json.gz", 2048)
	h.OnDownloadProgress(ctx, "/out/a.json.gz", 2048)
	h.OnDownloadComplete(ctx, "http://x/a", "/out/a.json.gz", 2048, time.Second, nil)

	h.OnDownloadStart(ctx, "http://x/b", "/out/b.json.gz", -1)
	h.OnDownloadComplete(ctx, "http://x/b", "/out/b.json.gz", 10, time.Second, errors.New("boom"))

	if h.files != 1 || h.bytes != 2048 {
		t.Errorf("totals = %d files, %d bytes; want 1, 2048", h.files, h.bytes)
	}
}

func TestTransferHooksRetryWarning(t *testing.T) {
	var logs bytes.Buffer
	h := newTransferHooks(newLogger(&logs, log.InfoLevel))

	h.OnRequest(context.Background(), "GET", "api.example", "/release", 1)
	if logs.Len() != 0 {
		t.Errorf("first attempt logged at info: %q", logs.String())
	}

	h.OnRequest(context.Background(), "GET", "api.example", "/release", 3)
	if !strings.Contains(logs.String(), "retrying request") || !strings.Contains(logs.String(), "attempt=3") {
		t.Errorf("retry not reported: %q", logs.String())
	}
}

func TestTransferHooksSpinnerMessage(t *testing.T) {
	h := newTransferHooks(newLogger(&bytes.Buffer{}, log.InfoLevel))
	s := newSpinnerTo(context.Background(), &bytes.Buffer{}, false, "start")
	h.attach(s)

	ctx := context.Background()
	h.OnDownloadStart(ctx, "http://x/a", "/out/papers_latest_0.json.gz", 2_000_000)
	h.OnDownloadProgress(ctx, "/out/papers_latest_0.json.gz", 1_000_000)

	s.mu.Lock()
	msg := s.message
	s.mu.Unlock()
	if msg != "papers_latest_0.json.gz 1.0 MB / 2.0 MB" {
		t.Errorf("spinner message = %q", msg)
	}
}

func TestTransferHooksRetryWarningClearsSpinner(t *testing.T) {
	var term syncBuffer
	s := newSpinnerTo(context.Background(), &term, true, "papers_latest_0.json.gz")
	h := newTransferHooks(newLogger(&term, log.InfoLevel))
	h.attach(s)
	s.Start()

	deadline := time.Now().Add(2 * time.Second)
	for {
		s.mu.Lock()
		drawn := s.width > 0
		s.mu.Unlock()
		if drawn {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("spinner never drew a frame")
		}
		time.Sleep(10 * time.Millisecond)
	}

	h.OnRequest(context.Background(), "GET", "api.example", "/files/0", 2)
	s.Stop()

	out := term.String()
	i := strings.Index(out, "retrying request")
	if i < 0 {
		t.Fatalf("retry not reported: %q", out)
	}
	// The log line must start on a blank line, not after a spinner frame.
	lineStart := strings.LastIndexAny(out[:i], "\r\n") + 1
	if lineStart == 0 || out[lineStart-1] != '\r' {
		t.Fatalf("warning does not follow a cleared line: %q", out)
	}
	if prefix := out[lineStart:i]; strings.Contains(prefix, "papers_latest_0") {
		t.Errorf("warning shares a line with the spinner: %q", prefix)
	}
	cleared := "\r" + strings.Repeat(" ", 3) // clearLine pads with spaces
	if !strings.Contains(out[:lineStart], cleared) {
		t.Errorf("spinner line was not cleared before the warning: %q", out[:lineStart])
	}
}
