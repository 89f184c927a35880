package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDraws(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, true, "Resolving...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.SetMessage("papers_latest_0.json.gz")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Resolving...") {
		t.Errorf("output %q should contain the first message", out)
	}
	if !strings.Contains(out, "papers_latest_0.json.gz") {
		t.Errorf("output %q should contain the updated message", out)
	}
	if s.Cancelled() {
		t.Error("Cancelled() = true after a plain Stop")
	}
}

func TestSpinnerDisabled(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, false, "quiet")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if buf.String() != "" {
		t.Errorf("disabled spinner wrote %q", buf.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var buf syncBuffer
	s := newSpinnerTo(ctx, &buf, true, "Testing with context...")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, true, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, true, "never started")

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
}
