package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHooks{}
	h.OnRequest(ctx, "GET", "api.semanticscholar.org", "/datasets/v1/release", 1)
	h.OnResponse(ctx, "GET", "api.semanticscholar.org", "/datasets/v1/release", 200, time.Second)
	h.OnError(ctx, "GET", "api.semanticscholar.org", "/datasets/v1/release", nil)

	h.OnDownloadStart(ctx, "https://example.com/a.gz", "papers_latest_0.json.gz", 1024)
	h.OnDownloadProgress(ctx, "papers_latest_0.json.gz", 512)
	h.OnDownloadComplete(ctx, "https://example.com/a.gz", "papers_latest_0.json.gz", 1024, time.Second, nil)
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopHooks); !ok {
		t.Error("OrNoop(nil) should return NoopHooks")
	}

	custom := &testHooks{}
	if OrNoop(custom) != custom {
		t.Error("OrNoop should return non-nil hooks unchanged")
	}
}

type testHooks struct{ NoopHooks }
