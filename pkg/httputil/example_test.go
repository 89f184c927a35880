package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/s2datasets/pkg/httputil"
)

func ExampleRetry() {
	policy := httputil.DefaultPolicy()
	policy.BaseDelay = time.Millisecond

	// Fail twice with a retryable status, then succeed
	calls := 0
	err := httputil.Retry(context.Background(), policy, func() error {
		calls++
		if calls < 3 {
			return httputil.CheckStatus(http.StatusServiceUnavailable, "503 Service Unavailable", policy)
		}
		return nil
	})

	fmt.Println("Calls:", calls)
	fmt.Println("Error:", err)
	// Output:
	// Calls: 3
	// Error: <nil>
}

func ExampleCheckStatus() {
	policy := httputil.DefaultPolicy()

	for _, code := range []int{http.StatusOK, http.StatusTooManyRequests, http.StatusForbidden} {
		err := httputil.CheckStatus(code, http.StatusText(code), policy)
		var se *httputil.StatusError
		fmt.Println(code, err == nil, httputil.IsRetryable(err), errors.As(err, &se))
	}
	// Output:
	// 200 true false false
	// 429 false true true
	// 403 false false true
}
