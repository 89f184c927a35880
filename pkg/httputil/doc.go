// Package httputil provides the retry policy shared by the API clients.
//
// # Overview
//
//   - [Policy]: attempt budget, base delay and retryable status codes
//   - [Retry]: run a function under a Policy with exponential backoff
//   - [CheckStatus]: classify a response status as success, retryable or fatal
//
// # Retry
//
// A policy applies per HTTP request, not per logical operation. Only errors
// wrapped with [RetryableError] are retried:
//
//   - Connection-level failures
//   - Status codes listed in [Policy.RetryStatuses] (429, 500, 502, 503, 504
//     by default)
//
// Other non-2xx responses fail on the first attempt. The delay starts at
// [Policy.BaseDelay] and doubles after each failed attempt:
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy(), func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    return httputil.CheckStatus(resp.StatusCode, resp.Status, policy)
//	})
//
// # Defaults
//
//   - Attempts: 5
//   - Base delay: 300ms (300ms, 600ms, 1.2s, 2.4s between attempts)
package httputil
