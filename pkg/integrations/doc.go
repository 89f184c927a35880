// Package integrations provides the HTTP plumbing shared by API clients.
//
// # Overview
//
// The [Client] type wraps a single long-lived [net/http.Client] and adds:
//   - Default request headers (for example an API key)
//   - Per-request retry under an [httputil.Policy]
//   - Classification of failures into coded errors from [s2errors]
//   - Request events reported to injected [observability.HTTPHooks]
//
// API-specific clients live in subpackages:
//
//   - [semanticscholar]: Semantic Scholar Datasets API
//
// # Client Pattern
//
//	c := integrations.NewClient(integrations.Options{
//	    Headers: map[string]string{"x-api-key": key},
//	    Logger:  logger,
//	})
//	defer c.Close()
//
//	var releases []string
//	err := c.GetJSON(ctx, baseURL+"/release", nil, &releases)
//
// [semanticscholar]: github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar
// [s2errors]: github.com/matzehuels/s2datasets/pkg/errors
package integrations
