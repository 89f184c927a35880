// Package pkg provides the libraries behind s2datasets, a client for the
// Semantic Scholar Datasets API.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [integrations] - HTTP plumbing shared by API clients, and the
//     [integrations/semanticscholar] client itself
//  2. [httputil], [errors] - Retry policy and the coded error taxonomy
//  3. [observability], [buildinfo] - Injected event hooks and version data
//
// # Architecture
//
// The typical data flow of a download:
//
//	dataset + release
//	         ↓
//	    catalog validation (no network for datasets)
//	         ↓
//	    GET /release/{id}/dataset/{name} (retried per request)
//	         ↓
//	    pre-signed file URLs
//	         ↓
//	    streamed to a temp file, renamed into the output directory
//
// # Quick Start
//
//	import "github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
//
//	client := semanticscholar.NewClient(
//	    semanticscholar.WithAPIKey(os.Getenv("SEMANTIC_SCHOLAR_API_KEY")),
//	    semanticscholar.WithOutputDir("data"),
//	)
//	defer client.Close()
//
//	paths, err := client.DownloadRelease(ctx, "tldrs", "latest")
//
// The command-line front end lives in cmd/s2datasets.
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/integrations
// [integrations/semanticscholar]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar
// [httputil]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/s2datasets/pkg/buildinfo
package pkg
