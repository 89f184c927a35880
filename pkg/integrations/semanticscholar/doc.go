// Package semanticscholar provides a client for the Semantic Scholar
// Datasets API.
//
// # Overview
//
// The Datasets API (https://api.semanticscholar.org/datasets/v1) publishes
// bulk snapshots of the Semantic Scholar corpus as releases. Each release
// holds a fixed set of datasets (papers, authors, citations, ...), and each
// dataset is split into gzip-compressed JSON lines files served through
// short-lived pre-signed URLs. Diffs between consecutive releases let a
// mirror catch up without a full download.
//
// # Usage
//
//	client := semanticscholar.NewClient(
//	    semanticscholar.WithAPIKey(os.Getenv("SEMANTIC_SCHOLAR_API_KEY")),
//	    semanticscholar.WithOutputDir("data"),
//	)
//	defer client.Close()
//
//	paths, err := client.DownloadRelease(ctx, "papers", semanticscholar.LatestRelease)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Credentials
//
// Listing and describing releases works anonymously. Resolving download
// URLs requires an API key; without one [Client.ResolveRelease],
// [Client.ResolveDiff] and the downloads built on them fail with
// AUTH_REQUIRED before any request is sent.
//
// # File Naming
//
// Downloads are named deterministically from their position in the
// manifest, so repeating a download overwrites the same files:
//
//   - release files: [ReleaseFileName], e.g. papers_latest_0.json.gz
//   - diff files: [DiffFileName], e.g. papers_2024-01-01_2024-02-01_update_0.json.gz
//
// Each file is written to a temporary file first and renamed into place,
// so an interrupted download never leaves a truncated file behind.
//
// # Errors
//
// Failures carry codes from the errors package: INVALID_ARGUMENT for an
// unknown dataset or release and for a malformed download url,
// AUTH_REQUIRED, NOT_FOUND for a 4xx response, TRANSPORT_ERROR once
// retries are exhausted, and EMPTY_RESULT for a manifest that lists nothing.
package semanticscholar
