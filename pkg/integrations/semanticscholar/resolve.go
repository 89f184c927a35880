package semanticscholar

import (
	"context"
	"fmt"
	"net/url"

	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
)

// ReleaseManifest lists the files making up one dataset in one release.
//
// Files holds pre-signed download URLs in the order the API returned them.
// It is never empty in a manifest returned without error.
type ReleaseManifest struct {
	ReleaseID   string   `json:"-"`           // Release requested (may be "latest")
	Dataset     string   `json:"name"`        // Dataset name
	Description string   `json:"description"` // Short description (may be empty)
	README      string   `json:"README"`      // License and usage notes (may be empty)
	Files       []string `json:"files"`       // Download URLs
}

// DiffManifest lists the incremental updates between two releases of a
// dataset. Diffs are ordered from the oldest release pair to the newest.
type DiffManifest struct {
	Dataset      string `json:"dataset"`
	StartRelease string `json:"start_release"`
	EndRelease   string `json:"end_release"`
	Diffs        []Diff `json:"diffs"`
}

// Diff is the change set between two consecutive releases.
// UpdateFiles hold records to insert or replace; DeleteFiles hold the keys
// of records to remove.
type Diff struct {
	FromRelease string   `json:"from_release"`
	ToRelease   string   `json:"to_release"`
	UpdateFiles []string `json:"update_files"`
	DeleteFiles []string `json:"delete_files"`
}

// FileCount returns the number of update and delete files in the manifest.
func (m *DiffManifest) FileCount() int {
	n := 0
	for _, d := range m.Diffs {
		n += len(d.UpdateFiles) + len(d.DeleteFiles)
	}
	return n
}

// ResolveRelease returns the download URLs for dataset in release releaseID.
// An empty releaseID means [LatestRelease].
//
// Checks run in this order, each before any request they guard:
//   - INVALID_ARGUMENT if dataset is unknown
//   - AUTH_REQUIRED if no API key is configured
//   - INVALID_ARGUMENT if an explicit releaseID is not a published release
//     (this check lists releases, so it can also fail with TRANSPORT_ERROR)
//
// The manifest request itself fails with NOT_FOUND on a 4xx response and
// TRANSPORT_ERROR otherwise. A manifest without files fails with
// EMPTY_RESULT: the dataset and release pair was most likely wrong.
func (c *Client) ResolveRelease(ctx context.Context, dataset, releaseID string) (*ReleaseManifest, error) {
	if releaseID == "" {
		releaseID = LatestRelease
	}
	if err := ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := c.requireAPIKey(); err != nil {
		return nil, err
	}
	if err := c.ValidateRelease(ctx, releaseID); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/release/%s/dataset/%s", c.baseURL, url.PathEscape(releaseID), url.PathEscape(dataset))
	var m ReleaseManifest
	if err := c.GetJSON(ctx, u, nil, &m); err != nil {
		return nil, err
	}
	m.ReleaseID = releaseID
	if m.Dataset == "" {
		m.Dataset = dataset
	}

	if len(m.Files) == 0 {
		return nil, s2errors.New(s2errors.ErrCodeEmptyResult, "no download URLs for dataset %q in release %q", dataset, releaseID)
	}
	c.logger.Debug("resolved release", "dataset", dataset, "release", releaseID, "files", len(m.Files))
	return &m, nil
}

// ResolveDiff returns the diffs that bring dataset from startReleaseID up to
// endReleaseID. An empty endReleaseID means [LatestRelease].
//
// Dataset and credential checks match [Client.ResolveRelease]. The release
// ids are only checked for shape; whether they exist is left to the API,
// which answers unknown ids with an error status.
func (c *Client) ResolveDiff(ctx context.Context, dataset, startReleaseID, endReleaseID string) (*DiffManifest, error) {
	if endReleaseID == "" {
		endReleaseID = LatestRelease
	}
	if err := ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if err := c.requireAPIKey(); err != nil {
		return nil, err
	}
	if err := s2errors.ValidateReleaseID(startReleaseID); err != nil {
		return nil, err
	}
	if err := s2errors.ValidateReleaseID(endReleaseID); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/diffs/%s/to/%s/%s", c.baseURL,
		url.PathEscape(startReleaseID), url.PathEscape(endReleaseID), url.PathEscape(dataset))
	var m DiffManifest
	if err := c.GetJSON(ctx, u, nil, &m); err != nil {
		return nil, err
	}
	if m.Dataset == "" {
		m.Dataset = dataset
	}
	if m.StartRelease == "" {
		m.StartRelease = startReleaseID
	}
	if m.EndRelease == "" {
		m.EndRelease = endReleaseID
	}

	if len(m.Diffs) == 0 {
		return nil, s2errors.New(s2errors.ErrCodeEmptyResult, "no diffs for dataset %q from %q to %q", dataset, startReleaseID, endReleaseID)
	}
	c.logger.Debug("resolved diffs", "dataset", dataset, "from", startReleaseID, "to", endReleaseID, "diffs", len(m.Diffs))
	return &m, nil
}

func (c *Client) requireAPIKey() error {
	if c.apiKey == "" {
		return s2errors.New(s2errors.ErrCodeAuthRequired, "an API key is required to resolve download URLs")
	}
	return nil
}
