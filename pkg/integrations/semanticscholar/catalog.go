package semanticscholar

import (
	"context"
	"net/url"
	"slices"

	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
)

var availableDatasets = []string{
	"abstracts",
	"authors",
	"citations",
	"embeddings-specter_v1",
	"embeddings-specter_v2",
	"paper-ids",
	"papers",
	"publication-venues",
	"s2orc",
	"tldrs",
}

// ReleaseInfo describes one release and the datasets it contains.
type ReleaseInfo struct {
	ReleaseID string        `json:"release_id"`
	README    string        `json:"README"`
	Datasets  []DatasetInfo `json:"datasets"`
}

// DatasetInfo is the summary of one dataset within a release.
type DatasetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	README      string `json:"README"`
}

// ListDatasets returns the names of the datasets the API publishes.
// The list is fixed; the returned slice is a copy the caller may modify.
func (c *Client) ListDatasets() []string {
	return slices.Clone(availableDatasets)
}

// ListReleases returns the release identifiers reported by the API, in the
// order the API lists them.
func (c *Client) ListReleases(ctx context.Context) ([]string, error) {
	var releases []string
	if err := c.GetJSON(ctx, c.baseURL+"/release", nil, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// DescribeRelease returns the metadata of a release, including the list of
// datasets it contains. id may be [LatestRelease].
func (c *Client) DescribeRelease(ctx context.Context, id string) (*ReleaseInfo, error) {
	if id == "" {
		id = LatestRelease
	}
	if err := s2errors.ValidateReleaseID(id); err != nil {
		return nil, err
	}

	var info ReleaseInfo
	if err := c.GetJSON(ctx, c.baseURL+"/release/"+url.PathEscape(id), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ValidateDataset returns an INVALID_ARGUMENT error naming name and the
// available datasets unless name is one of them. It never touches the network.
func ValidateDataset(name string) error {
	return s2errors.OneOf("dataset", name, availableDatasets)
}

// ValidateRelease checks that id names a published release.
//
// [LatestRelease] is always valid. Any other id must be well formed and
// appear in [Client.ListReleases], so this costs one API round-trip and may
// fail with TRANSPORT_ERROR.
func (c *Client) ValidateRelease(ctx context.Context, id string) error {
	if err := s2errors.ValidateReleaseID(id); err != nil {
		return err
	}
	if id == LatestRelease {
		return nil
	}

	releases, err := c.ListReleases(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(releases, id) {
		return s2errors.New(s2errors.ErrCodeInvalidArgument, "unknown release %q (%d releases available)", id, len(releases))
	}
	return nil
}
