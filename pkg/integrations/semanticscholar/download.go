package semanticscholar

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio"

	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
)

// DiffKind distinguishes the two file groups of a [Diff].
type DiffKind string

const (
	DiffUpdate DiffKind = "update"
	DiffDelete DiffKind = "delete"
)

// ReleaseFileName returns the local name of the index-th file of a release
// download: {dataset}_{release}_{index}.json.gz. An empty release is named
// "latest". Names depend only on the arguments, so repeating a download
// overwrites the same files.
func ReleaseFileName(dataset, releaseID string, index int) string {
	if releaseID == "" {
		releaseID = LatestRelease
	}
	return fmt.Sprintf("%s_%s_%d.json.gz", dataset, releaseID, index)
}

// DiffFileName returns the local name of the index-th file of one kind in
// a diff: {dataset}_{from}_{to}_{kind}_{index}.json.gz.
func DiffFileName(dataset, from, to string, kind DiffKind, index int) string {
	return fmt.Sprintf("%s_%s_%s_%s_%d.json.gz", dataset, from, to, kind, index)
}

// DownloadFile streams url to dest and returns the number of bytes written.
// A relative dest is resolved against the client's output directory.
//
// The body is copied in 64 KiB chunks into a temporary file next to dest,
// which replaces dest atomically once the whole body has arrived. On any
// failure the temporary file is removed and an existing file at dest is
// left untouched.
//
// A url that is not absolute http or https is INVALID_ARGUMENT and sends
// no request. Request failures are TRANSPORT_ERROR (NOT_FOUND for a 4xx)
// once the retry policy is exhausted; a body cut short is TRANSPORT_ERROR
// as well.
// Local filesystem errors are returned as they are.
func (c *Client) DownloadFile(ctx context.Context, url, dest string) (int64, error) {
	if url == "" {
		return 0, s2errors.New(s2errors.ErrCodeInvalidArgument, "download url cannot be empty")
	}
	if dest == "" {
		return 0, s2errors.New(s2errors.ErrCodeInvalidArgument, "download destination cannot be empty")
	}
	path := c.destPath(dest)
	start := time.Now()

	resp, err := c.Open(ctx, url, nil)
	if err != nil {
		c.hooks.OnDownloadComplete(ctx, url, path, 0, time.Since(start), err)
		return 0, err
	}
	defer resp.Body.Close()

	c.hooks.OnDownloadStart(ctx, url, path, resp.ContentLength)
	n, err := c.writeFile(ctx, path, resp.Body, url)
	c.hooks.OnDownloadComplete(ctx, url, path, n, time.Since(start), err)
	if err != nil {
		return n, err
	}

	c.logger.Debug("downloaded file", "dest", path, "bytes", n, "duration", time.Since(start).Round(time.Millisecond))
	return n, nil
}

func (c *Client) writeFile(ctx context.Context, path string, body io.Reader, url string) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	f, err := renameio.TempFile(dir, path)
	if err != nil {
		return 0, fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer f.Cleanup()

	buf := make([]byte, chunkSize)
	var written int64
	for {
		nr, rerr := body.Read(buf)
		if nr > 0 {
			nw, werr := f.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("write %s: %w", path, werr)
			}
			c.hooks.OnDownloadProgress(ctx, path, written)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, s2errors.Wrap(s2errors.ErrCodeTransport, rerr, "read body of %s", url)
		}
	}

	if err := f.Chmod(0o644); err != nil {
		return written, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return written, fmt.Errorf("replace %s: %w", path, err)
	}
	return written, nil
}

// DownloadRelease downloads every file of dataset in releaseID (empty means
// [LatestRelease]) and returns the paths written, in manifest order.
//
// Files are named with [ReleaseFileName]. The first failure stops the run;
// the paths written before it are returned alongside the error. No retry
// happens at this level beyond each request's own retry policy.
func (c *Client) DownloadRelease(ctx context.Context, dataset, releaseID string) ([]string, error) {
	if releaseID == "" {
		releaseID = LatestRelease
	}
	m, err := c.ResolveRelease(ctx, dataset, releaseID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("downloading release", "dataset", dataset, "release", releaseID, "files", len(m.Files))
	written := make([]string, 0, len(m.Files))
	for i, u := range m.Files {
		name := ReleaseFileName(dataset, releaseID, i)
		if _, err := c.DownloadFile(ctx, u, name); err != nil {
			return written, fmt.Errorf("file %d of %d: %w", i+1, len(m.Files), err)
		}
		written = append(written, c.destPath(name))
		c.logger.Info("downloaded", "file", name, "progress", fmt.Sprintf("%d/%d", i+1, len(m.Files)))
	}
	return written, nil
}

// DownloadDiffs downloads every file of the diffs that bring dataset from
// startReleaseID to endReleaseID (empty means [LatestRelease]) and returns
// the paths written.
//
// Diffs are processed in manifest order; within a diff the update files
// come first, then the delete files, each named with [DiffFileName]. The
// first failure aborts the remaining files.
func (c *Client) DownloadDiffs(ctx context.Context, dataset, startReleaseID, endReleaseID string) ([]string, error) {
	m, err := c.ResolveDiff(ctx, dataset, startReleaseID, endReleaseID)
	if err != nil {
		return nil, err
	}

	total := m.FileCount()
	c.logger.Info("downloading diffs", "dataset", dataset, "from", m.StartRelease, "to", m.EndRelease,
		"diffs", len(m.Diffs), "files", total)

	written := make([]string, 0, total)
	for _, d := range m.Diffs {
		if err := validateDiff(d); err != nil {
			return written, err
		}
		groups := []struct {
			kind  DiffKind
			files []string
		}{
			{DiffUpdate, d.UpdateFiles},
			{DiffDelete, d.DeleteFiles},
		}
		for _, g := range groups {
			for i, u := range g.files {
				name := DiffFileName(dataset, d.FromRelease, d.ToRelease, g.kind, i)
				if _, err := c.DownloadFile(ctx, u, name); err != nil {
					return written, fmt.Errorf("%s file %d of diff %s..%s: %w", g.kind, i, d.FromRelease, d.ToRelease, err)
				}
				written = append(written, c.destPath(name))
				c.logger.Info("downloaded", "file", name, "progress", fmt.Sprintf("%d/%d", len(written), total))
			}
		}
	}
	return written, nil
}

// validateDiff rejects release ids that would escape the output directory
// once placed in a file name.
func validateDiff(d Diff) error {
	for _, id := range []string{d.FromRelease, d.ToRelease} {
		if err := s2errors.ValidateReleaseID(id); err != nil {
			return fmt.Errorf("diff entry %q..%q: %w", d.FromRelease, d.ToRelease, err)
		}
	}
	return nil
}

func (c *Client) destPath(dest string) string {
	if c.outputDir == "" || filepath.IsAbs(dest) {
		return dest
	}
	return filepath.Join(c.outputDir, dest)
}
