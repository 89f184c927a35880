package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// downloadCommand creates the command downloading a full release of a dataset.
func (c *CLI) downloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download [dataset] [release]",
		Short: "Download every file of a dataset",
		Long: `Download every file of a dataset in a release. Without a release the latest
one is used. Requires an API key.

Files are written to the output directory as {dataset}_{release}_{n}.json.gz.
Running the same download again overwrites them. A file is only replaced once
it has been received completely.

If no dataset is given and the terminal is interactive, a picker lists the
available datasets.

Examples:
  s2datasets download                      # Interactive selection
  s2datasets download papers
  s2datasets download tldrs 2024-12-31 -o data/`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDownload(cmd.Context(), args)
		},
	}
}

func (c *CLI) runDownload(ctx context.Context, args []string) error {
	hooks := newTransferHooks(c.Logger)
	client, err := c.newClient(hooks)
	if err != nil {
		return err
	}
	defer client.Close()

	var dataset string
	switch {
	case len(args) > 0:
		dataset = args[0]
	case interactive():
		dataset, err = c.pickDataset(ctx, client)
		if err != nil {
			return err
		}
		if dataset == "" {
			printDetail("No selection made")
			return nil
		}
	default:
		return missingArgument("dataset")
	}
	release := releaseArg(args, 1)

	return c.transfer(ctx, hooks, fmt.Sprintf("Downloading %s (%s)...", dataset, release), func() ([]string, error) {
		return client.DownloadRelease(ctx, dataset, release)
	})
}

// downloadDiffsCommand creates the command downloading the diffs between two releases.
func (c *CLI) downloadDiffsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download-diffs <dataset> <start-release> [end-release]",
		Short: "Download the diffs between two releases",
		Long: `Download the update and delete files that bring a dataset from one release to
a later one. Without an end release the latest one is used. Requires an API key.

Files are written to the output directory as
{dataset}_{from}_{to}_{update|delete}_{n}.json.gz, diff by diff, updates
before deletes.

Examples:
  s2datasets download-diffs papers 2024-11-26
  s2datasets download-diffs papers 2024-11-26 2024-12-31 -o diffs/`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dataset, start, end := args[0], args[1], releaseArg(args, 2)

			hooks := newTransferHooks(c.Logger)
			client, err := c.newClient(hooks)
			if err != nil {
				return err
			}
			defer client.Close()

			msg := fmt.Sprintf("Downloading %s diffs %s %s %s...", dataset, start, iconArrow, end)
			return c.transfer(ctx, hooks, msg, func() ([]string, error) {
				return client.DownloadDiffs(ctx, dataset, start, end)
			})
		},
	}
}

// transfer runs fn behind a spinner and reports the files it wrote. The
// files written before a failure are listed too.
func (c *CLI) transfer(ctx context.Context, hooks *transferHooks, msg string, fn func() ([]string, error)) error {
	spinner := newSpinner(ctx, msg)
	if !c.Verbose() {
		hooks.attach(spinner)
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	written, err := fn()
	spinner.Stop()

	for _, p := range written {
		printFile(displayPath(p))
	}
	if err != nil {
		switch {
		case spinner.Cancelled():
			printWarning("Interrupted after %d files", len(written))
		case len(written) > 0:
			printWarning("Stopped after %d files", len(written))
		}
		return err
	}

	printSuccess("Downloaded %d files", len(written))
	printTransferStats(hooks.files, hooks.bytes, prog.elapsed())
	return nil
}
