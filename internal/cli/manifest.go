package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

// urlsCommand creates the command printing a release's download URLs.
func (c *CLI) urlsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "urls <dataset> [release]",
		Short: "Print the download URLs of a dataset",
		Long: `Print the pre-signed download URLs of a dataset, one per line.
Without a release the latest one is used. Requires an API key.

The URLs expire after a while; pipe them to a downloader right away or use
the download command.

Examples:
  s2datasets urls papers
  s2datasets urls abstracts 2024-12-31 | xargs -n1 curl -O`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, release := args[0], releaseArg(args, 1)

			client, err := c.newClient(nil)
			if err != nil {
				return err
			}
			defer client.Close()

			prog := newProgress(c.Logger)
			m, err := client.ResolveRelease(cmd.Context(), dataset, release)
			if err != nil {
				return err
			}
			for _, u := range m.Files {
				printURL(u)
			}
			prog.done(fmt.Sprintf("Resolved %d files of %s (%s)", len(m.Files), dataset, m.ReleaseID))
			return nil
		},
	}
}

// diffsCommand creates the command printing a diff manifest.
func (c *CLI) diffsCommand() *cobra.Command {
	var showURLs bool

	cmd := &cobra.Command{
		Use:   "diffs <dataset> <start-release> [end-release]",
		Short: "Show the diffs between two releases",
		Long: `Show the incremental diffs that bring a dataset from one release to a later
one. Without an end release the latest one is used. Requires an API key.

Examples:
  s2datasets diffs papers 2024-11-26
  s2datasets diffs papers 2024-11-26 2024-12-31 --urls`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, start, end := args[0], args[1], releaseArg(args, 2)

			client, err := c.newClient(nil)
			if err != nil {
				return err
			}
			defer client.Close()

			spinner := newSpinner(cmd.Context(), "Resolving diffs...")
			spinner.Start()
			m, err := client.ResolveDiff(cmd.Context(), dataset, start, end)
			spinner.Stop()
			if err != nil {
				return err
			}

			printInfo("%s %s %s %s", StyleValue.Render(m.Dataset), m.StartRelease, iconArrow, m.EndRelease)
			for _, d := range m.Diffs {
				printDetail("%s %s %s: %d update, %d delete", d.FromRelease, iconArrow, d.ToRelease,
					len(d.UpdateFiles), len(d.DeleteFiles))
				if showURLs {
					for _, u := range d.UpdateFiles {
						fmt.Fprintln(output, "    update "+StyleLink.Render(u))
					}
					for _, u := range d.DeleteFiles {
						fmt.Fprintln(output, "    delete "+StyleLink.Render(u))
					}
				}
			}
			printSuccess("%d diffs, %d files", len(m.Diffs), m.FileCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showURLs, "urls", false, "print the download URLs of every diff")

	return cmd
}

// releaseArg returns args[i], or [semanticscholar.LatestRelease] when absent.
func releaseArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return semanticscholar.LatestRelease
}
