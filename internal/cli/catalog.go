package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

// datasetsCommand creates the command listing the published datasets.
func (c *CLI) datasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets the API publishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := semanticscholar.NewClient()
			defer client.Close()

			for _, name := range client.ListDatasets() {
				fmt.Fprintln(output, StyleValue.Render(name))
			}
			return nil
		},
	}
}

// releasesCommand creates the release inspection command.
func (c *CLI) releasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "releases",
		Short: "Inspect dataset releases",
	}

	cmd.AddCommand(c.releasesListCommand())
	cmd.AddCommand(c.releasesShowCommand())

	return cmd
}

// releasesListCommand creates the "releases list" subcommand.
func (c *CLI) releasesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List release identifiers",
		Long: `List release identifiers in the order the API reports them.

Examples:
  s2datasets releases list
  s2datasets releases list --limit 5    # only the five most recent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(nil)
			if err != nil {
				return err
			}
			defer client.Close()

			spinner := newSpinner(cmd.Context(), "Listing releases...")
			spinner.Start()
			releases, err := client.ListReleases(cmd.Context())
			spinner.Stop()
			if err != nil {
				return err
			}

			if limit > 0 && len(releases) > limit {
				releases = releases[len(releases)-limit:]
			}
			for _, r := range releases {
				fmt.Fprintln(output, StyleValue.Render(r))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the last n releases")

	return cmd
}

// releasesShowCommand creates the "releases show" subcommand.
func (c *CLI) releasesShowCommand() *cobra.Command {
	var readme bool

	cmd := &cobra.Command{
		Use:   "show [release]",
		Short: "Show the datasets of a release",
		Long: `Show the metadata of a release and the datasets it contains.
Without an argument the latest release is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := semanticscholar.LatestRelease
			if len(args) == 1 {
				id = args[0]
			}

			client, err := c.newClient(nil)
			if err != nil {
				return err
			}
			defer client.Close()

			spinner := newSpinner(cmd.Context(), fmt.Sprintf("Fetching release %s...", id))
			spinner.Start()
			info, err := client.DescribeRelease(cmd.Context(), id)
			spinner.Stop()
			if err != nil {
				return err
			}

			printKeyValue("Release", info.ReleaseID)
			printKeyValue("Datasets", fmt.Sprint(len(info.Datasets)))
			if readme && info.README != "" {
				printNewline()
				fmt.Fprintln(output, strings.TrimSpace(info.README))
			}
			printNewline()
			printDatasetTable(info.Datasets)
			printNewline()
			printNextStep("Download a dataset", fmt.Sprintf("%s download <dataset> %s", appName, info.ReleaseID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&readme, "readme", false, "print the release README")

	return cmd
}

func printDatasetTable(datasets []semanticscholar.DatasetInfo) {
	rows := make([][]string, len(datasets))
	for i, d := range datasets {
		rows[i] = []string{d.Name, truncate(d.Description, descriptionWidth)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dataset", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Fprintln(output, t.Render())
}
