package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// descriptionWidth truncates dataset descriptions in the picker table.
const descriptionWidth = 60

// =============================================================================
// DatasetListModel - Interactive dataset selection
// =============================================================================

// DatasetListModel is the bubbletea model for interactive dataset selection.
type DatasetListModel struct {
	Datasets     []string
	Descriptions map[string]string // optional, keyed by dataset name
	Cursor       int
	Selected     string
}

// NewDatasetListModel creates a new dataset list model.
func NewDatasetListModel(datasets []string, descriptions map[string]string) DatasetListModel {
	return DatasetListModel{Datasets: datasets, Descriptions: descriptions}
}

func (m DatasetListModel) Init() tea.Cmd {
	return nil
}

func (m DatasetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Datasets)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Datasets)-1, 0)
		case "enter":
			if len(m.Datasets) == 0 {
				return m, nil
			}
			m.Selected = m.Datasets[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DatasetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dataset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Datasets))
	for i, name := range m.Datasets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, name, truncate(m.Descriptions[name], descriptionWidth)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dataset", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return styleHeader
			case row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Datasets))))

	return b.String()
}

// =============================================================================
// Picker
// =============================================================================

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// pickDataset lets the user choose a dataset. Descriptions come from the
// latest release when it can be fetched; the picker works without them.
// An empty result means the user quit without choosing.
func (c *CLI) pickDataset(ctx context.Context, client *semanticscholar.Client) (string, error) {
	descriptions := make(map[string]string)

	spinner := newSpinner(ctx, "Fetching dataset descriptions...")
	spinner.Start()
	info, err := client.DescribeRelease(ctx, semanticscholar.LatestRelease)
	spinner.Stop()
	if err != nil {
		c.Logger.Debug("dataset descriptions unavailable", "err", err)
	} else {
		for _, d := range info.Datasets {
			descriptions[d.Name] = d.Description
		}
	}

	p := tea.NewProgram(NewDatasetListModel(client.ListDatasets(), descriptions), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(DatasetListModel)
	if !ok {
		return "", nil
	}
	return m.Selected, nil
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
// Only the first line of s is kept.
func truncate(s string, n int) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
