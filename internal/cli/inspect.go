package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/axis/bbox"
	"github.com/matzehuels/axisticks/pkg/config"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "inspect <axes.toml>",
		Short: "Print the ticks of each axis as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], names, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVar(&names, "axis", nil, "inspect only the named axes")
	return cmd
}

func runInspect(ctx context.Context, path string, names []string, w io.Writer) error {
	logger := loggerFromContext(ctx)

	file, err := config.Load(path)
	if err != nil {
		return err
	}
	axes, err := file.Select(names...)
	if err != nil {
		return err
	}
	m, err := bbox.NewDefaultMeasurer()
	if err != nil {
		return err
	}

	for i, a := range axes {
		in, err := a.Inputs()
		if err != nil {
			return fmt.Errorf("axis %q: %w", a.Name, err)
		}
		l, width, err := settleAxis(ctx, in, m, logger.With("axis", a.Name))
		if err != nil {
			return fmt.Errorf("axis %q: %w", a.Name, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		printAxisSummary(w, a.Name, l, width)
	}
	return nil
}

func printAxisSummary(w io.Writer, name string, l axis.Layout, width int) {
	fmt.Fprintln(w, StyleTitle.Render(name))
	printKeyValue(w, "orient", string(l.Orient))
	printKeyValue(w, "arguments", fmt.Sprint(l.TickArguments))
	printKeyValue(w, "width", StyleNumber.Render(fmt.Sprintf("%dpx", width)))
	if len(l.Ticks) == 0 {
		printWarning(w, "no ticks fit the available height")
		return
	}
	fmt.Fprintln(w, tickTable(l).Render())
	if trimmed := countTrimmed(l); trimmed > 0 {
		printInfo(w, "%d of %d labels trimmed", trimmed, len(l.Ticks))
	}
}

func countTrimmed(l axis.Layout) int {
	n := 0
	for _, t := range l.Ticks {
		if t.Label != t.Title {
			n++
		}
	}
	return n
}

// tickTable lists value, position and labels of every tick. Titles
// identical to their label are dimmed.
func tickTable(l axis.Layout) *table.Table {
	rows := make([][]string, len(l.Ticks))
	for i, t := range l.Ticks {
		rows[i] = []string{fmt.Sprint(t.Value), formatPosition(t.Position), t.Label, t.Title}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Value", "Position", "Label", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 3 && row < len(l.Ticks) && l.Ticks[row].Label == l.Ticks[row].Title {
				return styleCell.Foreground(colorDim)
			}
			if col == 1 {
				return styleCell.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return styleCell
		})
}

func formatPosition(p float64) string {
	if math.IsNaN(p) {
		return "-"
	}
	return axis.FormatNumber(math.Round(p*100) / 100)
}
