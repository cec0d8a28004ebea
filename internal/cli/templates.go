package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/pkg/label/template"
)

// newTemplatesCmd creates the templates command listing the sheet catalog.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the supported label-sheet templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			printTemplateTable()
			return nil
		},
	}
}

func printTemplateTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(colorGreen)

	rows := [][]string{}
	for _, t := range template.All() {
		key := t.Key
		if t.Key == template.Default {
			key += " *"
		}
		rows = append(rows, []string{
			key,
			t.Name,
			fmt.Sprintf(`%g" x %g"`, t.Width, t.Height),
			fmt.Sprintf("%dx%d", t.Cols, t.Rows),
			fmt.Sprintf("%d", t.PerPage()),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Name", "Label", "Grid", "Per Page").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 && rows[row][0] == template.Default+" *" {
				return defaultStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(tbl.Render())
	fmt.Println(StyleDim.Render("  * default template"))
}
