package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
)

// newPreviewCmd creates the preview command: an interactive browser over
// the sheet catalog showing the computed layout live as options change.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse templates and layouts interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPreviewModel()
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewModel is the bubbletea model for the interactive preview. The
// layout is recomputed on every option change; the engine is cheap enough
// that there is no need to debounce.
type previewModel struct {
	templates []template.Template
	cursor    int
	opts      layout.Options
	fromLines int
	current   layout.Layout
}

func newPreviewModel() previewModel {
	m := previewModel{
		templates: template.All(),
		opts:      layout.DefaultOptions(),
		fromLines: 3,
	}
	m.opts.ShowFromAddress = true
	m.opts.ShowBranding = true
	m.recompute()
	return m
}

func (m *previewModel) recompute() {
	t := m.templates[m.cursor]
	fromLines := 0
	if m.opts.ShowFromAddress {
		fromLines = m.fromLines
	}
	m.current = layout.Calculate(t.Dimensions(), m.opts, fromLines, 0)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.templates)-1 {
				m.cursor++
			}
		case "l":
			m.opts.ShowLogo = !m.opts.ShowLogo
		case "f":
			m.opts.ShowFromAddress = !m.opts.ShowFromAddress
		case "b":
			m.opts.ShowBranding = !m.opts.ShowBranding
		case "c":
			show := !(m.opts.ShowFromLabel || m.opts.ShowToLabel)
			m.opts.ShowFromLabel = show
			m.opts.ShowToLabel = show
		case "m":
			m.opts.Mode = nextMode(m.opts.Mode)
		case "s":
			m.opts.Spacing = nextSpacing(m.opts.Spacing)
		case "+":
			m.opts.LogoScale += 0.1
		case "-":
			m.opts.LogoScale -= 0.1
		}
		m.recompute()
	}
	return m, nil
}

func nextMode(mode layout.Mode) layout.Mode {
	switch mode {
	case layout.ModeAuto:
		return layout.ModeStacked
	case layout.ModeStacked:
		return layout.ModeSplit
	default:
		return layout.ModeAuto
	}
}

func nextSpacing(s layout.LineSpacing) layout.LineSpacing {
	switch s {
	case layout.SpacingCompact:
		return layout.SpacingNormal
	case layout.SpacingNormal:
		return layout.SpacingRelaxed
	default:
		return layout.SpacingCompact
	}
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Label Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ template  l logo  f from  b branding  c captions  m mode  s spacing  +/- logo size  q quit"))
	b.WriteString("\n\n")

	for i, t := range m.templates {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-11s %s", cursor, t.Key, listDimStyle.Render(fmt.Sprintf(`%g" x %g"`, t.Width, t.Height)))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.optionLine())
	b.WriteString("\n\n")
	b.WriteString(m.zoneTable())
	b.WriteString("\n")

	desc := m.current.Description
	if m.current.HasOverflow {
		b.WriteString(StyleWarning.Render(desc))
	} else {
		b.WriteString(StyleDim.Render(desc))
	}
	b.WriteString("\n")

	return b.String()
}

func (m previewModel) optionLine() string {
	onOff := func(on bool) string {
		if on {
			return StyleSuccess.Render("on")
		}
		return listDimStyle.Render("off")
	}
	parts := []string{
		"logo " + onOff(m.opts.ShowLogo),
		"from " + onOff(m.opts.ShowFromAddress),
		"branding " + onOff(m.opts.ShowBranding),
		"captions " + onOff(m.opts.ShowFromLabel || m.opts.ShowToLabel),
		"mode " + StyleValue.Render(m.opts.Mode.String()),
		"spacing " + StyleValue.Render(m.opts.Spacing.String()),
		"logo-scale " + StyleValue.Render(fmt.Sprintf("%.1f", m.opts.LogoScale)),
	}
	return "  " + strings.Join(parts, listDimStyle.Render("  ·  "))
}

func (m previewModel) zoneTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, z := range m.current.Zones {
		rows = append(rows, []string{
			z.Type.String(),
			fmt.Sprintf("%.1f%%", z.Top),
			fmt.Sprintf("%.1f%%", z.Left),
			fmt.Sprintf("%.1f%%", z.Width),
			fmt.Sprintf("%.1f%%", z.Height),
			fmt.Sprintf("%.1fpx", z.FontSize),
			z.Align.String(),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Zone", "Top", "Left", "Width", "Height", "Font", "Align").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	return tbl.Render()
}
