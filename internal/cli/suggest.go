package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/advisor"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
)

// suggestOpts holds the command-line flags for the suggest command.
type suggestOpts struct {
	tmpl      string  // sheet template key
	width     float64 // label width in inches
	height    float64 // label height in inches
	noLogo    bool    // the practice has no logo
	noFrom    bool    // omit the return address
	fromLines int     // return-address line count
}

// newSuggestCmd creates the suggest command. It asks the advisor for
// layout options suited to a label size and prints the picks with the
// reasoning behind them.
func newSuggestCmd() *cobra.Command {
	var opts suggestOpts

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest layout options for a label size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tmpl, "template", "t", "", "sheet template key (see 'labelpress templates')")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "label width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "label height in inches")
	cmd.Flags().BoolVar(&opts.noLogo, "no-logo", false, "assume no practice logo")
	cmd.Flags().BoolVar(&opts.noFrom, "no-from", false, "omit the return address")
	cmd.Flags().IntVar(&opts.fromLines, "from-lines", 3, "return-address line count")

	return cmd
}

// resolveDims turns the flags into label dimensions: explicit width and
// height win, then the template, then the default sheet.
func (o suggestOpts) resolveDims() (label.Dimensions, string, error) {
	if o.width > 0 || o.height > 0 {
		d := label.Dimensions{Width: o.width, Height: o.height}
		if !d.Valid() {
			return d, "", fmt.Errorf("label %gx%g: dimensions must be positive", d.Width, d.Height)
		}
		return d, fmt.Sprintf(`%g" x %g"`, d.Width, d.Height), nil
	}
	key := o.tmpl
	if key == "" {
		key = template.Default
	}
	t, err := template.Lookup(key)
	if err != nil {
		return label.Dimensions{}, "", err
	}
	return t.Dimensions(), t.Name, nil
}

func runSuggest(opts *suggestOpts) error {
	dims, name, err := opts.resolveDims()
	if err != nil {
		return err
	}

	s := advisor.Suggest(dims, !opts.noLogo, !opts.noFrom, opts.fromLines)

	fmt.Println(StyleTitle.Render("Suggested layout") + " " + StyleDim.Render("for "+name))
	printNewline()
	printKeyValue("logo", positionOrOff(s.LogoPosition, s.Options.ShowLogo))
	printKeyValue("from", positionOrOff(s.FromPosition, s.Options.ShowFromAddress))
	printKeyValue("logo-scale", fmt.Sprintf("%.2f", s.Options.LogoScale))
	printKeyValue("font-scale", fmt.Sprintf("%.2f", s.Options.FontScale))
	printKeyValue("spacing", s.Options.Spacing.String())
	printKeyValue("align", s.Options.ToAlign.String())
	printKeyValue("captions", captionSummary(s.Options))
	printNewline()

	fmt.Println(StyleHighlight.Render("Reasoning"))
	for _, r := range s.Reasoning {
		printDetail("%s", r)
	}
	printNewline()

	l := layout.Calculate(dims, s.Options, opts.fromLines, 0)
	printInfo("%s", l.Description)
	return nil
}

func positionOrOff(p advisor.Position, show bool) string {
	if !show {
		return StyleDim.Render("off")
	}
	return p.String()
}

func captionSummary(o layout.Options) string {
	switch {
	case o.ShowFromLabel && o.ShowToLabel:
		return "From: and To:"
	case o.ShowToLabel:
		return "To: only"
	case o.ShowFromLabel:
		return "From: only"
	default:
		return StyleDim.Render("none")
	}
}
