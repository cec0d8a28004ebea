package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/pkg/cache"
	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/advisor"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
	"github.com/meridianpm/labelpress/pkg/recipients"
	"github.com/meridianpm/labelpress/pkg/render/document"
	"github.com/meridianpm/labelpress/pkg/render/preview"
)

const (
	formatPDF  = "pdf"
	formatJSON = "json"
	formatSVG  = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config   string   // config file path
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "pdf", "json", "svg"
	tmpl     string   // sheet template key
	mongo    bool     // pull recipients from MongoDB instead of a file
	noCache  bool     // bypass the artifact cache
	suggest  bool     // let the advisor pick the layout options
	showLogo bool     // place the practice logo
	spacing  string   // line spacing: compact, normal, relaxed
	align    string   // destination alignment: left, center, right
	fromPos  string   // return-address corner: top-left, top-right
	mode     string   // layout mode: auto, stacked, split

	logoScale     float64
	fontScale     float64
	fromFontScale float64
}

// newRenderCmd creates the render command for producing label sheets.
// It renders a recipient batch to one or more output formats: a print-ready
// PDF, the layout as JSON, or a preview SVG of the first label.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		logoScale:     1.0,
		fontScale:     1.0,
		fromFontScale: 1.0,
		spacing:       "normal",
		align:         "left",
		fromPos:       "top-left",
		mode:          "auto",
	}

	cmd := &cobra.Command{
		Use:   "render [recipients.json]",
		Short: "Render a recipient batch onto label sheets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" && !opts.mongo {
				return fmt.Errorf("need a recipients file or --mongo")
			}
			return runRender(cmd.Context(), cmd, input, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/labelpress/config.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), json, svg (comma-separated)")
	cmd.Flags().StringVarP(&opts.tmpl, "template", "t", "", "sheet template key (see 'labelpress templates')")
	cmd.Flags().BoolVar(&opts.mongo, "mongo", false, "read recipients from the configured MongoDB collection")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", false, "let the advisor pick layout options for the sheet")
	cmd.Flags().BoolVar(&opts.showLogo, "logo", false, "place the practice logo")
	cmd.Flags().StringVar(&opts.spacing, "spacing", opts.spacing, "line spacing: compact, normal, relaxed")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "destination alignment: left, center, right")
	cmd.Flags().StringVar(&opts.fromPos, "from-position", opts.fromPos, "return-address corner: top-left, top-right")
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "layout mode: auto, stacked, split")
	cmd.Flags().Float64Var(&opts.logoScale, "logo-scale", opts.logoScale, "logo size multiplier")
	cmd.Flags().Float64Var(&opts.fontScale, "font-scale", opts.fontScale, "destination font multiplier")
	cmd.Flags().Float64Var(&opts.fromFontScale, "from-font-scale", opts.fromFontScale, "return-address font multiplier")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["pdf"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatPDF}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatPDF: true, formatJSON: true, formatSVG: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'pdf', 'json', or 'svg')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; a "batch" base is
// used when recipients come from MongoDB.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "batch"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// buildOptions assembles the engine options from config defaults, the
// advisor (when --suggest is set), and explicit flags. Flags the user set
// override the advisor's picks.
func buildOptions(cmd *cobra.Command, opts *renderOpts, cfg Config, dims label.Dimensions) (layout.Options, error) {
	o := layout.DefaultOptions()
	o.ShowFromAddress = len(cfg.From.Lines()) > 0
	o.ShowBranding = cfg.Branding != ""
	o.ShowLogo = opts.showLogo && cfg.Logo != ""

	if opts.suggest {
		s := advisor.Suggest(dims, o.ShowLogo, o.ShowFromAddress, len(cfg.From.Lines()))
		branding := o.ShowBranding
		o = s.Options
		o.ShowBranding = branding
	}

	var err error
	set := func(name string) bool { return cmd.Flags().Changed(name) || !opts.suggest }
	if set("spacing") {
		if o.Spacing, err = layout.ParseLineSpacing(opts.spacing); err != nil {
			return o, err
		}
	}
	if set("align") {
		if o.ToAlign, err = layout.ParseAlignment(opts.align); err != nil {
			return o, err
		}
	}
	if set("from-position") {
		if o.FromPosition, err = layout.ParseFromPosition(opts.fromPos); err != nil {
			return o, err
		}
	}
	if set("mode") {
		if o.Mode, err = layout.ParseMode(opts.mode); err != nil {
			return o, err
		}
	}
	if set("logo-scale") {
		o.LogoScale = opts.logoScale
	}
	if set("font-scale") {
		o.FontScale = opts.fontScale
	}
	if set("from-font-scale") {
		o.FromFontScale = opts.fromFontScale
	}
	return o, nil
}

// loadRecipients reads the batch from the input file or from MongoDB.
func loadRecipients(ctx context.Context, input string, opts *renderOpts, cfg Config) ([]label.Data, error) {
	if !opts.mongo {
		return recipients.ImportJSON(input)
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("--mongo needs a [mongo] section in the config file")
	}
	p, err := recipients.NewMongoProvider(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	defer func() { _ = p.Close(ctx) }()
	return p.List(ctx)
}

// runRender loads the batch, computes the shared layout, and writes every
// requested format.
func runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	key := opts.tmpl
	if key == "" {
		key = cfg.Template
	}
	t, err := template.Lookup(key)
	if err != nil {
		return err
	}

	recs, err := loadRecipients(ctx, input, opts, cfg)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d recipients", len(recs))

	engineOpts, err := buildOptions(cmd, opts, cfg, t.Dimensions())
	if err != nil {
		return err
	}

	fromLines := 0
	if engineOpts.ShowFromAddress {
		fromLines = len(cfg.From.Lines())
	}
	l := layout.Calculate(t.Dimensions(), engineOpts, fromLines, 0)
	logger.Debugf("Layout: %s", l.Description)
	if l.HasOverflow {
		printWarning("Content overflows the %s label; output may clip", t.Key)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := renderFormat(ctx, format, path, t, l, engineOpts, recs, cfg, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	return nil
}

// renderFormat produces one output format and writes it to path.
func renderFormat(ctx context.Context, format, path string, t template.Template, l layout.Layout,
	engineOpts layout.Options, recs []label.Data, cfg Config, opts *renderOpts) error {
	var data []byte
	var err error

	switch format {
	case formatPDF:
		data, err = renderPDF(ctx, t, l, engineOpts, recs, cfg, opts)
	case formatJSON:
		data, err = preview.RenderJSON(t.Dimensions(), l,
			preview.WithFromAddress(cfg.From), preview.WithBranding(cfg.Branding))
	case formatSVG:
		popts := []preview.Option{
			preview.WithFromAddress(cfg.From),
			preview.WithBranding(cfg.Branding),
		}
		if len(recs) > 0 {
			popts = append(popts, preview.WithData(recs[0]))
		}
		data = preview.RenderSVG(t.Dimensions(), l, popts...)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// renderPDF renders the full batch to PDF, serving it from the artifact
// cache when the identical request was rendered before.
func renderPDF(ctx context.Context, t template.Template, l layout.Layout,
	engineOpts layout.Options, recs []label.Data, cfg Config, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	store, err := newArtifactCache(cfg, opts.noCache)
	if err != nil {
		logger.Warn("artifact cache unavailable", "err", err)
		store = cache.NewNullCache()
	}
	defer func() { _ = store.Close() }()

	key := cache.ArtifactKey(formatPDF, t.Key, engineOpts, cfg.From, cfg.Branding, recs)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		printBatchStats(len(recs), pageCount(t, recs), true)
		return data, nil
	}

	if cfg.Font == "" {
		return nil, fmt.Errorf("PDF output needs a font file (set 'font' in the config)")
	}

	ropts := []document.Option{
		document.WithFromAddress(cfg.From),
		document.WithLogger(logger),
	}
	if cfg.Branding != "" {
		ropts = append(ropts, document.WithBranding(cfg.Branding))
	}
	if engineOpts.ShowLogo {
		logoData, logoFormat, err := cfg.loadLogo()
		if err != nil {
			return nil, err
		}
		if len(logoData) > 0 {
			ropts = append(ropts, document.WithLogo(document.Logo{Format: logoFormat, Data: logoData}))
		}
	}

	renderer, err := document.NewRenderer(cfg.Font, ropts...)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	if err := renderer.Render(t, l, recs); err != nil {
		return nil, err
	}
	data := renderer.Bytes()
	prog.done(fmt.Sprintf("Rendered %d labels", len(recs)))
	printBatchStats(len(recs), pageCount(t, recs), false)

	if err := store.Set(ctx, key, data, 0); err != nil {
		logger.Warn("artifact cache write failed", "err", err)
	}
	return data, nil
}

// pageCount is how many sheet pages the batch fills.
func pageCount(t template.Template, recs []label.Data) int {
	per := t.PerPage()
	if per == 0 || len(recs) == 0 {
		return 1
	}
	return (len(recs) + per - 1) / per
}
