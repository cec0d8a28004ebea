// Package cli implements the labelpress command-line interface.
//
// This package provides commands for computing label layouts, asking the
// advisor for a starting configuration, rendering recipient batches to PDF
// sheets, previewing layouts interactively, and running the HTTP service.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a recipient batch onto label sheets (PDF, JSON, SVG)
//   - suggest: Ask the layout advisor for options suited to a label size
//   - templates: List the supported label-sheet templates
//   - preview: Browse templates and layouts interactively
//   - serve: Run the HTTP layout and rendering service
//   - cache: Manage the rendered-artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/pkg/buildinfo"
	"github.com/meridianpm/labelpress/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "labelpress"

// Execute runs the labelpress CLI and returns an error if any command
// fails. ctx bounds every command; cancelling it stops long renders and
// shuts the serve command down gracefully. The logger is attached to the
// context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Labelpress lays out and prints mailing-label sheets",
		Long:         `Labelpress is a layout engine and print pipeline for mailing labels: it partitions a label into logo, return-address, destination, and branding zones, suggests options for a given sheet, and renders recipient batches to print-ready PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newTemplatesCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// newArtifactCache picks the artifact cache for a command run: null when
// disabled, the configured directory otherwise.
func newArtifactCache(cfg Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/labelpress/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
