package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianpm/labelpress/internal/server"
	"github.com/meridianpm/labelpress/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string // config file path
	addr   string // listen address
	redis  string // redis address overriding the config
}

// newServeCmd creates the serve command running the HTTP layout and
// rendering service. The service shares the CLI's config file for the
// practice profile and picks Redis for the artifact cache when one is
// configured, so multiple instances share rendered PDFs.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout and rendering service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/labelpress/config.toml)")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the shared artifact cache")

	return cmd
}

// serveCache picks the service cache backend: Redis when configured, the
// file cache otherwise.
func serveCache(ctx context.Context, cfg Config, redisAddr string) (cache.Cache, error) {
	addr := redisAddr
	if addr == "" {
		addr = cfg.Cache.Redis
	}
	if addr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
	}
	return newArtifactCache(cfg, false)
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	logoData, logoFormat, err := cfg.loadLogo()
	if err != nil {
		return err
	}

	store, err := serveCache(ctx, cfg, opts.redis)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	srv := server.New(server.Config{
		FontPath:   cfg.Font,
		From:       cfg.From,
		Branding:   cfg.Branding,
		Logo:       logoData,
		LogoFormat: logoFormat,
		Cache:      store,
		Logger:     logger,
	})

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
