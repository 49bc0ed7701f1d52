package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/internal/server"
	"github.com/mindweave/mindweave/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string        // listen address
	config   string        // optional TOML file overriding layout tunables
	redis    string        // Redis address; empty uses the in-memory cache
	noCache  bool          // disable layout-result caching entirely
	cacheTTL time.Duration // layout cache entry lifetime
}

// newServeCmd creates the serve command running the HTTP layout API.
// Shutdown is graceful: cancelling the command context (SIGINT/SIGTERM from
// main) drains in-flight requests before the process exits.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		cacheTTL: server.DefaultCacheTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout config TOML file")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for shared caching (default: in-memory)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable layout result caching")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "layout cache entry lifetime")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadLayoutConfig(opts.config)
	if err != nil {
		return err
	}

	store, err := buildCache(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	srv := server.New(server.Options{
		Logger:   logger,
		Cache:    store,
		Layout:   cfg,
		CacheTTL: opts.cacheTTL,
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
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildCache picks the cache backend from flags: disabled, Redis, or the
// default in-memory store.
func buildCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redis})
	}
	return cache.NewMemoryCache(), nil
}
