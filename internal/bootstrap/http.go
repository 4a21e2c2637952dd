package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	openingsui "github.com/aoe-openings/openings-ui"
	"github.com/aoe-openings/openings-ui/config"
	httpx "github.com/aoe-openings/openings-ui/internal/http"
	"golang.org/x/sync/errgroup"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config *config.AppConfig
	Logger *slog.Logger
	// Listener is used instead of binding Config.HTTP.Addr when set.
	Listener net.Listener
}

// RunHTTPServer serves until ctx is canceled or the listener fails, then
// shuts down gracefully within the configured timeout.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	if cfg == nil {
		return errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
		appCfg.Sanitize()
	}

	handler, err := BuildHTTPHandler(appCfg, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         appCfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", server.Addr)
		var serveErr error
		if cfg.Listener != nil {
			serveErr = server.Serve(cfg.Listener)
		} else {
			serveErr = server.ListenAndServe()
		}
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", serveErr)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdownHTTPServer(context.WithoutCancel(ctx), server, appCfg.HTTP.ShutdownTimeout, logger)
	})

	return g.Wait()
}

func shutdownHTTPServer(ctx context.Context, server *http.Server, timeout time.Duration, logger *slog.Logger) error {
	logger.InfoContext(ctx, "shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.InfoContext(ctx, "HTTP server stopped")
	return nil
}

// BuildHTTPHandler wires the router and middleware.
// Order: Recover -> RequestID -> Logging -> Compression -> Router.
func BuildHTTPHandler(cfg *config.AppConfig, logger *slog.Logger) (http.Handler, error) {
	templates, err := newTemplateRenderer(cfg.IsDev, logger)
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	h := httpx.NewRouter(httpx.RouterServices{
		QueryDefaults: cfg.Query.Defaults(),
		Templates:     templates,
		Logger:        logger,
	})

	if cfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", cfg.HTTP.CompressionLevel)
		h = httpx.Compression(httpx.CompressionConfig{Level: cfg.HTTP.CompressionLevel, Logger: logger})(h)
	}

	h = httpx.Logging(logger)(h)
	h = httpx.RequestID()(h)
	h = httpx.Recover(logger)(h)

	return h, nil
}

// newTemplateRenderer loads templates from disk in dev mode when the source
// tree is present, and from the embedded filesystem otherwise.
func newTemplateRenderer(isDev bool, logger *slog.Logger) (*httpx.TemplateRenderer, error) {
	var templateFS fs.FS
	diskDir := filepath.Join("frontend", "templates")

	if info, statErr := os.Stat(diskDir); isDev && statErr == nil && info.IsDir() {
		logger.Info("loading templates from disk", "dir", diskDir)
		templateFS = os.DirFS(diskDir)
	} else {
		sub, err := fs.Sub(openingsui.TemplateFS, "frontend/templates")
		if err != nil {
			return nil, err
		}
		templateFS = sub
		isDev = false
	}

	return httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		DevMode:    isDev,
		Logger:     logger,
	})
}
