package httpx

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
	corefuncs "github.com/aoe-openings/openings-ui/internal/http/templates/core"
)

const templatePattern = "partials/*.tmpl"

// TemplateRenderer renders HTML partials for UI responses.
type TemplateRenderer struct {
	mu         sync.RWMutex
	t          *template.Template
	templateFS fs.FS
	devMode    bool         // Whether to re-parse templates on each request
	logger     *slog.Logger // For logging template errors
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	DevMode    bool         // Enable hot reloading of templates
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
// In dev mode, TemplateFS should be os.DirFS("frontend/templates").
// In prod mode, TemplateFS should be fs.Sub(TemplateFS, "frontend/templates").
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t, err := parseTemplates(cfg.TemplateFS)
	if err != nil {
		logger.Error("template parsing failed",
			slog.Any("error", err),
			slog.String("phase", "initialization"),
		)
		return nil, err
	}

	return &TemplateRenderer{
		t:          t,
		templateFS: cfg.TemplateFS,
		devMode:    cfg.DevMode,
		logger:     logger,
	}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	return template.New("root").Funcs(corefuncs.Funcs()).ParseFS(fsys, templatePattern)
}

func (r *TemplateRenderer) templates() *template.Template {
	if r.devMode {
		t, err := parseTemplates(r.templateFS)
		if err == nil {
			r.mu.Lock()
			r.t = t
			r.mu.Unlock()
			return t
		}
		r.logger.Error("template reload failed", slog.Any("error", err))
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.t
}

// RenderPartial executes the named template into a buffer and writes it with a 200.
// Nothing is written to w when execution fails.
func (r *TemplateRenderer) RenderPartial(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates().ExecuteTemplate(&buf, name, data); err != nil {
		level := slog.LevelError
		if apperrors.IsValidation(err) {
			// Bad input reached a template func; the caller answers with a 400.
			level = slog.LevelWarn
		}
		r.logger.Log(context.Background(), level, "template execution failed",
			slog.String("template", name),
			slog.String("error_type", apperrors.Classify(err)),
			slog.Any("error", err),
		)
		return err
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
