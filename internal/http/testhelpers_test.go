package httpx

import (
	"encoding/json"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	openingsui "github.com/aoe-openings/openings-ui"
	"github.com/aoe-openings/openings-ui/internal/query"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RequireTemplateRenderer builds a renderer over the embedded production templates.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	sub, err := fs.Sub(openingsui.TemplateFS, "frontend/templates")
	require.NoError(t, err)

	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: sub, Logger: discardLogger()})
	require.NoError(t, err)
	return tr
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterServices{
		QueryDefaults: query.Defaults{PatchID: 12, ExcludeMirrors: true},
		Templates:     RequireTemplateRenderer(t),
		Logger:        discardLogger(),
	})
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
