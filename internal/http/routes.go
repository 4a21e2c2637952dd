package httpx

import (
	"log/slog"
	"net/http"

	"github.com/aoe-openings/openings-ui/internal/query"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	// QueryDefaults are applied when parsing standard filter queries.
	QueryDefaults query.Defaults
	// Templates renders UI partials. UI routes are skipped when nil.
	Templates *TemplateRenderer
	Logger    *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerGameTimeRoutes(mux)
	registerQueryRoutes(mux, &QueryHandlers{Defaults: services.QueryDefaults})

	if services.Templates != nil {
		registerUIRoutes(mux, &UIHandlers{T: services.Templates})
	} else if services.Logger != nil {
		services.Logger.Warn("template renderer not configured; UI routes disabled")
	}

	return mux
}

func registerGameTimeRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/game-time", gameTimeHandler)
	mux.HandleFunc("GET /api/game-time/bucket", gameTimeBucketHandler)
}

func registerQueryRoutes(mux *http.ServeMux, h *QueryHandlers) {
	mux.HandleFunc("GET /api/query/default", h.Default)
	mux.HandleFunc("GET /api/query/standard", h.Standard)
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /ui/game-time", h.GameTime)
	mux.HandleFunc("GET /ui/tech-timing", h.TechTiming)
}
