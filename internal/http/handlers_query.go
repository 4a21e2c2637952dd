package httpx

import (
	"net/http"

	"github.com/aoe-openings/openings-ui/internal/query"
)

// QueryResponse carries an encoded query fragment.
type QueryResponse struct {
	Query string `json:"query"`
}

// StandardQueryResponse is the JSON body of GET /api/query/standard.
type StandardQueryResponse struct {
	Filter query.Standard `json:"filter"`
	Query  string         `json:"query"`
}

// QueryHandlers serves the filter query helpers.
type QueryHandlers struct {
	Defaults query.Defaults
}

// Default returns the fixed query fragment used when no filters are chosen.
func (h *QueryHandlers) Default(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, QueryResponse{Query: query.DefaultQuery()})
}

// Standard validates the request's filter parameters and echoes them back in canonical form.
func (h *QueryHandlers) Standard(w http.ResponseWriter, r *http.Request) {
	filter, err := query.ParseStandard(r.URL.Query(), h.Defaults)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, StandardQueryResponse{Filter: filter, Query: filter.Query()})
}
