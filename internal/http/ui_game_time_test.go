package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIHandlers_GameTime(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/ui/game-time?millis=119500")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<span class="game-time" data-millis="119500">2:00</span>`, rec.Body.String())
}

func TestUIHandlers_GameTime_Negative(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/ui/game-time?millis=-500")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestUIHandlers_TechTiming(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/ui/tech-timing?name=Feudal+Age&bucket=24&count=12345&millis=605000")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<td title="Feudal Age">Feudal Age</td>`)
	assert.Contains(t, body, "<td>10:00-10:25</td>")
	assert.Contains(t, body, "<td>12,345</td>")
	assert.Contains(t, body, `href="/api/query/standard?include_ladder_ids=3&amp;include_map_ids=9&amp;"`)
	assert.Contains(t, body, `data-millis="605000">10:05</span>`)
}

func TestUIHandlers_TechTiming_MissingCount(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/ui/tech-timing?name=Castle+Age&bucket=30&millis=900000")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "count", body["field"])
}

func TestNewRouter_WithoutTemplates(t *testing.T) {
	router := NewRouter(RouterServices{Logger: discardLogger()})

	rec := doGet(t, router, "/ui/game-time?millis=1000")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doGet(t, router, "/api/game-time?millis=1000")
	assert.Equal(t, http.StatusOK, rec.Code)
}
