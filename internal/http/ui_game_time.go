package httpx

import (
	"net/http"
	"strings"

	"github.com/aoe-openings/openings-ui/internal/util"
)

// GameTimeView is the data for the "game-time" partial.
type GameTimeView struct {
	Millis int64
}

// TechTimingView is the data for the "tech-timing" partial.
type TechTimingView struct {
	Name   string
	Bucket int64
	Count  int64
	Millis int64
}

// UIHandlers serves HTML partials swapped into the front-end.
type UIHandlers struct {
	T *TemplateRenderer
}

// GameTime renders a single formatted game time.
func (h *UIHandlers) GameTime(w http.ResponseWriter, r *http.Request) {
	millis, err := int64Param(r, paramMillis)
	if err == nil {
		_, err = util.FormatGameTime(millis)
	}
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := h.T.RenderPartial(w, "game-time", GameTimeView{Millis: millis}); err != nil {
		writeAppError(w, err)
	}
}

// TechTiming renders a tech timing table row for a time bucket.
func (h *UIHandlers) TechTiming(w http.ResponseWriter, r *http.Request) {
	view := TechTimingView{Name: strings.TrimSpace(r.URL.Query().Get("name"))}

	var err error
	if view.Bucket, err = int64Param(r, paramBucket); err != nil {
		writeAppError(w, err)
		return
	}
	if view.Count, err = int64Param(r, "count"); err != nil {
		writeAppError(w, err)
		return
	}
	if view.Millis, err = int64Param(r, paramMillis); err != nil {
		writeAppError(w, err)
		return
	}
	if _, err = util.FormatGameTime(view.Millis); err != nil {
		writeAppError(w, err)
		return
	}
	if _, err = util.FormatGameTimeBucket(view.Bucket); err != nil {
		writeAppError(w, err)
		return
	}

	if err := h.T.RenderPartial(w, "tech-timing", view); err != nil {
		writeAppError(w, err)
	}
}
