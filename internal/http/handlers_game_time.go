package httpx

import (
	"net/http"

	"github.com/aoe-openings/openings-ui/internal/util"
)

// GameTimeResponse is the JSON body of GET /api/game-time.
type GameTimeResponse struct {
	Millis  int64  `json:"millis"`
	Display string `json:"display"`
}

// GameTimeBucketResponse is the JSON body of GET /api/game-time/bucket.
type GameTimeBucketResponse struct {
	Bucket  int64  `json:"bucket"`
	Display string `json:"display"`
}

func gameTimeHandler(w http.ResponseWriter, r *http.Request) {
	millis, err := int64Param(r, paramMillis)
	if err != nil {
		writeAppError(w, err)
		return
	}

	display, err := util.FormatGameTime(millis)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, GameTimeResponse{Millis: millis, Display: display})
}

func gameTimeBucketHandler(w http.ResponseWriter, r *http.Request) {
	bucket, err := int64Param(r, paramBucket)
	if err != nil {
		writeAppError(w, err)
		return
	}

	display, err := util.FormatGameTimeBucket(bucket)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, GameTimeBucketResponse{Bucket: bucket, Display: display})
}
