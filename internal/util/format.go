package util //nolint:revive // package name util hosts shared formatting helpers used across HTTP templates

import (
	"fmt"
	"math"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
)

const (
	millisPerSecond  = 1000
	millisPerMinute  = 60 * millisPerSecond
	secondsPerMinute = 60

	// TimeBucketDelta is the width, in milliseconds, of one game-time bucket
	// used when grouping tech timings.
	TimeBucketDelta int64 = 25000

	// MaxTimeBucket is the largest bucket whose end still fits in an int64.
	MaxTimeBucket = (math.MaxInt64 - TimeBucketDelta) / TimeBucketDelta
)

// ErrNegativeDuration is returned when a game time before the match start is formatted.
var ErrNegativeDuration = apperrors.ValidationField("millis", "game time must not be negative")

// FormatGameTime formats elapsed match milliseconds as "M:SS".
// Seconds are rounded to the nearest whole second with halves rounding up;
// a remainder that rounds to 60 carries into the minutes ("1:59.5" is "2:00").
// Minutes are never padded.
func FormatGameTime(millis int64) (string, error) {
	if millis < 0 {
		return "", ErrNegativeDuration
	}

	minutes := millis / millisPerMinute
	seconds := (millis%millisPerMinute + millisPerSecond/2) / millisPerSecond
	if seconds == secondsPerMinute {
		minutes++
		seconds = 0
	}

	return fmt.Sprintf("%d:%02d", minutes, seconds), nil
}

// FormatGameTimeBucket renders the game-time range covered by a bucket index,
// e.g. bucket 2 is "0:50-1:15".
func FormatGameTimeBucket(bucket int64) (string, error) {
	if bucket < 0 {
		return "", apperrors.ValidationField("bucket", "bucket must not be negative")
	}
	if bucket > MaxTimeBucket {
		return "", apperrors.ValidationField("bucket", "bucket is out of range")
	}

	start := bucket * TimeBucketDelta
	from, err := FormatGameTime(start)
	if err != nil {
		return "", err
	}
	to, err := FormatGameTime(start + TimeBucketDelta)
	if err != nil {
		return "", err
	}

	return from + "-" + to, nil
}
