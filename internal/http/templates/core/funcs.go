package core

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
	"github.com/aoe-openings/openings-ui/internal/query"
	"github.com/aoe-openings/openings-ui/internal/util"
)

// Funcs returns a template.FuncMap containing helpers shared by the opening stats templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatGameTime": formatGameTimeTemplate,
		"gameTimeBucket": gameTimeBucketTemplate,
		"defaultQuery":   query.DefaultQuery,
		"formatNumber":   formatNumberTemplate,
		"add":            func(a, b int) int { return a + b },
		"sub":            func(a, b int) int { return a - b },
		"truncateText":   TruncateText,
	}
}

// formatGameTimeTemplate accepts the numeric types templates commonly see
// (ints from Go models, float64 from decoded JSON).
func formatGameTimeTemplate(v any) (string, error) {
	millis, err := toInt64(v)
	if err != nil {
		return "", err
	}
	return util.FormatGameTime(millis)
}

func gameTimeBucketTemplate(v any) (string, error) {
	bucket, err := toInt64(v)
	if err != nil {
		return "", err
	}
	return util.FormatGameTimeBucket(bucket)
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint32:
		return int64(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, apperrors.Validationf("not a finite number: %v", x)
		}
		return int64(math.Floor(x)), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "parse %q", x)
		}
		return n, nil
	default:
		return 0, apperrors.Validationf("unsupported numeric type %T", v)
	}
}

// formatNumberTemplate formats integers with comma separators for thousands,
// used for match counts. Non-integers are printed as-is.
func formatNumberTemplate(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case int32:
		n = int64(x)
	default:
		return fmt.Sprint(v)
	}

	neg := n < 0
	var s string
	if neg {
		s = strconv.FormatUint(uint64(-n), 10)
	} else {
		s = strconv.FormatUint(uint64(n), 10)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	prefix := len(s) % 3
	if prefix == 0 {
		prefix = 3
	}
	b.WriteString(s[:prefix])
	for i := prefix; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateText truncates a string to a maximum number of runes (not bytes),
// ending with an ellipsis (…) when anything was cut. Tech and player names
// come from replay data and are not length limited.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-1]) + "…"
}
