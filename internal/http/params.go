package httpx

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
)

// int64Param reads a required integer query parameter.
func int64Param(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, apperrors.ValidationField(name, name+" is required")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ValidationField(name, name+" must be an integer")
	}
	return n, nil
}
