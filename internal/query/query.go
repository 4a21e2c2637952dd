// Package query builds and parses the filter query strings the openings
// front-end sends to the stats API.
package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
)

// defaultQuery requests ranked 1v1 random map (ladder 3) on Arabia (map 9).
const defaultQuery = "?include_ladder_ids=3&include_map_ids=9&"

// DefaultQuery returns the query fragment appended to API requests when the
// user has not chosen any filters. It never varies.
func DefaultQuery() string {
	return defaultQuery
}

// scalarKeys hold a single value; every other key is a list of ints.
var scalarKeys = map[string]bool{
	"min_elo":                 true,
	"max_elo":                 true,
	"exclude_mirrors":         true,
	"exclude_civ_mirrors":     true,
	"exclude_opening_mirrors": true,
	"left_player_id":          true,
}

// IsScalarKey reports whether key carries a single value rather than an id list.
func IsScalarKey(key string) bool {
	return scalarKeys[key]
}

// Params is a decoded filter set.
type Params struct {
	Scalars map[string]string
	Lists   map[string][]int
}

// NewParams returns an empty, ready to fill Params.
func NewParams() Params {
	return Params{
		Scalars: make(map[string]string),
		Lists:   make(map[string][]int),
	}
}

// Encode renders p as "key=value&" pairs. Keys are ordered case-insensitively
// and list values are sorted ascending and comma joined, so equal filter sets
// always produce the same string (it is used as a cache key upstream).
func Encode(p Params) string {
	keys := make([]string, 0, len(p.Scalars)+len(p.Lists))
	for k := range p.Scalars {
		keys = append(keys, k)
	}
	for k := range p.Lists {
		if _, dup := p.Scalars[k]; !dup {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		if v, ok := p.Scalars[k]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(joinInts(p.Lists[k]))
		}
		b.WriteByte('&')
	}
	return b.String()
}

func joinInts(ids []int) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Decode parses a query string produced by Encode (or DefaultQuery).
// A leading '?' is ignored, blank values are dropped and the last occurrence
// of a repeated key wins.
func Decode(raw string) (Params, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Params{}, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "parse query")
	}

	p := NewParams()
	for key, vals := range values {
		v := lastNonEmpty(vals)
		if v == "" {
			continue
		}
		if IsScalarKey(key) {
			p.Scalars[key] = v
			continue
		}
		ids, err := parseIntList(key, v)
		if err != nil {
			return Params{}, err
		}
		p.Lists[key] = ids
	}
	return p, nil
}

func lastNonEmpty(vals []string) string {
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] != "" {
			return vals[i]
		}
	}
	return ""
}

func parseIntList(key, raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, apperrors.ValidationField(key, key+" must be a comma separated list of integers")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
