package query

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/aoe-openings/openings-ui/internal/errors"
)

const (
	// EloStep is the granularity of elo bounds; min_elo and max_elo must be multiples of it.
	EloStep = 25
	// MaxElo is the largest accepted elo bound.
	MaxElo = 9000

	// AnyID in an id list means the filter is not applied.
	AnyID = -1
)

// Defaults supplies values that depend on deployment state.
type Defaults struct {
	// PatchID is used when include_patch_ids is absent (normally the newest patch).
	PatchID int
	// ExcludeMirrors is used when exclude_mirrors is absent.
	ExcludeMirrors bool
}

// Standard is the validated filter accepted by the stats endpoints.
type Standard struct {
	MinElo            int   `json:"min_elo"`
	MaxElo            int   `json:"max_elo"`
	ExcludeMirrors    bool  `json:"exclude_mirrors"`
	IncludeLadderIDs  []int `json:"include_ladder_ids"`
	IncludePatchIDs   []int `json:"include_patch_ids"`
	IncludeMapIDs     []int `json:"include_map_ids"`
	IncludeCivIDs     []int `json:"include_civ_ids"`
	ExcludeCivIDs     []int `json:"exclude_civ_ids"`
	ClampCivIDs       []int `json:"clamp_civ_ids"`
	IncludeOpeningIDs []int `json:"include_opening_ids"`
	IncludeTechIDs    []int `json:"include_tech_ids"`
	IncludePlayerIDs  []int `json:"include_player_ids"`
}

// ParseStandard reads the standard filter parameters from values, applying
// defaults for anything missing. Only the first element of a scalar is used.
func ParseStandard(values url.Values, d Defaults) (Standard, error) {
	var s Standard
	var err error

	if s.MinElo, err = scalarInt(values, "min_elo", 0); err != nil {
		return Standard{}, err
	}
	if s.MaxElo, err = scalarInt(values, "max_elo", MaxElo); err != nil {
		return Standard{}, err
	}
	s.ExcludeMirrors = strings.EqualFold(
		firstElem(get(values, "exclude_mirrors", strconv.FormatBool(d.ExcludeMirrors))), "true")

	lists := []struct {
		key string
		dst *[]int
		def int
	}{
		{"include_ladder_ids", &s.IncludeLadderIDs, AnyID},
		{"include_patch_ids", &s.IncludePatchIDs, d.PatchID},
		{"include_map_ids", &s.IncludeMapIDs, AnyID},
		{"include_civ_ids", &s.IncludeCivIDs, AnyID},
		{"exclude_civ_ids", &s.ExcludeCivIDs, AnyID},
		{"clamp_civ_ids", &s.ClampCivIDs, AnyID},
		{"include_opening_ids", &s.IncludeOpeningIDs, AnyID},
		{"include_tech_ids", &s.IncludeTechIDs, AnyID},
		{"include_player_ids", &s.IncludePlayerIDs, AnyID},
	}
	for _, l := range lists {
		ids, err := parseIntList(l.key, get(values, l.key, strconv.Itoa(l.def)))
		if err != nil {
			return Standard{}, err
		}
		*l.dst = ids
	}

	if err := validateElo("min_elo", s.MinElo); err != nil {
		return Standard{}, err
	}
	if err := validateElo("max_elo", s.MaxElo); err != nil {
		return Standard{}, err
	}
	return s, nil
}

// Params converts s back into a generic filter set.
func (s Standard) Params() Params {
	p := NewParams()
	p.Scalars["min_elo"] = strconv.Itoa(s.MinElo)
	p.Scalars["max_elo"] = strconv.Itoa(s.MaxElo)
	p.Scalars["exclude_mirrors"] = strconv.FormatBool(s.ExcludeMirrors)
	p.Lists["include_ladder_ids"] = s.IncludeLadderIDs
	p.Lists["include_patch_ids"] = s.IncludePatchIDs
	p.Lists["include_map_ids"] = s.IncludeMapIDs
	p.Lists["include_civ_ids"] = s.IncludeCivIDs
	p.Lists["exclude_civ_ids"] = s.ExcludeCivIDs
	p.Lists["clamp_civ_ids"] = s.ClampCivIDs
	p.Lists["include_opening_ids"] = s.IncludeOpeningIDs
	p.Lists["include_tech_ids"] = s.IncludeTechIDs
	p.Lists["include_player_ids"] = s.IncludePlayerIDs
	return p
}

// Query encodes s in canonical form.
func (s Standard) Query() string {
	return Encode(s.Params())
}

// get returns the last value of key, or def only when key is absent.
// A present but empty value is kept.
func get(values url.Values, key, def string) string {
	vals, ok := values[key]
	if !ok || len(vals) == 0 {
		return def
	}
	return vals[len(vals)-1]
}

func firstElem(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}

func scalarInt(values url.Values, key string, def int) (int, error) {
	n, err := strconv.Atoi(firstElem(get(values, key, strconv.Itoa(def))))
	if err != nil {
		return 0, apperrors.ValidationField(key, key+" must be an integer")
	}
	return n, nil
}

func validateElo(key string, elo int) error {
	if elo < 0 || elo > MaxElo || elo%EloStep != 0 {
		return apperrors.ValidationField(key, key+" must be a multiple of 25 between 0 and 9000")
	}
	return nil
}
