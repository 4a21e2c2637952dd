package config

import "github.com/aoe-openings/openings-ui/internal/query"

// QueryConfig holds defaults applied when parsing filter query strings.
type QueryConfig struct {
	// DefaultPatchID is used when a request omits include_patch_ids.
	// -1 means any patch.
	DefaultPatchID int `env:"DEFAULT_PATCH_ID" envDefault:"-1"`

	// DefaultExcludeMirrors is used when a request omits exclude_mirrors.
	DefaultExcludeMirrors bool `env:"DEFAULT_EXCLUDE_MIRRORS" envDefault:"true"`
}

// Sanitize normalises out-of-range ids to "any".
func (q *QueryConfig) Sanitize() {
	if q.DefaultPatchID < query.AnyID {
		q.DefaultPatchID = query.AnyID
	}
}

// Defaults converts the config into query parsing defaults.
func (q *QueryConfig) Defaults() query.Defaults {
	return query.Defaults{
		PatchID:        q.DefaultPatchID,
		ExcludeMirrors: q.DefaultExcludeMirrors,
	}
}
