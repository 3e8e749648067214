// Package idmap resolves old-era player identifiers (gsis_id) to their
// canonical new-era form using an externally supplied mapping table.
//
// This is a pure package; fetching the mapping table is the concern of
// internal/iofetch. An identifier without a mapping is already
// canonical and passes through unchanged.
package idmap

import (
	"github.com/gridstats/pbpkit/pkg/pbp"
)

// Resolver maps legacy identifiers to canonical ones.
type Resolver struct {
	mapping map[string]string
}

// New builds a Resolver from legacy-ID map rows.
func New(rows []pbp.IDMapping) *Resolver {
	mapping := make(map[string]string, len(rows))
	for _, r := range rows {
		if r.GsisID == "" || r.NewID == "" {
			continue
		}
		mapping[r.GsisID] = r.NewID
	}
	return &Resolver{mapping: mapping}
}

// Identity returns a Resolver with no mappings. It is the degraded mode
// used when the legacy-ID map source is unavailable: every identifier
// resolves to itself.
func Identity() *Resolver {
	return &Resolver{mapping: map[string]string{}}
}

// Resolve returns the canonical identifier for id. Missing input stays
// missing; an unmapped identifier is returned as is.
func (r *Resolver) Resolve(id *string) *string {
	if id == nil {
		return nil
	}
	if repl, ok := r.mapping[*id]; ok {
		return &repl
	}
	return id
}

// Apply resolves a whole identifier column in place, preserving order
// and length exactly: one output per input.
func (r *Resolver) Apply(ids []*string) {
	for i, id := range ids {
		ids[i] = r.Resolve(id)
	}
}

// Len reports how many mappings the resolver carries.
func (r *Resolver) Len() int {
	return len(r.mapping)
}
