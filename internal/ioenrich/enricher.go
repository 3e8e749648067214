// Package ioenrich implements the Enricher interface: the attribution
// pipeline that turns raw play-by-play rows into analysis-ready ones.
// This is an impure package only at its edges - it fetches the two
// reference datasets - while every row transform is pure and
// order-preserving.
package ioenrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/idmap"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"golang.org/x/sync/errgroup"
)

// enricher implements the pbp.Enricher interface.
type enricher struct {
	cfg   *config.Config
	ids   pbp.IDMapSource
	games pbp.GameMetaSource
	model pbp.EPModel
}

// New creates an Enricher. Any collaborator may be nil: a nil ID-map
// source degrades to identity resolution, a nil metadata source skips
// the metadata join, a nil model leaves qb_epa a copy of epa.
func New(
	cfg *config.Config,
	ids pbp.IDMapSource,
	games pbp.GameMetaSource,
	model pbp.EPModel,
) pbp.Enricher {
	return &enricher{cfg: cfg, ids: ids, games: games, model: model}
}

// Enrich runs the full pipeline over plays and returns the rows in
// their original order. An unexpected fault is recovered: the original
// rows come back unmodified together with the fault, so a wider batch
// job is never aborted.
func (e *enricher) Enrich(
	ctx context.Context,
	plays []pbp.Play,
) (res []pbp.Play, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Enrichment fault, returning input unchanged",
				"panic", r)
			res = plays
			err = FaultError(r)
		}
	}()

	startTime := time.Now()
	slog.Info("Starting enrichment", "plays", len(plays))

	// Work on a copy so the fault path can hand back untouched input.
	work := make([]pbp.Play, len(plays))
	copy(work, plays)

	// A second run must not see the first run's derived columns.
	for i := range work {
		work[i].ClearDerived()
	}

	resolver, meta, metaOK := e.fetchCollaborators(ctx)

	gn.Info("(1/5) Parsing play descriptions...")
	parseRows(work)
	gn.Message("<em>Parsed %s descriptions</em>",
		humanize.Comma(int64(len(work))))

	gn.Info("(2/5) Normalizing team codes...")
	for i := range work {
		normalizeTeams(&work[i])
	}

	gn.Info("(3/5) Stabilizing player identities...")
	stabilizeAll(work)
	resolveIDs(work, resolver)

	gn.Info("(4/5) Recalculating fumble-adjusted efficiency...")
	recalcQBEpa(work, e.model)

	gn.Info("(5/5) Joining game metadata...")
	if metaOK {
		historical := true
		if e.cfg.Enrich.Historical != nil {
			historical = *e.cfg.Enrich.Historical
		}
		joinGameMeta(work, meta, historical)
	} else {
		gn.Warn("<em>Game metadata unavailable, rows left unchanged</em>")
	}

	slog.Info("Enrichment complete",
		"plays", len(work),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return work, nil
}

// fetchCollaborators retrieves the two reference datasets concurrently.
// Unavailability degrades: identity resolver, skipped metadata join.
func (e *enricher) fetchCollaborators(
	ctx context.Context,
) (*idmap.Resolver, []pbp.GameMeta, bool) {
	resolver := idmap.Identity()
	var meta []pbp.GameMeta
	metaOK := false

	var g errgroup.Group
	g.SetLimit(e.cfg.JobsNumber)

	if e.ids != nil {
		g.Go(func() error {
			res := e.ids.FetchIDMap(ctx)
			if !res.Available {
				gn.Warn("<em>Legacy-ID map unavailable, "+
					"identifiers pass through unchanged</em>")
				slog.Warn("Legacy-ID map unavailable", "error", res.Err)
				return nil
			}
			resolver = idmap.New(res.Data)
			return nil
		})
	}

	if e.games != nil {
		g.Go(func() error {
			res := e.games.FetchGames(ctx)
			if !res.Available {
				slog.Warn("Game metadata unavailable", "error", res.Err)
				return nil
			}
			meta = res.Data
			metaOK = true
			return nil
		})
	}

	// Goroutines never return errors; unavailability is a warning.
	_ = g.Wait()
	return resolver, meta, metaOK
}

// resolveIDs applies the legacy-ID resolver to every identifier-bearing
// column, derived and raw alike. Order and length are untouched.
func resolveIDs(plays []pbp.Play, r *idmap.Resolver) {
	for i := range plays {
		p := &plays[i]
		p.PasserID = r.Resolve(p.PasserID)
		p.RusherID = r.Resolve(p.RusherID)
		p.ReceiverID = r.Resolve(p.ReceiverID)
		p.ID = r.Resolve(p.ID)
		p.PasserPlayerID = r.Resolve(p.PasserPlayerID)
		p.RusherPlayerID = r.Resolve(p.RusherPlayerID)
		p.ReceiverPlayerID = r.Resolve(p.ReceiverPlayerID)
	}
}
