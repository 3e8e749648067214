package pbp

import (
	"context"
)

// EPState is the hypothetical game state handed to the expected-points
// model. Field names follow the model's published contract.
type EPState struct {
	Season                   int
	HomeTeam                 string
	Posteam                  string
	Roof                     string
	HalfSecondsRemaining     float64
	Yardline100              int
	Down                     int
	YdsToGo                  int
	PosteamTimeoutsRemaining int
	DefteamTimeoutsRemaining int
}

// EPModel estimates expected points for a game state. It is an external
// collaborator: a pure function of state with no side effects.
type EPModel func(EPState) float64

// IDMapping is one row of the legacy-ID map: an old-era gsis_id and its
// canonical replacement.
type IDMapping struct {
	GsisID string
	NewID  string
}

// GameMeta is per-game metadata from the external metadata source.
type GameMeta struct {
	GameID     string
	OldGameID  string
	Week       *int
	Gameday    *string
	HomeScore  *int
	AwayScore  *int
	Location   *string
	Result     *int
	Total      *int
	SpreadLine *float64
	TotalLine  *float64
	DivGame    *int
	Roof       *string
	Surface    *string
	Temp       *int
	Wind       *int
	HomeCoach  *string
	AwayCoach  *string
	StadiumID  *string
	Stadium    *string
}

// FetchResult is the explicit outcome of a collaborator fetch: either
// success with data, or unavailable with the underlying cause. Callers
// inspect Available and degrade gracefully; unavailability never
// propagates as a hard failure.
type FetchResult[T any] struct {
	Data      []T
	Available bool
	Err       error
}

// Fetched wraps successfully retrieved data.
func Fetched[T any](data []T) FetchResult[T] {
	return FetchResult[T]{Data: data, Available: true}
}

// Unavailable marks a fetch that could not be completed.
func Unavailable[T any](err error) FetchResult[T] {
	return FetchResult[T]{Available: false, Err: err}
}

// IDMapSource supplies the legacy-ID map.
type IDMapSource interface {
	FetchIDMap(ctx context.Context) FetchResult[IDMapping]
}

// GameMetaSource supplies per-game metadata.
type GameMetaSource interface {
	FetchGames(ctx context.Context) FetchResult[GameMeta]
}

// Enricher runs the full attribution pipeline over a batch of plays.
// It returns the rows in their original order. An internal fault is
// recovered: the input rows come back unmodified together with the
// fault, so a wider batch job is never aborted by one bad file.
type Enricher interface {
	Enrich(ctx context.Context, plays []Play) ([]Play, error)
}
