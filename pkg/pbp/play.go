// Package pbp provides the domain model for play-by-play enrichment:
// the play record, external collaborator contracts (expected-points
// model, reference-dataset sources), and the Enricher interface.
//
// This is a pure package - it contains no I/O. Implementations of the
// contracts live in internal/io* packages.
package pbp

// Play is one row of play-by-play data. Optional columns use pointer
// types; nil means the value is missing in the source data. Missing
// values propagate silently through every transform - they are never
// an error.
type Play struct {
	// Identity.
	GameID    string
	OldGameID *string
	PlayID    int
	Season    int
	Week      *int

	// Desc is the free-text play description - the input to the
	// description parser.
	Desc string

	PlayType *string

	// Team columns. Every one of these passes through the team-code
	// normalizer, including the yard-line strings which embed a team
	// code ("SD 49").
	Posteam             *string
	Defteam             *string
	HomeTeam            *string
	AwayTeam            *string
	TimeoutTeam         *string
	TdTeam              *string
	ReturnTeam          *string
	PenaltyTeam         *string
	SideOfField         *string
	SoloTackle1Team     *string
	SoloTackle2Team     *string
	AssistTackle1Team   *string
	AssistTackle2Team   *string
	FumbleRecovery1Team *string
	FumbleRecovery2Team *string
	Yrdln               *string
	EndYardLine         *string
	DriveStartYardLine  *string
	DriveEndYardLine    *string

	// Game state.
	Down                     *int
	YdsToGo                  *int
	Yardline100              *int
	YardsGained              *int
	HalfSecondsRemaining     *float64
	Roof                     *string
	PosteamTimeoutsRemaining *int
	DefteamTimeoutsRemaining *int

	// Expected points and efficiency.
	Ep  *float64
	Epa *float64

	// Indicator columns (0/1 in the source data).
	CompletePass     *int
	FumbleLost       *int
	FirstDownRush    *int
	FirstDownPass    *int
	FirstDownPenalty *int

	// Raw attribution captured at data-collection time. These are the
	// fallback for anomalous plays and the input to identity
	// stabilization.
	PasserPlayerName   *string
	PasserPlayerID     *string
	RusherPlayerName   *string
	RusherPlayerID     *string
	ReceiverPlayerName *string
	ReceiverPlayerID   *string

	// Derived attribution. At most one of Passer/Rusher is non-nil per
	// play; Receiver is non-nil only for pass attempts.
	Passer               *string
	PasserJerseyNumber   *int
	PasserID             *string
	Rusher               *string
	RusherJerseyNumber   *int
	RusherID             *string
	Receiver             *string
	ReceiverJerseyNumber *int
	ReceiverID           *string

	// Unified attribution: passer's value if present, else rusher's.
	Name         *string
	JerseyNumber *int
	ID           *string

	// Derived classification flags.
	Pass        int
	Rush        int
	Special     int
	AbortedPlay int
	PlayFlag    int
	FirstDown   *int

	// QBEpa is the fumble-adjusted efficiency value.
	QBEpa *float64

	// Game metadata, merged from the external metadata source.
	Gameday    *string
	HomeScore  *int
	AwayScore  *int
	Location   *string
	Result     *int
	Total      *int
	SpreadLine *float64
	TotalLine  *float64
	DivGame    *int
	Surface    *string
	Temp       *int
	Wind       *int
	HomeCoach  *string
	AwayCoach  *string
	StadiumID  *string
	Stadium    *string
}

// ClearDerived resets every derived column so a second enrichment run
// starts from the same state as the first.
func (p *Play) ClearDerived() {
	p.Passer, p.PasserJerseyNumber, p.PasserID = nil, nil, nil
	p.Rusher, p.RusherJerseyNumber, p.RusherID = nil, nil, nil
	p.Receiver, p.ReceiverJerseyNumber, p.ReceiverID = nil, nil, nil
	p.Name, p.JerseyNumber, p.ID = nil, nil, nil
	p.Pass, p.Rush, p.Special, p.AbortedPlay, p.PlayFlag = 0, 0, 0, 0, 0
	p.FirstDown = nil
	p.QBEpa = nil
}
