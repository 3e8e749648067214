// Package schema provides the database model for stored enriched
// plays. The table mirrors the enriched CSV output so analysts can
// query plays with SQL instead of flat files.
package schema

// EnrichedPlay is one enriched play-by-play row. Nullable columns use
// pointer types; nil maps to SQL NULL.
type EnrichedPlay struct {
	// ID is a UUID v4 assigned at insert time.
	ID string `gorm:"type:uuid;primaryKey"`

	// GameID and PlayID identify the play within a season.
	GameID    string  `gorm:"type:varchar(50);not null;index:idx_enriched_plays_game"`
	OldGameID *string `gorm:"type:varchar(50)"`
	PlayID    int     `gorm:"not null"`
	Season    int     `gorm:"not null;index"`
	Week      *int

	Desc     string  `gorm:"type:text;not null"`
	PlayType *string `gorm:"type:varchar(30)"`

	Posteam  *string `gorm:"type:varchar(5);index"`
	Defteam  *string `gorm:"type:varchar(5)"`
	HomeTeam *string `gorm:"type:varchar(5)"`
	AwayTeam *string `gorm:"type:varchar(5)"`

	Down        *int
	YdsToGo     *int
	Yardline100 *int
	YardsGained *int

	Ep    *float64
	Epa   *float64
	QBEpa *float64

	Passer     *string `gorm:"type:varchar(100)"`
	PasserID   *string `gorm:"type:varchar(50)"`
	Rusher     *string `gorm:"type:varchar(100)"`
	RusherID   *string `gorm:"type:varchar(50)"`
	Receiver   *string `gorm:"type:varchar(100)"`
	ReceiverID *string `gorm:"type:varchar(50)"`

	// Name and PlayerID are the unified attribution columns.
	Name         *string `gorm:"type:varchar(100);index"`
	JerseyNumber *int
	PlayerID     *string `gorm:"type:varchar(50)"`

	Pass        int `gorm:"not null"`
	Rush        int `gorm:"not null"`
	Special     int `gorm:"not null"`
	AbortedPlay int `gorm:"not null"`
	PlayFlag    int `gorm:"not null"`
	FirstDown   *int

	Gameday   *string `gorm:"type:varchar(20)"`
	HomeScore *int
	AwayScore *int
	Roof      *string `gorm:"type:varchar(20)"`
	Surface   *string `gorm:"type:varchar(30)"`
	Stadium   *string `gorm:"type:varchar(100)"`
}

// TableName overrides the GORM default.
func (EnrichedPlay) TableName() string {
	return "enriched_plays"
}
