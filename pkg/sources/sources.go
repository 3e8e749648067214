// Package sources provides configuration for the external reference
// datasets pbpkit consumes: the legacy-ID map and the per-game metadata
// table.
//
// This package defines the schema for sources.yaml, which users may
// edit to point at mirrors or local copies. Fetching is the concern of
// internal/iofetch.
package sources

// Sources loads the sources.yaml configuration.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// IDMapURL locates the legacy-ID map: a CSV with gsis_id and
	// new_id columns.
	IDMapURL string `yaml:"id_map_url"`

	// GamesURL locates the per-game metadata table: a CSV keyed by
	// game_id carrying scores, venue, lines and coach fields.
	GamesURL string `yaml:"games_url"`
}

// Default returns the canonical locations of the reference datasets.
func Default() *SourcesConfig {
	return &SourcesConfig{
		IDMapURL: "https://raw.githubusercontent.com/nflverse/nflfastR-data/" +
			"master/roster-data/legacy_id_map.csv",
		GamesURL: "https://raw.githubusercontent.com/nflverse/nfldata/" +
			"master/data/games.csv",
	}
}
