package ioenrich

import "github.com/gridstats/pbpkit/pkg/pbp"

// joinGameMeta merges per-game metadata into each play. Historical rows
// join on the current game identifier. Live rows were keyed by the old
// identifier scheme, so they join on the metadata's old identifier, the
// metadata's week wins over the play's own, and the identifier columns
// swap so GameID always carries the canonical value afterwards.
func joinGameMeta(plays []pbp.Play, meta []pbp.GameMeta, historical bool) {
	if historical {
		byID := make(map[string]*pbp.GameMeta, len(meta))
		for i := range meta {
			byID[meta[i].GameID] = &meta[i]
		}
		for i := range plays {
			if m, ok := byID[plays[i].GameID]; ok {
				applyMeta(&plays[i], m)
				plays[i].Gameday = m.Gameday
			}
		}
		return
	}

	byOldID := make(map[string]*pbp.GameMeta, len(meta))
	for i := range meta {
		byOldID[meta[i].OldGameID] = &meta[i]
	}
	for i := range plays {
		m, ok := byOldID[plays[i].GameID]
		if !ok {
			continue
		}
		applyMeta(&plays[i], m)
		plays[i].Week = m.Week
		old := plays[i].GameID
		plays[i].GameID = m.GameID
		plays[i].OldGameID = &old
	}
}

func applyMeta(p *pbp.Play, m *pbp.GameMeta) {
	p.HomeScore = m.HomeScore
	p.AwayScore = m.AwayScore
	p.Location = m.Location
	p.Result = m.Result
	p.Total = m.Total
	p.SpreadLine = m.SpreadLine
	p.TotalLine = m.TotalLine
	p.DivGame = m.DivGame
	p.Roof = m.Roof
	p.Surface = m.Surface
	p.Temp = m.Temp
	p.Wind = m.Wind
	p.HomeCoach = m.HomeCoach
	p.AwayCoach = m.AwayCoach
	p.StadiumID = m.StadiumID
	p.Stadium = m.Stadium
}
