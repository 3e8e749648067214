package ioenrich

import "github.com/gridstats/pbpkit/pkg/pbp"

// recalcQBEpa computes the quarterback efficiency column. Plays where a
// completed reception was followed by a lost fumble get the efficiency
// the offense would have earned had it kept the ball; every other play
// copies its existing value.
func recalcQBEpa(plays []pbp.Play, model pbp.EPModel) {
	for i := range plays {
		p := &plays[i]
		p.QBEpa = p.Epa
		if model == nil || !qualifies(p) {
			continue
		}
		st, flipped := reconstruct(p)
		ep := model(st)
		if flipped {
			ep = -ep
		}
		epa := ep - pbp.FltVal(p.Ep)
		p.QBEpa = &epa
	}
}

func qualifies(p *pbp.Play) bool {
	return pbp.NumVal(p.CompletePass) == 1 &&
		pbp.NumVal(p.FumbleLost) == 1 &&
		p.Epa != nil &&
		p.Down != nil
}

// reconstruct rebuilds the game state as if the fumble had not
// happened. Reports whether the reconstruction crosses a possession
// change, in which case the model output must be negated.
func reconstruct(p *pbp.Play) (pbp.EPState, bool) {
	secs := pbp.FltVal(p.HalfSecondsRemaining) - 6
	if secs < 0 {
		secs = 0
	}

	gained := pbp.NumVal(p.YardsGained)
	yardline := pbp.NumVal(p.Yardline100) - gained
	down := pbp.NumVal(p.Down)
	ydstogo := pbp.NumVal(p.YdsToGo)
	posTO := pbp.NumVal(p.PosteamTimeoutsRemaining)
	defTO := pbp.NumVal(p.DefteamTimeoutsRemaining)

	var flipped bool
	switch {
	case gained >= ydstogo:
		down = 1
		ydstogo = 10
	case down == 4:
		// Turnover on downs once the fumble is undone.
		flipped = true
		down = 1
		ydstogo = 10
		yardline = 100 - yardline
		posTO, defTO = defTO, posTO
	default:
		down++
		ydstogo -= gained
	}
	if ydstogo > yardline {
		ydstogo = yardline
	}

	return pbp.EPState{
		Season:                   p.Season,
		HomeTeam:                 pbp.StrVal(p.HomeTeam),
		Posteam:                  pbp.StrVal(p.Posteam),
		Roof:                     pbp.StrVal(p.Roof),
		HalfSecondsRemaining:     secs,
		Yardline100:              yardline,
		Down:                     down,
		YdsToGo:                  ydstogo,
		PosteamTimeoutsRemaining: posTO,
		DefteamTimeoutsRemaining: defTO,
	}, flipped
}
