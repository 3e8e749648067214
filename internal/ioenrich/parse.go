package ioenrich

import (
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/gridstats/pbpkit/pkg/playdesc"
	"github.com/gridstats/pbpkit/pkg/teams"
)

// specialPlayTypes is the special-teams set for the special flag.
var specialPlayTypes = map[string]struct{}{
	"extra_point": {},
	"field_goal":  {},
	"kickoff":     {},
	"punt":        {},
}

// playPlayTypes is the play_type set that counts as a real play.
var playPlayTypes = map[string]struct{}{
	"no_play": {},
	"pass":    {},
	"run":     {},
}

// parseRows runs the description parser over every row and derives the
// classification flags. Rows are visited in order and never reordered.
func parseRows(plays []pbp.Play) {
	bar := pb.Full.Start(len(plays))
	bar.Set("prefix", "Parsing plays: ")
	bar.Set(pb.CleanOnFinish, true)

	for i := range plays {
		parseRow(&plays[i])
		bar.Increment()
	}
	bar.Finish()
}

func parseRow(p *pbp.Play) {
	res := playdesc.Parse(p.Desc)

	// Irregular plays (laterals, aborted snaps, trick formations) make
	// pattern extraction unreliable; the upstream raw name fields win
	// there even when the parsed value looks plausible.
	if playdesc.IsAnomalous(p.Desc) {
		res.Passer = playdesc.Extract{Name: p.PasserPlayerName}
		res.Rusher = playdesc.Extract{Name: p.RusherPlayerName}
		res.Receiver = playdesc.Extract{Name: p.ReceiverPlayerName}
	}

	// Layered fallback: a play with no extracted ball carrier still
	// gets one when the upstream source recorded a rusher.
	if res.Passer.Name == nil && res.Rusher.Name == nil &&
		p.RusherPlayerName != nil {
		res.Rusher = playdesc.Extract{Name: p.RusherPlayerName}
	}

	// Precedence: a scramble resolves to the passer, never a rusher;
	// a receiver needs an actual pass attempt in the description.
	if res.Passer.Name != nil {
		res.Rusher = playdesc.Extract{}
	}
	if !playdesc.IsPass(p.Desc) {
		res.Receiver = playdesc.Extract{}
	}

	if res.Passer.Name != nil {
		p.Passer = pbp.Str(playdesc.CorrectName(*res.Passer.Name, p.Season))
		p.PasserJerseyNumber = res.Passer.Jersey
	}
	if res.Rusher.Name != nil {
		p.Rusher = pbp.Str(playdesc.CorrectName(*res.Rusher.Name, p.Season))
		p.RusherJerseyNumber = res.Rusher.Jersey
	}
	if res.Receiver.Name != nil {
		p.Receiver = pbp.Str(playdesc.CorrectReceiver(*res.Receiver.Name))
		p.ReceiverJerseyNumber = res.Receiver.Jersey
	}

	deriveFlags(p)
}

func deriveFlags(p *pbp.Play) {
	if playdesc.PassFlag(p.Desc) {
		p.Pass = 1
	}
	if p.Pass == 0 && playdesc.RushFlag(p.Desc) {
		p.Rush = 1
	}
	if playdesc.IsAborted(p.Desc) {
		p.AbortedPlay = 1
	}

	if p.PlayType != nil {
		if _, ok := specialPlayTypes[*p.PlayType]; ok {
			p.Special = 1
		}
	}

	p.FirstDown = firstDown(p)

	if p.Epa != nil && p.Posteam != nil && !isAdministrative(p.Desc) &&
		p.PlayType != nil {
		if _, ok := playPlayTypes[*p.PlayType]; ok {
			p.PlayFlag = 1
		}
	}
}

// firstDown is the logical OR of the rush/pass/penalty first-down
// indicators; missing when all three are missing.
func firstDown(p *pbp.Play) *int {
	vals := []*int{p.FirstDownRush, p.FirstDownPass, p.FirstDownPenalty}
	res := (*int)(nil)
	for _, v := range vals {
		if v == nil {
			continue
		}
		if res == nil {
			res = pbp.Num(0)
		}
		if *v == 1 {
			res = pbp.Num(1)
		}
	}
	return res
}

// isAdministrative reports rows that only mark a review or timeout.
func isAdministrative(desc string) bool {
	return strings.Contains(desc, "play under review") ||
		strings.HasPrefix(desc, "Timeout ")
}

// normalizeTeams applies the team-code normalizer to every team-bearing
// column, including the yard-line strings.
func normalizeTeams(p *pbp.Play) {
	cols := []**string{
		&p.Posteam, &p.Defteam, &p.HomeTeam, &p.AwayTeam,
		&p.TimeoutTeam, &p.TdTeam, &p.ReturnTeam, &p.PenaltyTeam,
		&p.SideOfField,
		&p.SoloTackle1Team, &p.SoloTackle2Team,
		&p.AssistTackle1Team, &p.AssistTackle2Team,
		&p.FumbleRecovery1Team, &p.FumbleRecovery2Team,
		&p.Yrdln, &p.EndYardLine,
		&p.DriveStartYardLine, &p.DriveEndYardLine,
	}
	for _, c := range cols {
		*c = teams.NormalizePtr(*c)
	}
}
