// Package iocsv reads and writes play-by-play tables as CSV. Columns
// are located by header name on input, so extra columns and arbitrary
// column order are fine. Output uses a fixed column list with "NA" as
// the missing-value marker, matching the upstream datasets.
package iocsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gridstats/pbpkit/pkg/pbp"
)

// requiredColumns must be present in the input header.
var requiredColumns = []string{"game_id", "play_id", "season", "desc"}

// ReadPlays loads a play-by-play CSV file. Row order in the file is
// preserved in the returned slice.
func ReadPlays(path string) ([]pbp.Play, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	hdr, err := r.Read()
	if err != nil {
		return nil, ReadError(path, err)
	}
	col := headerIndex(hdr)
	var missing []string
	for _, c := range requiredColumns {
		if col(c) < 0 {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, HeaderError(path, missing)
	}

	var plays []pbp.Play
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		plays = append(plays, readPlay(rec, col))
	}
	return plays, nil
}

func readPlay(rec []string, col func(string) int) pbp.Play {
	num := func(name string) int {
		if p := intPtr(rec, col(name)); p != nil {
			return *p
		}
		return 0
	}
	str := func(name string) *string { return strPtr(rec, col(name)) }
	opt := func(name string) *int { return intPtr(rec, col(name)) }
	flt := func(name string) *float64 { return floatPtr(rec, col(name)) }

	return pbp.Play{
		GameID:    field(rec, col("game_id")),
		OldGameID: str("old_game_id"),
		PlayID:    num("play_id"),
		Season:    num("season"),
		Week:      opt("week"),
		Desc:      field(rec, col("desc")),
		PlayType:  str("play_type"),

		Posteam:             str("posteam"),
		Defteam:             str("defteam"),
		HomeTeam:            str("home_team"),
		AwayTeam:            str("away_team"),
		TimeoutTeam:         str("timeout_team"),
		TdTeam:              str("td_team"),
		ReturnTeam:          str("return_team"),
		PenaltyTeam:         str("penalty_team"),
		SideOfField:         str("side_of_field"),
		SoloTackle1Team:     str("solo_tackle_1_team"),
		SoloTackle2Team:     str("solo_tackle_2_team"),
		AssistTackle1Team:   str("assist_tackle_1_team"),
		AssistTackle2Team:   str("assist_tackle_2_team"),
		FumbleRecovery1Team: str("fumble_recovery_1_team"),
		FumbleRecovery2Team: str("fumble_recovery_2_team"),
		Yrdln:               str("yrdln"),
		EndYardLine:         str("end_yard_line"),
		DriveStartYardLine:  str("drive_start_yard_line"),
		DriveEndYardLine:    str("drive_end_yard_line"),

		Down:                     opt("down"),
		YdsToGo:                  opt("ydstogo"),
		Yardline100:              opt("yardline_100"),
		YardsGained:              opt("yards_gained"),
		HalfSecondsRemaining:     flt("half_seconds_remaining"),
		Roof:                     str("roof"),
		PosteamTimeoutsRemaining: opt("posteam_timeouts_remaining"),
		DefteamTimeoutsRemaining: opt("defteam_timeouts_remaining"),

		Ep:  flt("ep"),
		Epa: flt("epa"),

		CompletePass:     opt("complete_pass"),
		FumbleLost:       opt("fumble_lost"),
		FirstDownRush:    opt("first_down_rush"),
		FirstDownPass:    opt("first_down_pass"),
		FirstDownPenalty: opt("first_down_penalty"),

		PasserPlayerName:   str("passer_player_name"),
		PasserPlayerID:     str("passer_player_id"),
		RusherPlayerName:   str("rusher_player_name"),
		RusherPlayerID:     str("rusher_player_id"),
		ReceiverPlayerName: str("receiver_player_name"),
		ReceiverPlayerID:   str("receiver_player_id"),
	}
}

// outputColumns is the fixed output schema: identity and input columns
// first, derived columns after.
var outputColumns = []string{
	"game_id", "old_game_id", "play_id", "season", "week", "desc",
	"play_type",
	"posteam", "defteam", "home_team", "away_team",
	"timeout_team", "td_team", "return_team", "penalty_team",
	"side_of_field",
	"solo_tackle_1_team", "solo_tackle_2_team",
	"assist_tackle_1_team", "assist_tackle_2_team",
	"fumble_recovery_1_team", "fumble_recovery_2_team",
	"yrdln", "end_yard_line", "drive_start_yard_line",
	"drive_end_yard_line",
	"down", "ydstogo", "yardline_100", "yards_gained",
	"half_seconds_remaining", "roof",
	"posteam_timeouts_remaining", "defteam_timeouts_remaining",
	"ep", "epa",
	"complete_pass", "fumble_lost",
	"first_down_rush", "first_down_pass", "first_down_penalty",
	"passer_player_name", "passer_player_id",
	"rusher_player_name", "rusher_player_id",
	"receiver_player_name", "receiver_player_id",
	"passer", "passer_jersey_number", "passer_id",
	"rusher", "rusher_jersey_number", "rusher_id",
	"receiver", "receiver_jersey_number", "receiver_id",
	"name", "jersey_number", "id",
	"pass", "rush", "special", "aborted_play", "play", "first_down",
	"qb_epa",
	"gameday", "home_score", "away_score", "location", "result",
	"total", "spread_line", "total_line", "div_game", "surface",
	"temp", "wind", "home_coach", "away_coach", "stadium_id", "stadium",
}

// WritePlays writes the enriched table to path, creating or truncating
// the file. Rows are written in slice order.
func WritePlays(path string, plays []pbp.Play) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputColumns); err != nil {
		return WriteError(path, err)
	}
	for i := range plays {
		if err := w.Write(playRecord(&plays[i])); err != nil {
			return WriteError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func playRecord(p *pbp.Play) []string {
	return []string{
		p.GameID, ostr(p.OldGameID),
		strconv.Itoa(p.PlayID), strconv.Itoa(p.Season), oint(p.Week),
		p.Desc, ostr(p.PlayType),
		ostr(p.Posteam), ostr(p.Defteam),
		ostr(p.HomeTeam), ostr(p.AwayTeam),
		ostr(p.TimeoutTeam), ostr(p.TdTeam),
		ostr(p.ReturnTeam), ostr(p.PenaltyTeam),
		ostr(p.SideOfField),
		ostr(p.SoloTackle1Team), ostr(p.SoloTackle2Team),
		ostr(p.AssistTackle1Team), ostr(p.AssistTackle2Team),
		ostr(p.FumbleRecovery1Team), ostr(p.FumbleRecovery2Team),
		ostr(p.Yrdln), ostr(p.EndYardLine),
		ostr(p.DriveStartYardLine), ostr(p.DriveEndYardLine),
		oint(p.Down), oint(p.YdsToGo),
		oint(p.Yardline100), oint(p.YardsGained),
		oflt(p.HalfSecondsRemaining), ostr(p.Roof),
		oint(p.PosteamTimeoutsRemaining), oint(p.DefteamTimeoutsRemaining),
		oflt(p.Ep), oflt(p.Epa),
		oint(p.CompletePass), oint(p.FumbleLost),
		oint(p.FirstDownRush), oint(p.FirstDownPass),
		oint(p.FirstDownPenalty),
		ostr(p.PasserPlayerName), ostr(p.PasserPlayerID),
		ostr(p.RusherPlayerName), ostr(p.RusherPlayerID),
		ostr(p.ReceiverPlayerName), ostr(p.ReceiverPlayerID),
		ostr(p.Passer), oint(p.PasserJerseyNumber), ostr(p.PasserID),
		ostr(p.Rusher), oint(p.RusherJerseyNumber), ostr(p.RusherID),
		ostr(p.Receiver), oint(p.ReceiverJerseyNumber), ostr(p.ReceiverID),
		ostr(p.Name), oint(p.JerseyNumber), ostr(p.ID),
		strconv.Itoa(p.Pass), strconv.Itoa(p.Rush),
		strconv.Itoa(p.Special), strconv.Itoa(p.AbortedPlay),
		strconv.Itoa(p.PlayFlag), oint(p.FirstDown),
		oflt(p.QBEpa),
		ostr(p.Gameday), oint(p.HomeScore), oint(p.AwayScore),
		ostr(p.Location), oint(p.Result), oint(p.Total),
		oflt(p.SpreadLine), oflt(p.TotalLine), oint(p.DivGame),
		ostr(p.Surface), oint(p.Temp), oint(p.Wind),
		ostr(p.HomeCoach), ostr(p.AwayCoach),
		ostr(p.StadiumID), ostr(p.Stadium),
	}
}

func ostr(p *string) string {
	if p == nil {
		return "NA"
	}
	return *p
}

func oint(p *int) string {
	if p == nil {
		return "NA"
	}
	return strconv.Itoa(*p)
}

func oflt(p *float64) string {
	if p == nil {
		return "NA"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// headerIndex builds a case-insensitive column lookup over the header.
// Missing columns report -1.
func headerIndex(hdr []string) func(name string) int {
	return func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
}

// field returns the trimmed value at index i, or "" when the record is
// short or the column is absent. "NA" marks missing values upstream.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	s := strings.TrimSpace(rec[i])
	if s == "NA" {
		return ""
	}
	return s
}

func strPtr(rec []string, i int) *string {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(rec []string, i int) *int {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	// Numeric columns can arrive as floats ("17.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func floatPtr(rec []string, i int) *float64 {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
