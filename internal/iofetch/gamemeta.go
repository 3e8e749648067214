package iofetch

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"

	"github.com/gridstats/pbpkit/pkg/pbp"
)

// FetchGames retrieves the per-game metadata table. An unavailable
// source yields an Unavailable result; the caller skips the metadata
// join and leaves the rows unchanged.
func (f *fetcher) FetchGames(ctx context.Context) pbp.FetchResult[pbp.GameMeta] {
	body, err := f.fetchFile(ctx, f.srcs.GamesURL, "games.csv")
	if err != nil {
		return pbp.Unavailable[pbp.GameMeta](err)
	}

	rows, err := parseGamesCSV(body)
	if err != nil {
		return pbp.Unavailable[pbp.GameMeta](
			DecodeError(f.srcs.GamesURL, err))
	}

	slog.Info("Fetched game metadata", "games", len(rows))
	return pbp.Fetched(rows)
}

func parseGamesCSV(body []byte) ([]pbp.GameMeta, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	hdr, err := r.Read()
	if err != nil {
		return nil, err
	}
	col := headerIndex(hdr)

	iGame := col("game_id")
	if iGame < 0 {
		return nil, MissingColumnsError([]string{"game_id"})
	}

	var (
		iOldGame = col("old_game_id")
		iWeek    = col("week")
		iGameday = col("gameday")
		iHome    = col("home_score")
		iAway    = col("away_score")
		iLoc     = col("location")
		iResult  = col("result")
		iTotal   = col("total")
		iSpread  = col("spread_line")
		iTotalLn = col("total_line")
		iDiv     = col("div_game")
		iRoof    = col("roof")
		iSurface = col("surface")
		iTemp    = col("temp")
		iWind    = col("wind")
		iHCoach  = col("home_coach")
		iACoach  = col("away_coach")
		iStadID  = col("stadium_id")
		iStad    = col("stadium")
	)

	var res []pbp.GameMeta
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		gameID := field(rec, iGame)
		if gameID == "" {
			continue
		}
		res = append(res, pbp.GameMeta{
			GameID:     gameID,
			OldGameID:  field(rec, iOldGame),
			Week:       intPtr(rec, iWeek),
			Gameday:    strPtr(rec, iGameday),
			HomeScore:  intPtr(rec, iHome),
			AwayScore:  intPtr(rec, iAway),
			Location:   strPtr(rec, iLoc),
			Result:     intPtr(rec, iResult),
			Total:      intPtr(rec, iTotal),
			SpreadLine: floatPtr(rec, iSpread),
			TotalLine:  floatPtr(rec, iTotalLn),
			DivGame:    intPtr(rec, iDiv),
			Roof:       strPtr(rec, iRoof),
			Surface:    strPtr(rec, iSurface),
			Temp:       intPtr(rec, iTemp),
			Wind:       intPtr(rec, iWind),
			HomeCoach:  strPtr(rec, iHCoach),
			AwayCoach:  strPtr(rec, iACoach),
			StadiumID:  strPtr(rec, iStadID),
			Stadium:    strPtr(rec, iStad),
		})
	}
	return res, nil
}
