package iodb

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/db"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/jackc/pgx/v5"
)

// playStore implements db.PlayStore with pgx CopyFrom bulk inserts.
type playStore struct {
	cfg *config.Config
	op  db.Operator
}

// NewPlayStore creates a PlayStore on top of a connected Operator.
func NewPlayStore(cfg *config.Config, op db.Operator) db.PlayStore {
	return &playStore{cfg: cfg, op: op}
}

var playColumns = []string{
	"id",
	"game_id", "old_game_id", "play_id", "season", "week",
	"desc", "play_type",
	"posteam", "defteam", "home_team", "away_team",
	"down", "yds_to_go", "yardline100", "yards_gained",
	"ep", "epa", "qb_epa",
	"passer", "passer_id", "rusher", "rusher_id",
	"receiver", "receiver_id",
	"name", "jersey_number", "player_id",
	"pass", "rush", "special", "aborted_play", "play_flag",
	"first_down",
	"gameday", "home_score", "away_score", "roof", "surface",
	"stadium",
}

// InsertPlays bulk-inserts enriched plays in batches. Each row gets a
// fresh UUID. Returns the number of rows written.
func (s *playStore) InsertPlays(
	ctx context.Context,
	plays []pbp.Play,
) (int, error) {
	pool := s.op.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}

	bar := pb.Full.Start(len(plays))
	bar.Set("prefix", "Storing plays: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	batchSize := s.cfg.Database.BatchSize
	total := 0
	for start := 0; start < len(plays); start += batchSize {
		end := min(start+batchSize, len(plays))

		rows := make([][]any, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, playRow(&plays[i]))
		}

		n, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{"enriched_plays"},
			playColumns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return total, InsertError("enriched_plays", err)
		}
		total += int(n)
		bar.Add(end - start)
	}

	return total, nil
}

func playRow(p *pbp.Play) []any {
	return []any{
		uuid.New().String(),
		p.GameID, p.OldGameID, p.PlayID, p.Season, p.Week,
		p.Desc, p.PlayType,
		p.Posteam, p.Defteam, p.HomeTeam, p.AwayTeam,
		p.Down, p.YdsToGo, p.Yardline100, p.YardsGained,
		p.Ep, p.Epa, p.QBEpa,
		p.Passer, p.PasserID, p.Rusher, p.RusherID,
		p.Receiver, p.ReceiverID,
		p.Name, p.JerseyNumber, p.ID,
		p.Pass, p.Rush, p.Special, p.AbortedPlay, p.PlayFlag,
		p.FirstDown,
		p.Gameday, p.HomeScore, p.AwayScore, p.Roof, p.Surface,
		p.Stadium,
	}
}
