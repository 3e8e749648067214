package ioenrich

import (
	"context"
	"testing"

	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDs struct {
	res pbp.FetchResult[pbp.IDMapping]
}

func (f fakeIDs) FetchIDMap(context.Context) pbp.FetchResult[pbp.IDMapping] {
	return f.res
}

type fakeGames struct {
	res pbp.FetchResult[pbp.GameMeta]
}

func (f fakeGames) FetchGames(context.Context) pbp.FetchResult[pbp.GameMeta] {
	return f.res
}

func passPlay(gameID string, playID int, desc string) pbp.Play {
	return pbp.Play{
		GameID:   gameID,
		PlayID:   playID,
		Season:   2020,
		Desc:     desc,
		Posteam:  pbp.Str("NE"),
		PlayType: pbp.Str("pass"),
	}
}

func TestEnrichOrderPreserved(t *testing.T) {
	cfg := config.New()
	e := New(cfg, nil, nil, nil)

	plays := []pbp.Play{
		passPlay("g1", 3, "(14:02) 12-T.Brady pass short left to 87-R.Gronkowski for 8 yards."),
		passPlay("g1", 1, "(15:00) 12-T.Brady pass incomplete deep right."),
		passPlay("g1", 2, "(14:31) 28-J.White left end for 3 yards."),
	}

	res, err := e.Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, []int{3, 1, 2},
		[]int{res[0].PlayID, res[1].PlayID, res[2].PlayID})
	assert.Equal(t, "T.Brady", pbp.StrVal(res[0].Passer))
	assert.Equal(t, "R.Gronkowski", pbp.StrVal(res[0].Receiver))
	assert.Equal(t, "J.White", pbp.StrVal(res[2].Rusher))
}

func TestEnrichIdempotent(t *testing.T) {
	cfg := config.New()
	e := New(cfg, nil, nil, nil)
	ctx := context.Background()

	plays := []pbp.Play{
		passPlay("g1", 1, "(15:00) 12-T.Brady pass short left to 87-R.Gronkowski for 8 yards."),
	}

	once, err := e.Enrich(ctx, plays)
	require.NoError(t, err)
	twice, err := e.Enrich(ctx, once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestEnrichFaultReturnsInput(t *testing.T) {
	cfg := config.New()
	model := func(pbp.EPState) float64 { panic("model blew up") }
	e := New(cfg, nil, nil, model)

	p := passPlay("g1", 1, "(15:00) 12-T.Brady pass short left to 87-R.Gronkowski for 8 yards. FUMBLES.")
	p.CompletePass = pbp.Num(1)
	p.FumbleLost = pbp.Num(1)
	p.Epa = pbp.Flt(0.5)
	p.Down = pbp.Num(1)
	plays := []pbp.Play{p}

	res, err := e.Enrich(context.Background(), plays)
	require.Error(t, err)
	assert.Equal(t, plays, res)
	assert.Nil(t, res[0].Passer)
}

func TestEnrichResolvesIDs(t *testing.T) {
	cfg := config.New()
	ids := fakeIDs{res: pbp.Fetched([]pbp.IDMapping{
		{GsisID: "00-0019596", NewID: "32013030-2d30-3031-3935-39366b4d21e5"},
	})}
	e := New(cfg, ids, nil, nil)

	p := passPlay("g1", 1, "(15:00) 12-T.Brady pass incomplete.")
	p.PasserPlayerID = pbp.Str("00-0019596")

	res, err := e.Enrich(context.Background(), []pbp.Play{p})
	require.NoError(t, err)
	assert.Equal(t, "32013030-2d30-3031-3935-39366b4d21e5",
		pbp.StrVal(res[0].PasserID))
}

func TestEnrichDegradesOnUnavailableSources(t *testing.T) {
	cfg := config.New()
	ids := fakeIDs{res: pbp.Unavailable[pbp.IDMapping](assert.AnError)}
	games := fakeGames{res: pbp.Unavailable[pbp.GameMeta](assert.AnError)}
	e := New(cfg, ids, games, nil)

	p := passPlay("g1", 1, "(15:00) 12-T.Brady pass incomplete.")
	p.PasserPlayerID = pbp.Str("00-0019596")

	res, err := e.Enrich(context.Background(), []pbp.Play{p})
	require.NoError(t, err)
	assert.Equal(t, "00-0019596", pbp.StrVal(res[0].PasserID))
	assert.Nil(t, res[0].Gameday)
}

func TestEnrichJoinsMetadata(t *testing.T) {
	cfg := config.New()
	games := fakeGames{res: pbp.Fetched([]pbp.GameMeta{
		{
			GameID:    "2020_01_NE_BUF",
			OldGameID: "2020091300",
			Gameday:   pbp.Str("2020-09-13"),
			HomeScore: pbp.Num(17),
			AwayScore: pbp.Num(21),
		},
	})}
	e := New(cfg, nil, games, nil)

	res, err := e.Enrich(context.Background(), []pbp.Play{
		passPlay("2020_01_NE_BUF", 1, "(15:00) 12-T.Brady pass incomplete."),
	})
	require.NoError(t, err)
	assert.Equal(t, "2020-09-13", pbp.StrVal(res[0].Gameday))
	assert.Equal(t, 17, pbp.NumVal(res[0].HomeScore))
}
