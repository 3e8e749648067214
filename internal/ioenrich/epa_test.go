package ioenrich

import (
	"testing"

	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fumblePlay(down, ydstogo, gained int) pbp.Play {
	return pbp.Play{
		Season:                   2020,
		HomeTeam:                 pbp.Str("NE"),
		Posteam:                  pbp.Str("NE"),
		Roof:                     pbp.Str("outdoors"),
		Down:                     pbp.Num(down),
		YdsToGo:                  pbp.Num(ydstogo),
		Yardline100:              pbp.Num(60),
		YardsGained:              pbp.Num(gained),
		HalfSecondsRemaining:     pbp.Flt(900),
		PosteamTimeoutsRemaining: pbp.Num(3),
		DefteamTimeoutsRemaining: pbp.Num(2),
		Ep:                       pbp.Flt(1.0),
		Epa:                      pbp.Flt(-4.5),
		CompletePass:             pbp.Num(1),
		FumbleLost:               pbp.Num(1),
	}
}

func TestRecalcQBEpaReconstruction(t *testing.T) {
	tests := []struct {
		msg              string
		down, togo, gain int
		wantDown         int
		wantTogo         int
		wantYardline     int
		wantFlip         bool
	}{
		{"gain converts", 1, 10, 12, 1, 10, 48, false},
		{"short of sticks", 1, 10, 3, 2, 7, 57, false},
		{"fourth down stop", 4, 5, 2, 1, 10, 42, true},
		{"goal line clamp", 1, 10, 51, 1, 9, 9, false},
	}

	for _, tt := range tests {
		var got pbp.EPState
		model := func(st pbp.EPState) float64 {
			got = st
			return 2.5
		}
		plays := []pbp.Play{fumblePlay(tt.down, tt.togo, tt.gain)}
		recalcQBEpa(plays, model)

		assert.Equal(t, tt.wantDown, got.Down, tt.msg)
		assert.Equal(t, tt.wantTogo, got.YdsToGo, tt.msg)
		assert.Equal(t, tt.wantYardline, got.Yardline100, tt.msg)
		assert.Equal(t, 894.0, got.HalfSecondsRemaining, tt.msg)

		want := 2.5 - 1.0
		if tt.wantFlip {
			want = -2.5 - 1.0
		}
		require.NotNil(t, plays[0].QBEpa, tt.msg)
		assert.InDelta(t, want, *plays[0].QBEpa, 1e-9, tt.msg)
	}
}

func TestRecalcQBEpaTimeoutSwapOnFlip(t *testing.T) {
	var got pbp.EPState
	model := func(st pbp.EPState) float64 {
		got = st
		return 0
	}
	plays := []pbp.Play{fumblePlay(4, 5, 2)}
	recalcQBEpa(plays, model)

	assert.Equal(t, 2, got.PosteamTimeoutsRemaining)
	assert.Equal(t, 3, got.DefteamTimeoutsRemaining)
}

func TestRecalcQBEpaClockClamp(t *testing.T) {
	var got pbp.EPState
	model := func(st pbp.EPState) float64 {
		got = st
		return 0
	}
	p := fumblePlay(1, 10, 3)
	p.HalfSecondsRemaining = pbp.Flt(4)
	plays := []pbp.Play{p}
	recalcQBEpa(plays, model)

	assert.Equal(t, 0.0, got.HalfSecondsRemaining)
}

func TestRecalcQBEpaNonQualifyingCopies(t *testing.T) {
	p := fumblePlay(1, 10, 3)
	p.FumbleLost = pbp.Num(0)
	plays := []pbp.Play{p}

	called := false
	recalcQBEpa(plays, func(pbp.EPState) float64 {
		called = true
		return 0
	})

	assert.False(t, called)
	assert.Equal(t, plays[0].Epa, plays[0].QBEpa)
}

func TestRecalcQBEpaNilModel(t *testing.T) {
	plays := []pbp.Play{fumblePlay(1, 10, 3)}
	recalcQBEpa(plays, nil)
	assert.Equal(t, plays[0].Epa, plays[0].QBEpa)
}
