package playdesc_test

import (
	"testing"

	"github.com/gridstats/pbpkit/pkg/playdesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses initial spacing",
			input:    "T. Brady pass incomplete",
			expected: "T.Brady pass incomplete",
		},
		{
			name:     "multiple initials",
			input:    "J. J. Watt sacks the quarterback",
			expected: "J.J.Watt sacks the quarterback",
		},
		{
			name:     "already collapsed",
			input:    "M.Lynch up the middle",
			expected: "M.Lynch up the middle",
		},
		{
			name:     "no initials",
			input:    "Timeout #1 by NE at 02:00.",
			expected: "Timeout #1 by NE at 02:00.",
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.expected, playdesc.Normalize(v.input))
		})
	}
}

func TestParsePassPlay(t *testing.T) {
	res := playdesc.Parse("12-T.Brady pass to 80-J.Smith for 12 yards")

	require.NotNil(t, res.Passer.Name)
	assert.Equal(t, "T.Brady", *res.Passer.Name)
	require.NotNil(t, res.Passer.Jersey)
	assert.Equal(t, 12, *res.Passer.Jersey)

	require.NotNil(t, res.Receiver.Name)
	assert.Equal(t, "J.Smith", *res.Receiver.Name)
	require.NotNil(t, res.Receiver.Jersey)
	assert.Equal(t, 80, *res.Receiver.Jersey)

	assert.Nil(t, res.Rusher.Name)
}

func TestParseRushPlay(t *testing.T) {
	res := playdesc.Parse("24-M.Lynch up the middle for 3 yards")

	require.NotNil(t, res.Rusher.Name)
	assert.Equal(t, "M.Lynch", *res.Rusher.Name)
	require.NotNil(t, res.Rusher.Jersey)
	assert.Equal(t, 24, *res.Rusher.Jersey)

	assert.Nil(t, res.Passer.Name)
	// "for 3 yards" must not yield a spurious receiver on a rush
	assert.Nil(t, res.Receiver.Name)
}

func TestParseAnchors(t *testing.T) {
	tests := []struct {
		name   string
		desc   string
		passer string
		rusher string
	}{
		{
			name:   "sack",
			desc:   "(2:05) 9-M.Stafford sacked at DET 20 for -8 yards",
			passer: "M.Stafford",
		},
		{
			name:   "scramble",
			desc:   "(10:15) 1-C.Newton scrambles right end to CAR 45",
			passer: "C.Newton",
		},
		{
			name:   "left tackle",
			desc:   "22-D.Henry left tackle for 5 yards",
			rusher: "D.Henry",
		},
		{
			name:   "right guard with clock",
			desc:   "(13:18) 26-S.Barkley right guard to NYG 30 for 4 yards",
			rusher: "S.Barkley",
		},
		{
			name:   "fumble marker",
			desc:   "28-A.Ekeler FUMBLES, recovered by LAC",
			rusher: "A.Ekeler",
		},
		{
			name:   "suffix survives",
			desc:   "15-G.Minshew II pass incomplete deep right",
			passer: "G.Minshew II",
		},
		{
			name:   "apostrophe surname",
			desc:   "D.O'Connell pass short left",
			passer: "D.O'Connell",
		},
		{
			name: "penalty only, nothing extracted",
			desc: "PENALTY on NE, Delay of Game, 5 yards, enforced at NE 25.",
		},
		{
			name: "timeout row",
			desc: "Timeout #2 by SEA at 05:40.",
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			res := playdesc.Parse(v.desc)
			if v.passer == "" {
				assert.Nil(t, res.Passer.Name)
			} else {
				require.NotNil(t, res.Passer.Name)
				assert.Equal(t, v.passer, *res.Passer.Name)
			}
			if v.rusher == "" {
				assert.Nil(t, res.Rusher.Name)
			} else {
				require.NotNil(t, res.Rusher.Name)
				assert.Equal(t, v.rusher, *res.Rusher.Name)
			}
		})
	}
}

func TestParsePasserNullsRusher(t *testing.T) {
	// Scramble that also matches a rush-direction phrase: the passer
	// wins and the rusher stays missing.
	res := playdesc.Parse("7-C.Kaepernick scrambles left end for 15 yards")

	require.NotNil(t, res.Passer.Name)
	assert.Equal(t, "C.Kaepernick", *res.Passer.Name)
	assert.Nil(t, res.Rusher.Name)
}

func TestParseReceiverRequiresPass(t *testing.T) {
	// "to" phrase in a non-pass context must not produce a receiver.
	res := playdesc.Parse("21-E.Elliott right end pushed ob at DAL 40 to 33-T.White")
	assert.Nil(t, res.Receiver.Name)

	res = playdesc.Parse("4-D.Prescott pass short middle to 88-C.Lamb")
	require.NotNil(t, res.Receiver.Name)
	assert.Equal(t, "C.Lamb", *res.Receiver.Name)
}

func TestIsAnomalous(t *testing.T) {
	tests := []struct {
		desc     string
		expected bool
	}{
		{"B.Hoyer pass to D.Amendola, lateral to J.Edelman", true},
		{"Direct snap to 82-C.Patterson", true},
		{"(Shotgun) Aborted. 12-A.Rodgers FUMBLES at GB 20", true},
		{"New quarterback for NO: 2-J.Winston", true},
		{"Flea-flicker, 9-M.Stafford pass deep left", true},
		{"T.Hill backwards pass to A.Kamara", true},
		{"8-L.Jackson pitches to 22-D.Dobbins", true},
		{"12-T.Brady pass to 80-J.Smith", false},
		{"24-M.Lynch up the middle for 3 yards", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.expected, playdesc.IsAnomalous(v.desc), v.desc)
	}
}

func TestCorrectName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		season   int
		expected string
	}{
		{"full first name", "Alex Smith", 2017, "A.Smith"},
		{"same surname passer", "Jos.Allen", 2019, "J.Allen"},
		{"bare surname", "Ryan", 2014, "M.Ryan"},
		{"suffix restored", "G.Minshew", 2020, "G.Minshew II"},
		{"season conditional before cutoff", "R.Griffin", 2014, "R.Griffin III"},
		{"season conditional after cutoff", "R.Griffin", 2019, "R.Griffin"},
		{"unlisted name unchanged", "P.Mahomes", 2022, "P.Mahomes"},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.expected, playdesc.CorrectName(v.input, v.season))
		})
	}
}

func TestCorrectReceiver(t *testing.T) {
	assert.Equal(t, "D.Chark", playdesc.CorrectReceiver("D.Chark Jr."))
	assert.Equal(t, "J.Jefferson", playdesc.CorrectReceiver("J.Jefferson"))
}
