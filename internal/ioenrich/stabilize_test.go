package ioenrich

import (
	"testing"

	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/stretchr/testify/assert"
)

func rushRow(name, id string, jersey int) pbp.Play {
	return pbp.Play{
		Season:             2020,
		Posteam:            pbp.Str("SEA"),
		Rusher:             pbp.Str(name),
		RusherPlayerID:     pbp.Str(id),
		RusherJerseyNumber: pbp.Num(jersey),
	}
}

func TestStabilizeIDByNameGroup(t *testing.T) {
	// Two of three rows carry the right raw ID; the mode wins for all.
	plays := []pbp.Play{
		rushRow("M.Lynch", "00-0001", 24),
		rushRow("M.Lynch", "00-0001", 24),
		rushRow("M.Lynch", "00-9999", 24),
	}
	stabilizeAll(plays)

	for i := range plays {
		assert.Equal(t, "00-0001", pbp.StrVal(plays[i].RusherID), i)
		assert.Equal(t, 24, pbp.NumVal(plays[i].RusherJerseyNumber), i)
	}
}

func TestStabilizeNameByIDGroup(t *testing.T) {
	// Same player, two spellings. The rows share one resolved ID after
	// the first pass, so the majority spelling wins in the second.
	plays := []pbp.Play{
		rushRow("M.Lynch", "00-0001", 24),
		rushRow("M.Lynch", "00-0001", 24),
		rushRow("Ma.Lynch", "00-0001", 24),
	}
	stabilizeAll(plays)

	for i := range plays {
		assert.Equal(t, "M.Lynch", pbp.StrVal(plays[i].Rusher), i)
	}
}

func TestStabilizeGroupsAreTeamScoped(t *testing.T) {
	// Same surname on two teams stays two players.
	a := rushRow("J.Smith", "00-0001", 30)
	b := rushRow("J.Smith", "00-0002", 31)
	b.Posteam = pbp.Str("DAL")
	plays := []pbp.Play{a, b}
	stabilizeAll(plays)

	assert.Equal(t, "00-0001", pbp.StrVal(plays[0].RusherID))
	assert.Equal(t, "00-0002", pbp.StrVal(plays[1].RusherID))
}

func TestStabilizeMissingNameStaysMissing(t *testing.T) {
	plays := []pbp.Play{
		rushRow("M.Lynch", "00-0001", 24),
		{Season: 2020, Posteam: pbp.Str("SEA")},
	}
	stabilizeAll(plays)

	assert.Nil(t, plays[1].Rusher)
	assert.Nil(t, plays[1].RusherID)
	assert.Nil(t, plays[1].RusherJerseyNumber)
}

func TestUnifyPrefersPasser(t *testing.T) {
	p := pbp.Play{
		Passer:             pbp.Str("T.Brady"),
		PasserID:           pbp.Str("00-0019596"),
		PasserJerseyNumber: pbp.Num(12),
		Rusher:             pbp.Str("ignored"),
	}
	unify(&p)
	assert.Equal(t, "T.Brady", pbp.StrVal(p.Name))
	assert.Equal(t, 12, pbp.NumVal(p.JerseyNumber))
	assert.Equal(t, "00-0019596", pbp.StrVal(p.ID))

	r := pbp.Play{
		Rusher:             pbp.Str("M.Lynch"),
		RusherID:           pbp.Str("00-0001"),
		RusherJerseyNumber: pbp.Num(24),
	}
	unify(&r)
	assert.Equal(t, "M.Lynch", pbp.StrVal(r.Name))
	assert.Equal(t, 24, pbp.NumVal(r.JerseyNumber))
}
