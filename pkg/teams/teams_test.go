package teams_test

import (
	"testing"

	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/gridstats/pbpkit/pkg/teams"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare historical code", "OAK", "LV"},
		{"embedded in yard line", "SD 49", "LAC 49"},
		{"jacksonville variant", "JAC", "JAX"},
		{"st louis", "STL", "LA"},
		{"short st louis", "SL 20", "LA 20"},
		{"phoenix variant", "ARZ", "ARI"},
		{"baltimore variant", "BLT", "BAL"},
		{"cleveland variant", "CLV", "CLE"},
		{"houston variant", "HST", "HOU"},
		{"current code unchanged", "KC", "KC"},
		{"yard line with current code", "NE 35", "NE 35"},
		{"empty string", "", ""},
		{"midfield", "50", "50"},
		{"non-team text", "MIDFIELD 50", "MIDFIELD 50"},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.expected, teams.Normalize(v.input))
		})
	}
}

func TestNormalizePtr(t *testing.T) {
	assert.Nil(t, teams.NormalizePtr(nil))

	res := teams.NormalizePtr(pbp.Str("SD 49"))
	assert.Equal(t, "LAC 49", *res)

	// original value is not mutated
	orig := pbp.Str("OAK")
	teams.NormalizePtr(orig)
	assert.Equal(t, "OAK", *orig)
}
