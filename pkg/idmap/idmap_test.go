package idmap_test

import (
	"testing"

	"github.com/gridstats/pbpkit/pkg/idmap"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *idmap.Resolver {
	return idmap.New([]pbp.IDMapping{
		{GsisID: "00-0012345", NewID: "32013030-3132-3334-35ab"},
		{GsisID: "00-0054321", NewID: "32013030-3534-3332-31cd"},
		{GsisID: "", NewID: "ignored"},
	})
}

func TestResolve(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name     string
		input    *string
		expected *string
	}{
		{
			name:     "mapped identifier is replaced",
			input:    pbp.Str("00-0012345"),
			expected: pbp.Str("32013030-3132-3334-35ab"),
		},
		{
			name:     "unmapped identifier is unchanged",
			input:    pbp.Str("00-0099999"),
			expected: pbp.Str("00-0099999"),
		},
		{
			name:     "missing identifier stays missing",
			input:    nil,
			expected: nil,
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			res := r.Resolve(v.input)
			if v.expected == nil {
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Equal(t, *v.expected, *res)
		})
	}
}

func TestApplyPreservesOrderAndLength(t *testing.T) {
	r := testResolver()
	col := []*string{
		pbp.Str("00-0054321"),
		nil,
		pbp.Str("00-0099999"),
		pbp.Str("00-0012345"),
	}
	r.Apply(col)

	require.Len(t, col, 4)
	assert.Equal(t, "32013030-3534-3332-31cd", *col[0])
	assert.Nil(t, col[1])
	assert.Equal(t, "00-0099999", *col[2])
	assert.Equal(t, "32013030-3132-3334-35ab", *col[3])
}

func TestIdentity(t *testing.T) {
	r := idmap.Identity()
	assert.Equal(t, 0, r.Len())

	id := pbp.Str("00-0012345")
	res := r.Resolve(id)
	require.NotNil(t, res)
	assert.Equal(t, "00-0012345", *res)
}
