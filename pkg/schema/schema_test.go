package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	assert.Equal(t, "enriched_plays", EnrichedPlay{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := AllModels()
	assert.Len(t, models, 1)
	assert.IsType(t, &EnrichedPlay{}, models[0])
}
