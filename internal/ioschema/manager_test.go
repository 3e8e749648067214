package ioschema

import (
	"context"
	"testing"

	"github.com/gridstats/pbpkit/internal/iodb"
	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestCreateRequiresConnection(t *testing.T) {
	mgr := NewManager(iodb.NewPgxOperator())
	err := mgr.Create(context.Background(), config.New())
	assert.Error(t, err)
}

func TestMigrateRequiresConnection(t *testing.T) {
	mgr := NewManager(iodb.NewPgxOperator())
	err := mgr.Migrate(context.Background(), config.New())
	assert.Error(t, err)
}
