package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// NotConnectedError creates an error for schema operations attempted
// before the database connection is established.
func NotConnectedError() error {
	msg := `Database is not connected

<em>How to fix:</em>
  This is a bug, the connection must be established before
  schema management.`

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("database not connected"),
	}
}

// GORMConnectionError creates an error for a failed GORM session on
// top of an existing pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open GORM session for schema management`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

// SchemaCreateError creates an error for a failed AutoMigrate run.
func SchemaCreateError(err error) error {
	msg := `Cannot create or update the database schema

<em>How to fix:</em>
  1. Check that the database user can create tables
  2. Check the logs for the failing DDL statement`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}
