package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// ConnectionError creates an error for a failed PostgreSQL connection.
func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := `Could not connect to PostgreSQL

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify the database exists:
     <em>psql -h %s -U %s -l</em>

  3. Review connection settings:
     Host: %s
     Port: %d
     Database: %s
     User: %s`

	vars := []any{
		host, port,
		host, user,
		host, port, database, user,
	}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError creates an error for operations attempted before
// Connect.
func NotConnectedError() error {
	msg := `Database is not connected

<em>How to fix:</em>
  This is a bug, the connection must be established before use.`

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("database not connected"),
	}
}

// TableExistsCheckError creates an error for a failed catalog query.
func TableExistsCheckError(tableName string, err error) error {
	msg := `Cannot check database table <em>%s</em>`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table check %s: %w", tableName, err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(tableName string, err error) error {
	msg := `Cannot drop database table <em>%s</em>`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("drop table %s: %w", tableName, err),
	}
}

// InsertError creates an error for a failed bulk insert.
func InsertError(tableName string, err error) error {
	msg := `Cannot insert enriched plays into <em>%s</em>

<em>How to fix:</em>
  1. Run <em>pbpkit create</em> to create the schema
  2. Check that the database user has INSERT privileges`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s: %w", tableName, err),
	}
}
