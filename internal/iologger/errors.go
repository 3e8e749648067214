package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// CreateLogFileError creates an error for a log file that could not be
// opened for writing.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot create log file

<em>File:</em> %s

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Use <em>--log-destination stderr</em> to bypass the file`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("create log file %s: %w", path, err),
	}
}
