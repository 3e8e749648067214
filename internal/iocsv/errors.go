package iocsv

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// ReadError creates an error for a play-by-play file that could not be
// opened or parsed.
func ReadError(path string, err error) error {
	msg := `Cannot read play-by-play file

<em>File:</em> %s

<em>How to fix:</em>
  1. Check that the file exists and is readable
  2. Check that the file is valid CSV`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CSVReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}

// HeaderError creates an error for an input file missing required
// columns.
func HeaderError(path string, missing []string) error {
	msg := `Play-by-play file is missing required columns

<em>File:</em> %s
<em>Missing:</em> %s

<em>How to fix:</em>
  1. Export the data with the full column set
  2. Check for a header row`

	vars := []any{path, strings.Join(missing, ", ")}

	return &gn.Error{
		Code: errcode.CSVHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s: missing columns: %s",
			path, strings.Join(missing, ", ")),
	}
}

// WriteError creates an error for an output file that could not be
// written.
func WriteError(path string, err error) error {
	msg := `Cannot write enriched play-by-play file

<em>File:</em> %s

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Check free disk space`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CSVWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write %s: %w", path, err),
	}
}
