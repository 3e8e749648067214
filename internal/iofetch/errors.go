package iofetch

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// DownloadError creates an error for a reference dataset that could
// not be downloaded and has no cached copy.
func DownloadError(url string, err error) error {
	msg := `Reference dataset is unavailable

<em>URL:</em> %s

<em>Possible causes:</em>
  - No network connectivity
  - The dataset moved or the mirror is down

<em>How to fix:</em>
  1. Check the URL in sources.yaml
  2. Retry when the network is available

Enrichment continues with identity behavior for this dataset.`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.FetchUnavailableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("download %s: %w", url, err),
	}
}

// DecodeError creates an error for a dataset that downloaded but could
// not be decoded as CSV.
func DecodeError(url string, err error) error {
	msg := `Reference dataset could not be decoded

<em>URL:</em> %s

<em>How to fix:</em>
  1. Verify the URL points to a CSV file
  2. Check sources.yaml for a stale mirror`

	vars := []any{url}

	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("decode %s: %w", url, err),
	}
}

// MissingColumnsError creates an error for a CSV lacking required
// columns.
func MissingColumnsError(cols []string) error {
	msg := `Reference dataset is missing required columns

<em>Required:</em> %s`

	vars := []any{strings.Join(cols, ", ")}

	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing columns: %s", strings.Join(cols, ", ")),
	}
}
