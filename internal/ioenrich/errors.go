package ioenrich

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gridstats/pbpkit/pkg/errcode"
)

// FaultError wraps a recovered panic from the enrichment pipeline. The
// caller gets the input rows back unmodified together with this error.
func FaultError(r any) error {
	msg := `Enrichment failed on an internal fault

<em>Fault:</em> %v

The input rows are returned unmodified. This is a bug in the
enrichment pipeline or malformed input data.

<em>How to fix:</em>
  1. Re-run with "--log-level debug" to locate the failing step
  2. Report the fault together with the input file`

	vars := []any{r}

	return &gn.Error{
		Code: errcode.EnrichFaultError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("enrich fault: %v", r),
	}
}
