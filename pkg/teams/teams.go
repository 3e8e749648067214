// Package teams normalizes historical and alternate NFL team
// abbreviations to their canonical current codes.
//
// This is a pure package - a fixed lookup table applied token-wise, so
// codes embedded inside yard-line strings ("SD 49") are covered too.
package teams

import (
	"strings"
)

// codeMap substitutes historical or alternate team codes with the
// canonical current abbreviation. Relocated franchises map to the code
// of the current city.
var codeMap = map[string]string{
	"JAC": "JAX",
	"STL": "LA",
	"SL":  "LA",
	"ARZ": "ARI",
	"BLT": "BAL",
	"CLV": "CLE",
	"HST": "HOU",
	"SD":  "LAC",
	"OAK": "LV",
}

// Normalize substitutes historical team codes in s with canonical
// codes. Substitution is token-wise on space boundaries, so both bare
// codes ("OAK") and embedded codes ("SD 49" in a yard-line string) are
// handled. Text without a matching code passes through unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	if repl, ok := codeMap[s]; ok {
		return repl
	}
	if !strings.Contains(s, " ") {
		return s
	}
	tokens := strings.Split(s, " ")
	changed := false
	for i, tok := range tokens {
		if repl, ok := codeMap[tok]; ok {
			tokens[i] = repl
			changed = true
		}
	}
	if !changed {
		return s
	}
	return strings.Join(tokens, " ")
}

// NormalizePtr applies Normalize to a nullable column value.
func NormalizePtr(p *string) *string {
	if p == nil {
		return nil
	}
	res := Normalize(*p)
	return &res
}
