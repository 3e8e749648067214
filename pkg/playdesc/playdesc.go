// Package playdesc extracts player attribution from free-text play
// descriptions.
//
// This is a pure package - the core of the enrichment pipeline. A
// description like
//
//	"(14:32) 12-T.Brady pass short left to 87-R.Gronkowski for 9 yards"
//
// yields a passer and a receiver with their jersey numbers. Extraction
// is a small ordered set of composable matchers, each anchored on the
// phrase that follows or precedes a name token. A description that
// matches nothing yields empty extracts; that is expected and common
// (penalties, timeouts, administrative rows), never an error.
package playdesc

import (
	"regexp"
	"strconv"
	"strings"
)

// nameFrag matches one player name token: one or more capitalized
// letters, a period or space separator, a capitalized surname which may
// contain apostrophes and hyphens, and an optional generational suffix.
const nameFrag = `[A-Z][A-Za-z.]*(?:\.|\s)[A-Z][A-Za-z'-]+(?:\s(?:Jr\.|Sr\.|II|III|IV))?`

var (
	// Re-extraction anchors. RE2 has no lookarounds, so the anchor
	// phrase is matched literally and only the capture groups are used.
	rePasser = regexp.MustCompile(
		`(?:([0-9]{1,2})-)?(` + nameFrag + `)\s+(?:pass|sack|scramble)`)
	reRusher = regexp.MustCompile(
		`(?:([0-9]{1,2})-)?(` + nameFrag + `)\s+` +
			`(?:FUMBLES|left end|left tackle|left guard|up the middle|` +
			`right guard|right tackle|right end)`)
	reReceiver = regexp.MustCompile(
		`(?:to|for)\s(?:([0-9]{1,2})-)?(` + nameFrag + `)`)

	// Abbreviated first names sometimes carry a stray space between the
	// initial and the surname ("A. Smith"). Downstream patterns assume
	// none.
	reInitialSpace = regexp.MustCompile(`([A-Z]\.)\s+([A-Z])`)
)

// anomalyMarkers flag plays where pattern extraction is unreliable and
// the upstream raw name fields win instead.
var anomalyMarkers = []string{
	"Lateral",
	"lateral",
	"pitches to",
	"Direct snap to",
	"New quarterback for",
	"Aborted",
	"backwards pass",
	"Pass back to",
	"Flea-flicker",
}

// Extract is one role extraction: the player's short name and jersey
// number, either of which may be missing.
type Extract struct {
	Name   *string
	Jersey *int
}

// Result holds the role extractions for one play description.
type Result struct {
	Passer   Extract
	Rusher   Extract
	Receiver Extract
}

// Normalize collapses whitespace between an abbreviated first initial
// and the surname ("T. Brady" becomes "T.Brady"). Run before any
// extraction.
func Normalize(desc string) string {
	// Adjacent initials overlap ("J. J. Watt"), so substitute until the
	// string is stable.
	for {
		res := reInitialSpace.ReplaceAllString(desc, "${1}${2}")
		if res == desc {
			return res
		}
		desc = res
	}
}

// ExtractPasser returns the name token immediately preceding " pass",
// "sack" or "scramble".
func ExtractPasser(desc string) Extract {
	return extract(rePasser, desc)
}

// ExtractRusher returns the name token immediately preceding a fumble
// marker or one of the standard rush-direction phrases.
func ExtractRusher(desc string) Extract {
	return extract(reRusher, desc)
}

// ExtractReceiver returns the name token immediately following "to " or
// "for ", optionally preceded by a jersey number and a dash.
func ExtractReceiver(desc string) Extract {
	return extract(reReceiver, desc)
}

func extract(re *regexp.Regexp, desc string) Extract {
	m := re.FindStringSubmatch(desc)
	if m == nil {
		return Extract{}
	}
	var res Extract
	if m[2] != "" {
		name := m[2]
		res.Name = &name
	}
	if m[1] != "" {
		if n, err := strconv.Atoi(m[1]); err == nil {
			res.Jersey = &n
		}
	}
	return res
}

// IsAnomalous reports whether the description matches one of the fixed
// irregular-play patterns. For such plays the pattern-based extraction
// is discarded in favor of the upstream raw name fields.
func IsAnomalous(desc string) bool {
	for _, marker := range anomalyMarkers {
		if strings.Contains(desc, marker) {
			return true
		}
	}
	return false
}

// IsPass reports whether the description indicates a pass attempt.
func IsPass(desc string) bool {
	return strings.Contains(desc, " pass")
}

// PassFlag reports whether the play is a dropback: a pass attempt, a
// sack or a scramble.
func PassFlag(desc string) bool {
	return strings.Contains(desc, " pass") ||
		strings.Contains(desc, "sack") ||
		strings.Contains(desc, "scramble")
}

var rushDirections = []string{
	"left end", "left tackle", "left guard", "up the middle",
	"right guard", "right tackle", "right end",
}

// RushFlag reports whether the description carries one of the standard
// rush-direction phrases. Callers combine it with PassFlag so a
// scramble toward an end never counts as a rush.
func RushFlag(desc string) bool {
	for _, d := range rushDirections {
		if strings.Contains(desc, d) {
			return true
		}
	}
	return false
}

// IsAborted reports whether the snap was aborted.
func IsAborted(desc string) bool {
	return strings.Contains(desc, "Aborted")
}

// Parse normalizes desc, runs the three role extractions, and applies
// the precedence rules: a found passer nulls any rusher (a scramble is
// a pass play, not a run), and a receiver survives only when the
// description actually indicates a pass attempt.
func Parse(desc string) Result {
	desc = Normalize(desc)
	res := Result{
		Passer:   ExtractPasser(desc),
		Rusher:   ExtractRusher(desc),
		Receiver: ExtractReceiver(desc),
	}
	if res.Passer.Name != nil {
		res.Rusher = Extract{}
	}
	if !IsPass(desc) {
		res.Receiver = Extract{}
	}
	return res
}
