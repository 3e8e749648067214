package iofetch

import (
	"strconv"
	"strings"
)

// headerIndex builds a case-insensitive column lookup over a CSV
// header row. Missing columns report -1.
func headerIndex(hdr []string) func(name string) int {
	return func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
}

// field returns the trimmed value at index i, or "" when the record is
// short or the column is absent. "NA" is the missing-value marker in
// the upstream datasets.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	s := strings.TrimSpace(rec[i])
	if s == "NA" {
		return ""
	}
	return s
}

func strPtr(rec []string, i int) *string {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(rec []string, i int) *int {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	// Some numeric columns arrive as floats ("17.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func floatPtr(rec []string, i int) *float64 {
	s := field(rec, i)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
