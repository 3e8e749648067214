package pbp

// Pointer helpers for optional columns.

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Num returns a pointer to i.
func Num(i int) *int { return &i }

// Flt returns a pointer to f.
func Flt(f float64) *float64 { return &f }

// StrVal dereferences p, returning "" for nil.
func StrVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NumVal dereferences p, returning 0 for nil.
func NumVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// FltVal dereferences p, returning 0 for nil.
func FltVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
