package playdesc

// nameFixes holds literal substitutions for names that the source data
// records inconsistently. Two kinds of entries: full first names where
// the abbreviated form is canonical ("Alex Smith"), and same-surname
// players where only one can plausibly fill the role (as a passer,
// "Jos.Allen" is the quarterback recorded elsewhere as "J.Allen").
var nameFixes = map[string]string{
	"Jos.Allen":  "J.Allen",
	"Alex Smith": "A.Smith",
	"Ryan":       "M.Ryan",
	"Matt.Moore": "M.Moore",
	"Jos.Dobbs":  "J.Dobbs",
	"Sh.Hill":    "S.Hill",
	"G.Minshew":  "G.Minshew II",
}

// receiverFixes is the single correction applied to receiver names.
var receiverFixes = map[string]string{
	"D.Chark Jr.": "D.Chark",
}

// CorrectName canonicalizes a passer or rusher name. Beside the fixed
// table there is one season-conditional rule: through 2016 "R.Griffin"
// is Robert Griffin III; later seasons the plain form belongs to the
// tight end of the same surname.
func CorrectName(name string, season int) string {
	if name == "R.Griffin" && season <= 2016 {
		return "R.Griffin III"
	}
	if fix, ok := nameFixes[name]; ok {
		return fix
	}
	return name
}

// CorrectReceiver canonicalizes a receiver name.
func CorrectReceiver(name string) string {
	if fix, ok := receiverFixes[name]; ok {
		return fix
	}
	return name
}
