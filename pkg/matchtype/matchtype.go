package matchtype

import "strings"

// Canonical match types. Older documents written by the first web client carry
// Norwegian tags, so both spellings must resolve to the same type.
const (
	League   = "league"
	Cup      = "cup"
	Friendly = "friendly"
)

var synonyms = map[string]string{
	"league":        League,
	"seriekamp":     League,
	"serie":         League,
	"cup":           Cup,
	"cupkamp":       Cup,
	"friendly":      Friendly,
	"treningskamp":  Friendly,
	"vennskapskamp": Friendly,
}

// Normalize maps a stored tag to its canonical type. The second return is
// false for tags that are not a known match type.
func Normalize(raw string) (string, bool) {
	canonical, ok := synonyms[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// Same reports whether two stored tags denote the same match type, across the
// english and legacy spellings.
func Same(a, b string) bool {
	ca, okA := Normalize(a)
	cb, okB := Normalize(b)
	if !okA || !okB {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return ca == cb
}
