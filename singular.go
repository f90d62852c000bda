package docshift

import "strings"

// Singularizer derives the element name used for sequence members nested
// under a container element. It receives the container element's name and
// returns the member name. Replace it via WithSingularizer when the default
// English heuristic does not fit.
type Singularizer func(parent string) string

// irregulars covers the common English plurals the suffix rules get wrong.
var irregulars = map[string]string{
	"children": "child",
	"people":   "person",
	"men":      "man",
	"women":    "woman",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
}

// SingularOrFallback is the default Singularizer. It returns the singular
// form of name when the heuristic finds a distinct one, and the literal
// fallback "item" otherwise. Rules, in order: irregular table lookup,
// "-ies" -> "-y", "-ches/-shes/-ses/-xes/-zes/-oes" -> strip "es", and a
// trailing "s" (but not "ss") stripped. A sequence under <books> therefore
// produces <book> members; one under <data> produces <item> members.
func SingularOrFallback(name string) string {
	lower := strings.ToLower(name)
	if s, ok := irregulars[lower]; ok {
		return s
	}
	switch {
	case len(name) > 3 && strings.HasSuffix(lower, "ies"):
		return name[:len(name)-3] + "y"
	case len(name) > 3 && hasESPlural(lower):
		return name[:len(name)-2]
	case len(name) > 1 && strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return name[:len(name)-1]
	}
	return "item"
}

func hasESPlural(lower string) bool {
	for _, suffix := range []string{"ches", "shes", "ses", "xes", "zes", "oes"} {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
