package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reWhitespace         = regexp.MustCompile(`\s+`)
	reZeroBetweenLetters = regexp.MustCompile(`([A-Za-z])0([A-Za-z])`)
	reLowerLBeforeCap    = regexp.MustCompile(`\bl([A-Z])`)
)

// artifactCutset holds the list markers and stray punctuation OCR tends
// to leave at fragment edges.
const artifactCutset = " \t•·▪◦*-–—_|:;,."

// connectors stay lowercase inside a cleaned fragment unless they lead it.
var connectors = map[string]bool{
	"of": true, "in": true, "and": true, "the": true,
	"for": true, "at": true, "by": true,
}

// acronyms survive title-casing untouched.
var acronyms = map[string]bool{
	"IT": true, "AI": true, "ML": true, "UI": true, "UX": true,
}

// ocrWordFixes maps whole words the upstream OCR engines reliably
// misread. The rn->m confusion is corrected per word here; a blanket
// rn->m rewrite would corrupt legitimate words like Learning.
var ocrWordFixes = map[string]string{
	"prograrn":    "program",
	"prograrnme":  "programme",
	"cornpletion": "completion",
	"cornputer":   "computer",
	"cornpleted":  "completed",
	"inership":    "internship",
	"lnternship":  "internship",
	"diplorna":    "diploma",
}

// Clean collapses whitespace, strips edge artifacts, corrects the fixed
// OCR confusion table, and applies title-case with lowercase connectors.
// It is deterministic and idempotent; it carries no field knowledge.
func Clean(raw string) string {
	s := reWhitespace.ReplaceAllString(raw, " ")
	s = strings.Trim(s, artifactCutset)
	if s == "" {
		return ""
	}

	// Character-level confusions. The zero rule loops because matches
	// may overlap ("B00K" needs two passes).
	for {
		fixed := reZeroBetweenLetters.ReplaceAllString(s, "${1}O${2}")
		if fixed == s {
			break
		}
		s = fixed
	}
	s = reLowerLBeforeCap.ReplaceAllString(s, "I${1}")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = normalizeWord(w, i == 0)
	}
	return strings.Join(words, " ")
}

func normalizeWord(w string, leading bool) string {
	core := strings.TrimRight(w, ",.;:!?")
	suffix := w[len(core):]
	if core == "" {
		return w
	}

	if fix, ok := ocrWordFixes[strings.ToLower(core)]; ok {
		core = fix
	}
	if acronyms[core] {
		return core + suffix
	}

	lower := strings.ToLower(core)
	if !leading && connectors[lower] {
		return lower + suffix
	}
	return capitalize(lower) + suffix
}

// CollapseSpace collapses whitespace runs to single spaces and trims.
// Used where casing must be preserved (descriptions, identifiers).
func CollapseSpace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// capitalize upper-cases the first letter of an already-lowercased word.
func capitalize(s string) string {
	r := []rune(s)
	for i, c := range r {
		if unicode.IsLetter(c) {
			r[i] = unicode.ToUpper(c)
			break
		}
	}
	return string(r)
}
