package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/certfolio/certparse/internal/vocab"
)

// Checker holds the plausibility predicates the extractors gate their
// raw regex matches through. A failed check means "try the next
// pattern", never an error.
type Checker struct {
	vocab *vocab.Vocabulary
}

// New builds a Checker over the given vocabulary (defaults when nil).
func New(v *vocab.Vocabulary) *Checker {
	if v == nil {
		v = vocab.Default()
	}
	return &Checker{vocab: v}
}

// Title accepts course/program/credential names: 3-100 runes, at least
// half letters, and free of boilerplate phrases.
func (c *Checker) Title(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 3 || n > 100 {
		return false
	}
	if alphaRatio(s) < 0.5 {
		return false
	}
	return !c.vocab.MatchesBoilerplate(s)
}

// Institution accepts issuing-organization names: 5-100 runes, at least
// one institution keyword or known platform, no boilerplate.
func (c *Checker) Institution(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 5 || n > 100 {
		return false
	}
	if !c.vocab.HasInstitutionKeyword(s) {
		return false
	}
	return !c.vocab.MatchesBoilerplate(s)
}

var reNameToken = regexp.MustCompile(`^[A-Z][a-zA-Z]*$`)

// PersonName accepts 2-4 capitalized alphabetic tokens that do not read
// like a credential or an institution. "Certificate Completion Program"
// has the right shape but is a title, not a person.
func (c *Checker) PersonName(s string) bool {
	tokens := strings.Fields(strings.TrimSpace(s))
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, t := range tokens {
		if !reNameToken.MatchString(t) {
			return false
		}
	}
	if c.vocab.HasCredentialWord(s) || c.vocab.HasAchievementWord(s) {
		return false
	}
	return !c.vocab.HasInstitutionKeyword(s)
}

func alphaRatio(s string) float64 {
	var letters, total int
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
