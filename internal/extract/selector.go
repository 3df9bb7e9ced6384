package extract

import (
	"regexp"
	"unicode/utf8"

	"github.com/certfolio/certparse/internal/vocab"
)

var (
	reStrictName  = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?$`)
	reISOShape    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reFourDigitYr = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	reNumericDate = regexp.MustCompile(`\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`)
)

// Selector merges per-field candidates from independent strategies into
// one value using additive heuristic scores. The weights are a starting
// calibration, not ground truth.
type Selector struct {
	vocab *vocab.Vocabulary
}

// NewSelector builds a Selector over the given vocabulary.
func NewSelector(v *vocab.Vocabulary) *Selector {
	if v == nil {
		v = vocab.Default()
	}
	return &Selector{vocab: v}
}

// SelectBest picks the highest-scoring candidate for a field. Zero
// candidates yield ""; a single candidate is returned verbatim; ties
// break in first-seen order.
func (s *Selector) SelectBest(field FieldName, candidates []string) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0]
	}
	best := candidates[0]
	bestScore := s.Score(field, best)
	for _, c := range candidates[1:] {
		if sc := s.Score(field, c); sc > bestScore {
			best, bestScore = c, sc
		}
	}
	return best
}

// Score rates one candidate value for one field. Base rewards moderate
// length; the rest are field-specific adjustments.
func (s *Selector) Score(field FieldName, value string) float64 {
	n := utf8.RuneCountInString(value)
	score := float64(n) / 10
	if score > 5 {
		score = 5
	}

	switch field {
	case FieldTitle:
		if s.vocab.HasCredentialWord(value) {
			score += 3
		}
		if s.vocab.HasDegreeWord(value) {
			score += 2
		}
		if s.vocab.HasAchievementWord(value) {
			score += 1
		}
		if n > 50 {
			score -= 2
		}
		if n < 5 {
			score -= 3
		}
	case FieldInstitution:
		if s.vocab.HasInstitutionKeyword(value) {
			score += 3
		}
		if s.vocab.IsPlatform(value) {
			score += 2
		}
		if s.vocab.MatchesBoilerplate(value) {
			// Strong rejection: boilerplate loses even with other signals.
			score -= 5
		}
	case FieldRecipient:
		if reStrictName.MatchString(value) {
			score += 3
		}
		if s.vocab.HasCredentialWord(value) {
			// Probably a title, not a person.
			score -= 5
		}
		if wordCount(value) > 4 {
			score -= 2
		}
	case FieldDateIssued:
		if reISOShape.MatchString(value) {
			score += 5
		}
		if reFourDigitYr.MatchString(value) {
			score += 2
		}
		if reNumericDate.MatchString(value) {
			score += 3
		}
	}
	return score
}

func wordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t':
			inWord = false
		case !inWord:
			count++
			inWord = true
		}
	}
	return count
}
