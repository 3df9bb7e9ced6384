package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/certfolio/certparse/internal/normalize"
	"github.com/certfolio/certparse/internal/validate"
	"github.com/certfolio/certparse/internal/vocab"
)

// fieldPattern pairs a regex with a name that shows up in debug logs
// when the pattern wins.
type fieldPattern struct {
	name string
	re   *regexp.Regexp
}

// Ordered most-specific-first; the first match that survives the field
// validator wins.
var titlePatterns = []fieldPattern{
	{"certificate_of", regexp.MustCompile(`(?i)certificate\s+(?:of|in)\s+(?:completion\s+(?:of|in)\s+)?([A-Za-z0-9&+' -]{3,100}?)(?:\s+(?:issued|awarded|presented|granted|offered|from|by|at|to|on)\b|[\n\r.,]|$)`)},
	{"diploma_in", regexp.MustCompile(`(?i)diploma\s+(?:of|in)\s+([A-Za-z0-9&+' -]{3,100}?)(?:\s+(?:issued|awarded|presented|granted|offered|from|by|at|to|on)\b|[\n\r.,]|$)`)},
	{"completed_course", regexp.MustCompile(`(?i)successfully\s+completed\s+(?:the\s+)?(?:course|program|training|specialization)?\s*[:"']?\s*([A-Za-z0-9&+' -]{3,100}?)["']?(?:\s+(?:issued|awarded|offered|from|by|at|on)\b|[\n\r.]|$)`)},
	{"labeled_course", regexp.MustCompile(`(?i)\b(?:course|program|specialization|training)\s*[:\-]\s*([^\n\r]{3,100})`)},
	{"quoted", regexp.MustCompile(`"([^"\n\r]{3,100})"`)},
}

var institutionPatterns = []fieldPattern{
	{"issued_by", regexp.MustCompile(`(?i)(?:issued|offered|provided|granted|authorized)\s+(?:by|from|at)\s*[:\-]?\s*([A-Za-z0-9&.,' -]{2,100}?)(?:\s+(?:to|on|for|in)\b|[\n\r.]|$)`)},
	{"institution_suffix", regexp.MustCompile(`\b([A-Z][A-Za-z&.,' -]{2,80}?\s(?:University|College|Institute|Institution|School|Academy|Foundation|Corporation|Polytechnic))\b`)},
	{"institution_of", regexp.MustCompile(`\b((?:University|College|Institute|Academy)\s+of\s+[A-Z][A-Za-z' ]{2,60}?)(?:[\n\r.,]|$)`)},
}

var recipientPatterns = []fieldPattern{
	{"presented_to", regexp.MustCompile(`(?i:presented\s+(?:this\s+certificate\s+)?to|this\s+is\s+to\s+certify\s+that|is\s+hereby\s+granted\s+to|awarded\s+to|certif(?:y|ies)\s+that)[:\s]+([A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+){1,2})`)},
	{"generic_to", regexp.MustCompile(`\bto\s+([A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+){1,2})\b`)},
}

var idPatterns = []fieldPattern{
	{"labeled_certificate_id", regexp.MustCompile(`(?i)(?:certificate|credential|verification|serial)\s*(?:id|no|number|code)?\s*[:#.]?\s+([A-Za-z][A-Za-z0-9-]{4,40}\d[A-Za-z0-9-]*|\d[A-Za-z0-9-]{4,40})`)},
	{"labeled_id", regexp.MustCompile(`(?i)\b(?:id|no|number)\s*[:#.]\s*([A-Za-z0-9][A-Za-z0-9-]{3,40})`)},
	{"serial_shape", regexp.MustCompile(`\b([A-Z]{2,}[A-Z0-9]*-\d{3,})\b`)},
}

// dateCandidatePatterns pick substrings that look like dates; each
// candidate still has to clear normalize.Date.
var dateCandidatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{4}[/.]\d{1,2}[/.]\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{4}\b`),
	regexp.MustCompile(`(?i)\b[a-z]+\.?\s+\d{1,2}(?:st|nd|rd|th)?\s*,?\s*\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?[a-z]+\.?,?\s+\d{4}\b`),
}

// PatternExtractor is the default fast path: ordered regexes per field,
// every raw match gated through the field validator.
type PatternExtractor struct {
	checker    *validate.Checker
	vocab      *vocab.Vocabulary
	rePlatform *regexp.Regexp
	logger     *slog.Logger
}

// NewPatternExtractor builds the fast-path extractor over a vocabulary.
func NewPatternExtractor(v *vocab.Vocabulary, logger *slog.Logger) *PatternExtractor {
	if v == nil {
		v = vocab.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	quoted := make([]string, 0, len(v.PlatformNames))
	for _, p := range v.PlatformNames {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return &PatternExtractor{
		checker:    validate.New(v),
		vocab:      v,
		rePlatform: regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`),
		logger:     logger,
	}
}

// Extract runs the per-field pattern lists over the raw text. Fields
// with no surviving match stay empty; this never fails.
func (e *PatternExtractor) Extract(text string) Fields {
	var f Fields
	f.Title = e.firstValid(text, titlePatterns, e.checker.Title)
	f.Institution = e.extractInstitution(text)
	f.Recipient = e.firstValid(text, recipientPatterns, e.checker.PersonName)
	f.DateIssued = e.extractDate(text)
	f.CertificateID = e.extractCertificateID(text)
	f.Description = LongestLine(text, 20)
	return f
}

// firstValid returns the first cleaned capture that passes valid.
func (e *PatternExtractor) firstValid(text string, patterns []fieldPattern, valid func(string) bool) string {
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, 5) {
			candidate := normalize.Clean(m[1])
			if candidate == "" || !valid(candidate) {
				continue
			}
			e.logger.Debug("extract.pattern.hit", "pattern", p.name, "value", candidate)
			return candidate
		}
	}
	return ""
}

func (e *PatternExtractor) extractInstitution(text string) string {
	if v := e.firstValid(text, institutionPatterns, e.checker.Institution); v != "" {
		return v
	}
	// Fall back to a bare platform/company mention.
	if m := e.rePlatform.FindStringSubmatch(text); m != nil {
		candidate := normalize.Clean(m[1])
		if e.checker.Institution(candidate) {
			e.logger.Debug("extract.pattern.hit", "pattern", "platform_mention", "value", candidate)
			return candidate
		}
	}
	return ""
}

func (e *PatternExtractor) extractDate(text string) string {
	for _, re := range dateCandidatePatterns {
		for _, candidate := range re.FindAllString(text, 8) {
			if d := normalize.Date(candidate); d != "" {
				return d
			}
		}
	}
	return ""
}

func (e *PatternExtractor) extractCertificateID(text string) string {
	for _, p := range idPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			id := strings.TrimSpace(m[1])
			if id != "" {
				e.logger.Debug("extract.pattern.hit", "pattern", p.name, "value", id)
				return id
			}
		}
	}
	return ""
}

// LongestLine returns the longest whitespace-collapsed line longer than
// minLen runes. Certificate bodies put the achievement summary on one
// long line, which makes this a usable description fallback.
func LongestLine(text string, minLen int) string {
	var best string
	for _, line := range SplitLines(text) {
		collapsed := normalize.CollapseSpace(line)
		if len(collapsed) > minLen && len(collapsed) > len(best) {
			best = collapsed
		}
	}
	return best
}

// SplitLines splits raw text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
