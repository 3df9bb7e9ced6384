package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/certfolio/certparse/internal/normalize"
	"github.com/certfolio/certparse/internal/validate"
	"github.com/certfolio/certparse/internal/vocab"
)

// letterheadLines is how many leading lines count as letterhead, where
// an institution mention is a strong signal.
const letterheadLines = 5

// letterheadMaxLen caps how long a letterhead line may be and still read
// as an institution name rather than running body text.
const letterheadMaxLen = 60

var (
	reStandaloneName = regexp.MustCompile(`^[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+){1,2}$`)
	reTitleCaseWord  = regexp.MustCompile(`\b[A-Z][a-z]+`)
)

// Strategy is one independent extraction pass over the raw text.
type Strategy struct {
	Name string
	Run  func(text string) Fields
}

// Orchestrator runs the four rule-based strategies over the same text
// and merges their partial field-sets through the Selector. A strategy
// that panics contributes nothing; its siblings are unaffected.
type Orchestrator struct {
	pattern   *PatternExtractor
	checker   *validate.Checker
	vocab     *vocab.Vocabulary
	selector  *Selector
	reTrigger *regexp.Regexp
	logger    *slog.Logger
}

// NewOrchestrator wires the strategies over one shared vocabulary.
func NewOrchestrator(v *vocab.Vocabulary, logger *slog.Logger) *Orchestrator {
	if v == nil {
		v = vocab.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	quoted := make([]string, 0, len(v.TitleTriggers))
	for _, t := range v.TitleTriggers {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	return &Orchestrator{
		pattern: NewPatternExtractor(v, logger),
		checker: validate.New(v),
		vocab:   v,
		// Whole-word triggers only: "course" must not fire inside "Coursera".
		reTrigger: regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`),
		selector:  NewSelector(v),
		logger:    logger,
	}
}

// Pattern exposes the fast path on its own for callers that skip the
// full orchestrator.
func (o *Orchestrator) Pattern() *PatternExtractor {
	return o.pattern
}

func (o *Orchestrator) strategies() []Strategy {
	return []Strategy{
		{Name: "pattern", Run: o.pattern.Extract},
		{Name: "context", Run: o.contextStrategy},
		{Name: "keyword", Run: o.keywordStrategy},
		{Name: "structure", Run: o.structureStrategy},
	}
}

// Extract runs every strategy and merges the surviving candidates.
// Strategy order only affects tie-breaks; the merge is otherwise
// commutative.
func (o *Orchestrator) Extract(text string) Fields {
	partials := make([]Fields, 0, 4)
	for _, s := range o.strategies() {
		p := o.runStrategy(s, text)
		if !p.IsZero() {
			partials = append(partials, p)
		}
	}
	return o.merge(partials)
}

// runStrategy converts a panic into an empty contribution.
func (o *Orchestrator) runStrategy(s Strategy, text string) (f Fields) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("extract.strategy.panic", "strategy", s.Name, "panic", r)
			f = Fields{}
		}
	}()
	return s.Run(text)
}

func (o *Orchestrator) merge(partials []Fields) Fields {
	var out Fields
	for _, name := range AllFieldNames {
		candidates := make([]string, 0, len(partials))
		for _, p := range partials {
			if v := p.Get(name); v != "" {
				candidates = append(candidates, v)
			}
		}
		out.Set(name, o.selector.SelectBest(name, candidates))
	}
	return out
}

// contextStrategy reads document position: institution keywords in the
// letterhead, and a standalone capitalized 2-3 token line as a
// recipient-name signal.
func (o *Orchestrator) contextStrategy(text string) Fields {
	var f Fields
	lines := SplitLines(text)

	for i, line := range lines {
		if i >= letterheadLines {
			break
		}
		if len(line) > letterheadMaxLen || !o.vocab.HasInstitutionKeyword(line) {
			continue
		}
		if c := normalize.Clean(line); o.checker.Institution(c) {
			f.Institution = c
			break
		}
	}

	for _, line := range lines {
		if !reStandaloneName.MatchString(line) {
			continue
		}
		if c := normalize.Clean(line); o.checker.PersonName(c) {
			f.Recipient = c
			break
		}
	}
	return f
}

// keywordStrategy takes the 10-80 characters after a trigger word as a
// title candidate.
func (o *Orchestrator) keywordStrategy(text string) Fields {
	var f Fields
	for _, loc := range o.reTrigger.FindAllStringIndex(text, 5) {
		tail := text[loc[1]:]
		if j := strings.IndexAny(tail, "\r\n."); j >= 0 {
			tail = tail[:j]
		}
		tail = strings.Trim(tail, " \t:-–\"'")
		if len(tail) > 80 {
			tail = truncateAtSpace(tail, 80)
		}
		if len(tail) < 10 {
			continue
		}
		if c := normalize.Clean(tail); o.checker.Title(c) {
			f.Title = c
			break
		}
	}
	return f
}

// structureStrategy treats a standalone title-cased line of plausible
// length as a possible title, skipping boilerplate and letterhead-like
// institution lines.
func (o *Orchestrator) structureStrategy(text string) Fields {
	var f Fields
	for _, line := range SplitLines(text) {
		if len(line) < 10 || len(line) > 80 {
			continue
		}
		if o.vocab.MatchesBoilerplate(line) || o.vocab.HasInstitutionKeyword(line) {
			continue
		}
		if len(reTitleCaseWord.FindAllString(line, 2)) < 2 {
			continue
		}
		if c := normalize.Clean(line); o.checker.Title(c) {
			f.Title = c
			break
		}
	}
	return f
}

func truncateAtSpace(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}
