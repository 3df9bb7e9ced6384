package confidence

import (
	"time"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/extract"
	"github.com/certfolio/certparse/internal/normalize"
	"github.com/certfolio/certparse/internal/validate"
	"github.com/certfolio/certparse/internal/vocab"
)

// Config carries the scoring calibration. Zero values take the
// defaults below; deployments retune against labeled data instead of
// editing code.
type Config struct {
	ReviewThreshold    float64       // default constants.ReviewThreshold
	TrustedIssuerBonus float64       // default 0.2
	DateBonus          float64       // default 0.1
	DatePenalty        float64       // default 0.1, subtracted
	RecipientBonus     float64       // default 0.1
	TitleBonus         float64       // default 0.1
	PastWindow         time.Duration // default 10 years
	FutureWindow       time.Duration // default 1 year
	Now                func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ReviewThreshold <= 0 {
		c.ReviewThreshold = constants.ReviewThreshold
	}
	if c.TrustedIssuerBonus <= 0 {
		c.TrustedIssuerBonus = 0.2
	}
	if c.DateBonus <= 0 {
		c.DateBonus = 0.1
	}
	if c.DatePenalty <= 0 {
		c.DatePenalty = 0.1
	}
	if c.RecipientBonus <= 0 {
		c.RecipientBonus = 0.1
	}
	if c.TitleBonus <= 0 {
		c.TitleBonus = 0.1
	}
	if c.PastWindow <= 0 {
		c.PastWindow = 10 * 365 * 24 * time.Hour
	}
	if c.FutureWindow <= 0 {
		c.FutureWindow = 365 * 24 * time.Hour
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Input is everything the scorer needs to assemble a result.
type Input struct {
	Fields             extract.Fields
	Method             constants.Method
	Source             constants.SourceKind
	RawText            string
	UpstreamConfidence float32
}

// Scorer computes the normalized confidence and review flag from the
// extraction method, field completeness, and per-field plausibility.
// It is deterministic and pure apart from the injected clock.
type Scorer struct {
	cfg     Config
	vocab   *vocab.Vocabulary
	checker *validate.Checker
}

// NewScorer builds a Scorer over the given vocabulary and calibration.
func NewScorer(cfg Config, v *vocab.Vocabulary) *Scorer {
	if v == nil {
		v = vocab.Default()
	}
	return &Scorer{cfg: cfg.withDefaults(), vocab: v, checker: validate.New(v)}
}

// Score produces the terminal ExtractionResult. The method base is
// scaled by completeness of the four required fields, so unintelligible
// input lands near zero instead of inheriting the method's full base;
// plausibility bonuses are then added and the sum clamped to [0,1].
func (s *Scorer) Score(in Input) extract.ExtractionResult {
	f := in.Fields
	conf := baseScore(in.Method, in.Source) * s.completeness(f)

	if f.Institution != "" && s.vocab.IsTrustedIssuer(f.Institution) {
		conf += s.cfg.TrustedIssuerBonus
	}
	if f.DateIssued != "" {
		if s.dateValid(f.DateIssued) {
			conf += s.cfg.DateBonus
		} else {
			conf -= s.cfg.DatePenalty
		}
	}
	if f.Recipient != "" && s.checker.PersonName(f.Recipient) {
		conf += s.cfg.RecipientBonus
	}
	if f.Title != "" && s.checker.Title(f.Title) {
		conf += s.cfg.TitleBonus
	}

	conf = clamp01(conf)
	return extract.ExtractionResult{
		Title:              f.Title,
		Institution:        f.Institution,
		Recipient:          f.Recipient,
		DateIssued:         f.DateIssued,
		Description:        f.Description,
		CertificateID:      f.CertificateID,
		RawText:            in.RawText,
		Confidence:         conf,
		RequiresReview:     conf < s.cfg.ReviewThreshold,
		ExtractionMethod:   in.Method,
		UpstreamConfidence: in.UpstreamConfidence,
		Source:             in.Source,
	}
}

// completeness is the fraction of the four required fields present.
func (s *Scorer) completeness(f extract.Fields) float64 {
	present := 0
	for _, v := range []string{f.Title, f.Institution, f.Recipient, f.DateIssued} {
		if v != "" {
			present++
		}
	}
	return float64(present) / 4
}

// dateValid requires canonical ISO form and a sane issue window: no
// more than PastWindow back, no more than FutureWindow ahead.
func (s *Scorer) dateValid(date string) bool {
	if normalize.Date(date) != date {
		return false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	now := s.cfg.Now()
	return !t.Before(now.Add(-s.cfg.PastWindow)) && !t.After(now.Add(s.cfg.FutureWindow))
}

// baseScore reflects how trustworthy the producing path is. The rule
// paths inherit the trust of the text source; a fallback means the
// preferred path already failed.
func baseScore(method constants.Method, source constants.SourceKind) float64 {
	switch method {
	case constants.MethodLLM:
		return 0.9
	case constants.MethodLLMFallback:
		return 0.5
	}
	switch source {
	case constants.SourcePDFText:
		return 0.9
	case constants.SourceLocalOCR:
		return 0.7
	default: // cloud OCR and unknown sources
		return 0.8
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
