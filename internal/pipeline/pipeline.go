package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/confidence"
	"github.com/certfolio/certparse/internal/extract"
	"github.com/certfolio/certparse/internal/llm"
	"github.com/certfolio/certparse/internal/normalize"
	"github.com/certfolio/certparse/internal/validate"
	"github.com/certfolio/certparse/internal/vocab"
)

// Config holds behavior flags for one Extractor.
type Config struct {
	// LLMTimeout bounds the single backend attempt; default 15s.
	LLMTimeout time.Duration
	// PatternOnly skips the multi-strategy orchestrator and runs just
	// the regex fast path.
	PatternOnly bool
	// Scoring overrides the confidence calibration when non-zero.
	Scoring confidence.Config
}

// Request carries one document into an extraction call.
type Request struct {
	RawText string
	// Source records how the text was recovered; it feeds the
	// confidence base.
	Source constants.SourceKind
	// UpstreamConfidence is the OCR engine's own confidence, carried
	// through for the caller but never gating extraction.
	UpstreamConfidence float32
}

// Extractor is the pipeline entry point. Each call is independent and
// stateless; the only suspension point is the optional backend call,
// which races a fixed deadline and falls back on any failure.
type Extractor struct {
	logger  *slog.Logger
	cfg     Config
	rules   *extract.Orchestrator
	checker *validate.Checker
	scorer  *confidence.Scorer
	backend llm.FieldExtractor // nil means rule-based only
}

// New wires an Extractor. A nil backend disables the LLM path entirely.
func New(logger *slog.Logger, cfg Config, v *vocab.Vocabulary, backend llm.FieldExtractor) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 15 * time.Second
	}
	if v == nil {
		v = vocab.Default()
	}
	return &Extractor{
		logger:  logger,
		cfg:     cfg,
		rules:   extract.NewOrchestrator(v, logger),
		checker: validate.New(v),
		scorer:  confidence.NewScorer(cfg.Scoring, v),
		backend: backend,
	}
}

// Extract always returns a result; "all fields empty, confidence near
// zero" is the degenerate-but-valid output for unintelligible input.
func (e *Extractor) Extract(ctx context.Context, req Request) extract.ExtractionResult {
	rid := uuid.New().String()
	start := time.Now()
	trimmed := strings.TrimSpace(req.RawText)
	if req.Source == "" {
		req.Source = constants.SourceUnknown
	}

	e.logger.Info("pipeline.extract.start",
		"req_id", rid,
		"text_len", len(trimmed),
		"source", string(req.Source),
		"llm_enabled", e.backend != nil,
		"upstream_confidence", req.UpstreamConfidence,
	)

	// Blank input or no configured backend: never attempt a network call.
	if e.backend == nil || trimmed == "" {
		res := e.score(e.runRules(trimmed), e.rulesMethod(), req)
		e.logResult(rid, start, res)
		return res
	}

	llmCtx, cancel := context.WithTimeout(ctx, e.cfg.LLMTimeout)
	defer cancel()

	fields, _, err := e.backend.ExtractFields(llmCtx, llm.ExtractRequest{RawText: trimmed})
	if err != nil {
		// Timeout, transport, non-2xx, and malformed replies are one
		// failure class: take the deterministic path.
		e.logger.Warn("pipeline.extract.llm_fallback", "req_id", rid, "error", err)
		res := e.score(e.runRules(trimmed), constants.MethodLLMFallback, req)
		e.logResult(rid, start, res)
		return res
	}

	res := e.score(e.vetBackendFields(rid, fields), constants.MethodLLM, req)
	e.logResult(rid, start, res)
	return res
}

func (e *Extractor) rulesMethod() constants.Method {
	if e.cfg.PatternOnly {
		return constants.MethodPattern
	}
	return constants.MethodMultiStrategy
}

func (e *Extractor) runRules(text string) extract.Fields {
	if text == "" {
		return extract.Fields{}
	}
	if e.cfg.PatternOnly {
		return e.rules.Pattern().Extract(text)
	}
	return e.rules.Extract(text)
}

func (e *Extractor) score(f extract.Fields, method constants.Method, req Request) extract.ExtractionResult {
	return e.scorer.Score(confidence.Input{
		Fields:             f,
		Method:             method,
		Source:             req.Source,
		RawText:            req.RawText,
		UpstreamConfidence: req.UpstreamConfidence,
	})
}

// vetBackendFields enforces the result invariants on a successful model
// reply: every populated field must still clear its validator, and the
// date must be canonical.
func (e *Extractor) vetBackendFields(rid string, in llm.CertificateFields) extract.Fields {
	var f extract.Fields

	if v := deref(in.Title); v != "" {
		if e.checker.Title(v) {
			f.Title = v
		} else {
			e.logger.Warn("pipeline.llm_field_rejected", "req_id", rid, "field", "title")
		}
	}
	if v := deref(in.Institution); v != "" {
		if e.checker.Institution(v) {
			f.Institution = v
		} else {
			e.logger.Warn("pipeline.llm_field_rejected", "req_id", rid, "field", "institution")
		}
	}
	if v := deref(in.Recipient); v != "" {
		if e.checker.PersonName(v) {
			f.Recipient = v
		} else {
			e.logger.Warn("pipeline.llm_field_rejected", "req_id", rid, "field", "recipient")
		}
	}
	if v := deref(in.DateIssued); v != "" {
		if d := normalize.Date(v); d != "" {
			f.DateIssued = d
		} else {
			e.logger.Warn("normalize.date.unparseable", "req_id", rid, "value", v)
		}
	}
	f.Description = normalize.CollapseSpace(deref(in.Description))
	f.CertificateID = normalize.CollapseSpace(deref(in.CertificateID))
	return f
}

func (e *Extractor) logResult(rid string, start time.Time, res extract.ExtractionResult) {
	e.logger.Info("pipeline.extract.ok",
		"req_id", rid,
		"method", string(res.ExtractionMethod),
		"confidence", res.Confidence,
		"requires_review", res.RequiresReview,
		"has_title", res.Title != "",
		"has_institution", res.Institution != "",
		"has_recipient", res.Recipient != "",
		"has_date", res.DateIssued != "",
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
