package confidence

import (
	"testing"
	"time"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/extract"
)

func fixedNow() time.Time {
	return time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
}

func newTestScorer() *Scorer {
	return NewScorer(Config{Now: fixedNow}, nil)
}

func fullFields() extract.Fields {
	return extract.Fields{
		Title:       "Data Science Specialization",
		Institution: "Coursera",
		Recipient:   "John Smith",
		DateIssued:  "2023-06-19",
	}
}

func TestScoreEmptyInput(t *testing.T) {
	s := newTestScorer()
	res := s.Score(Input{Method: constants.MethodMultiStrategy, Source: constants.SourceUnknown})
	if res.Confidence > 0.05 {
		t.Errorf("empty input confidence = %f, want near zero", res.Confidence)
	}
	if !res.RequiresReview {
		t.Error("empty input must require review")
	}
}

func TestScoreCompleteTrustedExtraction(t *testing.T) {
	s := newTestScorer()
	res := s.Score(Input{Fields: fullFields(), Method: constants.MethodLLM, Source: constants.SourcePDFText})
	if res.Confidence < 0.9 {
		t.Errorf("confidence = %f, want >= 0.9", res.Confidence)
	}
	if res.RequiresReview {
		t.Error("complete trusted extraction must not require review")
	}
}

func TestScoreFallbackPartialNeedsReview(t *testing.T) {
	s := newTestScorer()
	f := extract.Fields{Title: "Data Science Specialization", Institution: "Rural Polytechnic Institute"}
	res := s.Score(Input{Fields: f, Method: constants.MethodLLMFallback, Source: constants.SourceLocalOCR})
	if !res.RequiresReview {
		t.Errorf("fallback with half the fields should need review, confidence = %f", res.Confidence)
	}
}

func TestScoreImplausibleDatePenalized(t *testing.T) {
	s := newTestScorer()
	valid := fullFields()
	valid.Institution = "Rural Polytechnic Institute" // not on the trusted list
	stale := valid
	stale.DateIssued = "1999-01-01" // far outside the issue window

	okScore := s.Score(Input{Fields: valid, Method: constants.MethodLLMFallback, Source: constants.SourceLocalOCR})
	staleScore := s.Score(Input{Fields: stale, Method: constants.MethodLLMFallback, Source: constants.SourceLocalOCR})
	if staleScore.Confidence >= okScore.Confidence {
		t.Errorf("stale date %f should score below valid date %f", staleScore.Confidence, okScore.Confidence)
	}
}

func TestScoreBounds(t *testing.T) {
	s := newTestScorer()
	inputs := []Input{
		{},
		{Fields: fullFields(), Method: constants.MethodLLM, Source: constants.SourcePDFText},
		{Fields: fullFields(), Method: constants.MethodLLMFallback, Source: constants.SourceLocalOCR},
		{Fields: extract.Fields{Recipient: "John Smith"}, Method: constants.MethodPattern, Source: constants.SourceCloudOCR},
		{Fields: extract.Fields{DateIssued: "not-a-date"}, Method: constants.MethodPattern, Source: constants.SourceUnknown},
	}
	for i, in := range inputs {
		res := s.Score(in)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("input %d: confidence %f out of [0,1]", i, res.Confidence)
		}
		if res.RequiresReview != (res.Confidence < constants.ReviewThreshold) {
			t.Errorf("input %d: review flag %v inconsistent with confidence %f", i, res.RequiresReview, res.Confidence)
		}
	}
}

func TestScoreCarriesInputsThrough(t *testing.T) {
	s := newTestScorer()
	res := s.Score(Input{
		Fields:             fullFields(),
		Method:             constants.MethodLLM,
		Source:             constants.SourceCloudOCR,
		RawText:            "raw",
		UpstreamConfidence: 0.42,
	})
	if res.ExtractionMethod != constants.MethodLLM {
		t.Errorf("ExtractionMethod = %q", res.ExtractionMethod)
	}
	if res.Source != constants.SourceCloudOCR {
		t.Errorf("Source = %q", res.Source)
	}
	if res.RawText != "raw" {
		t.Errorf("RawText = %q", res.RawText)
	}
	if res.UpstreamConfidence != 0.42 {
		t.Errorf("UpstreamConfidence = %f", res.UpstreamConfidence)
	}
}
