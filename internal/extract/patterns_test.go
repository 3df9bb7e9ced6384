package extract

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPatternExtractSingleLine(t *testing.T) {
	e := NewPatternExtractor(nil, discardLogger())
	text := "Certificate of Data Science issued by Coursera to John Smith on June 19, 2023"

	f := e.Extract(text)
	if f.Title != "Data Science" {
		t.Errorf("Title = %q, want %q", f.Title, "Data Science")
	}
	if f.Institution != "Coursera" {
		t.Errorf("Institution = %q, want %q", f.Institution, "Coursera")
	}
	if f.Recipient != "John Smith" {
		t.Errorf("Recipient = %q, want %q", f.Recipient, "John Smith")
	}
	if f.DateIssued != "2023-06-19" {
		t.Errorf("DateIssued = %q, want %q", f.DateIssued, "2023-06-19")
	}
	if f.CertificateID != "" {
		t.Errorf("CertificateID = %q, want empty", f.CertificateID)
	}
}

func TestPatternExtractLabeledFields(t *testing.T) {
	e := NewPatternExtractor(nil, discardLogger())
	text := "Course: Advanced Cloud Architecture\n" +
		"Offered by Amazon Web Services Academy\n" +
		"Presented to Jane Doe\n" +
		"Date: 2022-11-03\n" +
		"Certificate ID: UC-12345678\n"

	f := e.Extract(text)
	if f.Title != "Advanced Cloud Architecture" {
		t.Errorf("Title = %q", f.Title)
	}
	if f.Institution != "Amazon Web Services Academy" {
		t.Errorf("Institution = %q", f.Institution)
	}
	if f.Recipient != "Jane Doe" {
		t.Errorf("Recipient = %q", f.Recipient)
	}
	if f.DateIssued != "2022-11-03" {
		t.Errorf("DateIssued = %q", f.DateIssued)
	}
	if f.CertificateID != "UC-12345678" {
		t.Errorf("CertificateID = %q", f.CertificateID)
	}
}

func TestPatternExtractNothingRecoverable(t *testing.T) {
	e := NewPatternExtractor(nil, discardLogger())
	f := e.Extract("zz qq 11 22")
	if !f.IsZero() {
		t.Errorf("expected zero fields, got %+v", f)
	}
}

func TestLongestLine(t *testing.T) {
	text := "Short\nThe quick brown fox jumps over the lazy dog twice\nMid line here\n"
	got := LongestLine(text, 20)
	want := "The quick brown fox jumps over the lazy dog twice"
	if got != want {
		t.Errorf("LongestLine() = %q, want %q", got, want)
	}
	if LongestLine("tiny\nalso tiny", 20) != "" {
		t.Error("expected empty result when no line clears the minimum")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\n\r\n  b  \nc")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitLines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
