package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/extract"
)

func TestBuildXLSX(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rows := []Row{
		{
			File: "a.txt",
			Result: extract.ExtractionResult{
				Title:            "Data Science",
				Institution:      "Coursera",
				Recipient:        "John Smith",
				DateIssued:       "2023-06-19",
				Confidence:       0.95,
				ExtractionMethod: constants.MethodLLM,
			},
		},
		{
			File: "b.txt",
			Result: extract.ExtractionResult{
				Confidence:       0.1,
				RequiresReview:   true,
				ExtractionMethod: constants.MethodMultiStrategy,
			},
		},
	}

	out, err := svc.BuildXLSX(rows)
	if err != nil {
		t.Fatalf("BuildXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(got) != 3 { // header + two data rows
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if got[0][0] != "File" || got[0][1] != "Title" {
		t.Errorf("header = %v", got[0])
	}
	if got[1][0] != "a.txt" || got[1][1] != "Data Science" || got[1][2] != "Coursera" {
		t.Errorf("first data row = %v", got[1])
	}
	if got[2][0] != "b.txt" {
		t.Errorf("second data row = %v", got[2])
	}
}
