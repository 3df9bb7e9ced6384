package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/certfolio/certparse/constants"
)

// Document is raw text recovered from one file, plus how it was
// recovered. Image OCR happens outside this core: a scanned PDF with no
// text layer simply yields empty text and the degenerate result
// downstream.
type Document struct {
	Path   string
	Text   string
	Pages  int
	Source constants.SourceKind
}

// ReadFile loads a .txt OCR dump or the text layer of a PDF.
func ReadFile(path string) (Document, error) {
	switch ext := constants.NormalizeExt(filepath.Ext(path)); ext {
	case "txt", "text":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read text file: %w", err)
		}
		// A .txt is assumed to be output of some external OCR engine;
		// the caller may override the source when it knows better.
		return Document{Path: path, Text: string(raw), Source: constants.SourceUnknown}, nil
	case "pdf":
		return readPDF(path)
	default:
		return Document{}, fmt.Errorf("unsupported extension %q", ext)
	}
}

func readPDF(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	plain, err := r.GetPlainText()
	if err != nil {
		return Document{}, fmt.Errorf("extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return Document{}, fmt.Errorf("read pdf text: %w", err)
	}

	return Document{
		Path:   path,
		Text:   buf.String(),
		Pages:  r.NumPage(),
		Source: constants.SourcePDFText,
	}, nil
}

// Accepted reports whether the path has an ingestable extension.
func Accepted(path string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}
