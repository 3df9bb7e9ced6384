package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/certfolio/certparse/constants"
)

func TestReadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.txt")
	if err := os.WriteFile(path, []byte("Certificate of Data Science\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if doc.Text != "Certificate of Data Science\n" {
		t.Errorf("Text = %q", doc.Text)
	}
	if doc.Source != constants.SourceUnknown {
		t.Errorf("Source = %q, want %q", doc.Source, constants.SourceUnknown)
	}
	if doc.Path != path {
		t.Errorf("Path = %q", doc.Path)
	}
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	if _, err := ReadFile("certificate.docx"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAccepted(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.txt", true},
		{"a.TXT", true},
		{"dump.text", true},
		{"scan.pdf", true},
		{"photo.jpg", false},
		{"report.docx", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := Accepted(tt.path); got != tt.want {
			t.Errorf("Accepted(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
