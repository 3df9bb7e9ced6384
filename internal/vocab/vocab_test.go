package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPredicates(t *testing.T) {
	v := Default()
	if !v.HasInstitutionKeyword("Stanford University") {
		t.Error("expected institution keyword match")
	}
	if !v.HasInstitutionKeyword("Coursera") {
		t.Error("platform names should count as institution signals")
	}
	if !v.IsPlatform("issued by Udemy") {
		t.Error("expected platform match inside a phrase")
	}
	if !v.MatchesBoilerplate("This Certificate Is Proudly Presented") {
		t.Error("expected boilerplate match, case-insensitively")
	}
	if !v.HasCredentialWord("Certificate of Completion") {
		t.Error("expected credential word match")
	}
	if !v.IsTrustedIssuer("google") {
		t.Error("expected trusted issuer match")
	}
	if v.HasInstitutionKeyword("John Smith") {
		t.Error("a person name must not look institutional")
	}
}

func TestLoadFileOverlaysOnlyGivenLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := "trusted_issuers:\n  - acme labs\nplatform_names:\n  - acme academy\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !v.IsTrustedIssuer("Acme Labs") {
		t.Error("override list not applied")
	}
	if v.IsTrustedIssuer("coursera") {
		t.Error("overridden list should replace the default entirely")
	}
	// Untouched lists keep their defaults.
	if !v.HasCredentialWord("certificate") {
		t.Error("default credential words lost during overlay")
	}
	if !v.MatchesBoilerplate("hereby present") {
		t.Error("default boilerplate lost during overlay")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
