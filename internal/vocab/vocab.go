package vocab

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the keyword tables the validators and scorers match
// against. Instances are immutable after construction; tests and
// deployments substitute their own tables instead of mutating Default().
type Vocabulary struct {
	// InstitutionKeywords mark a string as a plausible issuing body.
	InstitutionKeywords []string `yaml:"institution_keywords"`
	// PlatformNames are known online-learning providers and technology
	// companies that issue certificates under their own name.
	PlatformNames []string `yaml:"platform_names"`
	// Boilerplate phrases disqualify a candidate outright.
	Boilerplate []string `yaml:"boilerplate"`
	// CredentialWords describe the credential itself (title signal,
	// recipient anti-signal).
	CredentialWords []string `yaml:"credential_words"`
	// DegreeWords are degree-level qualifiers.
	DegreeWords []string `yaml:"degree_words"`
	// AchievementWords are weaker title signals.
	AchievementWords []string `yaml:"achievement_words"`
	// TrustedIssuers is the allow-list that earns a confidence bonus.
	TrustedIssuers []string `yaml:"trusted_issuers"`
	// TitleTriggers precede a title in running text ("completed …").
	TitleTriggers []string `yaml:"title_triggers"`
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		InstitutionKeywords: []string{
			"university", "college", "institute", "school", "academy",
			"foundation", "corporation", "polytechnic",
		},
		PlatformNames: []string{
			"coursera", "udemy", "udacity", "edx", "pluralsight",
			"linkedin learning", "skillshare", "datacamp", "codecademy",
			"google", "microsoft", "amazon", "aws", "ibm", "meta",
			"oracle", "cisco",
		},
		Boilerplate: []string{
			"the following", "hereby present", "this certificate",
			"is awarded to", "has successfully", "certify that",
			"in recognition of", "proudly presented",
		},
		CredentialWords: []string{
			"certificate", "diploma", "degree", "course", "program",
			"training", "workshop", "specialization", "certification",
		},
		DegreeWords: []string{
			"bachelor", "master", "phd", "doctorate",
		},
		AchievementWords: []string{
			"completion", "achievement", "award",
		},
		TrustedIssuers: []string{
			"coursera", "udemy", "udacity", "edx", "google", "microsoft",
			"amazon", "aws", "ibm", "oracle", "cisco", "linkedin learning",
		},
		TitleTriggers: []string{
			"completed", "certification", "course", "program",
			"specialization", "training",
		},
	}
}

// LoadFile reads a YAML vocabulary and overlays it on the defaults.
// Only non-empty lists in the file replace the built-in ones.
func LoadFile(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var override Vocabulary
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	v := Default()
	v.overlay(&override)
	return v, nil
}

func (v *Vocabulary) overlay(o *Vocabulary) {
	if len(o.InstitutionKeywords) > 0 {
		v.InstitutionKeywords = o.InstitutionKeywords
	}
	if len(o.PlatformNames) > 0 {
		v.PlatformNames = o.PlatformNames
	}
	if len(o.Boilerplate) > 0 {
		v.Boilerplate = o.Boilerplate
	}
	if len(o.CredentialWords) > 0 {
		v.CredentialWords = o.CredentialWords
	}
	if len(o.DegreeWords) > 0 {
		v.DegreeWords = o.DegreeWords
	}
	if len(o.AchievementWords) > 0 {
		v.AchievementWords = o.AchievementWords
	}
	if len(o.TrustedIssuers) > 0 {
		v.TrustedIssuers = o.TrustedIssuers
	}
	if len(o.TitleTriggers) > 0 {
		v.TitleTriggers = o.TitleTriggers
	}
}

// containsAny reports whether s (case-insensitively) contains one of
// the given phrases.
func containsAny(s string, phrases []string) bool {
	lower := strings.ToLower(s)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// HasInstitutionKeyword reports whether s names an institution type or
// a known platform.
func (v *Vocabulary) HasInstitutionKeyword(s string) bool {
	return containsAny(s, v.InstitutionKeywords) || containsAny(s, v.PlatformNames)
}

// IsPlatform reports whether s matches a known platform/company name.
func (v *Vocabulary) IsPlatform(s string) bool {
	return containsAny(s, v.PlatformNames)
}

// MatchesBoilerplate reports whether s contains a denylisted phrase.
func (v *Vocabulary) MatchesBoilerplate(s string) bool {
	return containsAny(s, v.Boilerplate)
}

// HasCredentialWord reports whether s mentions the credential itself.
func (v *Vocabulary) HasCredentialWord(s string) bool {
	return containsAny(s, v.CredentialWords)
}

// HasDegreeWord reports whether s mentions a degree level.
func (v *Vocabulary) HasDegreeWord(s string) bool {
	return containsAny(s, v.DegreeWords)
}

// HasAchievementWord reports whether s mentions an achievement term.
func (v *Vocabulary) HasAchievementWord(s string) bool {
	return containsAny(s, v.AchievementWords)
}

// IsTrustedIssuer reports whether s matches the trusted-issuer allow-list.
func (v *Vocabulary) IsTrustedIssuer(s string) bool {
	return containsAny(s, v.TrustedIssuers)
}
