package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_MODEL", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"OPENAI_TEMPERATURE", "OPENAI_TIMEOUT",
		"EXTRACT_PATTERN_ONLY", "VOCAB_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.Pipeline.PatternOnly {
		t.Error("PatternOnly should default to false")
	}
	// No API key is a valid, rule-based-only configuration.
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TEMPERATURE", "0.25")
	t.Setenv("OPENAI_TIMEOUT", "30s")
	t.Setenv("EXTRACT_PATTERN_ONLY", "true")

	cfg := LoadConfig()
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.25 {
		t.Errorf("Temperature = %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.LLM.Timeout)
	}
	if !cfg.Pipeline.PatternOnly {
		t.Error("PatternOnly should be true")
	}
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := LoadConfig()
	cfg.LLM.Timeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
