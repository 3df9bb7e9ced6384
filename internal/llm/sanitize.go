package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a markdown code-fence wrapper if the model
// ignored the no-markdown instruction. Anything else passes through
// untouched.
func StripCodeFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	// Opening fence may carry a language tag ("```json").
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return []byte(strings.TrimSpace(s))
}

// SanitizeFields normalizes a model reply before schema validation:
// - drops unknown keys (additionalProperties = false friendliness)
// - trims strings; empty or "null" strings become JSON null
// - adds any missing contract key as null
// It returns the cleaned document and the list of adjustments made.
func SanitizeFields(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	contract := []string{
		"title", "institution", "recipient",
		"date_issued", "description", "certificate_id",
	}
	allowed := make(map[string]struct{}, len(contract))
	for _, k := range contract {
		allowed[k] = struct{}{}
	}

	var adjusted []string
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			adjusted = append(adjusted, k+"(unknown)")
		}
	}

	for _, k := range contract {
		v, ok := m[k]
		if !ok {
			m[k] = nil
			adjusted = append(adjusted, k+"(missing)")
			continue
		}
		s, isString := v.(string)
		if !isString {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "null") {
			m[k] = nil
			adjusted = append(adjusted, k+"(empty)")
		} else {
			m[k] = s
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, adjusted, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, adjusted, nil
}
