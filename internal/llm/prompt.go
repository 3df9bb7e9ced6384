package llm

import "strings"

// maxPromptChars caps how much OCR text goes into the user prompt.
const maxPromptChars = 3000

// BuildSystemPrompt composes the fixed extraction contract. The
// title/recipient distinction is spelled out because swapping the
// program name and the person's name is the single most common
// rule-based confusion.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a certificate parser. You receive OCR text recovered from a scanned credential or certificate.",
		"Return ONLY a JSON object with exactly these keys: title, institution, recipient, date_issued, description, certificate_id.",
		"Every key must be present; use null for anything not found on the certificate.",
		"'title' is the name of the course, program, or credential (e.g. \"Data Science Specialization\").",
		"'recipient' is the full name of the PERSON the certificate was issued to. Never put the person's name in 'title' or the program name in 'recipient'.",
		"'institution' is the issuing organization or platform.",
		"'date_issued' must be ISO-8601 (YYYY-MM-DD); convert any other date format.",
		"'description' is a one-line summary of what was achieved.",
		"'certificate_id' is any serial number, credential ID, or verification code.",
		"No prose, no markdown, no code fences.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the OCR text, truncated to keep the request
// bounded.
func BuildUserPrompt(rawText string) string {
	var b strings.Builder
	b.WriteString("OCR text (first ~3k chars):\n")
	text := strings.TrimSpace(rawText)
	if len(text) > maxPromptChars {
		b.WriteString(text[:maxPromptChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
