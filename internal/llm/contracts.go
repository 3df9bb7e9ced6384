package llm

import "context"

// CertificateFields is the exact JSON object the backend must return:
// all six keys present, null for anything not on the certificate.
type CertificateFields struct {
	Title         *string `json:"title"`
	Institution   *string `json:"institution"`
	Recipient     *string `json:"recipient"`
	DateIssued    *string `json:"date_issued"` // YYYY-MM-DD
	Description   *string `json:"description"`
	CertificateID *string `json:"certificate_id"`
}

// ExtractRequest carries one document into a backend call.
type ExtractRequest struct {
	RawText string
}

// FieldExtractor is the single-backend interface the pipeline depends
// on. Implementations return the parsed fields plus the raw JSON body
// for audit; any error means the caller falls back to the rule-based
// pipeline.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (CertificateFields, []byte, error)
}
