package extract

import "github.com/certfolio/certparse/constants"

// FieldName identifies one of the six target fields.
type FieldName string

const (
	FieldTitle         FieldName = "title"
	FieldInstitution   FieldName = "institution"
	FieldRecipient     FieldName = "recipient"
	FieldDateIssued    FieldName = "date_issued"
	FieldDescription   FieldName = "description"
	FieldCertificateID FieldName = "certificate_id"
)

// Fields is the partial field-set one strategy recovers from a document.
// Empty string means "not found"; values have already been cleaned and
// validator-gated by the strategy that produced them.
type Fields struct {
	Title         string
	Institution   string
	Recipient     string
	DateIssued    string // canonical YYYY-MM-DD
	Description   string
	CertificateID string
}

// Get returns the value Fields holds for a field name.
func (f Fields) Get(name FieldName) string {
	switch name {
	case FieldTitle:
		return f.Title
	case FieldInstitution:
		return f.Institution
	case FieldRecipient:
		return f.Recipient
	case FieldDateIssued:
		return f.DateIssued
	case FieldDescription:
		return f.Description
	case FieldCertificateID:
		return f.CertificateID
	}
	return ""
}

// Set stores a value for a field name.
func (f *Fields) Set(name FieldName, value string) {
	switch name {
	case FieldTitle:
		f.Title = value
	case FieldInstitution:
		f.Institution = value
	case FieldRecipient:
		f.Recipient = value
	case FieldDateIssued:
		f.DateIssued = value
	case FieldDescription:
		f.Description = value
	case FieldCertificateID:
		f.CertificateID = value
	}
}

// IsZero reports whether no field was recovered.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// AllFieldNames lists the six fields in output order.
var AllFieldNames = []FieldName{
	FieldTitle, FieldInstitution, FieldRecipient,
	FieldDateIssued, FieldDescription, FieldCertificateID,
}

// ExtractionResult is the terminal artifact of one extraction call.
// It is created once and never mutated; the caller owns storage.
type ExtractionResult struct {
	Title              string               `json:"title,omitempty"`
	Institution        string               `json:"institution,omitempty"`
	Recipient          string               `json:"recipient,omitempty"`
	DateIssued         string               `json:"date_issued,omitempty"`
	Description        string               `json:"description,omitempty"`
	CertificateID      string               `json:"certificate_id,omitempty"`
	RawText            string               `json:"raw_text"`
	Confidence         float64              `json:"confidence"`
	RequiresReview     bool                 `json:"requires_review"`
	ExtractionMethod   constants.Method     `json:"extraction_method"`
	UpstreamConfidence float32              `json:"upstream_confidence,omitempty"`
	Source             constants.SourceKind `json:"source,omitempty"`
}
