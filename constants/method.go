package constants

// Method records which code path produced an extraction result.
// Stored verbatim by callers for audit, and used as a confidence input.
type Method string

const (
	MethodPattern       Method = "pattern"        // regex fast path only
	MethodMultiStrategy Method = "multi_strategy" // full rule-based orchestrator
	MethodLLM           Method = "llm"            // LLM backend succeeded
	MethodLLMFallback   Method = "llm_fallback"   // LLM attempted and failed, rules took over
)

// SourceKind records how the raw text was recovered upstream of this core.
type SourceKind string

const (
	SourcePDFText  SourceKind = "pdf_text"  // text layer of a born-digital PDF
	SourceCloudOCR SourceKind = "cloud_ocr" // managed OCR service
	SourceLocalOCR SourceKind = "local_ocr" // self-hosted OCR engine
	SourceUnknown  SourceKind = "unknown"
)
