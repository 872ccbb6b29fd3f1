package entity

// GenerateRequest is the POST /api/generate payload.
type GenerateRequest struct {
	FormInput
	Document *DocumentAttachment `json:"document,omitempty"`
}

// GenerateResponse is the successful pipeline result.
type GenerateResponse struct {
	RunID           string      `json:"runId"`
	Industry        string      `json:"industry"`
	TimeframeMonths int         `json:"timeframeMonths"`
	Scenarios       []*Scenario `json:"scenarios"`
}

// MarketDataRequest is the POST /api/market-data payload.
type MarketDataRequest struct {
	Industry string `json:"industry"`
}

// MarketDataResponse wraps the market context with its fetch metadata.
type MarketDataResponse struct {
	Industry  string         `json:"industry"`
	Timestamp string         `json:"timestamp"`
	Data      *MarketContext `json:"data"`
}

// MockScenariosRequest is the POST /api/scenarios/mock payload.
type MockScenariosRequest struct {
	TimeframeMonths int `json:"timeframeMonths"`
}

// MockScenariosResponse carries the deterministic fallback scenario set.
type MockScenariosResponse struct {
	Scenarios []*Scenario `json:"scenarios"`
}

// ResultFormat selects the export document format.
type ResultFormat string

const (
	FormatText     ResultFormat = "text"
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

// ExportRequest is the POST /api/scenarios/export payload: one scenario
// plus the originating decision, rendered into a downloadable document.
type ExportRequest struct {
	Scenario *Scenario    `json:"scenario"`
	Decision string       `json:"decision"`
	Format   ResultFormat `json:"format"`
}

// CompletionRequest is what the scenario usecase hands to the completion
// connector: the rendered prompt plus the optional document attachment.
type CompletionRequest struct {
	Prompt   string
	Document *DocumentAttachment
}
