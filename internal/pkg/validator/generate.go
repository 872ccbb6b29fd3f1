package validator

import (
	"encoding/base64"
	"fmt"

	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
)

// AllowedMediaTypes lists the document types the upstream accepts.
var AllowedMediaTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// MaxTimeframeMonths caps the simulation horizon.
const MaxTimeframeMonths = 36

// Validator validates generation requests
type Validator struct {
	cfg config.DocumentConfig
}

func NewGenerateValidator(cfg config.DocumentConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateGenerate checks the decision form and the optional document.
// productType may be empty only when a document carries the product
// details instead.
func (v *Validator) ValidateGenerate(req *entity.GenerateRequest) error {
	if req.Decision == "" {
		return fmt.Errorf("%w: decision", entity.ErrMissingField)
	}
	if req.ProductType == "" && req.Document == nil {
		return fmt.Errorf("%w: productType (required without a document)", entity.ErrMissingField)
	}
	if req.Industry == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}
	if req.Industry == "custom" && req.CustomIndustry == "" {
		return fmt.Errorf("%w: customIndustry (required for custom industry)", entity.ErrMissingField)
	}
	if req.TimeframeMonths < 1 || req.TimeframeMonths > MaxTimeframeMonths {
		return fmt.Errorf("%w: timeframeMonths must be between 1 and %d, got %d",
			entity.ErrInvalidParameter, MaxTimeframeMonths, req.TimeframeMonths)
	}

	if req.Document != nil {
		return v.ValidateDocument(req.Document)
	}
	return nil
}

// ValidateDocument checks media type, payload presence and decoded size.
func (v *Validator) ValidateDocument(doc *entity.DocumentAttachment) error {
	if !AllowedMediaTypes[doc.MediaType] {
		return fmt.Errorf("%w: media type %q (allowed: pdf, doc, docx)", entity.ErrInvalidDocument, doc.MediaType)
	}
	if doc.Data == "" {
		return fmt.Errorf("%w: empty payload", entity.ErrInvalidDocument)
	}
	decoded, err := base64.StdEncoding.DecodeString(doc.Data)
	if err != nil {
		return fmt.Errorf("%w: payload is not valid base64", entity.ErrInvalidDocument)
	}
	if int64(len(decoded)) > v.cfg.MaxDocumentSize {
		return fmt.Errorf("%w: document is %d bytes (max %d)", entity.ErrInvalidDocument, len(decoded), v.cfg.MaxDocumentSize)
	}
	return nil
}

// ValidateMockTimeframe bounds the timeframe for the mock generator.
func ValidateMockTimeframe(timeframeMonths int) error {
	if timeframeMonths < 1 || timeframeMonths > MaxTimeframeMonths {
		return fmt.Errorf("%w: timeframeMonths must be between 1 and %d, got %d",
			entity.ErrInvalidParameter, MaxTimeframeMonths, timeframeMonths)
	}
	return nil
}

// ValidateExport checks that an export request carries a scenario and a
// known format.
func ValidateExport(req *entity.ExportRequest) error {
	if req.Scenario == nil {
		return fmt.Errorf("%w: scenario", entity.ErrMissingField)
	}
	switch req.Format {
	case entity.FormatText, entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX:
		return nil
	case "":
		return fmt.Errorf("%w: format", entity.ErrMissingField)
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, req.Format)
	}
}
