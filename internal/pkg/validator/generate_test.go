package validator

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
)

func newTestValidator() *Validator {
	return NewGenerateValidator(config.DocumentConfig{MaxDocumentSize: 1024})
}

func validRequest() *entity.GenerateRequest {
	return &entity.GenerateRequest{
		FormInput: entity.FormInput{
			Decision:        "launch?",
			ProductType:     "analytics tool",
			Industry:        "saas",
			TimeframeMonths: 6,
		},
	}
}

func TestValidateGenerate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.GenerateRequest)
		wantErr error
	}{
		{"valid", func(r *entity.GenerateRequest) {}, nil},
		{"missing decision", func(r *entity.GenerateRequest) { r.Decision = "" }, entity.ErrMissingField},
		{"missing industry", func(r *entity.GenerateRequest) { r.Industry = "" }, entity.ErrMissingField},
		{"custom without value", func(r *entity.GenerateRequest) { r.Industry = "custom" }, entity.ErrMissingField},
		{
			"custom with value",
			func(r *entity.GenerateRequest) { r.Industry = "custom"; r.CustomIndustry = "agritech" },
			nil,
		},
		{
			"missing product type without document",
			func(r *entity.GenerateRequest) { r.ProductType = "" },
			entity.ErrMissingField,
		},
		{
			"missing product type with document is fine",
			func(r *entity.GenerateRequest) {
				r.ProductType = ""
				r.Document = &entity.DocumentAttachment{
					Filename:  "deck.pdf",
					MediaType: "application/pdf",
					Data:      base64.StdEncoding.EncodeToString([]byte("content")),
				}
			},
			nil,
		},
		{"timeframe zero", func(r *entity.GenerateRequest) { r.TimeframeMonths = 0 }, entity.ErrInvalidParameter},
		{"timeframe too long", func(r *entity.GenerateRequest) { r.TimeframeMonths = 37 }, entity.ErrInvalidParameter},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := v.ValidateGenerate(req)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateGenerate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateGenerate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		doc     entity.DocumentAttachment
		wantErr error
	}{
		{
			"unsupported media type",
			entity.DocumentAttachment{MediaType: "image/png", Data: "aGk="},
			entity.ErrInvalidDocument,
		},
		{
			"empty payload",
			entity.DocumentAttachment{MediaType: "application/pdf"},
			entity.ErrInvalidDocument,
		},
		{
			"broken base64",
			entity.DocumentAttachment{MediaType: "application/pdf", Data: "not-base64!!!"},
			entity.ErrInvalidDocument,
		},
		{
			"oversized payload",
			entity.DocumentAttachment{
				MediaType: "application/pdf",
				Data:      base64.StdEncoding.EncodeToString(make([]byte, 2048)),
			},
			entity.ErrInvalidDocument,
		},
		{
			"valid docx",
			entity.DocumentAttachment{
				MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Data:      base64.StdEncoding.EncodeToString([]byte("content")),
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDocument(&tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateExport(t *testing.T) {
	scenario := &entity.Scenario{Name: "Pivot"}

	if err := ValidateExport(&entity.ExportRequest{Scenario: scenario, Format: entity.FormatPDF}); err != nil {
		t.Errorf("valid export rejected: %v", err)
	}
	if err := ValidateExport(&entity.ExportRequest{Format: entity.FormatPDF}); !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("missing scenario: error = %v", err)
	}
	if err := ValidateExport(&entity.ExportRequest{Scenario: scenario}); !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("missing format: error = %v", err)
	}
	if err := ValidateExport(&entity.ExportRequest{Scenario: scenario, Format: "xlsx"}); !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Errorf("unknown format: error = %v", err)
	}
}
