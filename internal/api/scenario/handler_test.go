package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

type stubUsecase struct {
	generateResp *entity.GenerateResponse
	generateErr  error
	marketCtx    *entity.MarketContext
	mockResp     []*entity.Scenario
	mockErr      error
	exportData   []byte
	exportErr    error
}

func (s *stubUsecase) Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error) {
	return s.generateResp, s.generateErr
}

func (s *stubUsecase) MarketData(ctx context.Context, industry string) *entity.MarketContext {
	return s.marketCtx
}

func (s *stubUsecase) MockScenarios(ctx context.Context, timeframeMonths int) ([]*entity.Scenario, error) {
	return s.mockResp, s.mockErr
}

func (s *stubUsecase) ExportScenario(ctx context.Context, req *entity.ExportRequest) ([]byte, string, string, error) {
	if s.exportErr != nil {
		return nil, "", "", s.exportErr
	}
	return s.exportData, "text/plain; charset=utf-8", "multiverse-test.txt", nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGenerateSuccess(t *testing.T) {
	h := NewHandler(&stubUsecase{
		generateResp: &entity.GenerateResponse{
			RunID:           "run-1",
			Industry:        "saas",
			TimeframeMonths: 6,
			Scenarios:       []*entity.Scenario{{Name: "Expand"}},
		},
	})

	rec := postJSON(t, h.Generate, `{"decision":"expand?","productType":"api","industry":"saas","timeframeMonths":6}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp entity.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID != "run-1" || len(resp.Scenarios) != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestGenerateInvalidBody(t *testing.T) {
	h := NewHandler(&stubUsecase{})

	rec := postJSON(t, h.Generate, `{"decision": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing field", entity.ErrMissingField, http.StatusBadRequest},
		{"invalid parameter", entity.ErrInvalidParameter, http.StatusBadRequest},
		{"invalid document", entity.ErrInvalidDocument, http.StatusBadRequest},
		{"no json found", entity.ErrNoJSONFound, http.StatusUnprocessableEntity},
		{"scenarios missing", entity.ErrScenariosMissing, http.StatusUnprocessableEntity},
		{"no text content", entity.ErrNoTextContent, http.StatusUnprocessableEntity},
		{"malformed json", &entity.MalformedJSONError{Preview: "{..."}, http.StatusUnprocessableEntity},
		{"upstream auth", entity.ErrUpstreamAuth, http.StatusBadGateway},
		{"upstream unreachable", entity.ErrUpstreamUnreachable, http.StatusBadGateway},
		{"upstream 5xx", &entity.UpstreamError{StatusCode: 500, Body: "oops"}, http.StatusBadGateway},
		{"upstream timeout", entity.ErrUpstreamTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUsecase{generateErr: tt.err})
			rec := postJSON(t, h.Generate, `{"decision":"x"}`)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestMarketData(t *testing.T) {
	h := NewHandler(&stubUsecase{
		marketCtx: &entity.MarketContext{Trend: "AI integration"},
	})

	rec := postJSON(t, h.MarketData, `{"industry":"saas"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp entity.MarketDataResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Industry != "saas" || resp.Timestamp == "" || resp.Data.Trend != "AI integration" {
		t.Errorf("response = %+v", resp)
	}
}

func TestMockScenarios(t *testing.T) {
	h := NewHandler(&stubUsecase{
		mockResp: []*entity.Scenario{{Name: "Optimistic Path"}, {Name: "Realistic Path"}, {Name: "Pessimistic Path"}},
	})

	rec := postJSON(t, h.MockScenarios, `{"timeframeMonths":6}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp entity.MockScenariosResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Scenarios) != 3 {
		t.Errorf("len(scenarios) = %d, want 3", len(resp.Scenarios))
	}
}

func TestMockScenariosInvalidTimeframe(t *testing.T) {
	h := NewHandler(&stubUsecase{mockErr: entity.ErrInvalidParameter})

	rec := postJSON(t, h.MockScenarios, `{"timeframeMonths":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestExportScenario(t *testing.T) {
	h := NewHandler(&stubUsecase{exportData: []byte("PRODUCT MULTIVERSE SIMULATION")})

	rec := postJSON(t, h.ExportScenario, `{"scenario":{"name":"Expand"},"decision":"expand?","format":"text"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="multiverse-test.txt"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if rec.Body.String() != "PRODUCT MULTIVERSE SIMULATION" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestExportScenarioUnsupportedFormat(t *testing.T) {
	h := NewHandler(&stubUsecase{exportErr: entity.ErrUnsupportedFormat})

	rec := postJSON(t, h.ExportScenario, `{"scenario":{"name":"X"},"format":"xlsx"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
