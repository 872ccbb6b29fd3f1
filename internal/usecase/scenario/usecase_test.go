package scenario

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/pkg/formatter"
	"github.com/prodverse/multiverse-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type stubConnector struct {
	reply   string
	err     error
	lastReq *entity.CompletionRequest
}

func (s *stubConnector) CreateCompletion(ctx context.Context, req *entity.CompletionRequest) (*entity.RawCompletion, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return entity.NewTextBlockCompletion(s.reply), nil
}

type stubMarket struct {
	ctx *entity.MarketContext
}

func (s *stubMarket) GetContext(ctx context.Context, industry string) *entity.MarketContext {
	return s.ctx
}

func newTestUsecase(conn *stubConnector, market *stubMarket) *Usecase {
	return NewUsecase(
		conn,
		market,
		validator.NewGenerateValidator(config.DocumentConfig{MaxDocumentSize: 1 << 20}),
		formatter.NewFactory(),
		zap.NewNop(),
	)
}

func generateRequest() *entity.GenerateRequest {
	return &entity.GenerateRequest{
		FormInput: entity.FormInput{
			Decision:        "expand to Europe?",
			ProductType:     "payments API",
			Industry:        "fintech",
			TimeframeMonths: 3,
		},
	}
}

func TestGenerateHappyPath(t *testing.T) {
	conn := &stubConnector{reply: `Answer below.
{"scenarios": [{"name": "Expand Now"}, {"name": "Wait"}],
 "recommendation": {"scenarioName": "Expand Now", "justification": "window is open"}}`}
	market := &stubMarket{ctx: &entity.MarketContext{Trend: "Digital payments growth"}}

	uc := newTestUsecase(conn, market)
	resp, err := uc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.RunID == "" {
		t.Error("RunID must be set")
	}
	if resp.Industry != "fintech" || resp.TimeframeMonths != 3 {
		t.Errorf("echoed form fields wrong: %+v", resp)
	}
	if len(resp.Scenarios) != 2 || !resp.Scenarios[0].Recommended {
		t.Errorf("scenarios not normalized: %+v", resp.Scenarios)
	}

	if conn.lastReq == nil {
		t.Fatal("connector never called")
	}
	if !strings.Contains(conn.lastReq.Prompt, "CRITICAL DECISION TO MAKE: expand to Europe?") {
		t.Error("prompt missing the decision")
	}
	if !strings.Contains(conn.lastReq.Prompt, "Digital payments growth") {
		t.Error("prompt missing the market context")
	}
}

func TestGenerateValidationShortCircuits(t *testing.T) {
	conn := &stubConnector{}
	uc := newTestUsecase(conn, &stubMarket{})

	req := generateRequest()
	req.Decision = ""

	_, err := uc.Generate(context.Background(), req)
	if !errors.Is(err, entity.ErrMissingField) {
		t.Fatalf("Generate() error = %v, want ErrMissingField", err)
	}
	if conn.lastReq != nil {
		t.Error("connector must not be called for invalid requests")
	}
}

func TestGeneratePropagatesUpstreamErrors(t *testing.T) {
	conn := &stubConnector{err: entity.ErrUpstreamTimeout}
	uc := newTestUsecase(conn, &stubMarket{})

	_, err := uc.Generate(context.Background(), generateRequest())
	if !errors.Is(err, entity.ErrUpstreamTimeout) {
		t.Fatalf("Generate() error = %v, want ErrUpstreamTimeout", err)
	}
}

func TestGeneratePropagatesParseErrors(t *testing.T) {
	conn := &stubConnector{reply: "no JSON here, sorry"}
	uc := newTestUsecase(conn, &stubMarket{})

	_, err := uc.Generate(context.Background(), generateRequest())
	if !errors.Is(err, entity.ErrNoJSONFound) {
		t.Fatalf("Generate() error = %v, want ErrNoJSONFound", err)
	}
}

func TestMockScenariosValidatesTimeframe(t *testing.T) {
	uc := newTestUsecase(&stubConnector{}, &stubMarket{})

	if _, err := uc.MockScenarios(context.Background(), 0); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("MockScenarios(0) error = %v, want ErrInvalidParameter", err)
	}

	scenarios, err := uc.MockScenarios(context.Background(), 2)
	if err != nil {
		t.Fatalf("MockScenarios(2) error = %v", err)
	}
	if len(scenarios) != 3 {
		t.Errorf("len(scenarios) = %d, want 3", len(scenarios))
	}
}

func TestExportScenarioText(t *testing.T) {
	uc := newTestUsecase(&stubConnector{}, &stubMarket{})

	req := &entity.ExportRequest{
		Scenario: &entity.Scenario{
			Name:        "Expand Now",
			Description: "move fast",
			Outcome:     "market entry",
			Probability: "40%",
			Timeline: []entity.MonthEntry{{
				Month:            1,
				Events:           []string{"hire local team"},
				Metrics:          entity.MonthMetrics{Revenue: "+5%", UserGrowth: "+8%", NPS: "60", MarketShare: "+1%"},
				Risks:            []string{"regulatory drag"},
				RegulatoryStatus: entity.RegulatoryYellow,
			}},
		},
		Decision: "expand to Europe?",
		Format:   entity.FormatText,
	}

	data, contentType, filename, err := uc.ExportScenario(context.Background(), req)
	if err != nil {
		t.Fatalf("ExportScenario() error = %v", err)
	}
	if contentType != "text/plain; charset=utf-8" {
		t.Errorf("contentType = %q", contentType)
	}
	if filename != "multiverse-expand-now.txt" {
		t.Errorf("filename = %q", filename)
	}

	text := string(data)
	for _, want := range []string{
		"PRODUCT MULTIVERSE SIMULATION",
		"Decision: expand to Europe?",
		"Scenario: Expand Now",
		"Probability: 40%",
		"OUTCOME: market entry",
		"Month 1:",
		"- Events: hire local team",
		"- Regulatory Status: YELLOW",
		"- Risks: regulatory drag",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q", want)
		}
	}
	if strings.Contains(text, "BRAINSTORMING") {
		t.Error("empty optional sections must be omitted")
	}
}

func TestExportScenarioMarkdown(t *testing.T) {
	uc := newTestUsecase(&stubConnector{}, &stubMarket{})

	req := &entity.ExportRequest{
		Scenario: &entity.Scenario{Name: "Wait", Probability: "60%"},
		Decision: "expand?",
		Format:   entity.FormatMarkdown,
	}

	data, contentType, filename, err := uc.ExportScenario(context.Background(), req)
	if err != nil {
		t.Fatalf("ExportScenario() error = %v", err)
	}
	if contentType != "text/markdown; charset=utf-8" {
		t.Errorf("contentType = %q", contentType)
	}
	if filename != "multiverse-wait.md" {
		t.Errorf("filename = %q", filename)
	}
	if !strings.HasPrefix(string(data), "# Product Multiverse Simulation") {
		t.Errorf("markdown export should open with the title, got %q", string(data)[:40])
	}
}

func TestExportScenarioRejectsBadRequests(t *testing.T) {
	uc := newTestUsecase(&stubConnector{}, &stubMarket{})

	_, _, _, err := uc.ExportScenario(context.Background(), &entity.ExportRequest{Format: entity.FormatText})
	if !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("missing scenario: error = %v", err)
	}

	_, _, _, err = uc.ExportScenario(context.Background(), &entity.ExportRequest{
		Scenario: &entity.Scenario{Name: "X"},
		Format:   "xlsx",
	})
	if !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Errorf("unknown format: error = %v", err)
	}
}
