package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/completion"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/pkg/formatter"
	"github.com/prodverse/multiverse-backend/internal/pkg/logger"
	"github.com/prodverse/multiverse-backend/internal/pkg/validator"
	"github.com/prodverse/multiverse-backend/internal/prompt"
	"go.uber.org/zap"
)

// Usecase drives the simulation pipeline: validate the form, assemble
// the market context, render the prompt, call the model and normalize
// its reply into canonical scenarios.
type Usecase struct {
	connector  CompletionConnector
	market     MarketProvider
	validator  *validator.Validator
	formatters *formatter.Factory
	logger     *zap.Logger
}

func NewUsecase(
	connector CompletionConnector,
	market MarketProvider,
	v *validator.Validator,
	formatters *formatter.Factory,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		connector:  connector,
		market:     market,
		validator:  v,
		formatters: formatters,
		logger:     logger,
	}
}

func (u *Usecase) Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error) {
	if err := u.validator.ValidateGenerate(req); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	industry := req.ResolvedIndustry()

	ctx = logger.AddFields(ctx,
		zap.String("run_id", runID),
		zap.String("industry", industry),
		zap.Int("timeframe_months", req.TimeframeMonths),
	)

	market := u.market.GetContext(ctx, industry)

	promptText := prompt.Build(req.FormInput, req.Document != nil, req.TimeframeMonths, industry, market)

	raw, err := u.connector.CreateCompletion(ctx, &entity.CompletionRequest{
		Prompt:   promptText,
		Document: req.Document,
	})
	if err != nil {
		return nil, fmt.Errorf("create completion: %w", err)
	}

	scenarios, err := completion.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	ctxzap.Info(ctx, "simulation generated", zap.Int("scenarios", len(scenarios)))

	return &entity.GenerateResponse{
		RunID:           runID,
		Industry:        industry,
		TimeframeMonths: req.TimeframeMonths,
		Scenarios:       scenarios,
	}, nil
}

func (u *Usecase) MarketData(ctx context.Context, industry string) *entity.MarketContext {
	if industry == "" {
		industry = "General"
	}
	return u.market.GetContext(ctx, industry)
}

func (u *Usecase) MockScenarios(ctx context.Context, timeframeMonths int) ([]*entity.Scenario, error) {
	if err := validator.ValidateMockTimeframe(timeframeMonths); err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "generating fallback scenarios", zap.Int("timeframe_months", timeframeMonths))

	return GenerateMockScenarios(timeframeMonths), nil
}

// ExportScenario renders one scenario into a downloadable document and
// returns the payload with its content type and suggested filename.
func (u *Usecase) ExportScenario(ctx context.Context, req *entity.ExportRequest) ([]byte, string, string, error) {
	if err := validator.ValidateExport(req); err != nil {
		return nil, "", "", err
	}

	f, err := u.formatters.Create(req.Format)
	if err != nil {
		return nil, "", "", err
	}

	text := renderScenarioText(req.Scenario, req.Decision)

	data, err := f.Format(text)
	if err != nil {
		return nil, "", "", fmt.Errorf("format scenario: %w", err)
	}

	filename := exportFilename(req.Scenario.Name) + f.FileExtension()

	ctxzap.Info(ctx, "scenario exported",
		zap.String("format", string(req.Format)),
		zap.String("filename", filename),
		zap.Int("bytes", len(data)),
	)

	return data, f.ContentType(), filename, nil
}

// exportFilename slugs the scenario name into something safe for a
// Content-Disposition header.
func exportFilename(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_', r == '/':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "scenario"
	}
	return "multiverse-" + slug
}
