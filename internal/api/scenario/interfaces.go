package scenario

import (
	"context"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

type ScenarioUsecase interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	MarketData(ctx context.Context, industry string) *entity.MarketContext
	MockScenarios(ctx context.Context, timeframeMonths int) ([]*entity.Scenario, error)
	ExportScenario(ctx context.Context, req *entity.ExportRequest) (data []byte, contentType string, filename string, err error)
}
