package scenario

import (
	"context"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

type CompletionConnector interface {
	CreateCompletion(ctx context.Context, req *entity.CompletionRequest) (*entity.RawCompletion, error)
}

type MarketProvider interface {
	GetContext(ctx context.Context, industry string) *entity.MarketContext
}
