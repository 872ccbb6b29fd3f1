package marketdata

import (
	"context"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

type NewsConnector interface {
	Enabled() bool
	FetchDigest(ctx context.Context, keywords []string) (*entity.NewsDigest, error)
}

type GlobalMarketConnector interface {
	FetchTrends(ctx context.Context) (*entity.GlobalMarketTrends, error)
}
