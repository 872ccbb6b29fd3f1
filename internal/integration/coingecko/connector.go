package coingecko

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/integration/common"
	pkghttp "github.com/prodverse/multiverse-backend/pkg/http"
	"go.uber.org/zap"
)

// Connector reads CoinGecko's global market snapshot. The 24h market-cap
// change serves as a coarse broader-market sentiment signal; crypto
// dominance rides along as an extra indicator.
type Connector struct {
	config    config.GlobalMarketConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GlobalMarketConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type globalResponse struct {
	Data struct {
		MarketCapChange24h float64            `json:"market_cap_change_percentage_24h_usd"`
		MarketCapPct       map[string]float64 `json:"market_cap_percentage"`
	} `json:"data"`
}

// FetchTrends returns the condensed global market read.
func (c *Connector) FetchTrends(ctx context.Context) (*entity.GlobalMarketTrends, error) {
	ctxzap.Debug(ctx, "fetching global market trends")

	var resp globalResponse
	err := retry.Do(func() error {
		return c.connector.DoGet(ctx, c.config.GlobalEndpoint, nil, &resp)
	}, append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...)
	if err != nil {
		return nil, err
	}

	sentiment := "bearish"
	if resp.Data.MarketCapChange24h > 0 {
		sentiment = "bullish"
	}

	return &entity.GlobalMarketTrends{
		Sentiment:       sentiment,
		Change24h:       fmt.Sprintf("%.2f%%", resp.Data.MarketCapChange24h),
		CryptoDominance: fmt.Sprintf("%.2f%%", resp.Data.MarketCapPct["btc"]),
	}, nil
}
