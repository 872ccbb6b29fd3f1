package scenario

import (
	"time"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

func toMarketDataResponse(industry string, data *entity.MarketContext) *entity.MarketDataResponse {
	if industry == "" {
		industry = "General"
	}
	return &entity.MarketDataResponse{
		Industry:  industry,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}
