package news

import (
	"context"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/integration/common"
	pkghttp "github.com/prodverse/multiverse-backend/pkg/http"
	"go.uber.org/zap"
)

const maxTopStories = 2

// Connector fetches recent industry headlines from NewsAPI and condenses
// them into a digest for prompt enrichment. Without an API key the
// connector reports itself disabled and the provider skips it.
type Connector struct {
	config    config.NewsConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.NewsConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type everythingResponse struct {
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

func (c *Connector) Enabled() bool {
	return c.config.APIKey != ""
}

// FetchDigest queries /v2/everything with the industry keywords and
// returns the top headlines plus a crude sentiment read. Headline-based
// sentiment is intentionally shallow; it only colors the prompt.
func (c *Connector) FetchDigest(ctx context.Context, keywords []string) (*entity.NewsDigest, error) {
	query := strings.Join(keywords, " OR ")

	ctxzap.Debug(ctx, "fetching news digest", zap.String("query", query))

	var resp everythingResponse
	err := retry.Do(func() error {
		return c.connector.DoGet(ctx, c.config.EverythingEndpoint, nil, &resp,
			pkghttp.WithQueryParam("q", query),
			pkghttp.WithQueryParam("sortBy", "publishedAt"),
			pkghttp.WithQueryParam("language", "en"),
			pkghttp.WithQueryParam("pageSize", strconv.Itoa(c.config.PageSize)),
			pkghttp.WithQueryParam("apiKey", c.config.APIKey),
		)
	}, append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))...)
	if err != nil {
		return nil, err
	}

	digest := &entity.NewsDigest{
		TopStories: make([]string, 0, maxTopStories),
		Sentiment:  "mixed",
	}

	for _, article := range resp.Articles {
		if article.Title == "" {
			continue
		}
		digest.TopStories = append(digest.TopStories, article.Title)
		if len(digest.TopStories) == maxTopStories {
			break
		}
	}

	if len(digest.TopStories) > 0 {
		first := strings.ToLower(digest.TopStories[0])
		if strings.Contains(first, "growth") || strings.Contains(first, "surge") {
			digest.Sentiment = "positive"
		}
	}

	return digest, nil
}
