package marketdata

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"go.uber.org/zap"
)

// Provider assembles the market context for an industry: a static
// baseline from the configured table plus live enrichments fetched
// concurrently. Enrichment failures degrade the context, never the
// request. Results are cached per industry for the configured TTL.
type Provider struct {
	baselines map[string]config.IndustryBaseline
	news      NewsConnector
	global    GlobalMarketConnector
	cache     *gocache.Cache
	logger    *zap.Logger
}

func NewProvider(
	baselines map[string]config.IndustryBaseline,
	news NewsConnector,
	global GlobalMarketConnector,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Provider {
	return &Provider{
		baselines: baselines,
		news:      news,
		global:    global,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
		logger:    logger,
	}
}

// GetContext returns the market context for the industry. The cache key
// is the lowercased industry tag, so "FinTech" and "fintech" share an
// entry.
func (p *Provider) GetContext(ctx context.Context, industry string) *entity.MarketContext {
	key := strings.ToLower(strings.TrimSpace(industry))

	if cached, found := p.cache.Get(key); found {
		ctxzap.Debug(ctx, "market context cache hit", zap.String("industry", key))
		return cached.(*entity.MarketContext)
	}

	baseline, known := p.baselines[key]
	if !known {
		baseline = config.DefaultBaseline
		ctxzap.Debug(ctx, "no baseline for industry, using generic", zap.String("industry", key))
	}

	mc := &entity.MarketContext{
		Trend:         baseline.Trend,
		GrowthRate:    baseline.GrowthRate,
		KeyIndicators: baseline.KeyIndicators,
		CurrentFocus:  baseline.CurrentFocus,
		MarketSize:    baseline.MarketSize,
		Benchmarks:    baseline.Benchmarks,
	}

	p.enrich(ctx, mc, industry, baseline.Keywords)

	p.cache.SetDefault(key, mc)

	return mc
}

// enrich fans out to the live sources and merges whatever came back.
// Each source failure is logged and dropped; the baseline stands alone.
func (p *Provider) enrich(ctx context.Context, mc *entity.MarketContext, industry string, keywords []string) {
	var (
		wg     sync.WaitGroup
		digest *entity.NewsDigest
		trends *entity.GlobalMarketTrends
	)

	if p.news != nil && p.news.Enabled() {
		if len(keywords) == 0 {
			keywords = []string{industry}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := p.news.FetchDigest(ctx, keywords)
			if err != nil {
				ctxzap.Warn(ctx, "news enrichment failed", zap.Error(err))
				return
			}
			digest = d
		}()
	}

	if p.global != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t, err := p.global.FetchTrends(ctx)
			if err != nil {
				ctxzap.Warn(ctx, "global market enrichment failed", zap.Error(err))
				return
			}
			trends = t
		}()
	}

	wg.Wait()

	if digest != nil {
		mc.RecentNews = digest.TopStories
		mc.SentimentIndicator = digest.Sentiment
	}
	if trends != nil {
		mc.BroaderMarketSentiment = trends.Sentiment
		mc.MarketChange24h = trends.Change24h
	}
}
