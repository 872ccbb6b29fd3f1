package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prodverse/multiverse-backend/internal/api"
	scenarioapi "github.com/prodverse/multiverse-backend/internal/api/scenario"
	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/integration/coingecko"
	"github.com/prodverse/multiverse-backend/internal/integration/llm"
	"github.com/prodverse/multiverse-backend/internal/integration/news"
	"github.com/prodverse/multiverse-backend/internal/pkg/formatter"
	"github.com/prodverse/multiverse-backend/internal/pkg/validator"
	"github.com/prodverse/multiverse-backend/internal/usecase/marketdata"
	"github.com/prodverse/multiverse-backend/internal/usecase/scenario"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connectors (with mock support)
	var completionConnector scenario.CompletionConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connector for the model upstream")
		completionConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for the model upstream")
		completionConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	newsConnector := news.NewConnector(cfg.NewsConnectorCfg, logger)
	if !newsConnector.Enabled() {
		logger.Info("News enrichment disabled (no NEWS_API_KEY)")
	}
	globalMarketConnector := coingecko.NewConnector(cfg.GlobalMarketConnectorCfg, logger)
	logger.Info("Connectors initialized")

	// Initialize market context provider
	marketProvider := marketdata.NewProvider(
		cfg.IndustryBaselines,
		newsConnector,
		globalMarketConnector,
		cfg.MarketCacheTTL,
		logger,
	)

	// Initialize validators and formatters
	generateValidator := validator.NewGenerateValidator(cfg.DocumentCfg)
	formatterFactory := formatter.NewFactory()

	// Initialize use cases
	scenarioUC := scenario.NewUsecase(
		completionConnector,
		marketProvider,
		generateValidator,
		formatterFactory,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	scenarioHandler := scenarioapi.NewHandler(scenarioUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(scenarioHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. Write timeout must cover the slowest path
	// (generation against the model upstream).
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 160 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
