package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/pkg/logger"
	"github.com/prodverse/multiverse-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ScenarioUsecase
}

func NewHandler(usecase ScenarioUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Generate handles POST /api/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	var req entity.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.Generate(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, resp)
}

// MarketData handles POST /api/market-data
func (h *Handler) MarketData(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MarketData")

	var req entity.MarketDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	data := h.usecase.MarketData(ctx, req.Industry)

	response.Success(w, toMarketDataResponse(req.Industry, data))
}

// MockScenarios handles POST /api/scenarios/mock
func (h *Handler) MockScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MockScenarios")

	var req entity.MockScenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	scenarios, err := h.usecase.MockScenarios(ctx, req.TimeframeMonths)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.MockScenariosResponse{Scenarios: scenarios})
}

// ExportScenario handles POST /api/scenarios/export
func (h *Handler) ExportScenario(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportScenario")

	var req entity.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	data, contentType, filename, err := h.usecase.ExportScenario(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

// handleUsecaseError maps pipeline errors onto HTTP statuses: client
// mistakes are 400, a reply the pipeline could not parse is 422, upstream
// failures are 502/504.
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var malformed *entity.MalformedJSONError
	var upstream *entity.UpstreamError

	switch {
	case errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidDocument),
		errors.Is(err, entity.ErrUnsupportedFormat):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrNoTextContent),
		errors.Is(err, entity.ErrNoJSONFound),
		errors.Is(err, entity.ErrScenariosMissing),
		errors.As(err, &malformed):
		h.respondError(ctx, w, http.StatusUnprocessableEntity, "model reply could not be parsed into scenarios", err)
	case errors.Is(err, entity.ErrUpstreamTimeout):
		h.respondError(ctx, w, http.StatusGatewayTimeout, "model upstream timed out", err)
	case errors.Is(err, entity.ErrUpstreamAuth),
		errors.Is(err, entity.ErrUpstreamUnreachable),
		errors.As(err, &upstream):
		h.respondError(ctx, w, http.StatusBadGateway, "model upstream failed", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
