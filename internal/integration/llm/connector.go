package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/config"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"github.com/prodverse/multiverse-backend/internal/integration/common"
	pkghttp "github.com/prodverse/multiverse-backend/pkg/http"
	"go.uber.org/zap"
)

// Connector talks to an OpenAI-compatible chat-completions endpoint
// (Groq by default). It owns the translation between the pipeline's
// completion request and the upstream wire format, and it maps transport
// failures onto the pipeline error taxonomy. It never retries: a failed
// generation is retried by the user resubmitting.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CreateCompletion sends the rendered prompt upstream and returns the raw
// reply normalized into the content-block shape. OpenAI-compatible
// endpoints take plain string messages, so a document attachment is not
// forwarded; the prompt's framing already accounts for it.
func (c *Connector) CreateCompletion(ctx context.Context, req *entity.CompletionRequest) (*entity.RawCompletion, error) {
	ctxzap.Info(ctx, "requesting chat completion",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", c.config.MaxTokens),
		zap.Int("prompt_length", len(req.Prompt)),
		zap.Bool("has_document", req.Document != nil),
	)

	if req.Document != nil {
		ctxzap.Debug(ctx, "document attachment not forwarded to OpenAI-compatible upstream",
			zap.String("filename", req.Document.Filename),
			zap.String("media_type", req.Document.MediaType),
		)
	}

	payload := chatCompletionRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	var resp chatCompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatCompletionsEndpoint, payload, &resp)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, entity.ErrNoTextContent
	}

	ctxzap.Info(ctx, "chat completion received",
		zap.Int("content_length", len(resp.Choices[0].Message.Content)),
	)

	return entity.NewTextBlockCompletion(resp.Choices[0].Message.Content), nil
}

// classifyTransportError maps connector errors onto the pipeline taxonomy:
// 401/403 is a configuration problem, other non-2xx an upstream failure,
// and network errors split into timeouts and unreachable hosts.
func classifyTransportError(err error) error {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: HTTP %d", entity.ErrUpstreamAuth, httpErr.StatusCode)
		}
		return &entity.UpstreamError{StatusCode: httpErr.StatusCode, Body: httpErr.Message}
	}

	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		if isTimeout(netErr.Err) {
			return fmt.Errorf("%w: %v", entity.ErrUpstreamTimeout, netErr.Err)
		}
		return fmt.Errorf("%w: %v", entity.ErrUpstreamUnreachable, netErr.Err)
	}

	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
