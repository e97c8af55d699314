package extraction

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atelie-backend/internal/config"
	"atelie-backend/internal/errs"

	openrouter "github.com/revrost/go-openrouter"
	"go.uber.org/zap"
)

const systemPrompt = `Você recebe a transcrição de um pedido ditado numa oficina de costura.
Responda somente com um objeto JSON com as chaves:
cliente (string), fornecedor (string), tipo_peca (string), tipo_tecido (string),
tamanhos (objeto com tamanho e quantidade, ex: {"P": 2, "M": 3}; tamanhos válidos: PP, P, M, G, GG, EXG),
quantidade (número total de peças), preco_unitario (número), observacoes (string).
Use null para tudo que não foi dito.`

// OpenRouterExtractor asks a chat model to structure the transcript.
type OpenRouterExtractor struct {
	client   *openrouter.Client
	model    string
	backoffs []time.Duration
	logger   *zap.Logger
	enabled  bool
}

func NewOpenRouterExtractor(cfg *config.Config, logger *zap.Logger) *OpenRouterExtractor {
	logger = logger.Named("extraction")
	model := strings.TrimSpace(cfg.LLMModel)
	apiKey := strings.TrimSpace(cfg.LLMAPIKey)

	if model == "" || apiKey == "" {
		logger.Warn("LLM config is incomplete; voice extraction will be disabled",
			zap.Bool("has_model", model != ""),
			zap.Bool("has_api_key", apiKey != ""),
		)
		return &OpenRouterExtractor{model: model, backoffs: backoffSchedule(cfg.LLMRetries), logger: logger}
	}

	clientCfg := openrouter.DefaultConfig(apiKey)
	if baseURL := strings.TrimSpace(cfg.LLMBaseURL); baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.LLMTimeout}

	return &OpenRouterExtractor{
		client:   openrouter.NewClientWithConfig(*clientCfg),
		model:    model,
		backoffs: backoffSchedule(cfg.LLMRetries),
		logger:   logger,
		enabled:  true,
	}
}

// WithBackoff replaces the pauses between retried model calls. Each entry
// allows one more attempt; no arguments disables retries.
func (e *OpenRouterExtractor) WithBackoff(backoffs ...time.Duration) *OpenRouterExtractor {
	e.backoffs = backoffs
	return e
}

func (e *OpenRouterExtractor) Enabled() bool {
	return e != nil && e.enabled
}

func (e *OpenRouterExtractor) Extract(ctx context.Context, transcript string) (*PartialServico, error) {
	if !e.Enabled() || e.client == nil {
		return nil, &errs.ExtractionError{Reason: "missing credential", Err: errs.ErrNotConfigured}
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, errs.Required("transcricao")
	}

	req := openrouter.ChatCompletionRequest{
		Model: e.model,
		Messages: []openrouter.ChatCompletionMessage{
			openrouter.SystemMessage(systemPrompt),
			openrouter.UserMessage(fmt.Sprintf("Texto: %q", transcript)),
		},
	}

	var resp openrouter.ChatCompletionResponse
	err := retryWithBackoff(ctx, e.backoffs, func() error {
		var callErr error
		resp, callErr = e.client.CreateChatCompletion(ctx, req)
		if callErr != nil {
			e.logger.Debug("llm call attempt failed", zap.Error(callErr))
		}
		return callErr
	})
	if err != nil {
		e.logger.Warn("llm call failed", zap.Error(err))
		return nil, &errs.ExtractionError{Reason: "upstream failure", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &errs.ExtractionError{Reason: "empty response"}
	}

	text := resp.Choices[0].Message.Content.Text
	e.logger.Debug("llm response", zap.String("content", text))

	partial, err := ParseResponse(text)
	if err != nil {
		e.logger.Warn("could not parse llm response", zap.Error(err))
		return nil, err
	}
	return partial, nil
}
