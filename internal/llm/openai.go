package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"promptgen-server/internal/config"
)

// ErrGenerationFailed - ошибка при генерации текста LLM.
var ErrGenerationFailed = errors.New("ошибка генерации текста LLM")

// Максимальная длина текста для эмбеддинга (в символах).
const maxEmbeddingInputChars = 8000

var (
	llmRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptgen_llm_requests_total",
			Help: "Total number of requests to the LLM API.",
		},
		[]string{"model", "kind", "status"},
	)
	llmRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptgen_llm_request_duration_seconds",
			Help:    "Histogram of LLM API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model", "kind"},
	)
	llmPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptgen_llm_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"model"},
	)
	llmCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptgen_llm_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"model"},
	)
)

// openAIClient реализует Client поверх OpenAI-совместимого API.
type openAIClient struct {
	client         *openaigo.Client
	model          string
	embeddingModel string
	maxRetries     int
	baseRetryDelay time.Duration
	logger         *zap.Logger
}

var _ Client = (*openAIClient)(nil)

// NewOpenAIClient создает клиента по конфигурации. BaseURL позволяет
// указать совместимый провайдер (DeepSeek, OpenRouter и т.п.).
func NewOpenAIClient(cfg config.OpenAIConfig, logger *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: пустой API ключ", ErrGenerationFailed)
	}

	clientConfig := openaigo.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &openAIClient{
		client:         openaigo.NewClientWithConfig(clientConfig),
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		maxRetries:     cfg.MaxRetries,
		baseRetryDelay: cfg.BaseRetryDelay,
		logger:         logger.Named("OpenAIClient"),
	}, nil
}

func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error) {
	if strings.TrimSpace(systemPrompt) == "" && strings.TrimSpace(userPrompt) == "" {
		llmRequestsTotal.With(prometheus.Labels{"model": c.model, "kind": "chat", "status": "error"}).Inc()
		return "", fmt.Errorf("%w: пустой промпт", ErrGenerationFailed)
	}

	var messages []openaigo.ChatCompletionMessage
	if systemPrompt != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{
			Role:    openaigo.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	if userPrompt != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{
			Role:    openaigo.ChatMessageRoleUser,
			Content: userPrompt,
		})
	}

	request := openaigo.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONMode {
		request.ResponseFormat = &openaigo.ChatCompletionResponseFormat{
			Type: openaigo.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	c.logger.Debug("Отправка запроса к LLM",
		zap.String("model", c.model),
		zap.Int("system_prompt_bytes", len(systemPrompt)),
		zap.Int("user_prompt_bytes", len(userPrompt)),
		zap.Bool("json_mode", opts.JSONMode))

	startTime := time.Now()
	resp, err := c.createChatCompletionWithRetry(ctx, request)
	duration := time.Since(startTime)

	if err != nil {
		c.logger.Error("Ошибка от LLM API", zap.Duration("duration", duration), zap.Error(err))
		llmRequestsTotal.With(prometheus.Labels{"model": c.model, "kind": "chat", "status": "error"}).Inc()
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		llmRequestsTotal.With(prometheus.Labels{"model": c.model, "kind": "chat", "status": "error_empty_response"}).Inc()
		return "", ErrEmptyResponse
	}

	llmRequestsTotal.With(prometheus.Labels{"model": c.model, "kind": "chat", "status": "success"}).Inc()
	llmRequestDuration.With(prometheus.Labels{"model": c.model, "kind": "chat"}).Observe(duration.Seconds())

	generatedText := resp.Choices[0].Message.Content

	if resp.Usage.TotalTokens > 0 {
		llmPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.Usage.PromptTokens))
		llmCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.Usage.CompletionTokens))
		c.logger.Debug("LLM usage",
			zap.Int("prompt_tokens", resp.Usage.PromptTokens),
			zap.Int("completion_tokens", resp.Usage.CompletionTokens),
			zap.Int("total_tokens", resp.Usage.TotalTokens))
	} else {
		// Провайдер не вернул usage - оцениваем токены ответа по tiktoken.
		if tke, tkErr := tiktoken.EncodingForModel(c.model); tkErr == nil {
			llmCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(len(tke.Encode(generatedText, nil, nil))))
		}
	}

	c.logger.Debug("Ответ от LLM получен",
		zap.Duration("duration", duration),
		zap.Int("response_chars", len(generatedText)))

	return generatedText, nil
}

// createChatCompletionWithRetry выполняет запрос с повторами: rate-limit и
// 5xx ошибки повторяются с экспоненциальной задержкой, прочие ошибки API -
// один раз.
func (c *openAIClient) createChatCompletionWithRetry(ctx context.Context, request openaigo.ChatCompletionRequest) (openaigo.ChatCompletionResponse, error) {
	var lastErr error
	attempts := 0
	otherErrRetried := false

	for {
		resp, err := c.client.CreateChatCompletion(ctx, request)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return openaigo.ChatCompletionResponse{}, lastErr
		}

		if isRetryableStatus(err) {
			attempts++
			if attempts >= c.maxRetries {
				return openaigo.ChatCompletionResponse{}, fmt.Errorf("исчерпаны повторы (%d): %w", c.maxRetries, lastErr)
			}
			delay := RetryDelay(c.baseRetryDelay, attempts-1)
			c.logger.Warn("LLM API временно недоступен, повтор",
				zap.Int("attempt", attempts),
				zap.Duration("delay", delay),
				zap.Error(err))
			select {
			case <-ctx.Done():
				return openaigo.ChatCompletionResponse{}, ctx.Err()
			case <-time.After(delay):
			}
			continue
		}

		if !otherErrRetried {
			otherErrRetried = true
			c.logger.Warn("Ошибка LLM API, одиночный повтор", zap.Error(err))
			continue
		}
		return openaigo.ChatCompletionResponse{}, lastErr
	}
}

func (c *openAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	input := text
	if len(input) > maxEmbeddingInputChars {
		input = input[:maxEmbeddingInputChars]
	}

	startTime := time.Now()
	resp, err := c.client.CreateEmbeddings(ctx, openaigo.EmbeddingRequest{
		Model: openaigo.EmbeddingModel(c.embeddingModel),
		Input: []string{input},
	})
	duration := time.Since(startTime)

	if err != nil {
		llmRequestsTotal.With(prometheus.Labels{"model": c.embeddingModel, "kind": "embedding", "status": "error"}).Inc()
		return nil, fmt.Errorf("%w: эмбеддинг: %v", ErrGenerationFailed, err)
	}
	if len(resp.Data) == 0 {
		llmRequestsTotal.With(prometheus.Labels{"model": c.embeddingModel, "kind": "embedding", "status": "error_empty_response"}).Inc()
		return nil, ErrEmptyResponse
	}

	llmRequestsTotal.With(prometheus.Labels{"model": c.embeddingModel, "kind": "embedding", "status": "success"}).Inc()
	llmRequestDuration.With(prometheus.Labels{"model": c.embeddingModel, "kind": "embedding"}).Observe(duration.Seconds())

	return resp.Data[0].Embedding, nil
}

// RetryDelay возвращает задержку перед повтором номер attempt (с нуля):
// base * 2^attempt.
func RetryDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<attempt)
}

// isRetryableStatus определяет, стоит ли повторять запрос: rate limit (429)
// и серверные ошибки (5xx).
func isRetryableStatus(err error) bool {
	var apiErr *openaigo.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openaigo.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return false
}
