package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse возвращается когда модель вернула пустой ответ.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Options - параметры одного запроса генерации.
type Options struct {
	// JSONMode принуждает модель вернуть валидный JSON-объект.
	JSONMode    bool
	MaxTokens   int
	Temperature float32
}

// Client - абстракция над LLM-провайдером: генерация текста и эмбеддинги.
type Client interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}
