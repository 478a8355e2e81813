package utils

import (
	"encoding/json"

	"go.uber.org/zap"
)

// ParseOrDefault разбирает сырой ответ AI модели в T. При неудаче
// пишет warning с фрагментом ответа и возвращает def - деградация
// видна в логах, а пайплайн продолжает работу.
func ParseOrDefault[T any](logger *zap.Logger, raw string, def T) T {
	cleaned := ExtractJSONContent(raw)

	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		logger.Warn("не удалось разобрать ответ AI, используем значение по умолчанию",
			zap.Error(err),
			zap.String("response_excerpt", excerpt(raw, 200)),
		)
		return def
	}
	return out
}

func excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
