package generator

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// base - общая часть всех стратегий: конфигурация, разрешенные параметры,
// усечение, теги качества, валидация.
type base struct {
	config ModelConfig

	mu         sync.Mutex
	lastParams map[string]any
}

func (b *base) Config() ModelConfig {
	return b.config
}

func (b *base) storeParams(params map[string]any) {
	b.mu.Lock()
	b.lastParams = params
	b.mu.Unlock()
}

func (b *base) LastParams() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make(map[string]any, len(b.lastParams))
	for k, v := range b.lastParams {
		result[k] = v
	}
	return result
}

// mergeParams объединяет дефолтные параметры модели с переданными.
func (b *base) mergeParams(custom map[string]any) map[string]any {
	params := make(map[string]any, len(b.config.DefaultParameters)+len(custom))
	for k, v := range b.config.DefaultParameters {
		params[k] = v
	}
	for k, v := range custom {
		params[k] = v
	}
	return params
}

// Truncate обрезает промпт до лимита модели: предпочитает последнюю
// запятую после 70% лимита, затем последний пробел после 80%, иначе
// жесткий срез.
func (b *base) Truncate(prompt string) string {
	maxLen := b.config.MaxPromptLength
	if len(prompt) <= maxLen {
		return prompt
	}

	truncated := prompt[:maxLen]

	lastComma := strings.LastIndex(truncated, ",")
	if float64(lastComma) > float64(maxLen)*0.7 {
		return strings.TrimSpace(truncated[:lastComma])
	}

	lastSpace := strings.LastIndex(truncated, " ")
	if float64(lastSpace) > float64(maxLen)*0.8 {
		return strings.TrimSpace(truncated[:lastSpace])
	}

	return strings.TrimSpace(truncated)
}

// addQualityTags добавляет теги качества в начало промпта по уровню
// low/medium/high/ultra/none.
func (b *base) addQualityTags(prompt, quality string) string {
	if len(b.config.QualityTags) == 0 {
		return prompt
	}

	var tags []string
	switch quality {
	case "low":
		tags = b.config.QualityTags[:min(1, len(b.config.QualityTags))]
	case "medium":
		tags = b.config.QualityTags[:min(3, len(b.config.QualityTags))]
	case "high":
		tags = b.config.QualityTags[:min(5, len(b.config.QualityTags))]
	case "ultra":
		tags = b.config.QualityTags
	case "none":
		tags = nil
	default:
		tags = b.config.QualityTags[:min(3, len(b.config.QualityTags))]
	}

	if len(tags) == 0 {
		return prompt
	}
	return strings.Join(tags, ", ") + ", " + prompt
}

func (b *base) Validate(prompt string) (bool, []string) {
	var issues []string

	if strings.TrimSpace(prompt) == "" {
		issues = append(issues, "Prompt is empty")
		return false, issues
	}

	if len(prompt) > b.config.MaxPromptLength {
		issues = append(issues, fmt.Sprintf("Prompt exceeds max length (%d > %d)", len(prompt), b.config.MaxPromptLength))
	}

	if len(prompt) < 10 {
		issues = append(issues, "Prompt is too short (less than 10 characters)")
	}

	if b.config.ModelID != ModelStableDiffusion {
		for _, char := range []string{"<", ">", "{", "}", "|", "\\"} {
			if strings.Contains(prompt, char) {
				issues = append(issues, "Prompt contains potentially problematic character: "+char)
			}
		}
	}

	return len(issues) == 0, issues
}

// dedupe убирает дубликаты без учета регистра, сохраняя порядок.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var result []string
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)
	}
	return result
}

// paramString приводит значение параметра к строке ("" если нет).
func paramString(params map[string]any, key string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// paramInt приводит значение параметра к int (0 если нет или не число).
func paramInt(params map[string]any, key string) int {
	v, ok := params[key]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func paramBool(params map[string]any, key string) bool {
	v, ok := params[key]
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	return isBool && b
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
