package style

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Engine применяет художественные стили к промптам: одиночное применение с
// интенсивностью, комбинирование с весами, стиль-специфичные негативы.
type Engine struct {
	presets map[string]Preset
	order   []string
	logger  *zap.Logger
}

// NewEngine создает движок со встроенным каталогом. Дополнительные стили
// (extra) перекрывают встроенные при совпадении ID.
func NewEngine(logger *zap.Logger, extra ...Preset) *Engine {
	e := &Engine{
		presets: make(map[string]Preset),
		logger:  logger.Named("StyleEngine"),
	}
	for _, p := range builtinPresets() {
		e.add(p)
	}
	for _, p := range extra {
		e.add(p)
	}
	e.logger.Debug("Каталог стилей загружен", zap.Int("presets", len(e.presets)))
	return e
}

func (e *Engine) add(p Preset) {
	if _, exists := e.presets[p.ID]; !exists {
		e.order = append(e.order, p.ID)
	}
	e.presets[p.ID] = p
}

// Apply применяет стиль с заданной интенсивностью (0.0 - 1.0). Неизвестный
// стиль возвращает промпт без изменений. Чем ниже интенсивность, тем меньше
// элементов суффикса попадает в результат.
func (e *Engine) Apply(prompt, styleID string, intensity float64) string {
	preset, ok := e.presets[styleID]
	if !ok {
		e.logger.Debug("Неизвестный стиль, промпт не изменен", zap.String("style", styleID))
		return prompt
	}

	suffixParts := strings.Split(preset.Suffix, ", ")

	var usedSuffix string
	switch {
	case intensity >= 0.8:
		usedSuffix = preset.Suffix
	case intensity >= 0.5:
		count := int(math.Ceil(float64(len(suffixParts)) * 0.6))
		if count < 2 {
			count = 2
		}
		if count > len(suffixParts) {
			count = len(suffixParts)
		}
		usedSuffix = strings.Join(suffixParts[:count], ", ")
	case intensity >= 0.3:
		count := len(suffixParts)
		if count > 3 {
			count = 3
		}
		usedSuffix = strings.Join(suffixParts[:count], ", ")
	default:
		if len(suffixParts) > 0 {
			usedSuffix = suffixParts[0]
		}
	}

	var parts []string
	if preset.Prefix != "" {
		parts = append(parts, preset.Prefix)
	}
	parts = append(parts, prompt)
	if usedSuffix != "" {
		parts = append(parts, usedSuffix)
	}
	return strings.Join(parts, " ")
}

// Combine комбинирует несколько стилей с весами. Без весов стили получают
// равные доли; веса нормализуются к сумме 1. Стили с весом ниже 0.15
// пропускаются, префикс включается при весе выше 0.3.
func (e *Engine) Combine(prompt string, styleIDs []string, weights []float64) string {
	if len(styleIDs) == 0 {
		return prompt
	}

	if len(weights) == 0 {
		weights = make([]float64, len(styleIDs))
		for i := range weights {
			weights[i] = 1.0 / float64(len(styleIDs))
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}

	var combinedParts []string
	var combinedPrefix []string

	for i, styleID := range styleIDs {
		if i >= len(weights) {
			break
		}
		weight := weights[i]
		preset, ok := e.presets[styleID]
		if !ok || weight < 0.15 {
			continue
		}

		suffixParts := strings.Split(preset.Suffix, ", ")
		// *2 для лучшего покрытия элементов при малых весах
		numParts := int(float64(len(suffixParts)) * weight * 2)
		if numParts < 1 {
			numParts = 1
		}
		if numParts > len(suffixParts) {
			numParts = len(suffixParts)
		}
		combinedParts = append(combinedParts, suffixParts[:numParts]...)

		if preset.Prefix != "" && weight > 0.3 {
			combinedPrefix = append(combinedPrefix, preset.Prefix)
		}
	}

	// Дедупликация без учета регистра с сохранением порядка
	seen := make(map[string]struct{})
	var uniqueParts []string
	for _, part := range combinedParts {
		key := strings.ToLower(part)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniqueParts = append(uniqueParts, part)
	}

	var resultParts []string
	if len(combinedPrefix) > 0 {
		resultParts = append(resultParts, strings.Join(combinedPrefix, " "))
	}
	resultParts = append(resultParts, prompt)
	if len(uniqueParts) > 0 {
		resultParts = append(resultParts, strings.Join(uniqueParts, ", "))
	}
	return strings.Join(resultParts, " ")
}

// NegativesFor возвращает стиль-специфичные негативы, пустой срез для
// неизвестного стиля.
func (e *Engine) NegativesFor(styleID string) []string {
	preset, ok := e.presets[styleID]
	if !ok {
		return nil
	}
	return preset.NegativeAdditions
}

// RecommendedModels возвращает рекомендуемые модели; для неизвестного стиля -
// полный список.
func (e *Engine) RecommendedModels(styleID string) []string {
	preset, ok := e.presets[styleID]
	if !ok {
		return []string{"midjourney", "stable-diffusion", "dalle3", "flux"}
	}
	if len(preset.RecommendedModels) == 0 {
		return []string{"midjourney"}
	}
	return preset.RecommendedModels
}

// Preset возвращает стиль по ID.
func (e *Engine) Preset(styleID string) (Preset, bool) {
	p, ok := e.presets[styleID]
	return p, ok
}

// Has сообщает, известен ли стиль.
func (e *Engine) Has(styleID string) bool {
	_, ok := e.presets[styleID]
	return ok
}

// List возвращает все стили в порядке регистрации.
func (e *Engine) List() []Preset {
	result := make([]Preset, 0, len(e.order))
	for _, id := range e.order {
		result = append(result, e.presets[id])
	}
	return result
}

// ByCategory возвращает стили категории.
func (e *Engine) ByCategory(category Category) []Preset {
	var result []Preset
	for _, id := range e.order {
		if e.presets[id].Category == category {
			result = append(result, e.presets[id])
		}
	}
	return result
}

// Search ищет стили по подстроке в названии, описании и тегах.
func (e *Engine) Search(query string) []Preset {
	queryLower := strings.ToLower(query)
	var result []Preset
	for _, id := range e.order {
		p := e.presets[id]
		if strings.Contains(strings.ToLower(p.Name), queryLower) ||
			strings.Contains(strings.ToLower(p.Description), queryLower) {
			result = append(result, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), queryLower) {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

// Catalog группирует краткие описания стилей по категориям.
func (e *Engine) Catalog() map[Category][]Summary {
	result := make(map[Category][]Summary)
	for _, category := range Categories() {
		presets := e.ByCategory(category)
		summaries := make([]Summary, 0, len(presets))
		for _, p := range presets {
			summaries = append(summaries, p.Summary())
		}
		sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
		result[category] = summaries
	}
	return result
}
