package pipeline

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"promptgen-server/internal/cache"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/llm"
	"promptgen-server/internal/utils"
)

const enhanceInputLimit = 1500

// enhancerStyleTemplates - стилевые добавки улучшателя. Намеренно
// отдельный, меньший набор, чем каталог стилевого движка: это быстрые
// пресеты для простого текста.
var enhancerStyleTemplates = map[string]string{
	"realistic":    "photorealistic, highly detailed, natural lighting, professional photography",
	"anime":        "anime style, vibrant colors, expressive characters, Studio Ghibli inspired",
	"manga":        "manga art style, black and white, dynamic lines, dramatic shading",
	"fantasy":      "fantasy art, magical atmosphere, ethereal lighting, detailed environment",
	"oil-painting": "oil painting style, classical art, rich colors, brushstroke texture",
	"watercolor":   "watercolor painting, soft colors, flowing edges, artistic",
	"comic":        "comic book style, bold outlines, dynamic poses, action panels",
	"cinematic":    "cinematic composition, dramatic lighting, movie still, widescreen",
}

// enhancerModelProfile - как улучшатель адаптирует текст под модель.
type enhancerModelProfile struct {
	PreferNaturalLanguage bool
	UseWeights            bool
	AvoidTerms            []string
	QualityTerms          []string
	Suffix                string
}

var enhancerModelProfiles = map[generator.ModelID]enhancerModelProfile{
	generator.ModelDalle3: {
		PreferNaturalLanguage: true,
		AvoidTerms:            []string{"photo of", "picture of"},
		QualityTerms:          []string{"highly detailed", "professional quality", "4K"},
	},
	generator.ModelMidjourney: {
		QualityTerms: []string{"intricate details", "8k uhd", "unreal engine"},
		Suffix:       " --q 2 --s 750 --v 6",
	},
	generator.ModelStableDiffusion: {
		UseWeights:   true,
		QualityTerms: []string{"masterpiece", "best quality", "highly detailed"},
	},
	generator.ModelFlux: {
		PreferNaturalLanguage: true,
		QualityTerms:          []string{"ultra detailed", "sharp focus", "professional"},
	},
}

// sdEmphasisWords - слова, усиливаемые весами при оптимизации под SD.
var sdEmphasisWords = []string{"detailed", "quality", "masterpiece", "beautiful", "intricate"}

// inputAnalysis - структура разбора исходного текста улучшателем.
type inputAnalysis struct {
	Subject     string `json:"subject"`
	Action      string `json:"action"`
	Setting     string `json:"setting"`
	Mood        string `json:"mood"`
	Lighting    string `json:"lighting,omitempty"`
	Composition string `json:"composition,omitempty"`
}

// Enhancement - результат работы улучшателя без негативного промпта:
// негатив считает вызывающая сторона через стратегию модели.
type Enhancement struct {
	Original     string   `json:"original"`
	Enhanced     string   `json:"enhanced"`
	Model        string   `json:"model"`
	Style        string   `json:"style,omitempty"`
	Improvements []string `json:"improvements"`
}

// Enhancer превращает простой текст в детальный промпт под конкретную
// модель: анализ, расширение через LLM, стиль, теги качества,
// модельная оптимизация. Результаты кэшируются.
type Enhancer struct {
	llm      llm.Client
	cache    cache.Cache
	registry *generator.Registry
	ttl      time.Duration
	logger   *zap.Logger
}

func NewEnhancer(llmClient llm.Client, c cache.Cache, registry *generator.Registry, ttl time.Duration, logger *zap.Logger) *Enhancer {
	return &Enhancer{
		llm:      llmClient,
		cache:    c,
		registry: registry,
		ttl:      ttl,
		logger:   logger.Named("PromptEnhancer"),
	}
}

// Enhance улучшает текст под модель. characterContext - карта
// имя -> фрагмент описания для включения в промпт.
func (e *Enhancer) Enhance(ctx context.Context, text string, modelID generator.ModelID, styleID string, characterContext map[string]string) (*Enhancement, error) {
	cacheKey := enhanceCacheKey(string(modelID), styleID, text)
	if cached, found := e.fromCache(ctx, cacheKey); found {
		enhanceCacheHitsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	enhanceCacheHitsTotal.WithLabelValues("miss").Inc()

	gen, err := e.registry.Generator(modelID)
	if err != nil {
		return nil, err
	}
	profile := enhancerModelProfiles[modelID]

	analysis := e.analyzeInput(ctx, text)
	expanded := e.expandDescription(ctx, text, analysis, profile)

	if template, ok := enhancerStyleTemplates[styleID]; ok {
		expanded = expanded + ", " + template
	}

	if len(characterContext) > 0 {
		expanded = expanded + ". Characters: " + joinCharacterContext(characterContext)
	}

	if len(profile.QualityTerms) > 0 {
		expanded = expanded + ", " + strings.Join(profile.QualityTerms, ", ")
	}

	optimized := optimizeForModel(expanded, modelID, profile)
	optimized = gen.Truncate(optimized)

	if profile.Suffix != "" {
		optimized = optimized + profile.Suffix
	}

	result := &Enhancement{
		Original:     text,
		Enhanced:     optimized,
		Model:        string(modelID),
		Style:        styleID,
		Improvements: listImprovements(text, optimized),
	}

	e.toCache(ctx, cacheKey, result)
	return result, nil
}

// analyzeInput разбирает исходный текст; при неудаче субъектом
// становится сам текст.
func (e *Enhancer) analyzeInput(ctx context.Context, text string) inputAnalysis {
	systemPrompt := "Analyze this text for visual prompt generation.\n" +
		"Identify:\n" +
		"- subject: main subject of the scene\n" +
		"- action: what's happening\n" +
		"- setting: where it takes place\n" +
		"- mood: emotional tone\n" +
		"- lighting: lighting conditions if mentioned\n" +
		"- composition: camera angle/framing if suggested\n" +
		"Return as JSON."

	fallback := inputAnalysis{Subject: text, Action: "unknown", Setting: "unspecified", Mood: "neutral"}

	response, err := e.llm.GenerateText(ctx, systemPrompt, clip(text, enhanceInputLimit), llm.Options{JSONMode: true})
	if err != nil {
		e.logger.Warn("анализ текста для улучшения не удался", zap.Error(err))
		return fallback
	}

	return utils.ParseOrDefault(e.logger, response, fallback)
}

// expandDescription расширяет текст деталями; при ошибке LLM улучшатель
// продолжает с исходным текстом.
func (e *Enhancer) expandDescription(ctx context.Context, text string, analysis inputAnalysis, profile enhancerModelProfile) string {
	var systemPrompt string
	if profile.PreferNaturalLanguage {
		systemPrompt = "Expand this text into a detailed visual description.\n" +
			"Write in natural language, focusing on:\n" +
			"- Visual details and appearance\n" +
			"- Environment and atmosphere\n" +
			"- Lighting and colors\n" +
			"- Composition and perspective\n" +
			"Keep it under 300 words."
	} else {
		systemPrompt = "Convert this text into a detailed prompt for AI image generation.\n" +
			"Use comma-separated descriptive tags:\n" +
			"- Subject and action\n" +
			"- Style and medium\n" +
			"- Lighting and atmosphere\n" +
			"- Quality modifiers\n" +
			"Keep it concise and descriptive."
	}

	analysisJSON, _ := json.Marshal(analysis)
	userPrompt := fmt.Sprintf("Text: %s\n\nAnalysis: %s", text, analysisJSON)

	response, err := e.llm.GenerateText(ctx, systemPrompt, userPrompt, llm.Options{MaxTokens: 400, Temperature: 0.7})
	if err != nil {
		e.logger.Warn("расширение описания не удалось, используем исходный текст", zap.Error(err))
		return text
	}
	return strings.TrimSpace(response)
}

// optimizeForModel применяет модельные правки текста.
func optimizeForModel(prompt string, modelID generator.ModelID, profile enhancerModelProfile) string {
	if profile.UseWeights {
		prompt = addSDWeights(prompt)
	}

	if modelID == generator.ModelMidjourney {
		for _, term := range []string{"a photo of", "an image of", "picture of"} {
			prompt = strings.ReplaceAll(prompt, term, "")
		}
	}

	for _, term := range profile.AvoidTerms {
		prompt = strings.ReplaceAll(prompt, term, "")
	}

	return strings.TrimSpace(prompt)
}

// addSDWeights усиливает ключевые слова весовым синтаксисом SD.
func addSDWeights(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, word := range sdEmphasisWords {
		if strings.Contains(lower, word) {
			prompt = strings.ReplaceAll(prompt, word, "("+word+":1.2)")
		}
	}
	return prompt
}

// listImprovements описывает, что изменилось, простыми эвристиками.
func listImprovements(original, enhanced string) []string {
	var improvements []string

	enhancedLower := strings.ToLower(enhanced)
	originalLower := strings.ToLower(original)

	if len(enhanced) > len(original)*3/2 {
		improvements = append(improvements, "Added detailed descriptions")
	}
	if strings.Contains(enhancedLower, "lighting") && !strings.Contains(originalLower, "lighting") {
		improvements = append(improvements, "Added lighting details")
	}
	if strings.Contains(enhancedLower, "style") {
		improvements = append(improvements, "Applied artistic style")
	}
	for _, q := range []string{"detailed", "quality", "professional"} {
		if strings.Contains(enhancedLower, q) {
			improvements = append(improvements, "Added quality modifiers")
			break
		}
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Optimized for target model")
	}
	return improvements
}

func joinCharacterContext(characterContext map[string]string) string {
	names := make([]string, 0, len(characterContext))
	for name := range characterContext {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+characterContext[name])
	}
	return strings.Join(parts, ", ")
}

func enhanceCacheKey(model, style, text string) string {
	sum := md5.Sum([]byte(text))
	return fmt.Sprintf("enhance:%s:%s:%s", model, style, hex.EncodeToString(sum[:])[:12])
}

func (e *Enhancer) fromCache(ctx context.Context, key string) (*Enhancement, bool) {
	raw, found, err := e.cache.Get(ctx, key)
	if err != nil || !found {
		if err != nil {
			e.logger.Warn("кэш улучшений недоступен", zap.Error(err))
		}
		return nil, false
	}

	var result Enhancement
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		e.logger.Warn("испорченная запись в кэше улучшений", zap.String("key", key))
		return nil, false
	}
	return &result, true
}

func (e *Enhancer) toCache(ctx context.Context, key string, result *Enhancement) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := e.cache.Set(ctx, key, string(raw), e.ttl); err != nil {
		e.logger.Warn("не удалось закэшировать улучшение", zap.Error(err))
	}
}
