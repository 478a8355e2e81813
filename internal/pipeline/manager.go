// Package pipeline оркестрирует генерацию промптов: анализ страницы,
// профили сущностей, визуальные моменты и сборка финальных промптов
// под целевую модель.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptgen-server/internal/bookctx"
	"promptgen-server/internal/config"
	"promptgen-server/internal/consistency"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/models"
	"promptgen-server/internal/style"
	"promptgen-server/internal/templates"
)

// modelStyleSuffixes - финальная добавка к промпту страницы по модели.
var modelStyleSuffixes = map[generator.ModelID]string{
	generator.ModelDalle3:          ", highly detailed, professional quality",
	generator.ModelMidjourney:      " --q 2 --s 750",
	generator.ModelStableDiffusion: ", masterpiece, best quality, highly detailed",
	generator.ModelFlux:            ", ultra high quality, photorealistic",
}

// aspectRatioByComposition - соотношение сторон по композиции момента.
var aspectRatioByComposition = map[string]string{
	"portrait":  "2:3",
	"landscape": "3:2",
	"square":    "1:1",
	"wide":      "16:9",
	"tall":      "9:16",
}

// compositionByMomentType - композиция по умолчанию, когда AI ее не
// предложил.
var compositionByMomentType = map[string]string{
	"establishing": "landscape",
	"action":       "wide",
	"emotion":      "portrait",
	"reveal":       "portrait",
	"dialogue":     "square",
}

// styleByMood - подсказка стиля по настроению страницы.
var styleByMood = map[string]string{
	"dark":        "gothic",
	"ominous":     "gothic",
	"romantic":    "impressionism",
	"tense":       "cinematic",
	"mysterious":  "noir",
	"magical":     "fantasy",
	"melancholic": "watercolor",
}

// Manager связывает анализатор, движки и хранилище контекстов в единый
// пайплайн генерации. Все зависимости инжектируются при старте.
type Manager struct {
	registry    *generator.Registry
	styles      *style.Engine
	templates   *templates.Engine
	consistency *consistency.Engine
	store       *bookctx.Store
	analyzer    *Analyzer
	enhancer    *Enhancer
	cfg         config.PipelineConfig
	logger      *zap.Logger
}

func NewManager(
	registry *generator.Registry,
	styles *style.Engine,
	tpls *templates.Engine,
	consistencyEngine *consistency.Engine,
	store *bookctx.Store,
	analyzer *Analyzer,
	enhancer *Enhancer,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		registry:    registry,
		styles:      styles,
		templates:   tpls,
		consistency: consistencyEngine,
		store:       store,
		analyzer:    analyzer,
		enhancer:    enhancer,
		cfg:         cfg,
		logger:      logger.Named("PipelineManager"),
	}
}

// GeneratePromptsForPage - главный метод пайплайна: страница текста
// превращается в набор промптов для целевой модели, контекст книги
// обновляется атомарно для bookID.
func (m *Manager) GeneratePromptsForPage(ctx context.Context, req *models.PageRequest) (*models.PageResult, error) {
	start := time.Now()

	modelID, err := m.resolveModel(req.TargetModel)
	if err != nil {
		pagesProcessedTotal.WithLabelValues(req.TargetModel, "error").Inc()
		return nil, err
	}
	gen, err := m.registry.Generator(modelID)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Генерация промптов для страницы",
		zap.String("bookID", req.BookID),
		zap.Int("page", req.PageNumber),
		zap.String("model", string(modelID)),
	)

	analysis := m.analyzer.AnalyzePage(ctx, req.PageContent)
	extracted := m.analyzer.ExtractCharacters(ctx, req.PageContent)

	// Профили для еще не известных имен синтезируются вне блокировки
	// книги: это LLM-вызовы.
	newProfiles, err := m.synthesizeProfiles(ctx, req, extracted)
	if err != nil {
		return nil, err
	}

	maxMoments := req.MaxPrompts
	if maxMoments <= 0 {
		maxMoments = m.cfg.MaxMoments
	}
	moments := m.analyzer.IdentifyMoments(ctx, req.PageContent, analysis, maxMoments)

	var prompts []models.GeneratedPrompt
	updated, err := m.store.Update(ctx, req.BookID, func(bctx *models.BookContext) error {
		bctx.CurrentChapter = req.ChapterNumber
		bctx.CurrentPage = req.PageNumber
		if bctx.DefaultStyle == "" && req.Style != "" {
			bctx.DefaultStyle = req.Style
		}

		for _, profile := range newProfiles {
			if bctx.GetCharacter(profile.Name) == nil {
				bctx.AddCharacter(profile)
			}
		}

		styleID := req.Style
		if styleID == "" {
			styleID = bctx.DefaultStyle
		}

		prompts = make([]models.GeneratedPrompt, 0, len(moments))
		for _, moment := range moments {
			prompts = append(prompts, m.buildMomentPrompt(gen, modelID, moment, bctx, req, analysis, styleID))
		}
		return nil
	})
	if err != nil {
		pagesProcessedTotal.WithLabelValues(string(modelID), "error").Inc()
		return nil, fmt.Errorf("обработка страницы книги %s: %w", req.BookID, err)
	}

	characterContext := make(map[string]*models.CharacterProfile, len(extracted))
	for _, name := range extracted {
		if profile := updated.GetCharacter(name); profile != nil {
			characterContext[profile.Name] = profile
		}
	}

	pagesProcessedTotal.WithLabelValues(string(modelID), "ok").Inc()
	promptsGeneratedTotal.WithLabelValues(string(modelID)).Add(float64(len(prompts)))
	pageProcessingDuration.WithLabelValues(string(modelID)).Observe(time.Since(start).Seconds())

	return &models.PageResult{
		BookID:           req.BookID,
		PageNumber:       req.PageNumber,
		Prompts:          prompts,
		Analysis:         analysis,
		CharacterContext: characterContext,
		TargetModel:      string(modelID),
		Style:            req.Style,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// EnhanceExistingPrompt улучшает готовый промпт под модель, подмешивая
// фрагменты перечисленных сущностей книги.
func (m *Manager) EnhanceExistingPrompt(ctx context.Context, bookID, prompt, model, styleID string, entityNames []string) (*models.EnhanceResult, error) {
	modelID, err := m.resolveModel(model)
	if err != nil {
		return nil, err
	}
	gen, err := m.registry.Generator(modelID)
	if err != nil {
		return nil, err
	}

	characterContext := map[string]string{}
	if bookID != "" && len(entityNames) > 0 {
		bctx, err := m.store.Get(ctx, bookID)
		if err != nil {
			return nil, err
		}
		for _, name := range entityNames {
			if profile := bctx.GetCharacter(name); profile != nil {
				characterContext[profile.Name] = profile.ToPromptFragment()
			}
		}
	}

	enhancement, err := m.enhancer.Enhance(ctx, prompt, modelID, styleID, characterContext)
	if err != nil {
		return nil, err
	}

	return &models.EnhanceResult{
		OriginalPrompt: prompt,
		EnhancedPrompt: enhancement.Enhanced,
		NegativePrompt: gen.NegativePrompt("", m.stylePreset(styleID), nil),
		Improvements:   enhancement.Improvements,
		TargetModel:    string(modelID),
		Style:          styleID,
	}, nil
}

// AnalyzePage выставляет анализ страницы как самостоятельную операцию.
func (m *Manager) AnalyzePage(ctx context.Context, text string) models.PageAnalysis {
	return m.analyzer.AnalyzePage(ctx, text)
}

// CheckEntityConsistency прогоняет промпт через движок консистентности
// для конкретной сущности книги.
func (m *Manager) CheckEntityConsistency(ctx context.Context, prompt, bookID string, entityType models.EntityType, entityID string) (string, error) {
	return m.consistency.EnsureConsistency(ctx, prompt, bookID, string(entityType), entityID)
}

// GetEntityConsistency возвращает профиль персонажа книги или nil.
func (m *Manager) GetEntityConsistency(ctx context.Context, bookID, name string) (*models.CharacterProfile, error) {
	bctx, err := m.store.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return bctx.GetCharacter(name), nil
}

// SetEntityConsistency фиксирует профиль персонажа в контексте книги.
func (m *Manager) SetEntityConsistency(ctx context.Context, bookID string, profile *models.CharacterProfile) error {
	profile.BookID = bookID
	_, err := m.store.Update(ctx, bookID, func(bctx *models.BookContext) error {
		bctx.AddCharacter(profile)
		return nil
	})
	return err
}

// SuggestStyleForMood подбирает стиль каталога под настроение страницы.
func (m *Manager) SuggestStyleForMood(mood string) string {
	if styleID, ok := styleByMood[strings.ToLower(mood)]; ok && m.styles.Has(styleID) {
		return styleID
	}
	return "cinematic"
}

func (m *Manager) synthesizeProfiles(ctx context.Context, req *models.PageRequest, extracted []string) ([]*models.CharacterProfile, error) {
	bctx, err := m.store.Get(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	var profiles []*models.CharacterProfile
	for _, name := range extracted {
		if bctx.GetCharacter(name) != nil {
			continue
		}
		profiles = append(profiles, m.analyzer.CreateCharacterProfile(ctx, name, req.PageContent, req.BookID))
	}
	return profiles, nil
}

// buildMomentPrompt собирает промпт одного визуального момента. Чистая
// сборка без LLM-вызовов - выполняется под блокировкой книги.
func (m *Manager) buildMomentPrompt(
	gen generator.Generator,
	modelID generator.ModelID,
	moment models.VisualMoment,
	bctx *models.BookContext,
	req *models.PageRequest,
	analysis models.PageAnalysis,
	styleID string,
) models.GeneratedPrompt {
	description := moment.Description
	if description == "" {
		description = m.templates.FillBySceneType(moment.Type, map[string]string{
			"atmosphere": analysis.Atmosphere,
			"location":   analysis.Setting,
		})
	}

	parts := []string{description}

	for _, name := range moment.Characters {
		profile := bctx.GetCharacter(name)
		if profile == nil {
			continue
		}
		parts = append(parts, profile.Name+": "+profile.ToPromptFragment())
		profile.GenerationCount++
		profile.IsEstablished = true
	}

	parts = append(parts, moment.SceneElements...)

	if analysis.Atmosphere != "" {
		parts = append(parts, analysis.Atmosphere+" atmosphere")
	}
	if analysis.TimeOfDay != "" {
		parts = append(parts, analysis.TimeOfDay+" lighting")
	}
	if styleID != "" {
		parts = append(parts, styleID+" style")
	}
	if req.AuthorHint != "" {
		parts = append(parts, req.AuthorHint)
	}

	prompt := gen.Truncate(strings.Join(parts, ", ")) + modelStyleSuffixes[modelID]

	negative := ""
	if req.IncludeNegativePrompt {
		negative = gen.NegativePrompt(moment.Type, m.stylePreset(styleID), nil)
	}

	composition := moment.SuggestedComposition
	if composition == "" {
		if suggested, ok := compositionByMomentType[moment.Type]; ok {
			composition = suggested
		} else {
			composition = "square"
		}
	}
	aspectRatio, ok := aspectRatioByComposition[composition]
	if !ok {
		aspectRatio = "1:1"
	}

	momentType := moment.Type
	if momentType == "" {
		momentType = "establishing"
	}
	importance := moment.Importance
	if importance == "" {
		importance = "medium"
	}

	return models.GeneratedPrompt{
		ID:                   uuid.NewString(),
		Prompt:               prompt,
		NegativePrompt:       negative,
		MomentDescription:    description,
		MomentType:           momentType,
		Importance:           importance,
		Characters:           moment.Characters,
		SceneElements:        moment.SceneElements,
		SuggestedAspectRatio: aspectRatio,
		SuggestedParameters:  modelParameters(modelID, aspectRatio),
	}
}

func (m *Manager) resolveModel(name string) (generator.ModelID, error) {
	if name == "" {
		name = m.cfg.DefaultModel
	}
	return generator.ResolveModelID(name)
}

func (m *Manager) stylePreset(styleID string) *style.Preset {
	if preset, ok := m.styles.Preset(styleID); ok {
		return &preset
	}
	return nil
}

// modelParameters - рекомендованные параметры вызова модели для
// заданного соотношения сторон.
func modelParameters(modelID generator.ModelID, aspectRatio string) map[string]any {
	params := map[string]any{"aspect_ratio": aspectRatio}

	switch modelID {
	case generator.ModelDalle3:
		params["quality"] = "hd"
		params["style"] = "vivid"
		sizes := map[string]string{
			"1:1":  "1024x1024",
			"2:3":  "1024x1792",
			"3:2":  "1792x1024",
			"16:9": "1792x1024",
			"9:16": "1024x1792",
		}
		if size, ok := sizes[aspectRatio]; ok {
			params["size"] = size
		} else {
			params["size"] = "1024x1024"
		}

	case generator.ModelMidjourney:
		arSuffixes := map[string]string{"1:1": "--ar 1:1", "2:3": "--ar 2:3", "3:2": "--ar 3:2"}
		if suffix, ok := arSuffixes[aspectRatio]; ok {
			params["ar_suffix"] = suffix
		} else {
			params["ar_suffix"] = "--ar 1:1"
		}
		params["quality"] = "--q 2"
		params["stylize"] = "--s 750"

	case generator.ModelStableDiffusion:
		params["steps"] = 30
		params["cfg_scale"] = 7.5
		sizes := map[string][]int{
			"1:1": {1024, 1024},
			"2:3": {832, 1216},
			"3:2": {1216, 832},
		}
		if size, ok := sizes[aspectRatio]; ok {
			params["size"] = size
		} else {
			params["size"] = []int{1024, 1024}
		}

	case generator.ModelFlux:
		params["guidance_scale"] = 3.5
		params["num_inference_steps"] = 50
	}

	return params
}
