package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"promptgen-server/internal/llm"
	"promptgen-server/internal/models"
	"promptgen-server/internal/utils"
)

const (
	// analyzeTextLimit - сколько символов страницы уходит в анализ.
	analyzeTextLimit = 3000
	// profileTextLimit - сколько символов контекста уходит в создание профиля.
	profileTextLimit = 2000
)

// Analyzer извлекает из текста страницы структуру для генерации:
// настроение, персонажей, визуальные моменты. Все ответы AI разбираются
// через деградацию к дефолтам - анализ никогда не роняет пайплайн.
type Analyzer struct {
	llm    llm.Client
	logger *zap.Logger
}

func NewAnalyzer(llmClient llm.Client, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		llm:    llmClient,
		logger: logger.Named("ContextAnalyzer"),
	}
}

// AnalyzePage определяет настроение, сеттинг и атмосферу страницы.
func (a *Analyzer) AnalyzePage(ctx context.Context, text string) models.PageAnalysis {
	systemPrompt := "Analyze this text and extract:\n" +
		"- mood: overall emotional tone\n" +
		"- setting: location/environment\n" +
		"- key_actions: main actions happening\n" +
		"- time_of_day: if mentioned\n" +
		"- weather: if mentioned\n" +
		"- atmosphere: descriptive atmosphere\n" +
		"Return as JSON."

	fallback := models.PageAnalysis{
		Mood:       "neutral",
		Setting:    "unspecified",
		KeyActions: []string{},
		Atmosphere: "general",
	}

	response, err := a.llm.GenerateText(ctx, systemPrompt, clip(text, analyzeTextLimit), llm.Options{JSONMode: true})
	if err != nil {
		a.logger.Warn("анализ страницы не удался, используем нейтральный", zap.Error(err))
		return fallback
	}

	return utils.ParseOrDefault(a.logger, response, fallback)
}

// ExtractCharacters возвращает имена персонажей, упомянутых в тексте.
func (a *Analyzer) ExtractCharacters(ctx context.Context, text string) []string {
	systemPrompt := "Extract all character names mentioned in this text.\n" +
		"Return as JSON array of strings with just the names.\n" +
		"Include only proper character names, not pronouns or generic terms."

	response, err := a.llm.GenerateText(ctx, systemPrompt, clip(text, analyzeTextLimit), llm.Options{JSONMode: true})
	if err != nil {
		a.logger.Warn("извлечение персонажей не удалось", zap.Error(err))
		return nil
	}

	raw := utils.ParseOrDefault(a.logger, response, []string{})
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// CreateCharacterProfile строит профиль персонажа по окружающему тексту.
// Неразобранный ответ деградирует до профиля из одного имени.
func (a *Analyzer) CreateCharacterProfile(ctx context.Context, name, contextText, bookID string) *models.CharacterProfile {
	systemPrompt := fmt.Sprintf(
		"Based on this text, extract visual details about the character %q.\n"+
			"Return JSON with these fields (use empty string if not mentioned):\n"+
			"- appearance: general description\n"+
			"- hair: hair color and style\n"+
			"- eyes: eye color\n"+
			"- age: approximate age or age group\n"+
			"- build: body type/build\n"+
			"- clothing: what they're wearing\n"+
			"- distinguishing_features: any unique features",
		name,
	)

	profile := &models.CharacterProfile{Name: name, BookID: bookID, Appearance: name}

	response, err := a.llm.GenerateText(ctx, systemPrompt, clip(contextText, profileTextLimit), llm.Options{JSONMode: true})
	if err != nil {
		a.logger.Warn("создание профиля персонажа не удалось, используем имя",
			zap.String("name", name), zap.Error(err))
		return profile
	}

	extracted := utils.ParseOrDefault(a.logger, response, map[string]string{})
	if len(extracted) == 0 {
		return profile
	}

	if appearance := extracted["appearance"]; appearance != "" {
		profile.Appearance = appearance
	}
	profile.Hair = extracted["hair"]
	profile.Eyes = extracted["eyes"]
	profile.Age = extracted["age"]
	profile.Build = extracted["build"]
	profile.Clothing = extracted["clothing"]
	profile.DistinguishingFeatures = extracted["distinguishing_features"]
	return profile
}

// IdentifyMoments извлекает до maxMoments визуальных моментов страницы.
// При неудаче возвращает один обобщенный establishing-момент.
func (a *Analyzer) IdentifyMoments(ctx context.Context, text string, analysis models.PageAnalysis, maxMoments int) []models.VisualMoment {
	if maxMoments < 1 {
		maxMoments = 1
	}

	systemPrompt := fmt.Sprintf(
		"Identify the most visually impactful moments in this text.\n"+
			"Return JSON array with maximum %d moments.\n"+
			"Each moment should have:\n"+
			"- description: what's happening visually\n"+
			"- type: action, emotion, establishing, reveal, dialogue\n"+
			"- importance: high, medium, low\n"+
			"- characters: list of character names involved\n"+
			"- scene_elements: key visual elements (objects, environment details)\n"+
			"- suggested_composition: portrait, landscape, or square",
		maxMoments,
	)

	fallback := []models.VisualMoment{{
		Description:          "Scene from the text",
		Type:                 "establishing",
		Importance:           "medium",
		Characters:           []string{},
		SceneElements:        []string{},
		SuggestedComposition: "square",
	}}

	analysisJSON, _ := json.Marshal(analysis)
	userPrompt := fmt.Sprintf("Text: %s\n\nAnalysis: %s", clip(text, analyzeTextLimit), analysisJSON)

	response, err := a.llm.GenerateText(ctx, systemPrompt, userPrompt, llm.Options{JSONMode: true})
	if err != nil {
		a.logger.Warn("извлечение визуальных моментов не удалось", zap.Error(err))
		return fallback
	}

	moments := utils.ParseOrDefault(a.logger, response, fallback)
	if len(moments) == 0 {
		return fallback
	}
	if len(moments) > maxMoments {
		moments = moments[:maxMoments]
	}
	return moments
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
