package models

// PageAnalysis - результат AI-анализа текста страницы.
type PageAnalysis struct {
	Mood       string   `json:"mood"`
	Setting    string   `json:"setting"`
	KeyActions []string `json:"key_actions"`
	TimeOfDay  string   `json:"time_of_day,omitempty"`
	Weather    string   `json:"weather,omitempty"`
	Atmosphere string   `json:"atmosphere"`
}

// VisualMoment - один иллюстрируемый момент, извлеченный из текста.
type VisualMoment struct {
	Description          string   `json:"description"`
	Type                 string   `json:"type"` // action, emotion, establishing, reveal, dialogue
	Importance           string   `json:"importance"`
	Characters           []string `json:"characters"`
	SceneElements        []string `json:"scene_elements"`
	SuggestedComposition string   `json:"suggested_composition"` // portrait, landscape, square, wide, tall
}

// GeneratedPrompt - неизменяемый результат генерации для одного
// визуального момента.
type GeneratedPrompt struct {
	ID                   string         `json:"id"`
	Prompt               string         `json:"prompt"`
	NegativePrompt       string         `json:"negative_prompt,omitempty"`
	MomentDescription    string         `json:"moment_description"`
	MomentType           string         `json:"moment_type"`
	Importance           string         `json:"importance"`
	Characters           []string       `json:"characters"`
	SceneElements        []string       `json:"scene_elements"`
	SuggestedAspectRatio string         `json:"suggested_aspect_ratio"`
	SuggestedParameters  map[string]any `json:"suggested_parameters"`
}

// PageRequest - запрос генерации промптов для страницы книги.
type PageRequest struct {
	BookID        string `json:"book_id"`
	BookTitle     string `json:"book_title,omitempty"`
	BookGenre     string `json:"book_genre,omitempty"`
	ChapterNumber int    `json:"chapter_number"`
	PageNumber    int    `json:"page_number"`
	PageContent   string `json:"page_content"`

	TargetModel           string `json:"target_model,omitempty"`
	Style                 string `json:"style,omitempty"`
	MaxPrompts            int    `json:"max_prompts,omitempty"`
	IncludeNegativePrompt bool   `json:"include_negative_prompt,omitempty"`
	AuthorHint            string `json:"author_hint,omitempty"`
}

// PageResult - результат обработки страницы.
type PageResult struct {
	BookID           string                       `json:"book_id"`
	PageNumber       int                          `json:"page_number"`
	Prompts          []GeneratedPrompt            `json:"prompts"`
	Analysis         PageAnalysis                 `json:"analysis"`
	CharacterContext map[string]*CharacterProfile `json:"character_context"`
	TargetModel      string                       `json:"target_model"`
	Style            string                       `json:"style,omitempty"`
	ProcessingTimeMs int64                        `json:"processing_time_ms"`
}

// EnhanceResult - результат улучшения существующего промпта.
type EnhanceResult struct {
	OriginalPrompt string   `json:"original_prompt"`
	EnhancedPrompt string   `json:"enhanced_prompt"`
	NegativePrompt string   `json:"negative_prompt,omitempty"`
	Improvements   []string `json:"improvements"`
	TargetModel    string   `json:"target_model"`
	Style          string   `json:"style,omitempty"`
}
