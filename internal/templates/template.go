package templates

// Type - тип шаблона композиции кадра.
type Type string

const (
	TypeCharacterPortrait Type = "character_portrait"
	TypeCharacterFullBody Type = "character_full_body"
	TypeCharacterAction   Type = "character_action"
	TypeCharacterGroup    Type = "character_group"

	TypeSceneEstablishing Type = "scene_establishing"
	TypeSceneInterior     Type = "scene_interior"
	TypeSceneExterior     Type = "scene_exterior"

	TypeActionBattle Type = "action_battle"
	TypeActionChase  Type = "action_chase"

	TypeEmotionalIntimate Type = "emotional_intimate"
	TypeEmotionalDramatic Type = "emotional_dramatic"

	TypeDialogueTwoShot      Type = "dialogue_two_shot"
	TypeDialogueOverShoulder Type = "dialogue_over_shoulder"

	TypeObjectFocus Type = "object_focus"

	TypeAtmospheric        Type = "atmospheric"
	TypeAtmosphericWeather Type = "atmospheric_weather"
)

// Template - шаблон промпта с плейсхолдерами вида {variable} и
// рекомендациями по композиции кадра.
type Template struct {
	ID          string
	Name        string
	Type        Type
	Description string

	// Структура промпта с плейсхолдерами
	Structure string
	// Переменные, которые нужно заполнить
	Variables []string
	// Значения по умолчанию
	Defaults map[string]string

	ShotSuggestion     string
	AngleSuggestion    string
	LightingSuggestion string
	CompositionNotes   string

	Tags []string
}

// CompositionSuggestions - рекомендации по построению кадра.
type CompositionSuggestions struct {
	Shot     string `json:"shot"`
	Angle    string `json:"angle"`
	Lighting string `json:"lighting"`
	Notes    string `json:"notes"`
}

// Info - краткое описание шаблона для API-ответов.
type Info struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Description string   `json:"description"`
	Variables   []string `json:"variables"`
	Tags        []string `json:"tags"`
}
