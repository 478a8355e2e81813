package models

import "strings"

// EntityType - тип отслеживаемой сущности.
type EntityType string

const (
	EntityCharacter EntityType = "character"
	EntityScene     EntityType = "scene"
	EntityObject    EntityType = "object"
)

// CharacterProfile - профиль персонажа для визуальной консистентности.
// Используется при генерации промптов для поддержания одинаковой
// внешности персонажа на разных страницах.
type CharacterProfile struct {
	Name   string `json:"name"`
	BookID string `json:"book_id"`

	// Физические характеристики
	Gender string `json:"gender,omitempty"`
	Age    string `json:"age,omitempty"`
	Height string `json:"height,omitempty"`
	Build  string `json:"build,omitempty"`

	// Внешность
	Appearance     string `json:"appearance,omitempty"`
	Hair           string `json:"hair,omitempty"`
	Eyes           string `json:"eyes,omitempty"`
	Skin           string `json:"skin,omitempty"`
	FacialFeatures string `json:"facial_features,omitempty"`

	// Одежда и особенности
	Clothing               string `json:"clothing,omitempty"`
	Accessories            string `json:"accessories,omitempty"`
	DistinguishingFeatures string `json:"distinguishing_features,omitempty"`

	// Консистентность
	BasePrompt      string `json:"base_prompt,omitempty"` // зафиксированный автором промпт
	GenerationCount int    `json:"generation_count"`
	IsEstablished   bool   `json:"is_established"`
}

// ToPromptFragment генерирует фрагмент промпта для вставки в сцену.
// BasePrompt имеет абсолютный приоритет и возвращается как есть.
func (p *CharacterProfile) ToPromptFragment() string {
	if p.BasePrompt != "" {
		return p.BasePrompt
	}

	var parts []string
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Age != "" {
		parts = append(parts, p.Age)
	}
	if p.Gender != "" {
		parts = append(parts, p.Gender)
	}
	if p.Build != "" {
		parts = append(parts, p.Build+" build")
	}
	if p.Hair != "" {
		parts = append(parts, p.Hair+" hair")
	}
	if p.Eyes != "" {
		parts = append(parts, p.Eyes+" eyes")
	}
	if p.Skin != "" {
		parts = append(parts, p.Skin+" skin")
	}
	if p.DistinguishingFeatures != "" {
		parts = append(parts, p.DistinguishingFeatures)
	}
	if p.Clothing != "" {
		parts = append(parts, "wearing "+p.Clothing)
	}

	// Полное описание внешности имеет приоритет над сборкой по полям
	if len(p.Appearance) > 20 {
		return p.Appearance
	}

	if len(parts) == 0 {
		return p.Name
	}
	return strings.Join(parts, ", ")
}

// SceneProfile - контекст сцены/локации для консистентности.
type SceneProfile struct {
	Name   string `json:"name"`
	BookID string `json:"book_id"`

	Description string `json:"description,omitempty"`
	LocationType string `json:"location_type,omitempty"` // interior, exterior
	SettingType  string `json:"setting_type,omitempty"`  // castle, forest, city

	Atmosphere string `json:"atmosphere,omitempty"`
	Mood       string `json:"mood,omitempty"`

	Lighting  string `json:"lighting,omitempty"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Weather   string `json:"weather,omitempty"`

	KeyElements []string `json:"key_elements,omitempty"`

	BasePrompt    string `json:"base_prompt,omitempty"`
	IsEstablished bool   `json:"is_established"`
}

// ToPromptFragment генерирует фрагмент промпта для сцены.
func (s *SceneProfile) ToPromptFragment() string {
	if s.BasePrompt != "" {
		return s.BasePrompt
	}

	var parts []string
	if s.SettingType != "" {
		parts = append(parts, s.SettingType)
	}
	if s.Name != "" {
		parts = append(parts, s.Name)
	}
	if s.Atmosphere != "" {
		parts = append(parts, s.Atmosphere+" atmosphere")
	}
	if s.Lighting != "" {
		parts = append(parts, s.Lighting)
	}
	if s.TimeOfDay != "" {
		parts = append(parts, s.TimeOfDay)
	}
	if s.Weather != "" {
		parts = append(parts, s.Weather+" weather")
	}
	if len(s.KeyElements) > 0 {
		n := len(s.KeyElements)
		if n > 3 {
			n = 3
		}
		parts = append(parts, "with "+strings.Join(s.KeyElements[:n], ", "))
	}

	if len(s.Description) > 50 {
		return s.Description
	}

	if len(parts) == 0 {
		return s.Name
	}
	return strings.Join(parts, ", ")
}

// ObjectProfile - контекст значимого объекта для консистентности.
type ObjectProfile struct {
	Name   string `json:"name"`
	BookID string `json:"book_id"`

	Appearance string   `json:"appearance,omitempty"`
	Materials  string   `json:"materials,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Size       string   `json:"size,omitempty"`
	Details    string   `json:"details,omitempty"`
	Effects    string   `json:"effects,omitempty"`

	BasePrompt    string `json:"base_prompt,omitempty"`
	IsEstablished bool   `json:"is_established"`
}

// ToPromptFragment генерирует фрагмент промпта для объекта.
func (o *ObjectProfile) ToPromptFragment() string {
	if o.BasePrompt != "" {
		return o.BasePrompt
	}

	parts := []string{o.Name}
	if o.Materials != "" {
		parts = append(parts, "made of "+o.Materials)
	}
	if len(o.Colors) > 0 {
		n := len(o.Colors)
		if n > 2 {
			n = 2
		}
		parts = append(parts, strings.Join(o.Colors[:n], " and "))
	}
	if o.Size != "" {
		parts = append(parts, o.Size)
	}
	if o.Details != "" {
		parts = append(parts, o.Details)
	}
	if o.Effects != "" {
		parts = append(parts, o.Effects)
	}

	if o.Appearance != "" {
		return o.Appearance
	}

	return strings.Join(parts, ", ")
}
