package models

import (
	"strings"
	"time"
)

// BookContext - полный контекст книги для генерации промптов.
//
// Runtime структура: лениво загружается из хранилища, кэшируется в
// Redis и пересохраняется после каждой мутации. Саму книгу не хранит,
// только данные для консистентности визуализации.
type BookContext struct {
	BookID string `json:"book_id"`

	Characters map[string]*CharacterProfile `json:"characters"`
	Scenes     map[string]*SceneProfile     `json:"scenes"`
	Objects    map[string]*ObjectProfile    `json:"objects"`

	// Настройки визуализации по умолчанию
	DefaultStyle string `json:"default_style,omitempty"`
	DefaultModel string `json:"default_model"`

	// Текущая позиция чтения
	CurrentChapter int `json:"current_chapter,omitempty"`
	CurrentPage    int `json:"current_page,omitempty"`

	// Version инкрементируется при каждом сохранении и проверяется
	// при оптимистичной записи в хранилище.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBookContext создает пустой контекст книги.
func NewBookContext(bookID string) *BookContext {
	now := time.Now().UTC()
	return &BookContext{
		BookID:       bookID,
		Characters:   make(map[string]*CharacterProfile),
		Scenes:       make(map[string]*SceneProfile),
		Objects:      make(map[string]*ObjectProfile),
		DefaultModel: "dalle3",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GetCharacter ищет профиль персонажа по имени без учета регистра.
// Только точное совпадение, никакого fuzzy matching.
func (c *BookContext) GetCharacter(name string) *CharacterProfile {
	nameLower := strings.ToLower(name)
	for charName, profile := range c.Characters {
		if strings.ToLower(charName) == nameLower {
			return profile
		}
	}
	return nil
}

// AddCharacter добавляет или обновляет персонажа.
func (c *BookContext) AddCharacter(profile *CharacterProfile) {
	if c.Characters == nil {
		c.Characters = make(map[string]*CharacterProfile)
	}
	c.Characters[profile.Name] = profile
	c.UpdatedAt = time.Now().UTC()
}

// RemoveCharacter удаляет персонажа по точному имени.
func (c *BookContext) RemoveCharacter(name string) bool {
	if _, ok := c.Characters[name]; ok {
		delete(c.Characters, name)
		c.UpdatedAt = time.Now().UTC()
		return true
	}
	return false
}

// GetScene ищет сцену по имени без учета регистра.
func (c *BookContext) GetScene(name string) *SceneProfile {
	nameLower := strings.ToLower(name)
	for sceneName, profile := range c.Scenes {
		if strings.ToLower(sceneName) == nameLower {
			return profile
		}
	}
	return nil
}

// AddScene добавляет или обновляет сцену.
func (c *BookContext) AddScene(profile *SceneProfile) {
	if c.Scenes == nil {
		c.Scenes = make(map[string]*SceneProfile)
	}
	c.Scenes[profile.Name] = profile
	c.UpdatedAt = time.Now().UTC()
}

// RemoveScene удаляет сцену по точному имени.
func (c *BookContext) RemoveScene(name string) bool {
	if _, ok := c.Scenes[name]; ok {
		delete(c.Scenes, name)
		c.UpdatedAt = time.Now().UTC()
		return true
	}
	return false
}

// GetObject ищет объект по имени без учета регистра.
func (c *BookContext) GetObject(name string) *ObjectProfile {
	nameLower := strings.ToLower(name)
	for objName, profile := range c.Objects {
		if strings.ToLower(objName) == nameLower {
			return profile
		}
	}
	return nil
}

// AddObject добавляет или обновляет объект.
func (c *BookContext) AddObject(profile *ObjectProfile) {
	if c.Objects == nil {
		c.Objects = make(map[string]*ObjectProfile)
	}
	c.Objects[profile.Name] = profile
	c.UpdatedAt = time.Now().UTC()
}

// CharacterNames возвращает имена всех персонажей.
func (c *BookContext) CharacterNames() []string {
	names := make([]string, 0, len(c.Characters))
	for name := range c.Characters {
		names = append(names, name)
	}
	return names
}

// EstablishedCharacters возвращает персонажей с зафиксированным описанием.
func (c *BookContext) EstablishedCharacters() []*CharacterProfile {
	var out []*CharacterProfile
	for _, p := range c.Characters {
		if p.IsEstablished {
			out = append(out, p)
		}
	}
	return out
}

// Stats возвращает статистику контекста.
func (c *BookContext) Stats() map[string]int {
	return map[string]int{
		"characters":             len(c.Characters),
		"scenes":                 len(c.Scenes),
		"objects":                len(c.Objects),
		"established_characters": len(c.EstablishedCharacters()),
	}
}
