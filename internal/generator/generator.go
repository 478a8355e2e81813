package generator

import (
	"errors"

	"promptgen-server/internal/style"
)

// ModelID - идентификатор целевой модели генерации изображений.
// Закрытое множество: новые модели добавляются константой и веткой в
// NewRegistry, а не строкой в рантайме.
type ModelID string

const (
	ModelMidjourney      ModelID = "midjourney"
	ModelDalle3          ModelID = "dalle3"
	ModelStableDiffusion ModelID = "stable-diffusion"
	ModelFlux            ModelID = "flux"
)

// ErrUnknownModel возвращается реестром для незарегистрированной модели.
var ErrUnknownModel = errors.New("generator: unknown model")

// Capability - возможность целевой модели.
type Capability string

const (
	CapNegativePrompt     Capability = "negative_prompt"
	CapAspectRatio        Capability = "aspect_ratio"
	CapSeed               Capability = "seed"
	CapStyleReference     Capability = "style_reference"
	CapCharacterReference Capability = "character_reference"
	CapInpainting         Capability = "inpainting"
	CapOutpainting        Capability = "outpainting"
	CapControlNet         Capability = "controlnet"
	CapLora               Capability = "lora"
	CapUpscale            Capability = "upscale"
	CapVariations         Capability = "variations"
	CapImageToImage       Capability = "img2img"
	CapTile               Capability = "tile"
)

// ModelConfig описывает целевую модель: лимиты, возможности, дефолтные
// параметры и наборы тегов.
type ModelConfig struct {
	ModelID            ModelID        `json:"name"`
	DisplayName        string         `json:"display_name"`
	MaxPromptLength    int            `json:"max_prompt_length"`
	DefaultAspectRatio string         `json:"default_aspect_ratio"`
	SupportsNegative   bool           `json:"supports_negative"`
	Capabilities       []Capability   `json:"capabilities"`
	DefaultParameters  map[string]any `json:"-"`
	QualityTags        []string       `json:"-"`
	NegativeTags       []string       `json:"-"`
}

// Generator - стратегия форматирования промпта под конкретную модель.
//
// Generate разрешает параметры (дефолты + переданные) и сохраняет их:
// итоговый набор доступен через LastParams. Неизвестный стиль молча
// игнорируется, неподдерживаемые возможности опускаются без ошибок.
type Generator interface {
	Config() ModelConfig
	Generate(text string, st *style.Preset, params map[string]any) (string, error)
	// FormatPrompt - чистое переформатирование текста; разрешенные
	// модельные параметры дописываются в переданную карту.
	FormatPrompt(prompt string, params map[string]any) string
	// NegativePrompt возвращает пустую строку, если модель не
	// поддерживает негативные промпты.
	NegativePrompt(sceneType string, st *style.Preset, custom []string) string
	Truncate(text string) string
	// Validate - рекомендательная проверка, не блокирует Generate.
	Validate(text string) (bool, []string)
	// LastParams возвращает копию параметров последнего Generate.
	LastParams() map[string]any
}
