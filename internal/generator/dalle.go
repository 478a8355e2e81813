package generator

import (
	"strings"

	"promptgen-server/internal/style"
)

// dalleSizes - допустимые размеры API по именам аспектов.
var dalleSizes = map[string]string{
	"square":    "1024x1024",
	"wide":      "1792x1024",
	"landscape": "1792x1024",
	"tall":      "1024x1792",
	"portrait":  "1024x1792",
	"1:1":       "1024x1024",
	"16:9":      "1792x1024",
	"9:16":      "1024x1792",
}

// dalleStyleModifiers - вводные обороты, добавляемые в начало промпта.
var dalleStyleModifiers = map[string]string{
	"photographic":  "A photograph of",
	"cinematic":     "A cinematic still from a movie showing",
	"illustration":  "An illustrated image of",
	"3d":            "A 3D rendered image of",
	"anime":         "An anime-style illustration of",
	"oil_painting":  "An oil painting of",
	"watercolor":    "A watercolor painting of",
	"sketch":        "A detailed sketch of",
	"concept_art":   "Professional concept art of",
	"fantasy":       "A fantasy art piece showing",
	"noir":          "A film noir style image of",
	"cyberpunk":     "A cyberpunk scene showing",
	"steampunk":     "A steampunk illustration of",
	"gothic":        "A gothic art piece depicting",
	"vintage":       "A vintage photograph of",
	"minimalist":    "A minimalist image of",
	"surreal":       "A surrealist artwork showing",
	"impressionist": "An impressionist painting of",
	"pop_art":       "A pop art style image of",
	"renaissance":   "A Renaissance-style painting of",
	"abstract":      "An abstract representation of",
	"pixel_art":     "Pixel art depicting",
	"comic":         "A comic book style illustration of",
	"portrait":      "A detailed portrait of",
}

// Dalle3 - стратегия для DALL-E 3: естественный язык без инлайн-параметров,
// размер/качество/стиль уходят в карту параметров для API-вызова.
// Негативные промпты не поддерживаются.
type Dalle3 struct {
	base
}

var _ Generator = (*Dalle3)(nil)

func NewDalle3() *Dalle3 {
	return &Dalle3{base: base{config: ModelConfig{
		ModelID:            ModelDalle3,
		DisplayName:        "DALL-E 3",
		MaxPromptLength:    4000,
		DefaultAspectRatio: "1:1",
		SupportsNegative:   false,
		Capabilities:       []Capability{CapAspectRatio},
		DefaultParameters: map[string]any{
			"size":    "1024x1024",
			"quality": "standard",
			"style":   "vivid",
			// Разрешить DALL-E переписывать промпт
			"revised_prompt": true,
		},
		QualityTags: []string{
			"highly detailed",
			"professional quality",
			"stunning visual",
			"masterfully crafted",
		},
		NegativeTags: nil,
	}}}
}

func (g *Dalle3) Generate(text string, st *style.Preset, params map[string]any) (string, error) {
	resolved := g.mergeParams(params)

	prompt := text
	styleID := ""
	if st != nil {
		styleID = st.ID
	}

	if modifier, ok := dalleStyleModifiers[styleID]; ok {
		if !startsWithAnyModifierWord(prompt) {
			prompt = modifier + " " + prompt
		}
	}

	prompt = g.enhanceForDalle(prompt, styleID, resolved)

	formatted := g.FormatPrompt(prompt, resolved)
	g.storeParams(resolved)

	return g.Truncate(formatted), nil
}

// FormatPrompt не добавляет инлайн-директив: разрешает размер, стиль API и
// качество в карте параметров, дописывая к тексту только стилевые указания.
func (g *Dalle3) FormatPrompt(prompt string, params map[string]any) string {
	if aspect := paramString(params, "aspect"); aspect != "" {
		if size, ok := dalleSizes[aspect]; ok {
			params["size"] = size
		}
	} else if size := paramString(params, "size"); size != "" {
		if mapped, ok := dalleSizes[size]; ok {
			params["size"] = mapped
		} else if isKnownDalleSize(size) {
			params["size"] = size
		}
	}

	if apiStyle := paramString(params, "dalle_style"); apiStyle == "vivid" || apiStyle == "natural" {
		params["style"] = apiStyle
	}

	if quality := paramString(params, "quality"); quality == "standard" || quality == "hd" {
		params["quality"] = quality
	}

	if paramString(params, "style") == "natural" {
		prompt = prompt + ". Create this in a natural, realistic style without dramatic enhancement."
	}

	if paramString(params, "quality") == "hd" && !strings.Contains(strings.ToLower(prompt), "detailed") {
		prompt = prompt + ". Include fine details and textures."
	}

	return prompt
}

// enhanceForDalle достраивает промпт до полного предложения и добавляет
// атмосферу, если ее нет.
func (g *Dalle3) enhanceForDalle(text, styleID string, params map[string]any) string {
	prompt := text

	hasOpening := false
	for _, word := range []string{"A ", "An ", "The ", "Create ", "Generate ", "Show "} {
		if strings.HasPrefix(prompt, word) {
			hasOpening = true
			break
		}
	}
	if !hasOpening {
		lower := strings.ToLower(prompt)
		switch {
		case strings.Contains(lower, "portrait"):
			prompt = "A detailed portrait: " + prompt
		case strings.Contains(lower, "landscape") || strings.Contains(lower, "scene"):
			prompt = "A scenic view: " + prompt
		case strings.Contains(lower, "action") || strings.Contains(lower, "dynamic"):
			prompt = "A dynamic scene showing: " + prompt
		default:
			prompt = "Create an image of: " + prompt
		}
	}

	atmosphereWords := []string{"lighting", "atmosphere", "mood", "ambient", "glow"}
	hasAtmosphere := false
	lower := strings.ToLower(prompt)
	for _, word := range atmosphereWords {
		if strings.Contains(lower, word) {
			hasAtmosphere = true
			break
		}
	}
	if !hasAtmosphere && styleID != "minimalist" && styleID != "abstract" && styleID != "pixel_art" {
		prompt = prompt + ", with atmospheric lighting"
	}

	if paramBool(params, "max_detail") {
		prompt = "I NEED to test how the tool works with extremely detailed prompts. " +
			"DO NOT add any detail, just use it AS-IS: " + prompt
	}

	return prompt
}

// NegativePrompt для DALL-E всегда пуст - модель не принимает негативы.
func (g *Dalle3) NegativePrompt(string, *style.Preset, []string) string {
	return ""
}

// startsWithAnyModifierWord проверяет, начинается ли промпт с первого слова
// любого стилевого оборота.
func startsWithAnyModifierWord(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, modifier := range dalleStyleModifiers {
		firstWord := strings.SplitN(strings.ToLower(modifier), " ", 2)[0]
		if strings.HasPrefix(lower, firstWord) {
			return true
		}
	}
	return false
}

func isKnownDalleSize(size string) bool {
	for _, v := range dalleSizes {
		if v == size {
			return true
		}
	}
	return false
}
