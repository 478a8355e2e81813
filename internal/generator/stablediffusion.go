package generator

import (
	"regexp"
	"strings"

	"promptgen-server/internal/style"
)

type sdSize struct {
	Width  int
	Height int
}

// Размеры SDXL кратны 64.
var sdxlSizes = map[string]sdSize{
	"1:1":       {1024, 1024},
	"square":    {1024, 1024},
	"16:9":      {1344, 768},
	"landscape": {1344, 768},
	"wide":      {1344, 768},
	"9:16":      {768, 1344},
	"portrait":  {768, 1344},
	"tall":      {768, 1344},
	"4:3":       {1152, 896},
	"3:4":       {896, 1152},
	"3:2":       {1216, 832},
	"2:3":       {832, 1216},
	"21:9":      {1536, 640},
	"ultrawide": {1536, 640},
}

var sd15Sizes = map[string]sdSize{
	"1:1":       {512, 512},
	"square":    {512, 512},
	"16:9":      {768, 432},
	"landscape": {768, 512},
	"9:16":      {432, 768},
	"portrait":  {512, 768},
	"4:3":       {640, 480},
	"3:4":       {480, 640},
}

// sdStyleModifiers - стилевые теги с весовым синтаксисом.
var sdStyleModifiers = map[string]string{
	"photographic":  "(photorealistic:1.3), photograph, DSLR, 85mm lens, professional photography",
	"cinematic":     "(cinematic:1.2), movie still, film grain, dramatic lighting, anamorphic",
	"illustration":  "(digital illustration:1.2), artwork, artstation, trending",
	"3d":            "(3d render:1.2), octane render, unreal engine 5, ray tracing, CGI",
	"anime":         "(anime:1.3), cel shading, anime style, japanese animation",
	"oil_painting":  "(oil painting:1.2), canvas texture, brushstrokes, classical art",
	"watercolor":    "(watercolor:1.2), wet on wet, soft edges, paper texture",
	"sketch":        "(pencil sketch:1.2), graphite, drawing, cross-hatching",
	"concept_art":   "(concept art:1.2), matte painting, artstation trending",
	"fantasy":       "(fantasy art:1.2), magical, ethereal, dreamy lighting",
	"gothic":        "(gothic art:1.2), dark, ornate, dramatic shadows, medieval",
	"cyberpunk":     "(cyberpunk:1.2), neon, rain, futuristic, dystopian",
	"steampunk":     "(steampunk:1.2), brass, gears, victorian, steam-powered",
	"noir":          "(film noir:1.3), black and white, high contrast, dramatic shadows",
	"vintage":       "(vintage:1.2), retro, nostalgic, faded colors, film grain",
	"minimalist":    "(minimalist:1.2), clean, simple, negative space",
	"surreal":       "(surrealist:1.2), dreamlike, impossible, abstract",
	"impressionist": "(impressionist:1.2), soft brushstrokes, light and color",
	"ukiyo_e":       "(ukiyo-e:1.2), japanese woodblock, traditional",
	"pop_art":       "(pop art:1.2), bold colors, comic style, halftone",
	"baroque":       "(baroque:1.2), dramatic, ornate, chiaroscuro",
	"renaissance":   "(renaissance:1.2), classical, sfumato, detailed",
}

var sdStyleNegatives = map[string]string{
	"photographic": "cartoon, anime, drawing, painting, illustration, cgi, 3d render, digital art",
	"anime":        "realistic, photograph, 3d, western, photorealistic",
	"3d":           "2d, flat, drawing, sketch, painting, hand drawn",
	"oil_painting": "digital, photograph, 3d, anime, smooth, photorealistic",
	"sketch":       "color, painted, rendered, photographic, digital",
	"noir":         "color, colorful, vibrant, bright, cheerful, saturated",
	"minimalist":   "cluttered, busy, detailed, ornate, complex",
	"vintage":      "modern, digital, clean, sharp, high definition",
}

var sdSceneNegatives = map[string][]string{
	"portrait":  {"bad face", "ugly face", "asymmetric face", "bad eyes"},
	"landscape": {"people", "text", "signs", "modern objects"},
	"action":    {"static", "stiff", "frozen"},
	"horror":    {"cute", "happy", "bright", "cheerful"},
}

// StableDiffusion - стратегия для SDXL / SD 1.5: теги качества в начале,
// веса через синтаксис (element:1.2), обязательный негативный промпт.
type StableDiffusion struct {
	base
}

var _ Generator = (*StableDiffusion)(nil)

func NewStableDiffusion() *StableDiffusion {
	return &StableDiffusion{base: base{config: ModelConfig{
		ModelID:            ModelStableDiffusion,
		DisplayName:        "Stable Diffusion",
		MaxPromptLength:    380, // ~77 токенов
		DefaultAspectRatio: "1:1",
		SupportsNegative:   true,
		Capabilities: []Capability{
			CapNegativePrompt,
			CapAspectRatio,
			CapSeed,
			CapControlNet,
			CapLora,
			CapInpainting,
			CapOutpainting,
			CapImageToImage,
		},
		DefaultParameters: map[string]any{
			"steps":     30,
			"cfg_scale": 7.0,
			"sampler":   "DPM++ 2M Karras",
			"width":     1024,
			"height":    1024,
			"clip_skip": 2,
			"variant":   "sdxl",
		},
		QualityTags: []string{
			"masterpiece",
			"best quality",
			"highly detailed",
			"ultra-detailed",
			"sharp focus",
			"intricate details",
			"professional",
			"8k uhd",
			"high resolution",
		},
		NegativeTags: []string{
			"lowres",
			"bad anatomy",
			"bad hands",
			"text",
			"error",
			"missing fingers",
			"extra digit",
			"fewer digits",
			"cropped",
			"worst quality",
			"low quality",
			"normal quality",
			"jpeg artifacts",
			"signature",
			"watermark",
			"username",
			"blurry",
			"artist name",
			"bad proportions",
			"deformed",
			"disfigured",
			"mutation",
			"mutated",
			"ugly",
		},
	}}}
}

func (g *StableDiffusion) Generate(text string, st *style.Preset, params map[string]any) (string, error) {
	resolved := g.mergeParams(params)

	var promptParts []string

	quality := paramString(resolved, "quality_level")
	if quality == "" {
		quality = "high"
	}
	if quality != "none" {
		promptParts = append(promptParts, g.qualityTagsFor(quality))
	}

	if st != nil {
		if modifier, ok := sdStyleModifiers[st.ID]; ok {
			promptParts = append(promptParts, modifier)
		}
	}

	weightedText := text
	if emphasis, ok := resolved["emphasis"].(map[string]float64); ok {
		weightedText = applyEmphasis(text, emphasis)
	}
	promptParts = append(promptParts, weightedText)

	prompt := strings.Join(promptParts, ", ")

	formatted := g.FormatPrompt(prompt, resolved)
	g.storeParams(resolved)

	return g.Truncate(formatted), nil
}

// FormatPrompt разрешает размеры по варианту модели и дописывает LoRA /
// textual inversion теги.
func (g *StableDiffusion) FormatPrompt(prompt string, params map[string]any) string {
	variant := paramString(params, "variant")
	if variant == "" {
		variant = "sdxl"
	}

	aspect := paramString(params, "aspect")
	if aspect == "" {
		aspect = "1:1"
	}
	sizes := sdxlSizes
	if variant != "sdxl" {
		sizes = sd15Sizes
	}
	if size, ok := sizes[aspect]; ok {
		params["width"] = size.Width
		params["height"] = size.Height
	}

	if loras, ok := params["loras"].([]map[string]any); ok {
		var loraTags []string
		for _, lora := range loras {
			name := paramString(lora, "name")
			if name == "" {
				continue
			}
			weight := 0.8
			if w, exists := lora["weight"]; exists {
				if f, isFloat := w.(float64); isFloat {
					weight = f
				}
			}
			loraTags = append(loraTags, "<lora:"+name+":"+formatWeight(weight)+">")
		}
		if len(loraTags) > 0 {
			prompt = strings.Join(loraTags, " ") + " " + prompt
		}
	}

	if embeddings, ok := params["embeddings"].([]string); ok {
		for _, emb := range embeddings {
			prompt = "(" + emb + "), " + prompt
		}
	}

	return prompt
}

// qualityTagsFor возвращает строку тегов качества по уровню.
func (g *StableDiffusion) qualityTagsFor(quality string) string {
	switch quality {
	case "low":
		return "detailed"
	case "medium":
		return "best quality, highly detailed"
	case "high":
		return "masterpiece, best quality, highly detailed, ultra-detailed"
	case "ultra":
		return strings.Join(g.config.QualityTags, ", ")
	case "anime":
		return "(masterpiece:1.2), best quality, high resolution, detailed"
	case "photo":
		return "RAW photo, 8k uhd, DSLR, high quality, realistic, detailed"
	default:
		return "masterpiece, best quality, highly detailed, ultra-detailed"
	}
}

// applyEmphasis оборачивает первое вхождение каждого элемента в весовой
// синтаксис (element:weight).
func applyEmphasis(text string, emphasis map[string]float64) string {
	result := text
	for element, weight := range emphasis {
		if !strings.Contains(strings.ToLower(result), strings.ToLower(element)) {
			continue
		}
		pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(element))
		if err != nil {
			continue
		}
		replaced := false
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			if replaced {
				return match
			}
			replaced = true
			return "(" + element + ":" + formatWeight(weight) + ")"
		})
	}
	return result
}

// NegativePrompt для SD обязателен: базовые негативы модели всегда входят
// в результат.
func (g *StableDiffusion) NegativePrompt(sceneType string, st *style.Preset, custom []string) string {
	negatives := append([]string{}, g.config.NegativeTags...)

	if st != nil {
		if styleNegs, ok := sdStyleNegatives[st.ID]; ok {
			negatives = append(negatives, strings.Split(styleNegs, ", ")...)
		} else {
			negatives = append(negatives, st.NegativeAdditions...)
		}
	}

	if sceneNegs, ok := sdSceneNegatives[sceneType]; ok {
		negatives = append(negatives, sceneNegs...)
	}

	negatives = append(negatives, custom...)

	return strings.Join(dedupe(negatives), ", ")
}
