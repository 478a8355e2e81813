package generator

import (
	"strings"

	"promptgen-server/internal/style"
)

// Размеры Flux кратны 8.
var fluxAspectSizes = map[string]sdSize{
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
	"9:21":      {640, 1536},
}

type fluxVariant struct {
	Name     string
	Steps    int
	Guidance float64
}

var fluxVariants = map[string]fluxVariant{
	"pro":     {Name: "Flux Pro", Steps: 50, Guidance: 3.5},
	"dev":     {Name: "Flux Dev", Steps: 28, Guidance: 3.0},
	"schnell": {Name: "Flux Schnell", Steps: 4, Guidance: 0},
}

var fluxStyleModifiers = map[string]string{
	"photographic":  "professional photograph, camera shot, realistic lighting, DSLR quality",
	"cinematic":     "cinematic film still, movie scene, dramatic lighting, anamorphic lens",
	"illustration":  "digital illustration, artistic rendering, stylized artwork",
	"3d":            "3D rendered image, CGI, computer graphics, realistic materials and lighting",
	"anime":         "anime art style, Japanese animation, cel shaded, vibrant colors",
	"oil_painting":  "oil painting on canvas, visible brushstrokes, classical art style",
	"watercolor":    "watercolor painting, soft blending, paper texture visible",
	"sketch":        "pencil sketch, graphite drawing, hand-drawn artwork",
	"concept_art":   "professional concept art, production design, game art",
	"fantasy":       "fantasy art, magical atmosphere, ethereal lighting",
	"portrait":      "portrait photography, studio lighting, shallow depth of field",
	"landscape":     "landscape photography, natural lighting, scenic vista",
	"noir":          "film noir style, black and white, high contrast, dramatic shadows",
	"cyberpunk":     "cyberpunk aesthetic, neon lights, futuristic, rain-slicked streets",
	"steampunk":     "steampunk design, brass and copper, Victorian era, clockwork",
	"gothic":        "gothic art style, dark atmosphere, ornate details",
	"minimalist":    "minimalist design, clean, simple, elegant negative space",
	"vintage":       "vintage style, retro aesthetic, nostalgic, faded colors",
	"pop_art":       "pop art style, bold colors, graphic design",
	"impressionist": "impressionist style, soft brushstrokes, light and color play",
}

// Flux - стратегия для Flux Pro/Dev/Schnell: чистый естественный язык,
// части промпта соединяются точкой, Schnell агрессивно укорачивает текст
// и не использует теги качества. Негативные промпты не поддерживаются.
type Flux struct {
	base
}

var _ Generator = (*Flux)(nil)

func NewFlux() *Flux {
	return &Flux{base: base{config: ModelConfig{
		ModelID:            ModelFlux,
		DisplayName:        "Flux",
		MaxPromptLength:    2000,
		DefaultAspectRatio: "1:1",
		SupportsNegative:   false,
		Capabilities:       []Capability{CapAspectRatio, CapSeed},
		DefaultParameters: map[string]any{
			"variant":             "dev",
			"guidance_scale":      3.5,
			"num_inference_steps": 28,
			"width":               1024,
			"height":              1024,
		},
		QualityTags: []string{
			"high quality",
			"detailed",
			"professional",
			"sharp focus",
			"vivid colors",
			"masterfully composed",
		},
		NegativeTags: nil,
	}}}
}

func (g *Flux) Generate(text string, st *style.Preset, params map[string]any) (string, error) {
	resolved := g.mergeParams(params)

	var promptParts []string

	// Flux предпочитает стиль в начале
	if st != nil {
		if modifier, ok := fluxStyleModifiers[st.ID]; ok {
			promptParts = append(promptParts, modifier)
		}
	}

	promptParts = append(promptParts, text)

	variant := paramString(resolved, "variant")
	if variant == "" {
		variant = "dev"
	}
	if variant != "schnell" {
		promptParts = append(promptParts, strings.Join(g.config.QualityTags[:3], ", "))
	}

	var nonEmpty []string
	for _, part := range promptParts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	prompt := strings.Join(nonEmpty, ". ")

	formatted := g.FormatPrompt(prompt, resolved)
	g.storeParams(resolved)

	return g.Truncate(formatted), nil
}

// FormatPrompt разрешает размеры и параметры варианта; инлайн-директив нет.
func (g *Flux) FormatPrompt(prompt string, params map[string]any) string {
	if aspect := paramString(params, "aspect"); aspect != "" {
		if size, ok := fluxAspectSizes[aspect]; ok {
			params["width"] = size.Width
			params["height"] = size.Height
		}
	}

	variant := paramString(params, "variant")
	if cfg, ok := fluxVariants[variant]; ok {
		// Значение, равное дефолту модели, считается незаданным и
		// заменяется конфигурацией варианта.
		if params["num_inference_steps"] == g.config.DefaultParameters["num_inference_steps"] {
			params["num_inference_steps"] = cfg.Steps
		}
		if params["guidance_scale"] == g.config.DefaultParameters["guidance_scale"] {
			params["guidance_scale"] = cfg.Guidance
		}
	}

	if variant == "schnell" {
		prompt = g.optimizeForSchnell(prompt)
	}

	return prompt
}

// optimizeForSchnell убирает теги качества и укорачивает длинный текст,
// предпочитая границу предложения, затем запятую, затем жесткий срез.
func (g *Flux) optimizeForSchnell(prompt string) string {
	cleaned := prompt
	for _, tag := range g.config.QualityTags {
		cleaned = strings.ReplaceAll(cleaned, ", "+tag, "")
		cleaned = strings.ReplaceAll(cleaned, tag+", ", "")
		cleaned = strings.ReplaceAll(cleaned, ". "+tag, "")
	}

	if len(cleaned) > 500 {
		window := cleaned[:500]
		if cutoff := strings.LastIndex(window, "."); cutoff > 300 {
			cleaned = cleaned[:cutoff+1]
		} else if cutoff := strings.LastIndex(window, ","); cutoff > 350 {
			cleaned = cleaned[:cutoff]
		} else {
			cleaned = cleaned[:500]
		}
	}

	return strings.TrimSpace(cleaned)
}

// NegativePrompt для Flux всегда пуст.
func (g *Flux) NegativePrompt(string, *style.Preset, []string) string {
	return ""
}
