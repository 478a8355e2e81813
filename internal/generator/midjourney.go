package generator

import (
	"strings"

	"promptgen-server/internal/style"
)

// midjourneyAspectRatios - именованные соотношения сторон.
var midjourneyAspectRatios = map[string]string{
	"square":             "1:1",
	"portrait":           "2:3",
	"landscape":          "3:2",
	"wide":               "16:9",
	"ultrawide":          "21:9",
	"tall":               "9:16",
	"poster":             "2:3",
	"cinema":             "2.39:1",
	"cinemascope":        "2.35:1",
	"instagram":          "4:5",
	"instagram_story":    "9:16",
	"twitter":            "16:9",
	"facebook":           "1.91:1",
	"pinterest":          "2:3",
	"youtube":            "16:9",
	"tiktok":             "9:16",
	"phone":              "9:19.5",
	"desktop":            "16:10",
	"ultrawide_desktop":  "21:9",
}

// midjourneyStylePresets - готовые комбинации параметров стилизации.
var midjourneyStylePresets = map[string]string{
	"raw":             "--style raw",
	"expressive":      "--s 500",
	"balanced":        "--s 100",
	"subtle":          "--s 50",
	"artistic":        "--s 750",
	"maximum":         "--s 1000",
	"niji":            "--niji 6",
	"niji_cute":       "--niji 6 --style cute",
	"niji_scenic":     "--niji 6 --style scenic",
	"niji_expressive": "--niji 6 --style expressive",
	"niji_original":   "--niji 6 --style original",
}

// midjourneyStyleModifiers - текстовые модификаторы, дописываемые к промпту.
var midjourneyStyleModifiers = map[string]string{
	"photographic":  "photograph, photorealistic, camera shot, DSLR, 85mm lens, natural lighting",
	"cinematic":     "cinematic shot, movie still, anamorphic, film grain, dramatic lighting, color grading",
	"illustration":  "digital illustration, artwork, artistic rendering, stylized",
	"3d":            "3d render, octane render, unreal engine 5, ray tracing, CGI",
	"anime":         "anime style, cel shading, japanese animation, vibrant colors",
	"oil_painting":  "oil painting, classical art, visible brushstrokes, canvas texture, rich colors",
	"watercolor":    "watercolor painting, soft edges, flowing colors, wet on wet, paper texture",
	"sketch":        "pencil sketch, graphite drawing, cross-hatching, hand drawn",
	"concept_art":   "concept art, matte painting, artstation, production design",
	"fantasy":       "fantasy art, magical, ethereal, enchanted, mythical",
	"noir":          "film noir, black and white, high contrast, dramatic shadows, moody",
	"cyberpunk":     "cyberpunk, neon lights, rain, futuristic city, dystopian, holographic",
	"steampunk":     "steampunk, brass and copper, gears, victorian, steam-powered",
	"gothic":        "gothic art, dark, ornate, medieval, cathedral, dramatic",
	"vintage":       "vintage photography, retro, nostalgic, faded colors, film grain",
	"minimalist":    "minimalist, clean, simple, negative space, elegant",
	"surreal":       "surrealist, dreamlike, impossible, Salvador Dali inspired",
	"impressionist": "impressionist painting, soft brushstrokes, light and color, Monet inspired",
	"pop_art":       "pop art, bold colors, comic style, Andy Warhol inspired",
	"art_deco":      "art deco, geometric, gold accents, 1920s glamour",
	"ukiyo_e":       "ukiyo-e, japanese woodblock print, traditional, Hokusai inspired",
	"baroque":       "baroque painting, dramatic, ornate, Caravaggio inspired, chiaroscuro",
	"renaissance":   "renaissance painting, classical, detailed, Leonardo da Vinci inspired",
	"abstract":      "abstract art, non-representational, shapes and colors, modern art",
	"pixel_art":     "pixel art, 8-bit, retro game, nostalgic",
	"vaporwave":     "vaporwave aesthetic, pink and cyan, retro, glitch, 80s",
}

// midjourneyStyleNegatives - стиль-специфичные элементы для --no.
var midjourneyStyleNegatives = map[string][]string{
	"photographic": {"cartoon", "anime", "drawing", "painting", "illustration", "cgi"},
	"anime":        {"realistic", "photograph", "3d render", "western"},
	"3d":           {"2d", "flat", "drawing", "sketch", "painting"},
	"oil_painting": {"digital", "photograph", "3d", "anime", "smooth"},
	"sketch":       {"color", "painted", "rendered", "photographic"},
	"noir":         {"color", "colorful", "vibrant", "bright", "cheerful"},
	"minimalist":   {"cluttered", "busy", "detailed", "ornate"},
}

// Midjourney - стратегия для Midjourney v6: параметры дописываются в хвост
// промпта инлайн-директивами в фиксированном порядке, значения равные
// дефолтам модели опускаются.
type Midjourney struct {
	base
}

var _ Generator = (*Midjourney)(nil)

func NewMidjourney() *Midjourney {
	return &Midjourney{base: base{config: ModelConfig{
		ModelID:            ModelMidjourney,
		DisplayName:        "Midjourney",
		MaxPromptLength:    6000,
		DefaultAspectRatio: "16:9",
		SupportsNegative:   true, // через параметр --no
		Capabilities: []Capability{
			CapAspectRatio,
			CapSeed,
			CapStyleReference,
			CapCharacterReference,
			CapUpscale,
			CapVariations,
			CapTile,
			CapImageToImage,
		},
		DefaultParameters: map[string]any{
			"version": "6.1",
			"quality": "1",
			"stylize": "100",
			"chaos":   "0",
		},
		QualityTags: []string{
			"highly detailed",
			"professional quality",
			"stunning",
			"masterpiece",
			"award winning",
			"breathtaking",
		},
		NegativeTags: []string{
			"ugly",
			"blurry",
			"low quality",
			"distorted",
			"deformed",
			"amateur",
		},
	}}}
}

func (g *Midjourney) Generate(text string, st *style.Preset, params map[string]any) (string, error) {
	resolved := g.mergeParams(params)

	prompt := text
	if st != nil {
		if modifier, ok := midjourneyStyleModifiers[st.ID]; ok {
			prompt = prompt + ", " + modifier
		}
	}

	// Теги качества не добавляем в raw-режиме
	if paramString(resolved, "style_preset") != "raw" && !paramBool(resolved, "raw") {
		quality := paramString(resolved, "quality_level")
		if quality == "" {
			quality = "high"
		}
		if quality != "none" {
			prompt = g.addQualityTags(prompt, quality)
		}
	}

	formatted := g.FormatPrompt(prompt, resolved)
	g.storeParams(resolved)

	return g.Truncate(formatted), nil
}

// FormatPrompt дописывает директивы в порядке: image url, --ar, --v, --q,
// --s, --c, --weird, --seed, --sref/--sw, --cref/--cw, --no, --tile,
// --repeat, пресет стиля, --style raw.
func (g *Midjourney) FormatPrompt(prompt string, params map[string]any) string {
	parts := []string{prompt}

	if imageURL := paramString(params, "image_url"); imageURL != "" {
		parts = append([]string{imageURL}, parts...)
	}

	if aspect := paramString(params, "aspect"); aspect != "" {
		ar, ok := midjourneyAspectRatios[aspect]
		if !ok {
			ar = aspect
		}
		parts = append(parts, "--ar "+ar)
	} else if ar := paramString(params, "ar"); ar != "" {
		parts = append(parts, "--ar "+ar)
	}

	if version := paramString(params, "version"); version != "" {
		v := strings.ToLower(version)
		if v != "niji" && v != "niji6" {
			parts = append(parts, "--v "+version)
		}
	}

	if quality := paramString(params, "quality"); quality != "" && quality != "1" {
		parts = append(parts, "--q "+quality)
	}

	if stylize := paramString(params, "stylize"); stylize != "" && stylize != "100" {
		parts = append(parts, "--s "+stylize)
	}

	if chaos := paramInt(params, "chaos"); chaos > 0 {
		parts = append(parts, "--c "+paramString(params, "chaos"))
	}

	if weird := paramInt(params, "weird"); weird > 0 {
		parts = append(parts, "--weird "+paramString(params, "weird"))
	}

	if seed := paramString(params, "seed"); seed != "" {
		parts = append(parts, "--seed "+seed)
	}

	if sref := paramString(params, "sref"); sref != "" {
		parts = append(parts, "--sref "+sref)
		if sw := paramString(params, "sw"); sw != "" {
			parts = append(parts, "--sw "+sw)
		}
	}

	if cref := paramString(params, "cref"); cref != "" {
		parts = append(parts, "--cref "+cref)
		if cw := paramString(params, "cw"); cw != "" {
			parts = append(parts, "--cw "+cw)
		}
	}

	if negative := paramString(params, "negative"); negative != "" {
		parts = append(parts, "--no "+negative)
	} else if no := paramString(params, "no"); no != "" {
		parts = append(parts, "--no "+no)
	}

	if paramBool(params, "tile") {
		parts = append(parts, "--tile")
	}

	if repeat := paramInt(params, "repeat"); repeat > 1 {
		parts = append(parts, "--repeat "+paramString(params, "repeat"))
	}

	if presetName := paramString(params, "style_preset"); presetName != "" {
		if preset, ok := midjourneyStylePresets[presetName]; ok {
			parts = append(parts, preset)
		}
	}

	if paramBool(params, "raw") && !strings.Contains(strings.Join(parts, " "), "--style raw") {
		parts = append(parts, "--style raw")
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

func (g *Midjourney) NegativePrompt(sceneType string, st *style.Preset, custom []string) string {
	negatives := append([]string{}, g.config.NegativeTags...)

	if st != nil {
		if styleNegs, ok := midjourneyStyleNegatives[st.ID]; ok {
			negatives = append(negatives, styleNegs...)
		} else {
			negatives = append(negatives, st.NegativeAdditions...)
		}
	}

	negatives = append(negatives, custom...)

	return strings.Join(dedupe(negatives), ", ")
}
