package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptgen-server/internal/style"
)

func TestStableDiffusion_QualityTiers(t *testing.T) {
	g := NewStableDiffusion()

	testCases := []struct {
		level string
		want  string
	}{
		{"low", "detailed"},
		{"medium", "best quality, highly detailed"},
		{"high", "masterpiece, best quality, highly detailed, ultra-detailed"},
		{"anime", "(masterpiece:1.2)"},
		{"photo", "RAW photo"},
	}

	for _, tc := range testCases {
		result, err := g.Generate("cat on a roof", nil, map[string]any{"quality_level": tc.level})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result, tc.want), "%s -> %q", tc.level, result)
	}

	// ultra включает все теги качества модели
	result, err := g.Generate("cat", nil, map[string]any{"quality_level": "ultra"})
	require.NoError(t, err)
	assert.Contains(t, result, "8k uhd")

	// none отключает теги полностью
	result, err = g.Generate("cat on a roof", nil, map[string]any{"quality_level": "none"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "cat on a roof"), result)
}

func TestStableDiffusion_StyleModifierWeighted(t *testing.T) {
	g := NewStableDiffusion()

	result, err := g.Generate("detective in the rain", &style.Preset{ID: "noir"}, nil)
	require.NoError(t, err)

	assert.Contains(t, result, "(film noir:1.3)")
	assert.Contains(t, result, "detective in the rain")
}

func TestStableDiffusion_EmphasisFirstOccurrenceOnly(t *testing.T) {
	weighted := applyEmphasis("a red Dragon fights another dragon", map[string]float64{"dragon": 1.4})

	assert.Equal(t, "a red (dragon:1.4) fights another dragon", weighted)
}

func TestStableDiffusion_EmphasisMissingElementIgnored(t *testing.T) {
	weighted := applyEmphasis("quiet forest", map[string]float64{"dragon": 1.4})

	assert.Equal(t, "quiet forest", weighted)
}

func TestStableDiffusion_SizeResolvedByVariant(t *testing.T) {
	g := NewStableDiffusion()

	_, err := g.Generate("tower", nil, map[string]any{"aspect": "portrait"})
	require.NoError(t, err)
	params := g.LastParams()
	assert.Equal(t, 768, params["width"])
	assert.Equal(t, 1344, params["height"])

	_, err = g.Generate("tower", nil, map[string]any{"aspect": "portrait", "variant": "sd15"})
	require.NoError(t, err)
	params = g.LastParams()
	assert.Equal(t, 512, params["width"])
	assert.Equal(t, 768, params["height"])
}

func TestStableDiffusion_LoraAndEmbeddingPrefixes(t *testing.T) {
	g := NewStableDiffusion()

	prompt := g.FormatPrompt("castle", map[string]any{
		"loras":      []map[string]any{{"name": "fantasy_detail", "weight": 0.6}},
		"embeddings": []string{"bad_hands_fix"},
	})

	assert.True(t, strings.HasPrefix(prompt, "(bad_hands_fix), <lora:fantasy_detail:0.6> castle"), prompt)
}

func TestStableDiffusion_NegativeAlwaysIncludesBase(t *testing.T) {
	g := NewStableDiffusion()

	result := g.NegativePrompt("", nil, nil)

	assert.Contains(t, result, "lowres")
	assert.Contains(t, result, "watermark")
}

func TestStableDiffusion_NegativeStyleAndScene(t *testing.T) {
	g := NewStableDiffusion()

	result := g.NegativePrompt("portrait", &style.Preset{ID: "noir"}, []string{"hats"})

	assert.Contains(t, result, "colorful")
	assert.Contains(t, result, "bad face")
	assert.Contains(t, result, "hats")
}

func TestStableDiffusion_NegativeFallsBackToPresetAdditions(t *testing.T) {
	g := NewStableDiffusion()

	preset := &style.Preset{ID: "fantasy", NegativeAdditions: []string{"mundane", "modern"}}
	result := g.NegativePrompt("", preset, nil)

	assert.Contains(t, result, "mundane")
}

func TestStableDiffusion_NegativeDeduped(t *testing.T) {
	g := NewStableDiffusion()

	result := g.NegativePrompt("", nil, []string{"blurry", "Blurry"})

	assert.Equal(t, 1, strings.Count(strings.ToLower(result), "blurry"))
}

func TestStableDiffusion_ValidateAllowsProblematicChars(t *testing.T) {
	g := NewStableDiffusion()

	ok, issues := g.Validate("(masterpiece:1.2), <lora:x:0.8> castle on a hill")
	assert.True(t, ok, issues)
}
