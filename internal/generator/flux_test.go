package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptgen-server/internal/style"
)

func TestFlux_PartsJoinedBySentences(t *testing.T) {
	g := NewFlux()

	result, err := g.Generate("old lighthouse at dusk", &style.Preset{ID: "cinematic"}, nil)
	require.NoError(t, err)

	want := "cinematic film still, movie scene, dramatic lighting, anamorphic lens. " +
		"old lighthouse at dusk. high quality, detailed, professional"
	assert.Equal(t, want, result)
}

func TestFlux_SchnellSkipsQualityTags(t *testing.T) {
	g := NewFlux()

	result, err := g.Generate("old lighthouse at dusk", nil, map[string]any{"variant": "schnell"})
	require.NoError(t, err)

	assert.Equal(t, "old lighthouse at dusk", result)
}

func TestFlux_VariantResolvesStepsAndGuidance(t *testing.T) {
	g := NewFlux()

	_, err := g.Generate("lighthouse", nil, map[string]any{"variant": "pro"})
	require.NoError(t, err)
	params := g.LastParams()
	assert.Equal(t, 50, params["num_inference_steps"])
	assert.Equal(t, 3.5, params["guidance_scale"])

	_, err = g.Generate("lighthouse", nil, map[string]any{"variant": "schnell"})
	require.NoError(t, err)
	params = g.LastParams()
	assert.Equal(t, 4, params["num_inference_steps"])
	assert.Equal(t, 0.0, params["guidance_scale"])
}

func TestFlux_ExplicitStepsNotOverriddenByVariant(t *testing.T) {
	g := NewFlux()

	_, err := g.Generate("lighthouse", nil, map[string]any{"variant": "pro", "num_inference_steps": 12})
	require.NoError(t, err)

	assert.Equal(t, 12, g.LastParams()["num_inference_steps"])
}

func TestFlux_AspectResolvesSizes(t *testing.T) {
	g := NewFlux()

	_, err := g.Generate("lighthouse", nil, map[string]any{"aspect": "ultrawide"})
	require.NoError(t, err)
	params := g.LastParams()
	assert.Equal(t, 1536, params["width"])
	assert.Equal(t, 640, params["height"])
}

func TestFlux_SchnellShortensAtSentenceBoundary(t *testing.T) {
	g := NewFlux()

	// Первое предложение заканчивается внутри окна после позиции 300.
	long := strings.Repeat("a", 400) + ". " + strings.Repeat("b", 300)
	result := g.optimizeForSchnell(long)

	assert.Equal(t, strings.Repeat("a", 400)+".", result)
}

func TestFlux_SchnellShortensAtComma(t *testing.T) {
	g := NewFlux()

	long := strings.Repeat("a", 400) + ", " + strings.Repeat("b", 300)
	result := g.optimizeForSchnell(long)

	assert.Equal(t, strings.Repeat("a", 400), result)
}

func TestFlux_SchnellHardCut(t *testing.T) {
	g := NewFlux()

	long := strings.Repeat("a", 700)
	result := g.optimizeForSchnell(long)

	assert.Len(t, result, 500)
}

func TestFlux_NoNegativePrompt(t *testing.T) {
	g := NewFlux()

	assert.Empty(t, g.NegativePrompt("portrait", &style.Preset{ID: "noir"}, []string{"blurry"}))
}
