package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_ShortTextUnchanged(t *testing.T) {
	g := NewStableDiffusion()

	text := "a short prompt"
	assert.Equal(t, text, g.Truncate(text))
}

func TestTruncate_CutsAtLateComma(t *testing.T) {
	g := NewStableDiffusion()
	maxLen := g.Config().MaxPromptLength

	// Запятая после 70% лимита - срез по ней
	text := strings.Repeat("a", 300) + ", tail " + strings.Repeat("b", 200)
	result := g.Truncate(text)

	assert.LessOrEqual(t, len(result), maxLen)
	assert.Equal(t, strings.Repeat("a", 300), result)
}

func TestTruncate_CutsAtLateSpace(t *testing.T) {
	g := NewStableDiffusion()
	maxLen := g.Config().MaxPromptLength

	// Без запятых, пробел после 80% лимита
	text := strings.Repeat("a", 350) + " " + strings.Repeat("b", 200)
	result := g.Truncate(text)

	assert.LessOrEqual(t, len(result), maxLen)
	assert.Equal(t, strings.Repeat("a", 350), result)
}

func TestTruncate_HardCut(t *testing.T) {
	g := NewStableDiffusion()
	maxLen := g.Config().MaxPromptLength

	// Ни запятых, ни пробелов - жесткий срез по лимиту
	text := strings.Repeat("a", maxLen+100)
	result := g.Truncate(text)

	assert.Len(t, result, maxLen)
}

func TestTruncate_NeverExceedsLimit(t *testing.T) {
	for _, g := range []Generator{NewMidjourney(), NewDalle3(), NewStableDiffusion(), NewFlux()} {
		maxLen := g.Config().MaxPromptLength
		text := strings.Repeat("word, ", 2000)
		assert.LessOrEqual(t, len(g.Truncate(text)), maxLen, string(g.Config().ModelID))
	}
}
