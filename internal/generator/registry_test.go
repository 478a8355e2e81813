package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_KnownModels(t *testing.T) {
	registry := NewRegistry()

	for _, id := range []ModelID{ModelMidjourney, ModelDalle3, ModelStableDiffusion, ModelFlux} {
		g, err := registry.Generator(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.Config().ModelID)
	}

	assert.Len(t, registry.IDs(), 4)
	assert.Len(t, registry.Configs(), 4)
}

func TestRegistry_UnknownModel(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Generator(ModelID("imagen"))
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestResolveModelID(t *testing.T) {
	testCases := []struct {
		alias string
		want  ModelID
	}{
		{"midjourney", ModelMidjourney},
		{"mj", ModelMidjourney},
		{"dalle3", ModelDalle3},
		{"dall-e", ModelDalle3},
		{"sd", ModelStableDiffusion},
		{"sdxl", ModelStableDiffusion},
		{"flux", ModelFlux},
		{"flux-dev", ModelFlux},
	}

	for _, tc := range testCases {
		got, err := ResolveModelID(tc.alias)
		require.NoError(t, err, tc.alias)
		assert.Equal(t, tc.want, got)
	}

	_, err := ResolveModelID("unknown")
	assert.ErrorIs(t, err, ErrUnknownModel)
}
