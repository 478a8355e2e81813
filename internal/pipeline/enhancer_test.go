package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptgen-server/internal/cache"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/llm"
	"promptgen-server/internal/mocks"
)

func newTestEnhancer(llmClient *mocks.MockLLMClient) *Enhancer {
	return NewEnhancer(llmClient, cache.NewMemoryCache(), generator.NewRegistry(), time.Hour, zap.NewNop())
}

func expectEnhancerCalls(llmClient *mocks.MockLLMClient, expanded string) {
	llmClient.On("GenerateText", mock.Anything, systemPromptStartsWith("Analyze this text for visual"), mock.Anything, llm.Options{JSONMode: true}).
		Return(`{"subject":"castle","action":"standing","setting":"hill","mood":"calm"}`, nil)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{MaxTokens: 400, Temperature: 0.7}).
		Return(expanded, nil)
}

func TestEnhance_StableDiffusionWeightsAndQualityTerms(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	enhancer := newTestEnhancer(llmClient)
	expectEnhancerCalls(llmClient, "a majestic castle on a hill, golden light, fine stonework")

	result, err := enhancer.Enhance(context.Background(), "castle on a hill", generator.ModelStableDiffusion, "", nil)
	require.NoError(t, err)

	assert.Contains(t, result.Enhanced, "(masterpiece:1.2)")
	assert.Contains(t, result.Enhanced, "(quality:1.2)")
	assert.Contains(t, result.Improvements, "Added detailed descriptions")
	assert.Contains(t, result.Improvements, "Added quality modifiers")
	assert.Equal(t, "castle on a hill", result.Original)
}

func TestEnhance_MidjourneyStripsPhotoPhrasesAndAppendsSuffix(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	enhancer := newTestEnhancer(llmClient)
	expectEnhancerCalls(llmClient, "a photo of a castle at dawn, misty valley")

	result, err := enhancer.Enhance(context.Background(), "castle at dawn", generator.ModelMidjourney, "", nil)
	require.NoError(t, err)

	assert.NotContains(t, result.Enhanced, "a photo of")
	assert.True(t, strings.HasSuffix(result.Enhanced, " --q 2 --s 750 --v 6"), result.Enhanced)
}

func TestEnhance_StyleTemplateAndCharacterContext(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	enhancer := newTestEnhancer(llmClient)
	expectEnhancerCalls(llmClient, "two figures by the window")

	result, err := enhancer.Enhance(context.Background(), "two figures", generator.ModelDalle3, "anime",
		map[string]string{"Luna": "young woman, silver hair"})
	require.NoError(t, err)

	assert.Contains(t, result.Enhanced, "anime style, vibrant colors")
	assert.Contains(t, result.Enhanced, "Characters: Luna: young woman, silver hair")
	assert.Contains(t, result.Improvements, "Applied artistic style")
}

func TestEnhance_ResultCached(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	enhancer := newTestEnhancer(llmClient)
	expectEnhancerCalls(llmClient, "expanded text about a castle")

	ctx := context.Background()
	first, err := enhancer.Enhance(ctx, "castle", generator.ModelFlux, "", nil)
	require.NoError(t, err)

	second, err := enhancer.Enhance(ctx, "castle", generator.ModelFlux, "", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Enhanced, second.Enhanced)
	// Два LLM-вызова из первого прохода, ноль из второго.
	llmClient.AssertNumberOfCalls(t, "GenerateText", 2)
}

func TestEnhance_ExpansionFailureFallsBackToOriginal(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	enhancer := newTestEnhancer(llmClient)

	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{JSONMode: true}).
		Return("garbage", nil)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{MaxTokens: 400, Temperature: 0.7}).
		Return("", assert.AnError)

	result, err := enhancer.Enhance(context.Background(), "castle at dawn", generator.ModelFlux, "", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Enhanced, "castle at dawn"), result.Enhanced)
}
