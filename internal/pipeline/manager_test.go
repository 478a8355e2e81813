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

	"promptgen-server/internal/bookctx"
	"promptgen-server/internal/cache"
	"promptgen-server/internal/config"
	"promptgen-server/internal/consistency"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/llm"
	"promptgen-server/internal/mocks"
	"promptgen-server/internal/models"
	"promptgen-server/internal/style"
	"promptgen-server/internal/templates"
)

func newTestManager(t *testing.T, llmClient *mocks.MockLLMClient) *Manager {
	t.Helper()
	logger := zap.NewNop()
	memCache := cache.NewMemoryCache()
	registry := generator.NewRegistry()
	store := bookctx.NewStore(bookctx.NewMemoryRepository(), memCache, logger)
	vectors := mocks.NewMockVectorStore(t)

	return NewManager(
		registry,
		style.NewEngine(logger),
		templates.NewEngine(),
		consistency.NewEngine(llmClient, memCache, vectors, logger),
		store,
		NewAnalyzer(llmClient, logger),
		NewEnhancer(llmClient, memCache, registry, time.Hour, logger),
		config.PipelineConfig{DefaultModel: "dalle3", MaxMoments: 3},
		logger,
	)
}

func systemPromptStartsWith(prefix string) any {
	return mock.MatchedBy(func(s string) bool { return strings.HasPrefix(s, prefix) })
}

func testPageRequest() models.PageRequest {
	return models.PageRequest{
		BookID:      "book-1",
		PageNumber:  5,
		PageContent: "Luna ran through the misty forest at night.",
		TargetModel: "midjourney",
		Style:       "fantasy",
		MaxPrompts:  2,
	}
}

func TestGeneratePromptsForPage_NewCharacterEstablished(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	manager := newTestManager(t, llmClient)
	ctx := context.Background()

	llmClient.On("GenerateText", mock.Anything, systemPromptStartsWith("Analyze this text and extract"), mock.Anything, llm.Options{JSONMode: true}).
		Return(`{"mood":"tense","setting":"forest","key_actions":["running"],"time_of_day":"night","atmosphere":"misty"}`, nil)
	llmClient.On("GenerateText", mock.Anything, systemPromptStartsWith("Extract all character names"), mock.Anything, llm.Options{JSONMode: true}).
		Return(`["Luna"]`, nil)
	llmClient.On("GenerateText", mock.Anything, systemPromptStartsWith("Based on this text"), mock.Anything, llm.Options{JSONMode: true}).
		Return(`{"appearance":"young woman","hair":"silver","eyes":"green"}`, nil)
	llmClient.On("GenerateText", mock.Anything, systemPromptStartsWith("Identify the most visually impactful"), mock.Anything, llm.Options{JSONMode: true}).
		Return(`[{"description":"Luna runs through the misty forest","type":"action","importance":"high","characters":["Luna"],"scene_elements":["ancient trees"],"suggested_composition":"wide"}]`, nil)

	req := testPageRequest()
	result, err := manager.GeneratePromptsForPage(ctx, &req)
	require.NoError(t, err)

	require.Len(t, result.Prompts, 1)
	prompt := result.Prompts[0]
	assert.Contains(t, prompt.Prompt, "Luna runs through the misty forest")
	assert.Contains(t, prompt.Prompt, "Luna:")
	assert.Contains(t, prompt.Prompt, "ancient trees")
	assert.Contains(t, prompt.Prompt, "misty atmosphere")
	assert.Contains(t, prompt.Prompt, "night lighting")
	assert.Contains(t, prompt.Prompt, "fantasy style")
	assert.True(t, strings.HasSuffix(prompt.Prompt, " --q 2 --s 750"), prompt.Prompt)
	assert.Equal(t, "16:9", prompt.SuggestedAspectRatio)
	assert.Equal(t, "--ar 1:1", prompt.SuggestedParameters["ar_suffix"])

	// Новый персонаж попал в контекст ответа и зафиксирован.
	require.Contains(t, result.CharacterContext, "Luna")
	luna := result.CharacterContext["Luna"]
	assert.Equal(t, 1, luna.GenerationCount)
	assert.True(t, luna.IsEstablished)

	// И сохранен в контексте книги.
	saved, err := manager.GetEntityConsistency(ctx, "book-1", "luna")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.GenerationCount)
	assert.Equal(t, "silver", saved.Hair)

	assert.Equal(t, "midjourney", result.TargetModel)
	assert.Equal(t, "tense", result.Analysis.Mood)
	assert.GreaterOrEqual(t, result.ProcessingTimeMs, int64(0))
}

func TestGeneratePromptsForPage_UnknownModelRejected(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	manager := newTestManager(t, llmClient)

	req := testPageRequest()
	req.TargetModel = "imagen"

	_, err := manager.GeneratePromptsForPage(context.Background(), &req)

	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrUnknownModel)
}

func TestGeneratePromptsForPage_AnalysisFailureStillProducesPrompt(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	manager := newTestManager(t, llmClient)

	// Все AI-вызовы отдают мусор - пайплайн деградирует до дефолтов.
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("not json at all", nil)

	req := testPageRequest()
	result, err := manager.GeneratePromptsForPage(context.Background(), &req)

	require.NoError(t, err)
	require.Len(t, result.Prompts, 1)
	assert.Contains(t, result.Prompts[0].Prompt, "Scene from the text")
	assert.Equal(t, "neutral", result.Analysis.Mood)
	assert.Equal(t, "1:1", result.Prompts[0].SuggestedAspectRatio)
}

func TestSetAndGetEntityConsistency(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	manager := newTestManager(t, llmClient)
	ctx := context.Background()

	profile := &models.CharacterProfile{Name: "Harry", Hair: "black messy hair"}
	require.NoError(t, manager.SetEntityConsistency(ctx, "book-7", profile))

	loaded, err := manager.GetEntityConsistency(ctx, "book-7", "HARRY")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "book-7", loaded.BookID)
	assert.Equal(t, "black messy hair", loaded.Hair)

	missing, err := manager.GetEntityConsistency(ctx, "book-7", "Ron")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSuggestStyleForMood(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	manager := newTestManager(t, llmClient)

	assert.Equal(t, "gothic", manager.SuggestStyleForMood("Dark"))
	assert.Equal(t, "noir", manager.SuggestStyleForMood("mysterious"))
	assert.Equal(t, "cinematic", manager.SuggestStyleForMood("upbeat"))
}
