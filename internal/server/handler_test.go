package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptgen-server/internal/bookctx"
	"promptgen-server/internal/cache"
	"promptgen-server/internal/config"
	"promptgen-server/internal/consistency"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/mocks"
	"promptgen-server/internal/pipeline"
	"promptgen-server/internal/style"
	"promptgen-server/internal/templates"
	"promptgen-server/internal/vectorstore"
)

// newTestRouter собирает полный Handler поверх реальных движков и
// мок-клиента AI; эндпоинты в этих тестах до AI не доходят.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	llmClient := mocks.NewMockLLMClient(t)
	memCache := cache.NewMemoryCache()
	vectors := vectorstore.NewMemoryStore()

	styles := style.NewEngine(log)
	tpls := templates.NewEngine()
	registry := generator.NewRegistry()
	consistencyEngine := consistency.NewEngine(llmClient, memCache, vectors, log)
	store := bookctx.NewStore(bookctx.NewMemoryRepository(), memCache, log)

	analyzer := pipeline.NewAnalyzer(llmClient, log)
	enhancer := pipeline.NewEnhancer(llmClient, memCache, registry, time.Hour, log)
	manager := pipeline.NewManager(registry, styles, tpls, consistencyEngine,
		store, analyzer, enhancer, config.PipelineConfig{DefaultModel: "dalle3", MaxMoments: 3}, log)

	handler := NewHandler(manager, styles, registry, log)
	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListStyles(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/styles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fantasy")
}

func TestListModels(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/models", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "midjourney")
	assert.Contains(t, body, "flux")
}

func TestGeneratePagePrompts_Validation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/prompts/page", `{"page_content": "text"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "book_id and page_content are required")

	w = doRequest(router, http.MethodPost, "/api/v1/prompts/page", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePagePrompts_UnknownModel(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/prompts/page",
		`{"book_id": "book-1", "page_content": "Luna ran.", "target_model": "imagen"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imagen")
}

func TestCheckConsistency_Validation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/prompts/consistency",
		`{"prompt": "Luna", "book_id": "book-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntityRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/books/book-1/entities/Luna", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/books/book-1/entities/Luna",
		`{"name": "ignored", "hair": "silver", "eyes": "green"}`)
	require.Equal(t, http.StatusOK, w.Code)
	// Имя в пути авторитетно
	assert.Contains(t, w.Body.String(), `"name":"Luna"`)

	w = doRequest(router, http.MethodGet, "/api/v1/books/book-1/entities/luna", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hair":"silver"`)
}
