package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promptgen-server/internal/generator"
	"promptgen-server/internal/models"
	"promptgen-server/internal/pipeline"
	"promptgen-server/internal/style"
)

// Handler - тонкий HTTP-слой над пайплайном: биндинг, коды ответов,
// никакой доменной логики.
type Handler struct {
	manager  *pipeline.Manager
	styles   *style.Engine
	registry *generator.Registry
	logger   *zap.Logger
}

func NewHandler(manager *pipeline.Manager, styles *style.Engine, registry *generator.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		manager:  manager,
		styles:   styles,
		registry: registry,
		logger:   logger.Named("HTTPHandler"),
	}
}

// RegisterRoutes регистрирует маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/prompts/page", h.generatePagePrompts)
		api.POST("/prompts/enhance", h.enhancePrompt)
		api.POST("/prompts/consistency", h.checkConsistency)

		api.GET("/books/:bookId/entities/:name", h.getEntity)
		api.PUT("/books/:bookId/entities/:name", h.putEntity)

		api.GET("/styles", h.listStyles)
		api.GET("/models", h.listModels)
	}
}

func (h *Handler) generatePagePrompts(c *gin.Context) {
	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Некорректное тело запроса генерации", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.BookID == "" || req.PageContent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "book_id and page_content are required"})
		return
	}

	result, err := h.manager.GeneratePromptsForPage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownModel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Ошибка генерации промптов страницы",
			zap.String("bookID", req.BookID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prompt generation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type enhanceRequest struct {
	Prompt         string   `json:"prompt" binding:"required"`
	TargetModel    string   `json:"target_model"`
	Style          string   `json:"style"`
	BookID         string   `json:"book_id"`
	CharacterNames []string `json:"character_names"`
}

func (h *Handler) enhancePrompt(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.manager.EnhanceExistingPrompt(c.Request.Context(),
		req.BookID, req.Prompt, req.TargetModel, req.Style, req.CharacterNames)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownModel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Ошибка улучшения промпта", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prompt enhancement failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type consistencyRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	BookID     string `json:"book_id" binding:"required"`
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id" binding:"required"`
}

func (h *Handler) checkConsistency(c *gin.Context) {
	var req consistencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	corrected, err := h.manager.CheckEntityConsistency(c.Request.Context(),
		req.Prompt, req.BookID, models.EntityType(req.EntityType), req.EntityID)
	if err != nil {
		h.logger.Error("Ошибка проверки консистентности",
			zap.String("bookID", req.BookID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "consistency check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prompt":    corrected,
		"corrected": corrected != req.Prompt,
	})
}

func (h *Handler) getEntity(c *gin.Context) {
	bookID := c.Param("bookId")
	name := c.Param("name")

	profile, err := h.manager.GetEntityConsistency(c.Request.Context(), bookID, name)
	if err != nil {
		h.logger.Error("Ошибка чтения профиля сущности",
			zap.String("bookID", bookID), zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "entity lookup failed"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) putEntity(c *gin.Context) {
	bookID := c.Param("bookId")
	name := c.Param("name")

	var profile models.CharacterProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// Имя в пути авторитетно.
	profile.Name = name

	if err := h.manager.SetEntityConsistency(c.Request.Context(), bookID, &profile); err != nil {
		h.logger.Error("Ошибка сохранения профиля сущности",
			zap.String("bookID", bookID), zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "entity save failed"})
		return
	}

	c.JSON(http.StatusOK, &profile)
}

func (h *Handler) listStyles(c *gin.Context) {
	c.JSON(http.StatusOK, h.styles.Catalog())
}

func (h *Handler) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Configs())
}
