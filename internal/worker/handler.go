package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"promptgen-server/internal/models"
)

// PageGenerator - часть пайплайна, нужная обработчику задач.
type PageGenerator interface {
	GeneratePromptsForPage(ctx context.Context, req *models.PageRequest) (*models.PageResult, error)
}

// TaskHandler обрабатывает одну задачу визуализации страницы:
// прогоняет пайплайн и публикует результат (успех или ошибку)
// в очередь результатов.
type TaskHandler struct {
	pipeline  PageGenerator
	publisher ResultPublisher
	logger    *zap.Logger
}

// NewTaskHandler создает обработчик задач воркера.
func NewTaskHandler(pipeline PageGenerator, publisher ResultPublisher, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		pipeline:  pipeline,
		publisher: publisher,
		logger:    logger.Named("TaskHandler"),
	}
}

// Handle обрабатывает задачу и публикует результат. Возвращаемая ошибка
// означает, что задача НЕ завершена (генерация упала или результат не
// опубликован) и сообщение следует отклонить.
func (h *TaskHandler) Handle(ctx context.Context, payload PageTaskPayload) error {
	start := time.Now()
	log := h.logger.With(
		zap.String("taskId", payload.TaskID),
		zap.String("bookId", payload.BookID),
		zap.Int("page", payload.PageNumber))
	log.Info("Обработка задачи визуализации страницы")

	defer func() {
		taskProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if payload.BookID == "" || payload.PageContent == "" {
		err := fmt.Errorf("задача %s: пустой book_id или page_content", payload.TaskID)
		h.publishError(ctx, payload.TaskID, err)
		tasksProcessedTotal.WithLabelValues(StatusError).Inc()
		return err
	}

	result, genErr := h.pipeline.GeneratePromptsForPage(ctx, &payload.PageRequest)
	if genErr != nil {
		log.Error("Ошибка генерации промптов для страницы", zap.Error(genErr))
		h.publishError(ctx, payload.TaskID, genErr)
		tasksProcessedTotal.WithLabelValues(StatusError).Inc()
		return fmt.Errorf("генерация промптов для задачи %s: %w", payload.TaskID, genErr)
	}

	resultPayload := PageResultPayload{
		TaskID: payload.TaskID,
		Status: StatusSuccess,
		Result: result,
	}
	if err := h.publisher.Publish(ctx, resultPayload); err != nil {
		log.Error("Ошибка публикации результата", zap.Error(err))
		tasksProcessedTotal.WithLabelValues(StatusError).Inc()
		return fmt.Errorf("публикация результата задачи %s: %w", payload.TaskID, err)
	}

	tasksProcessedTotal.WithLabelValues(StatusSuccess).Inc()
	log.Info("Задача успешно обработана",
		zap.Int("prompts", len(result.Prompts)),
		zap.Duration("took", time.Since(start)))
	return nil
}

// publishError отправляет результат-ошибку; неудача публикации здесь
// только логируется, исходная ошибка обработки приоритетнее.
func (h *TaskHandler) publishError(ctx context.Context, taskID string, cause error) {
	payload := PageResultPayload{
		TaskID:       taskID,
		Status:       StatusError,
		ErrorDetails: cause.Error(),
	}
	if err := h.publisher.Publish(ctx, payload); err != nil {
		h.logger.Warn("Не удалось опубликовать результат-ошибку",
			zap.String("taskId", taskID), zap.Error(err))
	}
}
