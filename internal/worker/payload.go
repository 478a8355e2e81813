package worker

import "promptgen-server/internal/models"

// Статусы результата обработки задачи.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PageTaskPayload - задача визуализации страницы из очереди.
type PageTaskPayload struct {
	TaskID string `json:"task_id"`
	models.PageRequest
}

// PageResultPayload - результат обработки, публикуемый в очередь результатов.
type PageResultPayload struct {
	TaskID       string             `json:"task_id"`
	Status       string             `json:"status"`
	ErrorDetails string             `json:"error_details,omitempty"`
	Result       *models.PageResult `json:"result,omitempty"`
}
