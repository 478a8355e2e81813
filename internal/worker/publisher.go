package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ResultPublisher отправляет результат обработки задачи.
type ResultPublisher interface {
	Publish(ctx context.Context, payload PageResultPayload) error
}

// rabbitMQPublisher публикует результаты в очередь RabbitMQ.
type rabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

var _ ResultPublisher = (*rabbitMQPublisher)(nil)

// NewRabbitMQPublisher объявляет очередь результатов и возвращает publisher.
// Канал должен быть открыт заранее и закрывается вызывающей стороной.
func NewRabbitMQPublisher(ch *amqp.Channel, queueName string, logger *zap.Logger) (ResultPublisher, error) {
	_, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("объявление очереди результатов '%s': %w", queueName, err)
	}

	return &rabbitMQPublisher{
		channel:   ch,
		queueName: queueName,
		logger:    logger.Named("ResultPublisher"),
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, payload PageResultPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("сериализация результата задачи %s: %w", payload.TaskID, err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
			AppId:        "promptgen-server",
			MessageId:    payload.TaskID + "-result",
		},
	)
	if err != nil {
		return fmt.Errorf("публикация результата задачи %s: %w", payload.TaskID, err)
	}

	p.logger.Debug("Результат задачи опубликован",
		zap.String("taskId", payload.TaskID),
		zap.String("queue", p.queueName),
		zap.String("status", payload.Status))
	return nil
}
