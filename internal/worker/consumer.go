package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"promptgen-server/internal/config"
)

// Consumer читает задачи визуализации из очереди RabbitMQ и передает
// их обработчику. Подтверждение ручное: при переходной ошибке сообщение
// один раз возвращается в очередь (по флагу Redelivered), повторная
// неудача отбрасывает его.
type Consumer struct {
	conn    *amqp.Connection
	handler *TaskHandler
	cfg     config.RabbitMQConfig
	logger  *zap.Logger
	channel *amqp.Channel
	done    chan struct{}
}

// NewConsumer создает консьюмера задач визуализации страниц.
func NewConsumer(conn *amqp.Connection, handler *TaskHandler, cfg config.RabbitMQConfig, logger *zap.Logger) *Consumer {
	return &Consumer{
		conn:    conn,
		handler: handler,
		cfg:     cfg,
		logger:  logger.Named("TaskConsumer"),
		done:    make(chan struct{}),
	}
}

// Start объявляет очередь задач и запускает горутину потребления.
func (c *Consumer) Start(ctx context.Context) error {
	var err error
	c.channel, err = c.conn.Channel()
	if err != nil {
		return fmt.Errorf("открытие канала консьюмера: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.cfg.TaskQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = c.channel.Close()
		return fmt.Errorf("объявление очереди задач '%s': %w", c.cfg.TaskQueue, err)
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err = c.channel.Qos(prefetch, 0, false); err != nil {
		_ = c.channel.Close()
		return fmt.Errorf("установка QoS: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.cfg.TaskQueue,
		"promptgen-worker", // consumer tag
		false,              // auto-ack = false
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,
	)
	if err != nil {
		_ = c.channel.Close()
		return fmt.Errorf("регистрация консьюмера очереди '%s': %w", c.cfg.TaskQueue, err)
	}

	c.logger.Info("Консьюмер задач запущен",
		zap.String("queue", c.cfg.TaskQueue),
		zap.Int("prefetch", prefetch))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("Паника в горутине консьюмера", zap.Any("panic", r))
			}
			close(c.done)
		}()

		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("Канал сообщений закрыт, консьюмер завершается")
					return
				}
				c.handleDelivery(ctx, msg)
			case <-ctx.Done():
				c.logger.Info("Контекст отменен, консьюмер завершается")
				return
			}
		}
	}()

	return nil
}

func (c *Consumer) handleDelivery(ctx context.Context, msg amqp.Delivery) {
	tasksReceivedTotal.Inc()

	var payload PageTaskPayload
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.logger.Error("Ошибка десериализации задачи, сообщение отброшено",
			zap.Error(err), zap.ByteString("body", msg.Body))
		_ = msg.Nack(false, false)
		return
	}

	if err := c.handler.Handle(ctx, payload); err != nil {
		if !msg.Redelivered {
			c.logger.Warn("Ошибка обработки задачи, возврат в очередь",
				zap.String("taskId", payload.TaskID), zap.Error(err))
			_ = msg.Nack(false, true)
			return
		}
		c.logger.Error("Повторная ошибка обработки задачи, сообщение отброшено",
			zap.String("taskId", payload.TaskID), zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}

	_ = msg.Ack(false)
}

// Stop отменяет подписку и ждет завершения горутины потребления.
func (c *Consumer) Stop() error {
	c.logger.Info("Остановка консьюмера задач...")
	if c.channel != nil {
		if err := c.channel.Cancel("promptgen-worker", false); err != nil {
			c.logger.Warn("Ошибка отмены подписки консьюмера", zap.Error(err))
		}
	}

	select {
	case <-c.done:
	case <-time.After(5 * time.Second):
		c.logger.Warn("Таймаут ожидания завершения горутины консьюмера")
	}

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("Ошибка закрытия канала консьюмера", zap.Error(err))
		}
	}
	c.logger.Info("Консьюмер задач остановлен")
	return nil
}
