// Package queue wires the RabbitMQ hand-off between the dispatcher and the
// delivery worker pool. Delay and deduplication live in the Redis job queue;
// RabbitMQ only carries jobs that are already due. Messages that cannot be
// processed dead-letter into the DLQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/config"
)

// JobMessage is the payload handed to a delivery worker. The worker
// re-fetches both the job record and the reminder before acting, so a stale
// message for a cancelled or rescheduled job is harmless.
type JobMessage struct {
	Key        string    `json:"key"`
	ReminderID uuid.UUID `json:"reminder_id"`
	DueAt      time.Time `json:"due_at"`
	Attempt    int       `json:"attempt"`
}

// DeliveryQueue holds the publisher and consumer ends of the ready queue.
type DeliveryQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewDeliveryQueue declares the exchange, the ready queue and its DLQ on the
// given channel and binds them together.
func NewDeliveryQueue(ch *rabbitmq.Channel, cfg *config.Config) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.RabbitMQ.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitMQ.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.RabbitMQ.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RabbitMQ.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons, routingKey: cfg.RabbitMQ.RoutingKey}, nil
}

// Publish sends a due job to the ready queue.
func (q *DeliveryQueue) Publish(msg JobMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes ready-queue deliveries onto out until ctx is cancelled.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- JobMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var msg JobMessage
				if err := json.Unmarshal(m, &msg); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
					continue
				}

				out <- msg
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
