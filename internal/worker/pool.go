package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/rabbitmq/queue"
)

type deliveryQueue interface {
	Consume(ctx context.Context, out chan<- queue.JobMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.JobMessage)
}

// Pool fans due-job messages out to a fixed set of delivery workers.
type Pool struct {
	queue   deliveryQueue
	handler messageHandler
}

func NewPool(q deliveryQueue, h messageHandler) *Pool {
	return &Pool{
		queue:   q,
		handler: h,
	}
}

// Run consumes the ready queue and blocks until ctx is cancelled and all
// workers have drained.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.JobMessage, workerCount*10)

	go func() {
		if err := p.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					p.handler.HandleMessage(ctx, msg)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("delivery pool stopped")
}
