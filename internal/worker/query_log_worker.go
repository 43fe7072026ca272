package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"learn-with-jiji/internal/model"
	"learn-with-jiji/internal/repository"
)

// QueryLogWorker drains the query log queue and inserts rows through the
// privileged database handle. Undecodable or unpersistable deliveries are
// nacked without requeue; the log is best effort end to end.
type QueryLogWorker struct {
	conn      *amqp.Connection
	repo      *repository.QueryRepository
	queueName string
	log       *logrus.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewQueryLogWorker(conn *amqp.Connection, repo *repository.QueryRepository, queueName string, log *logrus.Logger) *QueryLogWorker {
	return &QueryLogWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
		log:       log,
	}
}

func (w *QueryLogWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(w.queueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(w.queueName, "", false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(workerCtx, d)
			}
		}
	}()

	return nil
}

func (w *QueryLogWorker) handle(ctx context.Context, d amqp.Delivery) {
	var q model.Query
	if err := json.Unmarshal(d.Body, &q); err != nil {
		w.log.WithError(err).Warn("worker decode query log failed")
		_ = d.Nack(false, false)
		return
	}

	if err := w.repo.Create(ctx, &q); err != nil {
		w.log.WithError(err).WithField("query_id", q.ID).Warn("worker persist query log failed")
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
}

func (w *QueryLogWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
