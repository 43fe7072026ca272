package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"learn-with-jiji/internal/model"
)

type QueryLogPublisher interface {
	Publish(ctx context.Context, q model.Query) error
}

type QueryLogStore interface {
	Create(ctx context.Context, q *model.Query) error
}

// QueryLogService records one row per handled request, best effort. Record
// returns before the write settles: the client may well see its response
// before the log row exists, and a failed write is logged and discarded.
// When a broker is configured the row goes through it (the worker owns the
// insert); otherwise it is inserted directly; with neither configured the
// call is a no-op.
type QueryLogService struct {
	publisher QueryLogPublisher // nil when the broker is unconfigured
	store     QueryLogStore     // nil when the privileged database is unconfigured
	log       *logrus.Logger

	wg sync.WaitGroup
}

func NewQueryLogService(publisher QueryLogPublisher, store QueryLogStore, log *logrus.Logger) *QueryLogService {
	return &QueryLogService{
		publisher: publisher,
		store:     store,
		log:       log,
	}
}

// Record dispatches the detached write. userID must be empty for synthesized
// identities; the profiles foreign key only holds for verified ones.
func (s *QueryLogService) Record(userID, queryText, answerText string, resourceIDs []string) {
	if s.publisher == nil && s.store == nil {
		return
	}

	q := model.Query{
		ID:          uuid.NewString(),
		QueryText:   queryText,
		Answer:      answerText,
		ResourceIDs: resourceIDs,
		CreatedAt:   time.Now(),
	}
	if userID != "" {
		q.UserID = &userID
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, q); err != nil {
				s.log.WithError(err).WithField("query_id", q.ID).Warn("enqueue query log failed")
			}
			return
		}
		if err := s.store.Create(ctx, &q); err != nil {
			s.log.WithError(err).WithField("query_id", q.ID).Warn("persist query log failed")
		}
	}()
}

// Wait blocks until every dispatched write has settled. Called on shutdown.
func (s *QueryLogService) Wait() {
	s.wg.Wait()
}
