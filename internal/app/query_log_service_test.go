package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"learn-with-jiji/internal/model"
)

type mockPublisher struct {
	mu        sync.Mutex
	published []model.Query
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, q model.Query) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, q)
	return nil
}

type mockStore struct {
	mu      sync.Mutex
	created []model.Query
	err     error
}

func (m *mockStore) Create(ctx context.Context, q *model.Query) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *q)
	return nil
}

func TestRecordNoOpWhenUnconfigured(t *testing.T) {
	svc := NewQueryLogService(nil, nil, testLogger())

	svc.Record("user-1", "explain rag", "answer", nil)
	svc.Wait()
	// Nothing to assert beyond it not panicking and not blocking.
}

func TestRecordPrefersPublisher(t *testing.T) {
	pub := &mockPublisher{}
	store := &mockStore{}
	svc := NewQueryLogService(pub, store, testLogger())

	svc.Record("user-1", "explain rag", "answer", []string{"r1", "r2"})
	svc.Wait()

	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published row, got %d", len(pub.published))
	}
	if len(store.created) != 0 {
		t.Errorf("expected direct store to be bypassed, got %d inserts", len(store.created))
	}

	q := pub.published[0]
	if q.ID == "" {
		t.Error("expected a generated id")
	}
	if q.UserID == nil || *q.UserID != "user-1" {
		t.Errorf("unexpected user id: %v", q.UserID)
	}
	if q.QueryText != "explain rag" || q.Answer != "answer" {
		t.Errorf("unexpected row: %+v", q)
	}
	if len(q.ResourceIDs) != 2 {
		t.Errorf("unexpected resource ids: %v", q.ResourceIDs)
	}
}

func TestRecordFallsBackToDirectInsert(t *testing.T) {
	store := &mockStore{}
	svc := NewQueryLogService(nil, store, testLogger())

	svc.Record("", "explain rag", "answer", nil)
	svc.Wait()

	if len(store.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.created))
	}
	if store.created[0].UserID != nil {
		t.Errorf("expected nil user id for a synthesized identity, got %v", store.created[0].UserID)
	}
}

func TestRecordSwallowsFailures(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker gone")}
	svc := NewQueryLogService(pub, nil, testLogger())

	// Must neither panic nor propagate.
	svc.Record("user-1", "explain rag", "answer", nil)
	svc.Wait()
}
