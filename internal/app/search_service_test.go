package app

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"learn-with-jiji/internal/model"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockFinder struct {
	rows      []model.Resource
	err       error
	lastQuery string
	lastTerms []string
	calls     int
}

func (m *mockFinder) Search(ctx context.Context, query string, terms []string, limit int) ([]model.Resource, error) {
	m.calls++
	m.lastQuery = query
	m.lastTerms = terms
	return m.rows, m.err
}

type mockCache struct {
	entries map[string][]ResourceSummary
	getErr  error
}

func (m *mockCache) Get(ctx context.Context, query string) ([]ResourceSummary, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	results, ok := m.entries[query]
	return results, ok, nil
}

func (m *mockCache) Set(ctx context.Context, query string, results []ResourceSummary) error {
	if m.entries == nil {
		m.entries = map[string][]ResourceSummary{}
	}
	m.entries[query] = results
	return nil
}

func TestSearchUnconfiguredDatabaseReturnsEmpty(t *testing.T) {
	svc := NewSearchService(nil, nil, "", 5, testLogger())

	results := svc.Search(context.Background(), "anything at all")
	if results == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchErrorDegradesToEmpty(t *testing.T) {
	finder := &mockFinder{err: errors.New("connection refused")}
	svc := NewSearchService(finder, nil, "", 5, testLogger())

	results := svc.Search(context.Background(), "rag")
	if len(results) != 0 {
		t.Errorf("expected no results on error, got %d", len(results))
	}
}

func TestSearchMapsRowsToPublicShape(t *testing.T) {
	finder := &mockFinder{rows: []model.Resource{
		{
			ID:          "11111111-1111-1111-1111-111111111111",
			Title:       "Intro to RAG",
			Description: "slides",
			Type:        model.ResourceTypePresentation,
			StoragePath: "decks/rag.pdf",
			Tags:        []string{"rag"},
		},
	}}
	svc := NewSearchService(finder, nil, "https://cdn.example.com/jiji", 5, testLogger())

	results := svc.Search(context.Background(), "Explain RAG")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got := results[0]
	if got.ID != "11111111-1111-1111-1111-111111111111" || got.Title != "Intro to RAG" || got.Type != "presentation" {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.URL != "https://cdn.example.com/jiji/decks/rag.pdf" {
		t.Errorf("unexpected url: %q", got.URL)
	}
}

func TestSearchNormalizesQuery(t *testing.T) {
	finder := &mockFinder{}
	svc := NewSearchService(finder, nil, "", 5, testLogger())

	svc.Search(context.Background(), "  Explain RAG  ")
	if finder.lastQuery != "explain rag" {
		t.Errorf("expected normalized query, got %q", finder.lastQuery)
	}
	if len(finder.lastTerms) != 2 || finder.lastTerms[0] != "explain" || finder.lastTerms[1] != "rag" {
		t.Errorf("unexpected terms: %v", finder.lastTerms)
	}
}

func TestSearchCacheHitSkipsRepository(t *testing.T) {
	finder := &mockFinder{}
	cached := []ResourceSummary{{ID: "r1", Title: "Cached", Type: "video", URL: "https://x/v"}}
	c := &mockCache{entries: map[string][]ResourceSummary{"explain rag": cached}}
	svc := NewSearchService(finder, c, "", 5, testLogger())

	results := svc.Search(context.Background(), "Explain RAG")
	if finder.calls != 0 {
		t.Errorf("expected repository to be skipped, got %d calls", finder.calls)
	}
	if len(results) != 1 || results[0].ID != "r1" {
		t.Errorf("unexpected cached results: %+v", results)
	}
}

func TestSearchCacheErrorFallsThrough(t *testing.T) {
	finder := &mockFinder{}
	c := &mockCache{getErr: errors.New("redis down")}
	svc := NewSearchService(finder, c, "", 5, testLogger())

	svc.Search(context.Background(), "rag")
	if finder.calls != 1 {
		t.Errorf("expected repository query despite cache error, got %d calls", finder.calls)
	}
}
