package storage

import "testing"

func TestPublicURL(t *testing.T) {
	got := PublicURL("https://cdn.example.com/bucket", "decks/rag-intro.pdf", "")
	want := "https://cdn.example.com/bucket/decks/rag-intro.pdf"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPublicURLTrimsSlashes(t *testing.T) {
	got := PublicURL("https://cdn.example.com/bucket/", "/decks/rag-intro.pdf", "")
	want := "https://cdn.example.com/bucket/decks/rag-intro.pdf"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPublicURLFallsBackToFileURL(t *testing.T) {
	if got := PublicURL("", "decks/x.pdf", "https://files.example.com/x.pdf"); got != "https://files.example.com/x.pdf" {
		t.Errorf("expected file url fallback, got %q", got)
	}
	if got := PublicURL("https://cdn.example.com", "", "https://files.example.com/x.pdf"); got != "https://files.example.com/x.pdf" {
		t.Errorf("expected file url fallback, got %q", got)
	}
}
