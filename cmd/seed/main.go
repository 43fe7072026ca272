// Command seed migrates the schema and loads the sample resource catalog.
// It is the only writer of the resources table; the server treats resources
// as read-only. Requires the privileged DSN (DATABASE_SERVICE_URL).
package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"learn-with-jiji/internal/config"
	"learn-with-jiji/internal/model"
	postgresClient "learn-with-jiji/internal/platform/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if cfg.Database.ServiceURL == "" {
		log.Fatal("DATABASE_SERVICE_URL is required to seed")
	}

	db, err := postgresClient.New(ctx, cfg.Database.ServiceURL)
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Profile{}, &model.Resource{}, &model.Query{}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	seeded := 0
	for _, r := range sampleResources() {
		var count int64
		if err := db.WithContext(ctx).Model(&model.Resource{}).Where("title = ?", r.Title).Count(&count).Error; err != nil {
			log.Fatalf("check existing resource failed: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&r).Error; err != nil {
			log.Fatalf("insert resource %q failed: %v", r.Title, err)
		}
		seeded++
	}

	log.Printf("seed complete, %d new resources", seeded)
}

func sampleResources() []model.Resource {
	return []model.Resource{
		{
			ID:          uuid.NewString(),
			Title:       "Introduction to RAG",
			Description: "Slide deck walking through Retrieval-Augmented Generation end to end: chunking, embedding, retrieval, and grounding the final answer.",
			Type:        model.ResourceTypePresentation,
			StoragePath: "decks/intro-to-rag.pdf",
			Tags:        []string{"rag", "retrieval", "llm"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Neural Networks from Scratch",
			Description: "Video series building a small neural network by hand, covering layers, activations, and backpropagation.",
			Type:        model.ResourceTypeVideo,
			StoragePath: "videos/neural-networks-from-scratch.mp4",
			Tags:        []string{"neural network", "deep learning"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Transformers and Self-Attention",
			Description: "Annotated walkthrough of the transformer architecture and why attention replaced recurrence.",
			Type:        model.ResourceTypePresentation,
			StoragePath: "decks/transformers-attention.pdf",
			Tags:        []string{"transformer", "attention", "llm"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Embeddings and Vector Search",
			Description: "How text becomes vectors and how nearest-neighbour search powers semantic retrieval.",
			Type:        model.ResourceTypeVideo,
			StoragePath: "videos/embeddings-vector-search.mp4",
			Tags:        []string{"embedding", "vector", "rag"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Prompt Engineering Patterns",
			Description: "Practical prompting techniques: roles, few-shot examples, output constraints, and common failure modes.",
			Type:        model.ResourceTypePresentation,
			StoragePath: "decks/prompt-engineering-patterns.pdf",
			Tags:        []string{"prompt", "llm"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Machine Learning Crash Course",
			Description: "From labeled data to a trained and evaluated model, with the standard supervised learning workflow.",
			Type:        model.ResourceTypeVideo,
			StoragePath: "videos/ml-crash-course.mp4",
			Tags:        []string{"machine learning", "supervised"},
		},
	}
}
