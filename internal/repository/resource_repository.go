package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"learn-with-jiji/internal/model"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Search matches resources whose title or description contains the query
// (case-insensitive), or whose tag set overlaps the query terms.
func (r *ResourceRepository) Search(ctx context.Context, query string, terms []string, limit int) ([]model.Resource, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	if terms == nil {
		terms = []string{}
	}

	pattern := "%" + query + "%"
	var resources []model.Resource
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR tags && ?", pattern, pattern, pq.Array(terms)).
		Order("created_at DESC").
		Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("search resources failed: %w", err)
	}
	return resources, nil
}
