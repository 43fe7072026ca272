package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"learn-with-jiji/internal/model"
)

// QueryRepository writes query log rows through the privileged database
// handle; the anonymous role's RLS policies would reject these inserts.
type QueryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

func (r *QueryRepository) Create(ctx context.Context, q *model.Query) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("create query log failed: %w", err)
	}
	return nil
}

// ListByUserID returns a user's query history, newest first. No route serves
// this yet.
func (r *QueryRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]model.Query, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var queries []model.Query
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&queries).Error
	if err != nil {
		return nil, fmt.Errorf("list query history failed: %w", err)
	}
	return queries, nil
}
