package model

import (
	"time"

	"github.com/lib/pq"
)

// Query logs one user interaction. Written best-effort after the response is
// sent, never updated. UserID is nil when the caller's identity was
// synthesized rather than verified.
type Query struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *string        `gorm:"type:uuid;index" json:"user_id"`
	QueryText   string         `gorm:"type:text;not null" json:"query_text"`
	Answer      string         `gorm:"type:text;not null" json:"answer"`
	ResourceIDs pq.StringArray `gorm:"type:uuid[]" json:"resource_ids"`
	CreatedAt   time.Time      `json:"created_at"`
}
