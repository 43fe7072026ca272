package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	ResourceTypePresentation = "presentation"
	ResourceTypeVideo        = "video"
)

// Resource is a learning artifact. Rows are created by the seed tooling only
// and are read-only from the service's perspective. The actual file lives in
// the external storage bucket under StoragePath.
type Resource struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Type        string         `gorm:"size:32;not null" json:"type"`
	FileURL     string         `gorm:"size:512" json:"file_url"`
	StoragePath string         `gorm:"size:512" json:"storage_path"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
