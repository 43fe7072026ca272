package model

import "time"

// Profile mirrors an identity from the hosted auth service. Rows are created
// by a database trigger when the auth identity is created; this service only
// ever reads them.
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	AvatarURL string    `gorm:"size:512" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
