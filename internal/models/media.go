// Package models contains data structures for the application's domain models.
package models

import "time"

// Media represents an uploaded media file, optionally attached to a post.
// Only the file type (e.g. "photo" or "video") and storage path are tracked;
// the bytes themselves live outside the database.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	FilePath  string    `gorm:"size:255;not null" json:"file_path"`
	PostID    *uint     `gorm:"index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table singular to match the public API naming.
func (Media) TableName() string {
	return "media"
}
