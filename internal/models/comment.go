// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment left on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatorID uint      `gorm:"not null;index" json:"creator_id"`
	Creator   User      `gorm:"foreignKey:CreatorID" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
