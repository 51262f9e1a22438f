// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post written by a user, optionally inside a study room.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatorID uint       `gorm:"not null;index" json:"creator_id"`
	Creator   User       `gorm:"foreignKey:CreatorID" json:"-"`
	RoomID    *uint      `gorm:"index" json:"room_id"`
	Room      *StudyRoom `gorm:"foreignKey:RoomID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Comments  []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Media     []Media    `gorm:"foreignKey:PostID;constraint:OnDelete:SET NULL" json:"media,omitempty"`
}
