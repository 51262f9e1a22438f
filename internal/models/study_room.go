// Package models contains data structures for the application's domain models.
package models

import "time"

// StudyRoom represents a study room created by a user.
type StudyRoom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	Creator     User      `gorm:"foreignKey:CreatorID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:RoomID" json:"posts,omitempty"`
}

// StudyRoomSummary is the projection returned by the room list endpoint.
type StudyRoomSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}
