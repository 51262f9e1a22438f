// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Study Smarter application.
// The password column always stores a bcrypt hash, never the raw value,
// and is excluded from every JSON response.
type User struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Username   string      `gorm:"size:50;unique;not null" json:"username"`
	Email      string      `gorm:"size:255;unique;not null" json:"email"`
	Password   string      `gorm:"size:255;not null" json:"-"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	StudyRooms []StudyRoom `gorm:"foreignKey:CreatorID" json:"study_rooms,omitempty"`
	Posts      []Post      `gorm:"foreignKey:CreatorID" json:"posts,omitempty"`
	Comments   []Comment   `gorm:"foreignKey:CreatorID" json:"comments,omitempty"`
}

// Profile is the public projection of a user returned by the API.
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile returns the public view of the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email}
}
