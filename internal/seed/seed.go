// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"studysmarter/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumRooms    int
	NumPosts    int
	ShouldClean bool
}

// DefaultOptions returns a small, useful demo data set.
func DefaultOptions() Options {
	return Options{NumUsers: 10, NumRooms: 5, NumPosts: 40}
}

var roomTopics = []string{
	"Calculus", "Linear Algebra", "Organic Chemistry", "World History",
	"Microeconomics", "Data Structures", "Statistics", "Physics",
	"Spanish", "Philosophy", "Biology", "Creative Writing",
}

// Run populates the database with demo users, study rooms, posts, comments
// and media. All seeded accounts share the password "password123".
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password:  string(hashed),
			CreatedAt: pastTime(r, 90),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	rooms := make([]*models.StudyRoom, 0, opts.NumRooms)
	for i := 0; i < opts.NumRooms; i++ {
		topic := roomTopics[r.Intn(len(roomTopics))]
		room := &models.StudyRoom{
			Name:        fmt.Sprintf("%s study group %d", topic, i+1),
			Description: gofakeit.Sentence(10),
			Capacity:    2 + r.Intn(18),
			CreatorID:   users[r.Intn(len(users))].ID,
			CreatedAt:   pastTime(r, 60),
		}
		if err := db.Create(room).Error; err != nil {
			return fmt.Errorf("seed study room: %w", err)
		}
		rooms = append(rooms, room)
	}

	for i := 0; i < opts.NumPosts; i++ {
		post := &models.Post{
			Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatorID: users[r.Intn(len(users))].ID,
			CreatedAt: pastTime(r, 30),
		}
		// Roughly two thirds of posts live inside a room.
		if r.Intn(3) > 0 {
			roomID := rooms[r.Intn(len(rooms))].ID
			post.RoomID = &roomID
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seed post: %w", err)
		}

		for j := 0; j < r.Intn(4); j++ {
			comment := &models.Comment{
				PostID:    post.ID,
				CreatorID: users[r.Intn(len(users))].ID,
				Content:   gofakeit.Sentence(12),
				CreatedAt: post.CreatedAt.Add(time.Duration(1+r.Intn(600)) * time.Minute),
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}

		if r.Intn(4) == 0 {
			postID := post.ID
			media := &models.Media{
				Type:     "photo",
				FilePath: fmt.Sprintf("/uploads/%s.jpg", gofakeit.UUID()),
				PostID:   &postID,
			}
			if err := db.Create(media).Error; err != nil {
				return fmt.Errorf("seed media: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d rooms, %d posts", len(users), len(rooms), opts.NumPosts)
	return nil
}

func clean(db *gorm.DB) error {
	// Child tables first so foreign keys never dangle mid-clean.
	for _, model := range []interface{}{
		&models.Media{}, &models.Comment{}, &models.Post{},
		&models.StudyRoom{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clean tables: %w", err)
		}
	}
	return nil
}

func pastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
