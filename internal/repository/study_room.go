package repository

import (
	"context"

	"studysmarter/internal/models"

	"gorm.io/gorm"
)

// StudyRoomRepository defines persistence operations for study rooms.
type StudyRoomRepository interface {
	Create(ctx context.Context, room *models.StudyRoom) error
	GetByID(ctx context.Context, id uint) (*models.StudyRoom, error)
	List(ctx context.Context, limit, offset int) ([]models.StudyRoomSummary, error)
}

type studyRoomRepository struct {
	db *gorm.DB
}

// NewStudyRoomRepository returns a new StudyRoomRepository implementation.
func NewStudyRoomRepository(db *gorm.DB) StudyRoomRepository {
	return &studyRoomRepository{db: db}
}

func (r *studyRoomRepository) Create(ctx context.Context, room *models.StudyRoom) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(room).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *studyRoomRepository) GetByID(ctx context.Context, id uint) (*models.StudyRoom, error) {
	var room models.StudyRoom
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, mapLookupError(err, "Study room", id)
	}
	return &room, nil
}

// List returns the id/name/capacity projection for every room.
func (r *studyRoomRepository) List(ctx context.Context, limit, offset int) ([]models.StudyRoomSummary, error) {
	summaries := []models.StudyRoomSummary{}
	q := r.db.WithContext(ctx).Model(&models.StudyRoom{}).
		Select("id", "name", "capacity").
		Order("id").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&summaries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return summaries, nil
}
