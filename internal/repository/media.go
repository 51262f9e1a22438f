package repository

import (
	"context"

	"studysmarter/internal/models"

	"gorm.io/gorm"
)

// MediaRepository defines persistence operations for media records.
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id uint) (*models.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository returns a new MediaRepository implementation.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(media).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, mapLookupError(err, "Media", id)
	}
	return &media, nil
}
