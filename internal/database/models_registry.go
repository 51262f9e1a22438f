package database

import "studysmarter/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters: referenced tables must be created before their dependents.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.StudyRoom{},
		&models.Post{},
		&models.Comment{},
		&models.Media{},
	}
}
