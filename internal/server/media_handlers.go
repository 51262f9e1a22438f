package server

import (
	"strings"

	"studysmarter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateMedia handles POST /media
func (s *Server) CreateMedia(c *fiber.Ctx) error {
	var req struct {
		Type     string `json:"type"`
		FilePath string `json:"file_path"`
		PostID   *uint  `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON data"))
	}

	mediaType := strings.TrimSpace(req.Type)
	filePath := strings.TrimSpace(req.FilePath)

	if mediaType == "" || filePath == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("type and file_path are required"))
	}

	media := &models.Media{
		Type:     mediaType,
		FilePath: filePath,
		PostID:   req.PostID,
	}
	if err := s.mediaRepo.Create(c.Context(), media); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Media uploaded successfully",
		"media_id": media.ID,
	})
}

// GetMedia handles GET /media/:id
func (s *Server) GetMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	media, err := s.mediaRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":        media.ID,
		"type":      media.Type,
		"file_path": media.FilePath,
		"post_id":   media.PostID,
	})
}
