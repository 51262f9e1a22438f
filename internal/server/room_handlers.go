package server

import (
	"strings"

	"studysmarter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateStudyRoom handles POST /study_rooms
func (s *Server) CreateStudyRoom(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Capacity    int    `json:"capacity"`
		CreatorID   uint   `json:"creator_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON body"))
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if name == "" || req.Capacity <= 0 || req.CreatorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, capacity, and creator_id are required"))
	}

	room := &models.StudyRoom{
		Name:        name,
		Description: description,
		Capacity:    req.Capacity,
		CreatorID:   req.CreatorID,
	}
	if err := s.roomRepo.Create(c.Context(), room); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Study room created successfully",
		"room_id": room.ID,
	})
}

// GetStudyRooms handles GET /study_rooms, returning the id/name/capacity
// projection for each room.
func (s *Server) GetStudyRooms(c *fiber.Ctx) error {
	page := parsePagination(c)

	rooms, err := s.roomRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(rooms)
}

// GetStudyRoom handles GET /study_rooms/:id
func (s *Server) GetStudyRoom(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	room, err := s.roomRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":          room.ID,
		"name":        room.Name,
		"description": room.Description,
		"capacity":    room.Capacity,
		"creator_id":  room.CreatorID,
	})
}
