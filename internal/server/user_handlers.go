package server

import (
	"strings"

	"studysmarter/internal/models"
	"studysmarter/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user.Profile())
}

// UpdateUser handles PUT /users/:id. Only fields present in the body are
// merged over the stored row; at least one of username/email is required.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON data"))
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" && email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one field (username or email) must be provided"))
	}

	if username != "" {
		if vErr := validation.ValidateUsername(username); vErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(vErr.Error()))
		}
		user.Username = username
	}
	if email != "" {
		if vErr := validation.ValidateEmail(email); vErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid email format"))
		}
		user.Email = email
	}

	if updateErr := s.userRepo.Update(c.Context(), user); updateErr != nil {
		return models.RespondWithAppError(c, updateErr)
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}
