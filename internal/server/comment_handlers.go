package server

import (
	"strings"

	"studysmarter/internal/models"

	"github.com/gofiber/fiber/v2"
)

type commentResponse struct {
	ID        uint   `json:"id"`
	PostID    uint   `json:"post_id"`
	CreatorID uint   `json:"creator_id"`
	Content   string `json:"content"`
}

// CreateComment handles POST /comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		PostID    uint   `json:"post_id"`
		CreatorID uint   `json:"creator_id"`
		Content   string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON data"))
	}

	content := strings.TrimSpace(req.Content)
	if req.PostID == 0 || req.CreatorID == 0 || content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id, creator_id, and content are required"))
	}

	comment := &models.Comment{
		PostID:    req.PostID,
		CreatorID: req.CreatorID,
		Content:   content,
	}
	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Comment added successfully",
		"comment_id": comment.ID,
	})
}

// GetComments handles GET /comments/:postId, returning every comment on a post.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentRepo.ListByPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		resp = append(resp, commentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			CreatorID: comment.CreatorID,
			Content:   comment.Content,
		})
	}
	return c.JSON(resp)
}

// DeleteComment handles DELETE /comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.commentRepo.Delete(c.Context(), id); delErr != nil {
		return models.RespondWithAppError(c, delErr)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
