package server

import (
	"strings"

	"studysmarter/internal/models"

	"github.com/gofiber/fiber/v2"
)

type postResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	CreatorID uint   `json:"creator_id"`
	RoomID    *uint  `json:"room_id"`
}

func newPostResponse(p *models.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Content:   p.Content,
		CreatorID: p.CreatorID,
		RoomID:    p.RoomID,
	}
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content   string `json:"content"`
		CreatorID uint   `json:"creator_id"`
		RoomID    *uint  `json:"room_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON data"))
	}

	content := strings.TrimSpace(req.Content)
	if content == "" || req.CreatorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content and creator_id are required"))
	}

	post := &models.Post{
		Content:   content,
		CreatorID: req.CreatorID,
		RoomID:    req.RoomID,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post_id": post.ID,
	})
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c)

	posts, err := s.postRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, newPostResponse(&posts[i]))
	}
	return c.JSON(resp)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(newPostResponse(post))
}

// UpdatePost handles PUT /posts/:id. Only the content field is mutable;
// an absent content leaves the post unchanged.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req struct {
		Content *string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid or missing JSON data"))
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Content must not be blank"))
		}
		post.Content = content
	}

	if updateErr := s.postRepo.Update(c.Context(), post); updateErr != nil {
		return models.RespondWithAppError(c, updateErr)
	}

	return c.JSON(fiber.Map{"message": "Post updated successfully"})
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.postRepo.Delete(c.Context(), id); delErr != nil {
		return models.RespondWithAppError(c, delErr)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
