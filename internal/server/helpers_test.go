package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 0, 0},
		{"explicit values", "limit=10&offset=20", 10, 20},
		{"limit capped", "limit=5000", maxPaginationLimit, 0},
		{"negative limit treated as unlimited", "limit=-5", 0, 0},
		{"negative offset clamped", "offset=-5", 0, 0},
		{"junk ignored", "limit=abc&offset=xyz", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/items", func(c *fiber.Ctx) error {
				got = parsePagination(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req, err := http.NewRequest(http.MethodGet, "/items?"+tt.query, nil)
			assert.NoError(t, err)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		wantID         uint
	}{
		{"valid id", "/things/42", http.StatusOK, 42},
		{"non-numeric", "/things/abc", http.StatusNotFound, 0},
		{"zero", "/things/0", http.StatusNotFound, 0},
		{"negative", "/things/-3", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{}
			app := fiber.New()
			app.Get("/things/:id", func(c *fiber.Ctx) error {
				id, err := s.parseID(c, "id")
				if err != nil {
					return nil
				}
				return c.JSON(fiber.Map{"id": id})
			})

			req, err := http.NewRequest(http.MethodGet, tt.path, nil)
			assert.NoError(t, err)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]uint
				decodeBody(t, resp, &body)
				assert.Equal(t, tt.wantID, body["id"])
			} else {
				_ = resp.Body.Close()
			}
		})
	}
}
