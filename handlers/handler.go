package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/media"
	"github.com/krishkalaria12/blog-serve/schemas"
	"github.com/krishkalaria12/blog-serve/services"
)

type Handler struct {
	Users *services.UserService
	Posts *services.PostService
	Media media.Store
}

func New(users *services.UserService, posts *services.PostService, store media.Store) *Handler {
	return &Handler{Users: users, Posts: posts, Media: store}
}

func (h *Handler) imageURL() schemas.ImageURLFunc {
	if h.Media == nil {
		return nil
	}
	return h.Media.URL
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, &schemas.ValidationError{
			Message: "Invalid request path",
			Fields:  []schemas.FieldError{{Field: param, Message: "must be a positive integer"}},
		}
	}
	return uint(id), nil
}

// parseBody decodes the JSON body into dst and validates it.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return schemas.NewValidationError("Wrong input data format")
	}
	return schemas.Validate(dst)
}
