package handler

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/media"
	"github.com/krishkalaria12/blog-serve/schemas"
)

// UploadPicture replaces the user's profile picture with the uploaded image.
func (h *Handler) UploadPicture(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return schemas.NewValidationError("No file provided")
	}

	blobFile, err := file.Open()
	if err != nil {
		return err
	}
	defer blobFile.Close()

	picture, err := media.ProcessPicture(blobFile)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			return schemas.NewValidationError(err.Error())
		}
		return schemas.NewValidationError("Invalid image: " + err.Error())
	}

	ctx := c.UserContext()
	if err := h.Media.Save(ctx, picture.Name, bytes.NewReader(picture.Data)); err != nil {
		return err
	}

	user, previous, err := h.Users.SetPicture(ctx, id, picture.Name)
	if err != nil {
		if delErr := h.Media.Delete(ctx, picture.Name); delErr != nil {
			slog.Warn("failed to remove unused picture", "name", picture.Name, "error", delErr)
		}
		return err
	}

	if previous != nil && *previous != "" && *previous != picture.Name {
		if err := h.Media.Delete(ctx, *previous); err != nil {
			slog.Warn("failed to remove old picture", "name", *previous, "error", err)
		}
	}

	return c.JSON(schemas.NewUserResponse(user, h.imageURL()))
}
