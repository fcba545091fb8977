package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/schemas"
)

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var input schemas.UserCreate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.Users.Create(c.UserContext(), input.Params())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.NewUserResponse(user, h.imageURL()))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewUserResponse(user, h.imageURL()))
}

func (h *Handler) GetUserPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	posts, err := h.Users.GetPosts(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewPostResponses(posts, h.imageURL()))
}

func (h *Handler) UpdateUserFull(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input schemas.UserCreate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.Users.UpdateFull(c.UserContext(), id, input.Params())
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewUserResponse(user, h.imageURL()))
}

func (h *Handler) UpdateUserPartial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input schemas.UserUpdate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.Users.UpdatePartial(c.UserContext(), id, input.Patch())
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewUserResponse(user, h.imageURL()))
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Users.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
