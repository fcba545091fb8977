package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/schemas"
)

func (h *Handler) CreatePost(c *fiber.Ctx) error {
	var input schemas.PostCreate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	post, err := h.Posts.Create(c.UserContext(), input.Params())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.NewPostResponse(post, h.imageURL()))
}

func (h *Handler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.Posts.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewPostResponses(posts, h.imageURL()))
}

func (h *Handler) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewPostResponse(post, h.imageURL()))
}

func (h *Handler) UpdatePostPartial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input schemas.PostUpdate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	post, err := h.Posts.UpdatePartial(c.UserContext(), id, input.Patch())
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewPostResponse(post, h.imageURL()))
}

func (h *Handler) UpdatePostFull(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input schemas.PostCreate
	if err := parseBody(c, &input); err != nil {
		return err
	}

	post, err := h.Posts.UpdateFull(c.UserContext(), id, input.Params())
	if err != nil {
		return err
	}

	return c.JSON(schemas.NewPostResponse(post, h.imageURL()))
}

func (h *Handler) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Posts.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
