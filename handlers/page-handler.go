package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/blog-serve/schemas"
	"github.com/krishkalaria12/blog-serve/views"
)

func (h *Handler) HomePage(c *fiber.Ctx) error {
	posts, err := h.Posts.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.Render("home", fiber.Map{
		"Title": "Home",
		"Posts": schemas.NewPostResponses(posts, h.imageURL()),
	}, views.Layout)
}

func (h *Handler) PostPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Render("post", fiber.Map{
		"Title": post.Title,
		"Post":  schemas.NewPostResponse(post, h.imageURL()),
	}, views.Layout)
}

func (h *Handler) UserPostsPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Render("user_posts", fiber.Map{
		"Title": user.Username,
		"User":  schemas.NewUserResponse(user, h.imageURL()),
		"Posts": user.Posts,
	}, views.Layout)
}
