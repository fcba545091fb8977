package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/krishkalaria12/blog-serve/handlers"
	"github.com/krishkalaria12/blog-serve/middleware"
	"github.com/krishkalaria12/blog-serve/views"
)

type Options struct {
	// MediaDir is served at /media when pictures are stored locally.
	MediaDir string
	// Quiet disables the request logger.
	Quiet bool
}

// New builds the application with views, error handling and all routes.
func New(h *handler.Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(recover.New())

	app.Use("/static", filesystem.New(filesystem.Config{Root: views.Static()}))
	if opts.MediaDir != "" {
		app.Static("/media", opts.MediaDir)
	}

	SetupRoutes(app, h, opts.Quiet)
	return app
}

func SetupRoutes(app *fiber.App, h *handler.Handler, quiet bool) {
	var api fiber.Router
	if quiet {
		api = app.Group(middleware.APIPrefix)
	} else {
		api = app.Group(middleware.APIPrefix, logger.New())
	}

	// User
	user := api.Group("/users")
	user.Post("/", h.CreateUser)
	user.Get("/:id", h.GetUser)
	user.Get("/:id/posts", h.GetUserPosts)
	user.Put("/:id", h.UpdateUserFull)
	user.Patch("/:id", h.UpdateUserPartial)
	user.Delete("/:id", h.DeleteUser)
	user.Post("/:id/picture", h.UploadPicture)

	// Post
	post := api.Group("/posts")
	post.Post("/", h.CreatePost)
	post.Get("/", h.ListPosts)
	post.Get("/:id", h.GetPost)
	post.Patch("/:id", h.UpdatePostPartial)
	post.Put("/:id", h.UpdatePostFull)
	post.Delete("/:id", h.DeletePost)

	// Pages
	app.Get("/", h.HomePage)
	app.Get("/post", h.HomePage)
	app.Get("/posts/:id", h.PostPage)
	app.Get("/users/:id/posts", h.UserPostsPage)
}
