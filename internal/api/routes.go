package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	posts := api.Group("/posts")
	posts.Get("", handler.AuthOptional, handler.ListPosts)
	posts.Get("/:id", handler.AuthOptional, handler.GetPost)
	posts.Post("", handler.AuthRequired, handler.CreatePost)
	posts.Put("/:id", handler.AuthRequired, handler.UpdatePost)
	posts.Delete("/:id", handler.AuthRequired, handler.DeletePost)

	categories := api.Group("/categories")
	categories.Get("", handler.ListCategories)
	categories.Post("", handler.AuthRequired, handler.CreateCategory)
	categories.Delete("/:id", handler.AuthRequired, handler.DeleteCategory)

	worklog := api.Group("/worklog", handler.AuthRequired)
	worklog.Get("", handler.GetWorkLog)
	worklog.Post("/cycle", handler.SelectCycle)
	worklog.Post("/entries", handler.CreateEntry)
	worklog.Put("/entries/:id", handler.UpdateEntry)
	worklog.Delete("/entries/:id", handler.DeleteEntry)
	worklog.Get("/export/csv", handler.ExportCSV)
	worklog.Get("/export/xlsx", handler.ExportXLSX)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
