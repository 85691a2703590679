package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	users := app.Group("/users")
	users.Post("/signup", handler.Signup)
	users.Post("/login", handler.Login)
	users.Get("/auth/:provider", handler.OAuthBegin)
	users.Get("/auth/:provider/callback", handler.OAuthCallback)
	users.Get("/me", handler.AuthRequired, handler.Me)
	users.Post("/onboarding", handler.AuthRequired, handler.SubmitOnboarding)
	users.Get("/onboarding", handler.AuthRequired, handler.GetOnboarding)
	users.Get("/", handler.AuthRequired, handler.ListUsers)
	users.Get("/:id", handler.AuthRequired, handler.GetUserByID)

	// Short aliases kept for clients that link /auth/<provider> directly.
	app.Get("/auth/:provider", handler.OAuthBegin)
	app.Get("/auth/:provider/callback", handler.OAuthCallback)

	habits := app.Group("/habits", handler.AuthRequired)
	habits.Get("/", handler.GetHabits)
	habits.Post("/", handler.CreateHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)

	planner := app.Group("/planner", handler.AuthRequired)
	planner.Get("/", handler.GetTasks)
	planner.Post("/", handler.CreateTask)
	planner.Put("/:id", handler.UpdateTask)
	planner.Delete("/:id", handler.DeleteTask)
}
