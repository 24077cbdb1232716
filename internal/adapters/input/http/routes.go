package http

import "github.com/gofiber/fiber/v2"

// Register func - mounts the health check and the interview API on app
func (hdl *HTTPHandler) Register(app *fiber.App) {
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api")
	{
		api.Get("/technologies", hdl.ListTechnologies)
		api.Post("/sessions", hdl.StartSession)
		api.Get("/sessions/:id", hdl.GetSession)
		api.Delete("/sessions/:id", hdl.EndSession)
		api.Post("/sessions/:id/details", hdl.SubmitDetails)
		api.Post("/sessions/:id/tech-stack", hdl.SubmitTechStack)
		api.Post("/sessions/:id/answers", hdl.SubmitAnswer)
		api.Post("/sessions/:id/reset", hdl.Reset)
	}
}
