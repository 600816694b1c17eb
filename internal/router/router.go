package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/pawsition/pawsition-api/internal/config"
	"github.com/pawsition/pawsition-api/internal/handler"
	"github.com/pawsition/pawsition-api/internal/middleware"
	"github.com/pawsition/pawsition-api/internal/models"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	ClassHandler       *handler.ClassHandler
	CurriculumHandler  *handler.CurriculumHandler
	SubmissionHandler  *handler.SubmissionHandler
	CompletionHandler  *handler.CompletionHandler
	GradeHandler       *handler.GradeHandler
	CertificateHandler *handler.CertificateHandler
	ProgressHandler    *handler.ProgressHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	trainerOnly := middleware.RequireRole(models.RoleTrainer, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		deps.AuthHandler.Register(auth)
		deps.AuthHandler.RegisterProtected(auth.Group("", jwtMiddleware))
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api.Group("/users", jwtMiddleware, adminOnly))
	}

	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(api.Group("/profiles", jwtMiddleware), trainerOnly)
	}

	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(api.Group("/classes", jwtMiddleware), trainerOnly)
	}

	if deps.CurriculumHandler != nil {
		deps.CurriculumHandler.RegisterSections(api.Group("/sections", jwtMiddleware), trainerOnly)
		deps.CurriculumHandler.RegisterSkills(api.Group("/skills", jwtMiddleware), trainerOnly)
	}

	if deps.SubmissionHandler != nil {
		deps.SubmissionHandler.Register(api.Group("/submissions", jwtMiddleware), trainerOnly)
	}

	if deps.CompletionHandler != nil {
		deps.CompletionHandler.Register(api.Group("/completions", jwtMiddleware), trainerOnly)
	}

	if deps.GradeHandler != nil {
		deps.GradeHandler.Register(api.Group("/grades", jwtMiddleware), trainerOnly)
	}

	if deps.CertificateHandler != nil {
		deps.CertificateHandler.Register(api.Group("/certificates", jwtMiddleware), trainerOnly)
	}

	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(api.Group("/progress", jwtMiddleware))
	}
}
