package server

import (
	"context"
	"log"

	"notetaking-be/internal/bootstrap"
	"notetaking-be/internal/config"
	"notetaking-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ErrorHandler: serverutils.ErrorHandler(cfg.Auth.LoginURL, container.Logger),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Location",
	}))

	// OpenTelemetry tracing middleware (no-op unless a provider is installed)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.SessionMiddleware(container.AuthService))

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	loginRequired := serverutils.LoginRequired(cfg.Auth.LoginURL)

	c.PageController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app)
	c.NoteController.RegisterRoutes(app, loginRequired)
	c.FeedController.RegisterRoutes(app, loginRequired)
}
