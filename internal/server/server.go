package server

import (
	"errors"
	"strings"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/analytics"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/auth"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/config"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/post"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/stream"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Hub   *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		Views:        web.Engine(),
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
		Hub:   stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	posts := post.NewService(s.DB, s.Hub)
	stats := analytics.NewService(s.DB, s.Redis, analytics.MockProvider{})

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	post.RegisterRoutes(s.App.Group("/api/posts"), posts, jwtMiddleware)
	analytics.RegisterRoutes(s.App.Group("/api/analytics"), stats)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Hub)
	web.RegisterRoutes(s.App, posts, stats, jwtMiddleware)

	s.App.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})
}

// errorHandler answers JSON on the API surfaces and renders the error page
// everywhere else.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if wantsJSON(c.Path()) {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
	return c.Status(code).Render("views/error", fiber.Map{
		"Code":    code,
		"Message": message,
	})
}

func wantsJSON(path string) bool {
	for _, prefix := range []string{"/api", "/auth", "/stream", "/health"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
