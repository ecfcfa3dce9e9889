// Package http exposes the projecthub API over HTTP using fiber.
package http

import (
	"context"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/logging"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 5 * time.Second

// UserService is what the transport needs from the credential side.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// ProjectService is what the transport needs for project operations.
type ProjectService interface {
	Create(ctx context.Context, principal *models.User, title, description string) (*models.Project, error)
	Get(ctx context.Context, principal *models.User, id int64) (*models.Project, error)
	Delete(ctx context.Context, principal *models.User, id int64) error
}

type HTTPServer struct {
	address  string
	users    UserService
	projects ProjectService
	logger   logging.Logger
	app      *fiber.App
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ps ProjectService) *HTTPServer {
	s := &HTTPServer{
		address:  a,
		users:    us,
		projects: ps,
		logger:   l.With("module", "http_server"),
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})
	s.routes()

	return s
}

func (s *HTTPServer) routes() {
	s.app.Use(s.requestLogger)

	s.app.Get("/health", s.Health)
	s.app.Post("/register", s.Register)
	s.app.Post("/login", s.Login)

	projects := s.app.Group("/projects", s.requireAuth)
	projects.Post("/", s.CreateProject)
	projects.Get("/:id", s.GetProject)
	projects.Delete("/:id", s.DeleteProject)
}

// App exposes the underlying fiber application, mainly for tests.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
