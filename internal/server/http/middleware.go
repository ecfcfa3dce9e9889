package http

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localPrincipal = "principal"
	localRequestID = "request_id"
)

// requestLogger tags each request with an ID and logs its outcome. Errors are
// rendered here so the logged status matches what the client receives.
func (s *HTTPServer) requestLogger(c *fiber.Ctx) error {
	start := time.Now()

	rid := uuid.NewString()
	c.Locals(localRequestID, rid)
	c.Set(fiber.HeaderXRequestID, rid)

	if chainErr := c.Next(); chainErr != nil {
		if err := s.errorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info(c.UserContext(), "request",
		"request_id", rid,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start),
	)

	return nil
}

// requireAuth resolves the bearer token to a user and stores it in Locals.
func (s *HTTPServer) requireAuth(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(common.AuthorizationHeaderName))
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	user, err := s.users.Authenticate(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(localPrincipal, user)
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func principal(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(localPrincipal).(*models.User)
	return u
}
