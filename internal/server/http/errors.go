package http

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/gofiber/fiber/v2"
)

// errorHandler is the single place where domain errors become HTTP statuses.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	status, detail := s.statusFor(c, err)
	return c.Status(status).JSON(errorResponse{Detail: detail})
}

func (s *HTTPServer) statusFor(c *fiber.Ctx, err error) (int, string) {
	var fe *fiber.Error
	var ce *common.ConflictError

	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message

	case errors.As(err, &ce):
		switch ce.Field {
		case "email":
			return fiber.StatusBadRequest, "Email already registered"
		default:
			return fiber.StatusBadRequest, "Username already taken"
		}

	case errors.Is(err, common.ErrorValidation):
		return fiber.StatusBadRequest, validationDetail(err)

	case errors.Is(err, common.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid username or password"

	case errors.Is(err, common.ErrorUnauthorized):
		s.logger.Info(c.UserContext(), "authentication failed", "reason", err.Error())
		if errors.Is(err, common.ErrTokenExpired) {
			return fiber.StatusUnauthorized, "Token expired"
		}
		return fiber.StatusUnauthorized, "Invalid authentication token"

	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, "Project not found"
	}

	s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	return fiber.StatusInternalServerError, "internal error"
}

func validationDetail(err error) string {
	prefix := common.ErrorValidation.Error() + ": "
	return strings.TrimPrefix(err.Error(), prefix)
}
