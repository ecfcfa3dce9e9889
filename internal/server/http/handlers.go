package http

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

func (s *HTTPServer) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	user, token, err := s.users.Register(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(registerResponse{
		Message: "User registered successfully",
		User:    userResponse{ID: user.ID, Username: user.UserName, Email: user.Email},
		AccessToken: tokenResponse{
			AccessToken: token,
			TokenType:   common.TokenType,
		},
	})
}

func (s *HTTPServer) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	token, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(loginResponse{
		Message:     "login successfully",
		AccessToken: tokenResponse{AccessToken: token, TokenType: common.TokenType},
	})
}

func (s *HTTPServer) CreateProject(c *fiber.Ctx) error {
	var req projectRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	p, err := s.projects.Create(c.UserContext(), principal(c), req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(toProjectResponse(p))
}

func (s *HTTPServer) GetProject(c *fiber.Ctx) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	p, err := s.projects.Get(c.UserContext(), principal(c), id)
	if err != nil {
		return err
	}

	return c.JSON(toProjectResponse(p))
}

func (s *HTTPServer) DeleteProject(c *fiber.Ctx) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(c.UserContext(), principal(c), id); err != nil {
		return err
	}

	return c.JSON(messageResponse{Message: "Project deleted"})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrorValidation)
	}
	return nil
}

func projectID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid project id", common.ErrorValidation)
	}
	return id, nil
}
