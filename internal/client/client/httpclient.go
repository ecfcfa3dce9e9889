package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/gofiber/fiber/v2"
)

type HTTPClient struct {
	baseURL string
	timeout time.Duration
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerPayload struct {
	Message     string       `json:"message"`
	User        User         `json:"user"`
	AccessToken tokenPayload `json:"access_token"`
}

type loginPayload struct {
	Message     string       `json:"message"`
	AccessToken tokenPayload `json:"access_token"`
}

type errorPayload struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, fiber.Get(c.baseURL+"/health"), nil)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*Registration, error) {
	a := fiber.Post(c.baseURL + "/register").JSON(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})

	var out registerPayload
	if err := c.do(ctx, a, &out); err != nil {
		return nil, err
	}

	return &Registration{User: out.User, AccessToken: out.AccessToken.AccessToken}, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	a := fiber.Post(c.baseURL + "/login").JSON(map[string]string{
		"username": username,
		"password": password,
	})

	var out loginPayload
	if err := c.do(ctx, a, &out); err != nil {
		return "", err
	}

	return out.AccessToken.AccessToken, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, token, title, description string) (*Project, error) {
	a := fiber.Post(c.baseURL + "/projects").JSON(map[string]string{
		"title":       title,
		"description": description,
	})

	var out Project
	if err := c.do(ctx, withBearer(a, token), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, token string, id int64) (*Project, error) {
	a := fiber.Get(fmt.Sprintf("%s/projects/%d", c.baseURL, id))

	var out Project
	if err := c.do(ctx, withBearer(a, token), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, token string, id int64) error {
	a := fiber.Delete(fmt.Sprintf("%s/projects/%d", c.baseURL, id))
	return c.do(ctx, withBearer(a, token), nil)
}

func withBearer(a *fiber.Agent, token string) *fiber.Agent {
	return a.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
}

// do sends the request and decodes a 2xx body into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, a *fiber.Agent, out any) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	if timeout > 0 {
		a.Timeout(timeout)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}

	if code < 200 || code > 299 {
		return mapStatus(code, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func mapStatus(code int, body []byte) error {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err != nil || p.Detail == "" {
		p.Detail = strings.TrimSpace(string(body))
	}

	apiErr := &APIError{Status: code, Detail: p.Detail}

	switch code {
	case fiber.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case fiber.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	}
	return apiErr
}
