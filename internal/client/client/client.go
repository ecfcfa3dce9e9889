package client

import "context"

type Client interface {
	Health(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (*Registration, error)
	Login(ctx context.Context, username, password string) (string, error)
	CreateProject(ctx context.Context, token, title, description string) (*Project, error)
	GetProject(ctx context.Context, token string, id int64) (*Project, error)
	DeleteProject(ctx context.Context, token string, id int64) error
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// Registration is what the server returns for a new account.
type Registration struct {
	User        User
	AccessToken string
}
