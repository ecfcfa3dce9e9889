// Package services contains server-side business logic. This file implements
// UserService: registration, login and resolving bearer tokens to users.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/auth"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint a token
// - Authenticate: resolve a bearer token to the user it names
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService. tokens carries the process-wide
// signing key.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, tokens *auth.TokenService) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates a user and issues an access token for it. Taken usernames
// or emails yield common.ErrConflict; the unique indexes have the final say
// when two registrations race.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	var user *models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		repo := s.repomanager.Users(conn)

		if _, err := repo.GetUserByLogin(ctx, username); err == nil {
			return &common.ConflictError{Field: "username"}
		} else if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching user: %w", err)
		}

		if _, err := repo.GetUserByEmail(ctx, email); err == nil {
			return &common.ConflictError{Field: "email"}
		} else if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching user: %w", err)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{UserName: username, Email: email, PasswordHash: hash})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.UserName)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies the password of username and returns a fresh access token.
// Unknown users and wrong passwords both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	var user *models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).GetUserByLogin(ctx, username)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// spend the same hashing time as for a real user
			s.hasher.Check(password, s.dummy())
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserName)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a raw bearer token to the user named by its subject.
// Every failure wraps common.ErrorUnauthorized together with the reason
// (common.ErrTokenExpired, common.ErrInvalidToken or an unknown subject),
// except storage failures which are returned as they are.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	var user *models.User
	err = dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).GetUserByLogin(ctx, subject)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: unknown subject %q", common.ErrorUnauthorized, subject)
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("projecthub-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
