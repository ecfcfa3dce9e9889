// Package memrepo is an in-memory RepositoryManager for tests. Repositories
// ignore the handle they are bound to and share one guarded state, with the
// same uniqueness rules the PostgreSQL schema enforces.
package memrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/users"
)

type state struct {
	mu            sync.Mutex
	users         map[int64]models.User
	projects      map[int64]models.Project
	nextUserID    int64
	nextProjectID int64
}

// Manager implements repomanager.RepositoryManager in memory.
type Manager struct {
	s *state
}

func NewManager() *Manager {
	return &Manager{s: &state{
		users:    make(map[int64]models.User),
		projects: make(map[int64]models.Project),
	}}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return &userRepo{s: m.s} }

func (m *Manager) Projects(dbx.DBTX) projects.Repository { return &projectRepo{s: m.s} }

type userRepo struct {
	s *state
}

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.UserName == user.UserName {
			return nil, &common.ConflictError{Field: "username"}
		}
		if u.Email == user.Email {
			return nil, &common.ConflictError{Field: "email"}
		}
	}

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user

	return user, nil
}

func (r *userRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.UserName == login })
}

func (r *userRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

type projectRepo struct {
	s *state
}

func (r *projectRepo) Create(_ context.Context, project *models.Project) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[project.OwnerID]; !ok {
		return nil, fmt.Errorf("db error: owner %d does not exist", project.OwnerID)
	}

	r.s.nextProjectID++
	project.ID = r.s.nextProjectID
	project.CreatedAt = time.Now()
	r.s.projects[project.ID] = *project

	return project, nil
}

func (r *projectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *projectRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.projects, id)
	return nil
}
