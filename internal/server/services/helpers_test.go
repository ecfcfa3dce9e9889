package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/auth"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/memrepo"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newTokens(ttl time.Duration) *auth.TokenService {
	return auth.NewTokenService([]byte(testSecret), ttl)
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	return NewUserService(db, rm, auth.NewBcryptHasher(bcrypt.MinCost), newTokens(30*time.Minute))
}

// memServices wires both services to one in-memory store.
func memServices(t *testing.T) (*UserService, *ProjectService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	rm := memrepo.NewManager()
	return newUserService(t, db, rm), NewProjectService(db, rm), mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byLoginOut *models.User
	byLoginErr error

	byEmailOut *models.User
	byEmailErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.byLoginErr != nil {
		return nil, f.byLoginErr
	}
	return f.byLoginOut, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

type fakeProjectsRepo struct {
	getOut *models.Project
	getErr error
	delErr error
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	return nil, errBoom
}

func (f *fakeProjectsRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeProjectsRepo) Delete(ctx context.Context, id int64) error {
	return f.delErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakeProjectsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Projects(db dbx.DBTX) projects.Repository     { return m.p }
