package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPair(t *testing.T, us *UserService) (alice, bob *models.User) {
	t.Helper()
	ctx := context.Background()
	alice, _, err := us.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	bob, _, err = us.Register(ctx, "bob", "bob@x.com", "pw456")
	require.NoError(t, err)
	return alice, bob
}

func TestProjectCreate_OwnerIsPrincipal(t *testing.T) {
	us, ps, _ := memServices(t)
	alice, _ := registerPair(t, us)

	p, err := ps.Create(context.Background(), alice, "P", "D")
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, alice.ID, p.OwnerID)
	assert.Equal(t, "P", p.Title)
	assert.Equal(t, "D", p.Description)
}

func TestProjectCreate_NoPrincipal(t *testing.T) {
	_, ps, _ := memServices(t)

	_, err := ps.Create(context.Background(), nil, "P", "D")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestProjectCreate_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ps := NewProjectService(db, &fakeRepoManager{p: &fakeProjectsRepo{}})

	_, err := ps.Create(context.Background(), &models.User{ID: 1}, "P", "D")
	assert.ErrorIs(t, err, errBoom)
}

func TestProjectGet_OwnerOnly(t *testing.T) {
	us, ps, _ := memServices(t)
	alice, bob := registerPair(t, us)
	ctx := context.Background()

	p, err := ps.Create(ctx, alice, "P", "D")
	require.NoError(t, err)

	got, err := ps.Get(ctx, alice, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = ps.Get(ctx, bob, p.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound, "foreign project looks absent")

	_, err = ps.Get(ctx, alice, p.ID+100)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProjectGet_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ps := NewProjectService(db, &fakeRepoManager{p: &fakeProjectsRepo{getErr: errBoom}})

	_, err := ps.Get(context.Background(), &models.User{ID: 1}, 1)
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestProjectDelete_ForeignIsNotFoundAndKept(t *testing.T) {
	us, ps, mock := memServices(t)
	alice, bob := registerPair(t, us)
	ctx := context.Background()

	p, err := ps.Create(ctx, alice, "P", "D")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = ps.Delete(ctx, bob, p.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = ps.Get(ctx, alice, p.ID)
	require.NoError(t, err, "project must survive a foreign delete")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDelete_Owner(t *testing.T) {
	us, ps, mock := memServices(t)
	alice, _ := registerPair(t, us)
	ctx := context.Background()

	p, err := ps.Create(ctx, alice, "P", "D")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, ps.Delete(ctx, alice, p.ID))

	_, err = ps.Get(ctx, alice, p.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDelete_Missing(t *testing.T) {
	us, ps, mock := memServices(t)
	alice, _ := registerPair(t, us)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := ps.Delete(context.Background(), alice, 12345)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDelete_RepoErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	owner := &models.User{ID: 1}
	rm := &fakeRepoManager{p: &fakeProjectsRepo{
		getOut: &models.Project{ID: 9, OwnerID: owner.ID},
		delErr: errBoom,
	}}
	ps := NewProjectService(db, rm)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := ps.Delete(context.Background(), owner, 9)
	require.ErrorIs(t, err, errBoom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDelete_BeginError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	ps := NewProjectService(db, &fakeRepoManager{p: &fakeProjectsRepo{}})

	mock.ExpectBegin().WillReturnError(errBoom)

	err := ps.Delete(context.Background(), &models.User{ID: 1}, 9)
	assert.ErrorIs(t, err, errBoom)
}
