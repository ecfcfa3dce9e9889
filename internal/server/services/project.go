package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/auth"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
)

// ProjectService manages projects on behalf of an authenticated principal.
// Projects the principal does not own are reported as common.ErrorNotFound,
// exactly like projects that do not exist.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

// Create stores a new project owned by principal.
func (s *ProjectService) Create(ctx context.Context, principal *models.User, title, description string) (*models.Project, error) {
	if principal == nil {
		return nil, common.ErrorUnauthorized
	}

	project := &models.Project{Title: title, Description: description, OwnerID: principal.ID}
	if !auth.Authorize(project, principal, auth.ActionCreate) {
		return nil, common.ErrorUnauthorized
	}

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		project, err = s.repomanager.Projects(conn).Create(ctx, project)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return project, nil
}

// Get returns project id if principal owns it.
func (s *ProjectService) Get(ctx context.Context, principal *models.User, id int64) (*models.Project, error) {
	var project *models.Project

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		project, err = s.owned(ctx, conn, principal, id, auth.ActionRead)
		return err
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes project id if principal owns it. Lookup, ownership check
// and deletion share one transaction.
func (s *ProjectService) Delete(ctx context.Context, principal *models.User, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.owned(ctx, tx, principal, id, auth.ActionDelete); err != nil {
			return err
		}
		if err := s.repomanager.Projects(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return err
			}
			return fmt.Errorf("error deleting project: %w", err)
		}
		return nil
	})
}

func (s *ProjectService) owned(ctx context.Context, db dbx.DBTX, principal *models.User, id int64, action auth.Action) (*models.Project, error) {
	project, err := s.repomanager.Projects(db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching project: %w", err)
	}

	if !auth.Authorize(project, principal, action) {
		return nil, common.ErrorNotFound
	}

	return project, nil
}
