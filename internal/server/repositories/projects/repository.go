package projects

import (
	"context"

	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

// Repository persists projects. It performs no ownership checks; callers
// run the ownership guard on what GetByID returns.
type Repository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}
