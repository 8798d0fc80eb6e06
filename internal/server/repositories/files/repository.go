package files

import (
	"context"

	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
	ListByParent(ctx context.Context, parentID int64) ([]*models.File, error)
	Rename(ctx context.Context, id int64, name string) (*models.File, error)
	Delete(ctx context.Context, id int64) error
	DeleteByParent(ctx context.Context, parentID int64) (int64, error)
}
