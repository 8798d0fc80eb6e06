package folders

import (
	"context"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error)
	GetByID(ctx context.Context, id int64) (*models.Folder, error)
	List(ctx context.Context) ([]*models.Folder, error)
	Rename(ctx context.Context, id int64, name string) (*models.Folder, error)
	Delete(ctx context.Context, id int64) error
}
