package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	IsLoggedIn() bool
	Ping(ctx context.Context) error

	ListFolders(ctx context.Context) ([]*models.Folder, error)
	CreateFolder(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error)
	RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error

	ListFiles(ctx context.Context) ([]*models.File, error)
	ListFolderFiles(ctx context.Context, folderID int64) ([]*models.File, error)
	CreateFile(ctx context.Context, name string, size int64, dateModified time.Time, parentID *int64) (*models.File, error)
	RenameFile(ctx context.Context, id int64, name string) (*models.File, error)
	DeleteFile(ctx context.Context, id int64) error
}
