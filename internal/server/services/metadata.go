package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/repomanager"
)

// MetadataService manages folder and file records. Folder/file relations are
// not enforced unless the corresponding toggles are enabled in config.
type MetadataService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	enforceParentExists   bool
	cascadeDeleteChildren bool
}

func NewMetadataService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MetadataService {
	return &MetadataService{
		db:                    db,
		repomanager:           m,
		enforceParentExists:   cfg.EnforceParentExists,
		cascadeDeleteChildren: cfg.CascadeDeleteChildren,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	return nil
}

func validateDate(d time.Time) error {
	if d.IsZero() {
		return fmt.Errorf("%w: date_modified is required", common.ErrValidation)
	}
	return nil
}

// storeError keeps sentinel errors intact and tags everything else as internal.
func storeError(op string, err error) error {
	if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}

func (s *MetadataService) CreateFolder(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDate(dateModified); err != nil {
		return nil, err
	}

	f, err := s.repomanager.Folders(s.db).Create(ctx, name, dateModified)
	if err != nil {
		return nil, storeError("create folder", err)
	}
	return f, nil
}

func (s *MetadataService) GetFolder(ctx context.Context, id int64) (*models.Folder, error) {
	f, err := s.repomanager.Folders(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get folder", err)
	}
	return f, nil
}

func (s *MetadataService) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	list, err := s.repomanager.Folders(s.db).List(ctx)
	if err != nil {
		return nil, storeError("list folders", err)
	}
	return list, nil
}

func (s *MetadataService) RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := s.repomanager.Folders(s.db).Rename(ctx, id, name)
	if err != nil {
		return nil, storeError("rename folder", err)
	}
	return f, nil
}

// DeleteFolder removes the folder record. Child files stay in place and keep
// their parent reference unless cascading is enabled, in which case they are
// removed in the same transaction.
func (s *MetadataService) DeleteFolder(ctx context.Context, id int64) error {
	if !s.cascadeDeleteChildren {
		if err := s.repomanager.Folders(s.db).Delete(ctx, id); err != nil {
			return storeError("delete folder", err)
		}
		return nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Folders(tx).Delete(ctx, id); err != nil {
			return err
		}
		if _, err := s.repomanager.Files(tx).DeleteByParent(ctx, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return storeError("delete folder", err)
	}
	return nil
}

func (s *MetadataService) CreateFile(ctx context.Context, name string, size int64, dateModified time.Time, parentID *int64) (*models.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: size must not be negative", common.ErrValidation)
	}
	if err := validateDate(dateModified); err != nil {
		return nil, err
	}

	if s.enforceParentExists && parentID != nil {
		if _, err := s.repomanager.Folders(s.db).GetByID(ctx, *parentID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrParentNotFound
			}
			return nil, storeError("check parent", err)
		}
	}

	f, err := s.repomanager.Files(s.db).Create(ctx, &models.File{
		Name:         name,
		Size:         size,
		DateModified: dateModified,
		ParentID:     parentID,
	})
	if err != nil {
		return nil, storeError("create file", err)
	}
	return f, nil
}

func (s *MetadataService) GetFile(ctx context.Context, id int64) (*models.File, error) {
	f, err := s.repomanager.Files(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get file", err)
	}
	return f, nil
}

func (s *MetadataService) ListFiles(ctx context.Context) ([]*models.File, error) {
	list, err := s.repomanager.Files(s.db).List(ctx)
	if err != nil {
		return nil, storeError("list files", err)
	}
	return list, nil
}

func (s *MetadataService) RenameFile(ctx context.Context, id int64, name string) (*models.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := s.repomanager.Files(s.db).Rename(ctx, id, name)
	if err != nil {
		return nil, storeError("rename file", err)
	}
	return f, nil
}

func (s *MetadataService) DeleteFile(ctx context.Context, id int64) error {
	if err := s.repomanager.Files(s.db).Delete(ctx, id); err != nil {
		return storeError("delete file", err)
	}
	return nil
}

// ListFilesByParent does not check that the folder exists; an unknown id
// simply yields an empty list.
func (s *MetadataService) ListFilesByParent(ctx context.Context, folderID int64) ([]*models.File, error) {
	list, err := s.repomanager.Files(s.db).ListByParent(ctx, folderID)
	if err != nil {
		return nil, storeError("list files by parent", err)
	}
	if list == nil {
		list = []*models.File{}
	}
	return list, nil
}
