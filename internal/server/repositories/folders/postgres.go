package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

const folderColumns = `id, name, date_modified, created_at, updated_at`

// PostgresRepository implements folder storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFolder(row interface{ Scan(dest ...any) error }) (*models.Folder, error) {
	f := &models.Folder{}
	if err := row.Scan(&f.ID, &f.Name, &f.DateModified, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a folder and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error) {
	query := `INSERT INTO folders (name, date_modified)
		VALUES ($1, $2)
		RETURNING ` + folderColumns

	f, err := scanFolder(r.db.QueryRowContext(ctx, query, name, dateModified))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// GetByID returns common.ErrNotFound when no folder has the id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = $1`

	f, err := scanFolder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// List returns every folder ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Rename changes only the name; date_modified is left as the caller set it.
func (r *PostgresRepository) Rename(ctx context.Context, id int64, name string) (*models.Folder, error) {
	query := `UPDATE folders SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + folderColumns

	f, err := scanFolder(r.db.QueryRowContext(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// Delete removes the folder row only. Exactly one row must be affected.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
