package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
)

const fileColumns = `id, name, size, date_modified, parent_id, created_at, updated_at`

// PostgresRepository implements file storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFile(row interface{ Scan(dest ...any) error }) (*models.File, error) {
	var (
		f      models.File
		parent sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Size, &f.DateModified, &parent, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if parent.Valid {
		p := parent.Int64
		f.ParentID = &p
	}
	return &f, nil
}

func nullableParent(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// Create inserts the file record. The parent reference is stored as given;
// checking that the folder exists is up to the caller.
func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := `INSERT INTO files (name, size, date_modified, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + fileColumns

	f, err := scanFile(r.db.QueryRowContext(ctx, query,
		file.Name, file.Size, file.DateModified, nullableParent(file.ParentID)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// GetByID returns common.ErrNotFound when no file has the id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.File, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
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

// List returns every file ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.File, error) {
	return r.selectMany(ctx, `SELECT `+fileColumns+` FROM files ORDER BY id`)
}

// ListByParent returns the files whose parent_id equals parentID. An empty
// slice is returned both for an empty folder and for a folder id that does
// not exist.
func (r *PostgresRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.File, error) {
	return r.selectMany(ctx, `SELECT `+fileColumns+` FROM files WHERE parent_id = $1 ORDER BY id`, parentID)
}

func (r *PostgresRepository) Rename(ctx context.Context, id int64, name string) (*models.File, error) {
	query := `UPDATE files SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + fileColumns

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
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

// DeleteByParent removes all files referencing parentID and reports how many
// rows were deleted.
func (r *PostgresRepository) DeleteByParent(ctx context.Context, parentID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE parent_id = $1`, parentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete files: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
