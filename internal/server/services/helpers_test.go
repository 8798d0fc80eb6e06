package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out the same fakes regardless of DBTX and records
// whether a transaction handle was used.
type fakeRepoManager struct {
	u  users.Repository
	fo folders.Repository
	fi files.Repository

	txSeen bool
}

func (m *fakeRepoManager) note(db dbx.DBTX) {
	if _, ok := db.(*sql.Tx); ok {
		m.txSeen = true
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { m.note(db); return m.u }
func (m *fakeRepoManager) Folders(db dbx.DBTX) folders.Repository       { m.note(db); return m.fo }
func (m *fakeRepoManager) Files(db dbx.DBTX) files.Repository           { m.note(db); return m.fi }
