package repomanager

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/dbx"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/users"
)

// memoryStore is the shared state behind the in-memory repositories. The
// DBTX passed to the manager is ignored, so writes made inside a transaction
// are visible immediately and are not rolled back.
type memoryStore struct {
	mu sync.RWMutex

	now func() time.Time

	lastUserID   int64
	lastFolderID int64
	lastFileID   int64

	users   map[string]*models.User
	folders map[int64]*models.Folder
	files   map[int64]*models.File
}

// InMemoryRepositoryManager keeps everything in process memory. Used by
// tests and local runs without a database.
type InMemoryRepositoryManager struct {
	store *memoryStore
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{store: &memoryStore{
		now:     time.Now,
		users:   make(map[string]*models.User),
		folders: make(map[int64]*models.Folder),
		files:   make(map[int64]*models.File),
	}}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return memoryUsers{m.store}
}

func (m *InMemoryRepositoryManager) Folders(dbx.DBTX) folders.Repository {
	return memoryFolders{m.store}
}

func (m *InMemoryRepositoryManager) Files(dbx.DBTX) files.Repository {
	return memoryFiles{m.store}
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.UserName]; ok {
		return nil, common.ErrAlreadyExists
	}
	r.s.lastUserID++
	stored := *u
	stored.ID = r.s.lastUserID
	stored.CreatedAt = r.s.now()
	r.s.users[u.UserName] = &stored

	out := stored
	return &out, nil
}

func (r memoryUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[login]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

type memoryFolders struct{ s *memoryStore }

func (r memoryFolders) Create(_ context.Context, name string, dateModified time.Time) (*models.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastFolderID++
	now := r.s.now()
	f := &models.Folder{
		ID:           r.s.lastFolderID,
		Name:         name,
		DateModified: dateModified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.s.folders[f.ID] = f

	out := *f
	return &out, nil
}

func (r memoryFolders) GetByID(_ context.Context, id int64) (*models.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.folders[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (r memoryFolders) List(context.Context) ([]*models.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Folder, 0, len(r.s.folders))
	for _, f := range r.s.folders {
		out := *f
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r memoryFolders) Rename(_ context.Context, id int64, name string) (*models.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.folders[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	f.Name = name
	f.UpdatedAt = r.s.now()

	out := *f
	return &out, nil
}

func (r memoryFolders) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.folders[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.s.folders, id)
	return nil
}

type memoryFiles struct{ s *memoryStore }

func copyFile(f *models.File) *models.File {
	out := *f
	if f.ParentID != nil {
		p := *f.ParentID
		out.ParentID = &p
	}
	return &out
}

func (r memoryFiles) Create(_ context.Context, file *models.File) (*models.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastFileID++
	now := r.s.now()
	stored := copyFile(file)
	stored.ID = r.s.lastFileID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.s.files[stored.ID] = stored

	return copyFile(stored), nil
}

func (r memoryFiles) GetByID(_ context.Context, id int64) (*models.File, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.files[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyFile(f), nil
}

func (r memoryFiles) filter(keep func(*models.File) bool) []*models.File {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.File, 0)
	for _, f := range r.s.files {
		if keep(f) {
			result = append(result, copyFile(f))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r memoryFiles) List(context.Context) ([]*models.File, error) {
	return r.filter(func(*models.File) bool { return true }), nil
}

func (r memoryFiles) ListByParent(_ context.Context, parentID int64) ([]*models.File, error) {
	return r.filter(func(f *models.File) bool {
		return f.ParentID != nil && *f.ParentID == parentID
	}), nil
}

func (r memoryFiles) Rename(_ context.Context, id int64, name string) (*models.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.files[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	f.Name = name
	f.UpdatedAt = r.s.now()
	return copyFile(f), nil
}

func (r memoryFiles) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.files[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.s.files, id)
	return nil
}

func (r memoryFiles) DeleteByParent(_ context.Context, parentID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, f := range r.s.files {
		if f.ParentID != nil && *f.ParentID == parentID {
			delete(r.s.files, id)
			n++
		}
	}
	return n, nil
}
