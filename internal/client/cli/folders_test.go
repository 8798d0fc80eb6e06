package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFolders_PrintsTable(t *testing.T) {
	f := &fakeAPI{loggedIn: true, folders: []*models.Folder{
		{ID: 1, Name: "docs", DateModified: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)},
		{ID: 2, Name: "photos", DateModified: time.Date(2024, 2, 3, 4, 5, 0, 0, time.UTC)},
	}}
	a, out := newTestApp(f)

	require.NoError(t, a.ListFolders(context.Background(), nil))
	got := out.String()
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "docs")
	assert.Contains(t, got, "2024-02-03 04:05")
}

func TestListFolders_Empty(t *testing.T) {
	a, out := newTestApp(&fakeAPI{loggedIn: true})
	require.NoError(t, a.ListFolders(context.Background(), nil))
	assert.Equal(t, "No folders\n", out.String())
}

func TestListFolders_Error(t *testing.T) {
	boom := errors.New("boom")
	a, _ := newTestApp(&fakeAPI{loggedIn: true, listErr: boom})
	require.ErrorIs(t, a.ListFolders(context.Background(), nil), boom)
}

func TestCreateFolder_FromArgs(t *testing.T) {
	f := &fakeAPI{loggedIn: true}
	a, out := newTestApp(f)

	require.NoError(t, a.CreateFolder(context.Background(), []string{"tax", "2024"}))
	assert.Equal(t, "tax 2024", f.createdFolder)
	assert.Equal(t, a.now().UTC(), f.createdAt)
	assert.Equal(t, "Folder 7 created\n", out.String())
}

func TestCreateFolder_PromptsForName(t *testing.T) {
	f := &fakeAPI{loggedIn: true}
	a, _ := newTestApp(f)
	a.reader = rdr("archive\n")

	require.NoError(t, a.CreateFolder(context.Background(), nil))
	assert.Equal(t, "archive", f.createdFolder)
}

func TestRenameFolder(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantID   int64
		wantName string
	}{
		{name: "ok", args: []string{"3", "new", "name"}, wantID: 3, wantName: "new name"},
		{name: "missing name", args: []string{"3"}, wantErr: true},
		{name: "bad id", args: []string{"x", "n"}, wantErr: true},
		{name: "zero id", args: []string{"0", "n"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeAPI{loggedIn: true}
			a, _ := newTestApp(f)
			err := a.RenameFolder(context.Background(), tc.args)
			if tc.wantErr {
				require.Error(t, err)
				assert.Zero(t, f.renamedID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, f.renamedID)
			assert.Equal(t, tc.wantName, f.renamedName)
		})
	}
}

func TestDeleteFolder(t *testing.T) {
	f := &fakeAPI{loggedIn: true}
	a, out := newTestApp(f)

	require.ErrorIs(t, a.DeleteFolder(context.Background(), nil), errUsage)

	require.NoError(t, a.DeleteFolder(context.Background(), []string{"4"}))
	assert.Equal(t, int64(4), f.deletedID)
	assert.Equal(t, "Folder 4 deleted\n", out.String())
}
