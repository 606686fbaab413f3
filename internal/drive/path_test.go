package drive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/models"
)

func mustFolder(t *testing.T, store *memStore, id, name string, parentID *string) models.Folder {
	t.Helper()
	f, err := store.CreateFolder(context.Background(), database.CreateFolderParams{
		ID:       id,
		Name:     name,
		ParentID: parentID,
		OwnerID:  1,
	})
	require.NoError(t, err)
	return *f
}

func TestResolvePathRootIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	path, err := svc.ResolvePath(context.Background(), nil)

	require.NoError(t, err)
	require.Empty(t, path)
}

func TestResolvePathOrdersRootFirst(t *testing.T) {
	svc, store := newTestService(t)
	mustFolder(t, store, "a", "A", nil)
	mustFolder(t, store, "b", "B", strptr("a"))
	mustFolder(t, store, "c", "C", strptr("b"))

	// Breadcrumb for a node living inside c: its parent chain.
	path, err := svc.ResolvePath(context.Background(), strptr("c"))

	require.NoError(t, err)
	require.Len(t, path, 3)
	require.Equal(t, "a", path[0].ID)
	require.Equal(t, "b", path[1].ID)
	require.Equal(t, "c", path[2].ID)
}

func TestResolvePathStopsAtMissingAncestor(t *testing.T) {
	svc, store := newTestService(t)
	// b's parent "gone" does not exist.
	mustFolder(t, store, "b", "B", strptr("gone"))
	mustFolder(t, store, "c", "C", strptr("b"))

	path, err := svc.ResolvePath(context.Background(), strptr("c"))

	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Equal(t, "b", path[0].ID)
	require.Equal(t, "c", path[1].ID)
}

func TestResolvePathTerminatesOnCycle(t *testing.T) {
	svc, store := newTestService(t)
	mustFolder(t, store, "a", "A", strptr("b"))
	mustFolder(t, store, "b", "B", strptr("a"))

	path, err := svc.ResolvePath(context.Background(), strptr("a"))

	require.NoError(t, err)
	// Each member visited once before the walk re-enters and stops.
	require.Len(t, path, 2)
	require.Equal(t, "b", path[0].ID)
	require.Equal(t, "a", path[1].ID)
}

func TestBrowseRootListsOnlyRootNodes(t *testing.T) {
	svc, store := newTestService(t)
	mustFolder(t, store, "a", "A", nil)
	mustFolder(t, store, "b", "B", strptr("a"))

	view, err := svc.Browse(context.Background(), nil)

	require.NoError(t, err)
	require.Nil(t, view.Folder)
	require.Empty(t, view.Path)
	require.Len(t, view.Folders, 1)
	require.Equal(t, "a", view.Folders[0].ID)
}

func TestBrowseUnknownFolder(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Browse(context.Background(), strptr("nope"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBrowsePathExcludesCurrentFolder(t *testing.T) {
	svc, store := newTestService(t)
	mustFolder(t, store, "a", "A", nil)
	mustFolder(t, store, "b", "B", strptr("a"))

	view, err := svc.Browse(context.Background(), strptr("b"))

	require.NoError(t, err)
	require.NotNil(t, view.Folder)
	require.Equal(t, "b", view.Folder.ID)
	require.Len(t, view.Path, 1)
	require.Equal(t, "a", view.Path[0].ID)
}

func TestBrowseOrdersByNameThenID(t *testing.T) {
	svc, store := newTestService(t)
	mustFolder(t, store, "z1", "Alpha", nil)
	mustFolder(t, store, "a9", "Alpha", nil)
	mustFolder(t, store, "m5", "Beta", nil)

	view, err := svc.Browse(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, view.Folders, 3)
	require.Equal(t, []string{"a9", "z1", "m5"}, []string{
		view.Folders[0].ID, view.Folders[1].ID, view.Folders[2].ID,
	})
}
