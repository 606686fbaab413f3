package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emanuelsistemas/drive/internal/models"
)

// Unique usernames keep the fixtures independent when tests run in parallel.
func createTestUser(t *testing.T, username string) int64 {
	t.Helper()
	var userID int64
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, 'hash') RETURNING id`
	err := testStore.pool.QueryRow(context.Background(), query, username, username+"@example.com").Scan(&userID)
	require.NoError(t, err)
	require.NotZero(t, userID)
	return userID
}

func createTestFolder(t *testing.T, params CreateFolderParams) *models.Folder {
	t.Helper()
	folder, err := testStore.CreateFolder(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, folder)
	return folder
}

func TestCreateFolder(t *testing.T) {
	ownerID := createTestUser(t, "user_create_folder")

	params := CreateFolderParams{
		ID:        "create_folder_id",
		Name:      "Test Folder",
		ParentID:  nil,
		OwnerID:   ownerID,
		CreatorID: ownerID,
	}

	created, err := testStore.CreateFolder(context.Background(), params)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, params.ID, created.ID)
	require.Equal(t, params.Name, created.Name)
	require.Nil(t, created.ParentID)
	require.False(t, created.IsPrivate)
	require.Equal(t, ownerID, created.OwnerID)
	require.Equal(t, ownerID, created.CreatorID)
	require.NotZero(t, created.CreatedAt)
}

func TestGetFolder(t *testing.T) {
	ownerID := createTestUser(t, "user_get_folder")
	folder := createTestFolder(t, CreateFolderParams{ID: "get_folder_id", Name: "Mine", OwnerID: ownerID, CreatorID: ownerID})

	found, err := testStore.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, folder.ID, found.ID)
	require.Equal(t, "Mine", found.Name)

	missing, err := testStore.GetFolder(context.Background(), "non_existent_folder")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListFolders(t *testing.T) {
	ownerID := createTestUser(t, "user_list_folders")

	parent := createTestFolder(t, CreateFolderParams{ID: "list_parent", Name: "Parent", OwnerID: ownerID, CreatorID: ownerID})
	// Same name across two children so the id tie-break is observable.
	createTestFolder(t, CreateFolderParams{ID: "list_child_z", Name: "Alpha", ParentID: &parent.ID, OwnerID: ownerID, CreatorID: ownerID})
	createTestFolder(t, CreateFolderParams{ID: "list_child_a", Name: "Alpha", ParentID: &parent.ID, OwnerID: ownerID, CreatorID: ownerID})
	createTestFolder(t, CreateFolderParams{ID: "list_child_m", Name: "Beta", ParentID: &parent.ID, OwnerID: ownerID, CreatorID: ownerID})

	children, err := testStore.ListFolders(context.Background(), &parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 3)
	require.Equal(t, "list_child_a", children[0].ID)
	require.Equal(t, "list_child_z", children[1].ID)
	require.Equal(t, "list_child_m", children[2].ID)

	empty, err := testStore.ListFolders(context.Background(), &children[0].ID)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Len(t, empty, 0)
}

func TestRenameFolder(t *testing.T) {
	ownerID := createTestUser(t, "user_rename_folder")
	folder := createTestFolder(t, CreateFolderParams{ID: "rename_folder_id", Name: "Before", OwnerID: ownerID, CreatorID: ownerID})

	ok, err := testStore.RenameFolder(context.Background(), folder.ID, "After")
	require.NoError(t, err)
	require.True(t, ok)

	found, err := testStore.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Equal(t, "After", found.Name)

	ok, err = testStore.RenameFolder(context.Background(), "non_existent_folder", "X")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteFolder(t *testing.T) {
	ownerID := createTestUser(t, "user_delete_folder")
	folder := createTestFolder(t, CreateFolderParams{ID: "delete_folder_id", Name: "Doomed", OwnerID: ownerID, CreatorID: ownerID})

	ok, err := testStore.DeleteFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.True(t, ok)

	found, err := testStore.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	ok, err = testStore.DeleteFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetFolderPrivacy(t *testing.T) {
	ownerID := createTestUser(t, "user_folder_privacy")
	lockerID := createTestUser(t, "user_folder_locker")
	folder := createTestFolder(t, CreateFolderParams{ID: "privacy_folder_id", Name: "Lockable", OwnerID: ownerID, CreatorID: ownerID})

	// Lock succeeds only against the state the caller saw.
	ok, err := testStore.SetFolderPrivacy(context.Background(), folder.ID, true, lockerID, false)
	require.NoError(t, err)
	require.True(t, ok)

	found, err := testStore.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.True(t, found.IsPrivate)
	require.Equal(t, lockerID, found.OwnerID)

	// A second writer still holding the old state loses.
	ok, err = testStore.SetFolderPrivacy(context.Background(), folder.ID, true, ownerID, false)
	require.NoError(t, err)
	require.False(t, ok)

	found, err = testStore.GetFolder(context.Background(), folder.ID)
	require.NoError(t, err)
	require.Equal(t, lockerID, found.OwnerID, "the losing write must not change ownership")
}

func TestCountFolderChildren(t *testing.T) {
	ownerID := createTestUser(t, "user_count_children")
	parent := createTestFolder(t, CreateFolderParams{ID: "count_parent", Name: "Parent", OwnerID: ownerID, CreatorID: ownerID})
	createTestFolder(t, CreateFolderParams{ID: "count_sub", Name: "Sub", ParentID: &parent.ID, OwnerID: ownerID, CreatorID: ownerID})
	createTestFile(t, CreateFileParams{ID: "count_file", Name: "a.txt", FolderID: &parent.ID, OwnerID: ownerID, CreatorID: ownerID})

	count, err := testStore.CountFolderChildren(context.Background(), parent.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = testStore.CountFolderChildren(context.Background(), "count_sub")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestNodeIDExists(t *testing.T) {
	ownerID := createTestUser(t, "user_node_id_exists")
	createTestFolder(t, CreateFolderParams{ID: "exists_folder", Name: "F", OwnerID: ownerID, CreatorID: ownerID})
	createTestFile(t, CreateFileParams{ID: "exists_file", Name: "f.txt", OwnerID: ownerID, CreatorID: ownerID})

	exists, err := testStore.NodeIDExists(context.Background(), "exists_folder")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = testStore.NodeIDExists(context.Background(), "exists_file")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = testStore.NodeIDExists(context.Background(), "exists_nothing")
	require.NoError(t, err)
	require.False(t, exists)
}
