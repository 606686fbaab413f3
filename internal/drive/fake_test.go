package drive

import (
	"context"
	"sort"
	"time"

	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/models"
)

// memStore is an in-memory Directory + UserDirectory + Blobs used to
// exercise the service without a database. It counts collaborator calls so
// tests can assert that local validation short-circuits before any call is
// made, and exposes hooks to interleave state changes mid-operation.
type memStore struct {
	folders map[string]models.Folder
	files   map[string]models.File
	users   map[int64]models.User

	deletedBlobs []string
	calls        int

	// onGetFolder/onGetFile run once, after the value is captured and
	// before it is returned; used to race lock toggles.
	onGetFolder func()
	onGetFile   func()
}

func newMemStore() *memStore {
	return &memStore{
		folders: make(map[string]models.Folder),
		files:   make(map[string]models.File),
		users:   make(map[int64]models.User),
	}
}

func (m *memStore) addUser(id int64, email string) {
	m.users[id] = models.User{ID: id, Username: email, Email: email}
}

func (m *memStore) GetFolder(_ context.Context, id string) (*models.Folder, error) {
	m.calls++
	f, ok := m.folders[id]
	if m.onGetFolder != nil {
		hook := m.onGetFolder
		m.onGetFolder = nil
		hook()
	}
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *memStore) GetFile(_ context.Context, id string) (*models.File, error) {
	m.calls++
	f, ok := m.files[id]
	if m.onGetFile != nil {
		hook := m.onGetFile
		m.onGetFile = nil
		hook()
	}
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m *memStore) ListFolders(_ context.Context, parentID *string) ([]models.Folder, error) {
	m.calls++
	out := []models.Folder{}
	for _, f := range m.folders {
		if sameParent(f.ParentID, parentID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) ListFiles(_ context.Context, folderID *string) ([]models.File, error) {
	m.calls++
	out := []models.File{}
	for _, f := range m.files {
		if sameParent(f.FolderID, folderID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) CreateFolder(_ context.Context, arg database.CreateFolderParams) (*models.Folder, error) {
	m.calls++
	f := models.Folder{
		ID:        arg.ID,
		Name:      arg.Name,
		ParentID:  arg.ParentID,
		OwnerID:   arg.OwnerID,
		CreatorID: arg.CreatorID,
		CreatedAt: time.Now(),
	}
	m.folders[f.ID] = f
	return &f, nil
}

func (m *memStore) CreateFile(_ context.Context, arg database.CreateFileParams) (*models.File, error) {
	m.calls++
	f := models.File{
		ID:        arg.ID,
		Name:      arg.Name,
		FolderID:  arg.FolderID,
		SizeBytes: arg.SizeBytes,
		MimeType:  arg.MimeType,
		URL:       arg.URL,
		OwnerID:   arg.OwnerID,
		CreatorID: arg.CreatorID,
		CreatedAt: time.Now(),
	}
	m.files[f.ID] = f
	return &f, nil
}

func (m *memStore) RenameFolder(_ context.Context, id, newName string) (bool, error) {
	m.calls++
	f, ok := m.folders[id]
	if !ok {
		return false, nil
	}
	f.Name = newName
	m.folders[id] = f
	return true, nil
}

func (m *memStore) RenameFile(_ context.Context, id, newName string) (bool, error) {
	m.calls++
	f, ok := m.files[id]
	if !ok {
		return false, nil
	}
	f.Name = newName
	m.files[id] = f
	return true, nil
}

func (m *memStore) DeleteFolder(_ context.Context, id string) (bool, error) {
	m.calls++
	if _, ok := m.folders[id]; !ok {
		return false, nil
	}
	delete(m.folders, id)
	return true, nil
}

func (m *memStore) DeleteFile(_ context.Context, id string) (bool, error) {
	m.calls++
	if _, ok := m.files[id]; !ok {
		return false, nil
	}
	delete(m.files, id)
	return true, nil
}

func (m *memStore) SetFolderPrivacy(_ context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error) {
	m.calls++
	f, ok := m.folders[id]
	if !ok || f.IsPrivate != wasPrivate {
		return false, nil
	}
	f.IsPrivate = private
	f.OwnerID = ownerID
	m.folders[id] = f
	return true, nil
}

func (m *memStore) SetFilePrivacy(_ context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error) {
	m.calls++
	f, ok := m.files[id]
	if !ok || f.IsPrivate != wasPrivate {
		return false, nil
	}
	f.IsPrivate = private
	f.OwnerID = ownerID
	m.files[id] = f
	return true, nil
}

func (m *memStore) CountFolderChildren(_ context.Context, folderID string) (int64, error) {
	m.calls++
	var count int64
	for _, f := range m.folders {
		if f.ParentID != nil && *f.ParentID == folderID {
			count++
		}
	}
	for _, f := range m.files {
		if f.FolderID != nil && *f.FolderID == folderID {
			count++
		}
	}
	return count, nil
}

func (m *memStore) NodeIDExists(_ context.Context, id string) (bool, error) {
	m.calls++
	_, inFolders := m.folders[id]
	_, inFiles := m.files[id]
	return inFolders || inFiles, nil
}

func (m *memStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	m.calls++
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *memStore) Delete(ref string) error {
	m.deletedBlobs = append(m.deletedBlobs, ref)
	return nil
}
