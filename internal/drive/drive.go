// Package drive implements the hierarchical namespace of the file manager:
// listing, breadcrumb path resolution and the mutation flow with its
// single-owner lock rule. It is UI-agnostic and talks to persistence, the
// user directory and object storage only through the narrow interfaces
// below, so it can be exercised end to end with in-memory fakes.
package drive

import (
	"context"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/rs/zerolog"

	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/models"
)

// Directory is the persistence collaborator: two node collections keyed by
// id, filterable by parent, with partial updates for name and lock state.
// *database.Queries satisfies it.
type Directory interface {
	GetFolder(ctx context.Context, id string) (*models.Folder, error)
	GetFile(ctx context.Context, id string) (*models.File, error)
	ListFolders(ctx context.Context, parentID *string) ([]models.Folder, error)
	ListFiles(ctx context.Context, folderID *string) ([]models.File, error)
	CreateFolder(ctx context.Context, arg database.CreateFolderParams) (*models.Folder, error)
	CreateFile(ctx context.Context, arg database.CreateFileParams) (*models.File, error)
	RenameFolder(ctx context.Context, id string, newName string) (bool, error)
	RenameFile(ctx context.Context, id string, newName string) (bool, error)
	DeleteFolder(ctx context.Context, id string) (bool, error)
	DeleteFile(ctx context.Context, id string) (bool, error)
	SetFolderPrivacy(ctx context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error)
	SetFilePrivacy(ctx context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error)
	CountFolderChildren(ctx context.Context, folderID string) (int64, error)
	NodeIDExists(ctx context.Context, id string) (bool, error)
}

// UserDirectory resolves a user's contact identifier; only the lock-denial
// message needs it.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Blobs removes binary content once its metadata row is gone. Removal is
// best effort.
type Blobs interface {
	Delete(key string) error
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID    int64
	Email string
}

// NodeKind distinguishes the two collections.
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindFile   NodeKind = "file"
)

// NodeRef addresses a single node.
type NodeRef struct {
	Kind NodeKind
	ID   string
}

// View is what the presentation layer renders after every call: the current
// folder's children plus the breadcrumb path, re-read from persistence.
// Folder is the folder being browsed (nil at root); Path holds its
// ancestors, root-most first, exclusive of the folder itself.
type View struct {
	Folder  *models.Folder  `json:"folder"`
	Folders []models.Folder `json:"folders"`
	Files   []models.File   `json:"files"`
	Path    []models.Folder `json:"path"`
}

// Service is the mutation orchestrator. It owns the working set: all writes
// go through it, and every mutation re-lists the current folder before
// returning.
type Service struct {
	dir   Directory
	users UserDirectory
	blobs Blobs
	log   zerolog.Logger

	// ids of nodes with a mutation in flight
	inflight *xsync.Map[string, struct{}]
}

func NewService(dir Directory, users UserDirectory, blobs Blobs, log zerolog.Logger) *Service {
	return &Service{
		dir:      dir,
		users:    users,
		blobs:    blobs,
		log:      log,
		inflight: xsync.NewMap[string, struct{}](),
	}
}

// acquire registers a node mutation; it fails fast instead of queueing so a
// stuck write can never pile up concurrent updates on one node.
func (s *Service) acquire(nodeID string) (release func(), err error) {
	if _, loaded := s.inflight.LoadOrStore(nodeID, struct{}{}); loaded {
		return nil, ErrBusy
	}
	return func() { s.inflight.Delete(nodeID) }, nil
}
