package drive

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/jaevor/go-nanoid"

	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/models"
)

const nodeIDLength = 21

// Browse is the pure read path: children of folderID (nil means root)
// ordered by name, plus the breadcrumb. Every call reflects the latest
// committed state; nothing is cached.
func (s *Service) Browse(ctx context.Context, folderID *string) (*View, error) {
	view := &View{Path: []models.Folder{}}

	if folderID != nil {
		folder, err := s.dir.GetFolder(ctx, *folderID)
		if err != nil {
			return nil, fmt.Errorf("loading folder: %w", err)
		}
		if folder == nil {
			return nil, ErrNotFound
		}
		view.Folder = folder

		view.Path, err = s.ResolvePath(ctx, folder.ParentID)
		if err != nil {
			return nil, fmt.Errorf("resolving path: %w", err)
		}
	}

	folders, err := s.dir.ListFolders(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	files, err := s.dir.ListFiles(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	view.Folders = folders
	view.Files = files
	return view, nil
}

// NewNodeID draws nanoid(21) ids until one is free in both collections.
func (s *Service) NewNodeID(ctx context.Context) (string, error) {
	const maxRetries = 10

	generateID, err := nanoid.Standard(nodeIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		exists, err := s.dir.NodeIDExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for node existence: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

func requireActor(actor *Actor) error {
	if actor == nil {
		return ErrAuthRequired
	}
	return nil
}

// CreateFolder creates a folder under parentID and re-lists the folder the
// caller is looking at. An empty name is rejected before persistence is
// contacted.
func (s *Service) CreateFolder(ctx context.Context, actor *Actor, name string, parentID, current *string) (*View, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	id, err := s.NewNodeID(ctx)
	if err != nil {
		return nil, err
	}

	_, err = s.dir.CreateFolder(ctx, database.CreateFolderParams{
		ID:        id,
		Name:      name,
		ParentID:  parentID,
		OwnerID:   actor.ID,
		CreatorID: actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	s.log.Info().Str("folder_id", id).Int64("user_id", actor.ID).Msg("folder created")
	return s.Browse(ctx, current)
}

// UploadParams carries the metadata of a binary the object store already
// confirmed. The URL is the storage collaborator's reference; the bytes are
// never seen here.
type UploadParams struct {
	Name      string
	FolderID  *string
	SizeBytes int64
	MimeType  string
	URL       string
}

// RegisterUpload records one uploaded file and re-lists. This is always a
// full refresh of the current folder, not an optimistic local append.
func (s *Service) RegisterUpload(ctx context.Context, actor *Actor, arg UploadParams, current *string) (*View, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(arg.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if arg.SizeBytes < 0 {
		return nil, ErrInvalidSize
	}

	id, err := s.NewNodeID(ctx)
	if err != nil {
		return nil, err
	}

	_, err = s.dir.CreateFile(ctx, database.CreateFileParams{
		ID:        id,
		Name:      name,
		FolderID:  arg.FolderID,
		SizeBytes: arg.SizeBytes,
		MimeType:  arg.MimeType,
		URL:       arg.URL,
		OwnerID:   actor.ID,
		CreatorID: actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("registering file: %w", err)
	}

	s.log.Info().Str("file_id", id).Int64("user_id", actor.ID).Int64("size", arg.SizeBytes).Msg("file registered")
	return s.Browse(ctx, current)
}

// Rename changes a node's display name. For files the original extension is
// re-applied no matter what the caller typed; extensions are not editable
// through rename. Folder names are replaced verbatim.
//
// Note the lock deliberately does not gate renames; see ToggleLock.
func (s *Service) Rename(ctx context.Context, actor *Actor, ref NodeRef, proposed string, current *string) (*View, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	proposed = strings.TrimSpace(proposed)
	if proposed == "" {
		return nil, ErrNameRequired
	}

	release, err := s.acquire(ref.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	switch ref.Kind {
	case KindFolder:
		ok, err := s.dir.RenameFolder(ctx, ref.ID, proposed)
		if err != nil {
			return nil, fmt.Errorf("renaming folder: %w", err)
		}
		if !ok {
			return nil, ErrNotFound
		}
	case KindFile:
		file, err := s.dir.GetFile(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("loading file: %w", err)
		}
		if file == nil {
			return nil, ErrNotFound
		}

		finalName := proposed + path.Ext(file.Name)
		ok, err := s.dir.RenameFile(ctx, ref.ID, finalName)
		if err != nil {
			return nil, fmt.Errorf("renaming file: %w", err)
		}
		if !ok {
			return nil, ErrNotFound
		}
	default:
		return nil, fmt.Errorf("unknown node kind %q", ref.Kind)
	}

	s.log.Info().Str("node_id", ref.ID).Str("kind", string(ref.Kind)).Msg("node renamed")
	return s.Browse(ctx, current)
}

// Delete removes exactly one node. Folders must be empty first; a file's
// binary content is removed from object storage best effort after the
// metadata row is gone.
//
// Like rename, deletion is not gated by the lock.
func (s *Service) Delete(ctx context.Context, actor *Actor, ref NodeRef, current *string) (*View, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	release, err := s.acquire(ref.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	switch ref.Kind {
	case KindFolder:
		count, err := s.dir.CountFolderChildren(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("counting children: %w", err)
		}
		if count > 0 {
			return nil, ErrFolderNotEmpty
		}
		ok, err := s.dir.DeleteFolder(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("deleting folder: %w", err)
		}
		if !ok {
			return nil, ErrNotFound
		}
	case KindFile:
		file, err := s.dir.GetFile(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("loading file: %w", err)
		}
		if file == nil {
			return nil, ErrNotFound
		}
		ok, err := s.dir.DeleteFile(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("deleting file: %w", err)
		}
		if !ok {
			return nil, ErrNotFound
		}
		if s.blobs != nil && file.URL != "" {
			if err := s.blobs.Delete(file.URL); err != nil {
				s.log.Warn().Err(err).Str("file_id", ref.ID).Msg("failed to delete blob for removed file")
			}
		}
	default:
		return nil, fmt.Errorf("unknown node kind %q", ref.Kind)
	}

	s.log.Info().Str("node_id", ref.ID).Str("kind", string(ref.Kind)).Msg("node deleted")
	return s.Browse(ctx, current)
}

// ToggleLock flips a node's privacy flag under the single-owner rule (see
// evaluateToggle). The write carries a compare-and-swap on the lock state
// read here, so two racing toggles cannot both win; the loser gets
// ErrLockConflict. Denials carry the owner's contact address and write
// nothing.
func (s *Service) ToggleLock(ctx context.Context, actor *Actor, ref NodeRef, current *string) (*View, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	release, err := s.acquire(ref.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		wasPrivate bool
		ownerID    int64
	)

	switch ref.Kind {
	case KindFolder:
		folder, err := s.dir.GetFolder(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("loading folder: %w", err)
		}
		if folder == nil {
			return nil, ErrNotFound
		}
		wasPrivate, ownerID = folder.IsPrivate, folder.OwnerID
	case KindFile:
		file, err := s.dir.GetFile(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("loading file: %w", err)
		}
		if file == nil {
			return nil, ErrNotFound
		}
		wasPrivate, ownerID = file.IsPrivate, file.OwnerID
	default:
		return nil, fmt.Errorf("unknown node kind %q", ref.Kind)
	}

	t := evaluateToggle(wasPrivate, ownerID, actor.ID)
	if !t.allowed {
		return nil, s.denial(ctx, ownerID)
	}

	var ok bool
	if ref.Kind == KindFolder {
		ok, err = s.dir.SetFolderPrivacy(ctx, ref.ID, t.private, t.ownerID, wasPrivate)
	} else {
		ok, err = s.dir.SetFilePrivacy(ctx, ref.ID, t.private, t.ownerID, wasPrivate)
	}
	if err != nil {
		return nil, fmt.Errorf("updating lock: %w", err)
	}
	if !ok {
		return nil, ErrLockConflict
	}

	s.log.Info().
		Str("node_id", ref.ID).
		Str("kind", string(ref.Kind)).
		Bool("private", t.private).
		Int64("user_id", actor.ID).
		Msg("lock toggled")
	return s.Browse(ctx, current)
}
