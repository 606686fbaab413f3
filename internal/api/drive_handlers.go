package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/emanuelsistemas/drive/internal/drive"
)

// folderIDParam interprets the optional folder_id query value; absence means
// the root.
func folderIDParam(r *http.Request) *string {
	v := r.URL.Query().Get("folder_id")
	if v == "" {
		return nil
	}
	return &v
}

func currentFolderParam(r *http.Request) *string {
	v := r.URL.Query().Get("current")
	if v == "" {
		return nil
	}
	return &v
}

func nodeRefFromURL(r *http.Request) (drive.NodeRef, error) {
	kind := chi.URLParam(r, "kind")
	id := chi.URLParam(r, "nodeId")
	if id == "" {
		return drive.NodeRef{}, errors.New("node ID is required")
	}
	switch kind {
	case "folder":
		return drive.NodeRef{Kind: drive.KindFolder, ID: id}, nil
	case "file":
		return drive.NodeRef{Kind: drive.KindFile, ID: id}, nil
	default:
		return drive.NodeRef{}, fmt.Errorf("unknown node kind %q", kind)
	}
}

// writeDriveError maps the core's error taxonomy onto HTTP statuses. A lock
// denial is the one case that carries structure: the response names the
// owner the requester has to ask.
func (s *Server) writeDriveError(w http.ResponseWriter, err error) {
	var denied *drive.LockDenied
	switch {
	case errors.Is(err, drive.ErrNameRequired), errors.Is(err, drive.ErrInvalidSize):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, drive.ErrAuthRequired):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.As(err, &denied):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":       denied.Error(),
			"owner_id":    denied.OwnerID,
			"owner_email": denied.OwnerEmail,
		})
	case errors.Is(err, drive.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, drive.ErrFolderNotEmpty),
		errors.Is(err, drive.ErrBusy),
		errors.Is(err, drive.ErrLockConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.log.Error().Err(err).Msg("drive operation failed")
		http.Error(w, "Operation failed", http.StatusInternalServerError)
	}
}

func writeView(w http.ResponseWriter, view *drive.View) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// @Summary      Browse a folder
// @Description  Lists the child folders and files of a folder (or of the root when folder_id is omitted), plus the breadcrumb path used for navigation.
// @Tags         drive
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id  query     string  false  "Folder ID; omit for the root"
// @Success      200        {object}  drive.View
// @Failure      401        {string}  string "Unauthorized"
// @Failure      404        {string}  string "Folder not found"
// @Router       /drive [get]
func (s *Server) BrowseHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.drive.Browse(r.Context(), folderIDParam(r))
	if err != nil {
		s.writeDriveError(w, err)
		return
	}
	writeView(w, view)
}

type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// @Summary      Create a folder
// @Description  Creates a folder under parent_id (root when null) and returns the refreshed view of that folder.
// @Tags         drive
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createFolderRequest  body      CreateFolderRequest  true  "Folder to create"
// @Success      201  {object}  drive.View
// @Failure      400  {string}  string "Invalid request body or empty name"
// @Failure      401  {string}  string "Unauthorized"
// @Router       /folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor := actorFromContext(r.Context())
	view, err := s.drive.CreateFolder(r.Context(), actor, req.Name, req.ParentID, req.ParentID)
	if err != nil {
		s.writeDriveError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

// @Summary      Upload a file
// @Description  Stores the binary under the caller's storage prefix, then registers the file in the folder given by the folder_id form field (root when absent). Responds with the refreshed folder view.
// @Tags         drive
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file       formData  file    true   "File content"
// @Param        folder_id  formData  string  false  "Destination folder ID"
// @Success      201  {object}  drive.View
// @Failure      400  {string}  string "Bad multipart form"
// @Failure      401  {string}  string "Unauthorized"
// @Router       /files [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<30)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var folderID *string
	if v := r.FormValue("folder_id"); v != "" {
		folderID = &v
	}

	// Blob key is scoped by user and randomized; only the original
	// extension survives into the key.
	key := fmt.Sprintf("%d/%s%s", claims.UserID, uuid.New().String(), path.Ext(handler.Filename))
	url, err := s.storage.Save(key, file)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to save blob")
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	actor := actorFromContext(r.Context())
	view, err := s.drive.RegisterUpload(r.Context(), actor, drive.UploadParams{
		Name:      handler.Filename,
		FolderID:  folderID,
		SizeBytes: handler.Size,
		MimeType:  handler.Header.Get("Content-Type"),
		URL:       url,
	}, folderID)
	if err != nil {
		// The metadata write failed after the blob landed; reclaim it.
		if rmErr := s.storage.Delete(url); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("key", key).Msg("failed to remove orphaned blob")
		}
		s.writeDriveError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

// @Summary      Download a file
// @Description  Streams a file's binary content with its stored name and MIME type.
// @Tags         drive
// @Security     BearerAuth
// @Param        fileId  path  string  true  "File ID"
// @Success      200  {file}    file
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "File not found"
// @Router       /files/{fileId}/download [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileId")
	if fileID == "" {
		http.Error(w, "File ID is required", http.StatusBadRequest)
		return
	}

	file, err := s.store.GetFile(r.Context(), fileID)
	if err != nil {
		http.Error(w, "Failed to retrieve file metadata", http.StatusInternalServerError)
		return
	}
	if file == nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	stream, err := s.storage.Get(file.URL)
	if err != nil {
		http.Error(w, "File not found on storage", http.StatusInternalServerError)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Disposition", "attachment; filename=\""+file.Name+"\"")
	if file.MimeType != "" {
		w.Header().Set("Content-Type", file.MimeType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.SizeBytes))

	io.Copy(w, stream)
}

type RenameNodeRequest struct {
	Name string `json:"name"`
}

// @Summary      Rename a node
// @Description  Renames a folder or file. For files the stored extension is always re-applied regardless of what was typed. Pass the folder being viewed in the current query parameter to get its refreshed view back.
// @Tags         drive
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind     path   string             true   "Node kind"  Enums(folder, file)
// @Param        nodeId   path   string             true   "Node ID"
// @Param        current  query  string             false  "Folder being viewed"
// @Param        renameNodeRequest  body  RenameNodeRequest  true  "New name"
// @Success      200  {object}  drive.View
// @Failure      400  {string}  string "Empty name"
// @Failure      404  {string}  string "Node not found"
// @Failure      409  {string}  string "Operation already in progress"
// @Router       /nodes/{kind}/{nodeId} [patch]
func (s *Server) RenameNodeHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := nodeRefFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req RenameNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor := actorFromContext(r.Context())
	view, err := s.drive.Rename(r.Context(), actor, ref, req.Name, currentFolderParam(r))
	if err != nil {
		s.writeDriveError(w, err)
		return
	}
	writeView(w, view)
}

// @Summary      Delete a node
// @Description  Removes exactly one folder or file. Folders must be empty. File content is removed from storage best effort.
// @Tags         drive
// @Produce      json
// @Security     BearerAuth
// @Param        kind     path   string  true   "Node kind"  Enums(folder, file)
// @Param        nodeId   path   string  true   "Node ID"
// @Param        current  query  string  false  "Folder being viewed"
// @Success      200  {object}  drive.View
// @Failure      404  {string}  string "Node not found"
// @Failure      409  {string}  string "Folder is not empty"
// @Router       /nodes/{kind}/{nodeId} [delete]
func (s *Server) DeleteNodeHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := nodeRefFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := actorFromContext(r.Context())
	view, err := s.drive.Delete(r.Context(), actor, ref, currentFolderParam(r))
	if err != nil {
		s.writeDriveError(w, err)
		return
	}
	writeView(w, view)
}

// @Summary      Toggle a node's lock
// @Description  Locks an unlocked node, making the caller its owner, or unlocks a node the caller owns. Anyone else's unlock attempt is rejected with the owner's contact email.
// @Tags         drive
// @Produce      json
// @Security     BearerAuth
// @Param        kind     path   string  true   "Node kind"  Enums(folder, file)
// @Param        nodeId   path   string  true   "Node ID"
// @Param        current  query  string  false  "Folder being viewed"
// @Success      200  {object}  drive.View
// @Failure      403  {object}  map[string]interface{} "Locked by another owner"
// @Failure      404  {string}  string "Node not found"
// @Failure      409  {string}  string "Concurrent lock change"
// @Router       /nodes/{kind}/{nodeId}/lock [post]
func (s *Server) ToggleLockHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := nodeRefFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := actorFromContext(r.Context())
	view, err := s.drive.ToggleLock(r.Context(), actor, ref, currentFolderParam(r))
	if err != nil {
		s.writeDriveError(w, err)
		return
	}
	writeView(w, view)
}
