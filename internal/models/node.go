package models

import "time"

// Folder is a node in the hierarchical namespace. A nil ParentID means the
// folder lives at the root.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id"`
	IsPrivate bool      `json:"is_private"`
	OwnerID   int64     `json:"owner_id"`
	CreatorID int64     `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

// File is a leaf node. The binary content lives in object storage; URL is
// the opaque reference handed back by the storage collaborator.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FolderID  *string   `json:"folder_id"`
	SizeBytes int64     `json:"size_bytes"`
	MimeType  string    `json:"mime_type"`
	URL       string    `json:"url"`
	IsPrivate bool      `json:"is_private"`
	OwnerID   int64     `json:"owner_id"`
	CreatorID int64     `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}
