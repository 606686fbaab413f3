package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emanuelsistemas/drive/internal/models"
)

type CreateFileParams struct {
	ID        string
	Name      string
	FolderID  *string
	SizeBytes int64
	MimeType  string
	URL       string
	OwnerID   int64
	CreatorID int64
}

func (q *Queries) CreateFile(ctx context.Context, arg CreateFileParams) (*models.File, error) {
	query := `
		INSERT INTO files (id, name, folder_id, size_bytes, mime_type, url, is_private, owner_id, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8, $9)
		RETURNING id, name, folder_id, size_bytes, mime_type, url, is_private, owner_id, creator_id, created_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.Name,
		arg.FolderID,
		arg.SizeBytes,
		arg.MimeType,
		arg.URL,
		arg.OwnerID,
		arg.CreatorID,
		time.Now(),
	)

	var file models.File
	err := row.Scan(
		&file.ID,
		&file.Name,
		&file.FolderID,
		&file.SizeBytes,
		&file.MimeType,
		&file.URL,
		&file.IsPrivate,
		&file.OwnerID,
		&file.CreatorID,
		&file.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &file, nil
}

func (q *Queries) GetFile(ctx context.Context, id string) (*models.File, error) {
	query := `
		SELECT id, name, folder_id, size_bytes, mime_type, url, is_private, owner_id, creator_id, created_at
		FROM files
		WHERE id = $1
	`
	var file models.File

	err := q.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.Name,
		&file.FolderID,
		&file.SizeBytes,
		&file.MimeType,
		&file.URL,
		&file.IsPrivate,
		&file.OwnerID,
		&file.CreatorID,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &file, nil
}

// ListFiles returns the files inside folderID (nil means root), ordered by
// name then id.
func (q *Queries) ListFiles(ctx context.Context, folderID *string) ([]models.File, error) {
	var rows pgx.Rows
	var err error

	if folderID == nil {
		query := `SELECT id, name, folder_id, size_bytes, mime_type, url, is_private, owner_id, creator_id, created_at
				  FROM files
				  WHERE folder_id IS NULL
				  ORDER BY name, id`
		rows, err = q.db.Query(ctx, query)
	} else {
		query := `SELECT id, name, folder_id, size_bytes, mime_type, url, is_private, owner_id, creator_id, created_at
				  FROM files
				  WHERE folder_id = $1
				  ORDER BY name, id`
		rows, err = q.db.Query(ctx, query, *folderID)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.Name,
			&file.FolderID,
			&file.SizeBytes,
			&file.MimeType,
			&file.URL,
			&file.IsPrivate,
			&file.OwnerID,
			&file.CreatorID,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if files == nil {
		return []models.File{}, nil
	}

	return files, nil
}

func (q *Queries) RenameFile(ctx context.Context, id string, newName string) (bool, error) {
	query := `UPDATE files SET name = $1 WHERE id = $2`
	res, err := q.db.Exec(ctx, query, newName, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteFile(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM files WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// SetFilePrivacy is the file-side twin of SetFolderPrivacy, with the same
// compare-and-swap predicate on the previous lock state.
func (q *Queries) SetFilePrivacy(ctx context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error) {
	query := `
		UPDATE files
		SET is_private = $2, owner_id = $3
		WHERE id = $1 AND is_private = $4
	`
	res, err := q.db.Exec(ctx, query, id, private, ownerID, wasPrivate)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
