package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emanuelsistemas/drive/internal/models"
)

type CreateFolderParams struct {
	ID        string
	Name      string
	ParentID  *string
	OwnerID   int64
	CreatorID int64
}

func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, name, parent_id, is_private, owner_id, creator_id, created_at)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6)
		RETURNING id, name, parent_id, is_private, owner_id, creator_id, created_at
	`
	row := q.db.QueryRow(ctx, query, arg.ID, arg.Name, arg.ParentID, arg.OwnerID, arg.CreatorID, time.Now())

	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.Name,
		&folder.ParentID,
		&folder.IsPrivate,
		&folder.OwnerID,
		&folder.CreatorID,
		&folder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &folder, nil
}

func (q *Queries) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	query := `
		SELECT id, name, parent_id, is_private, owner_id, creator_id, created_at
		FROM folders
		WHERE id = $1
	`
	var folder models.Folder

	err := q.db.QueryRow(ctx, query, id).Scan(
		&folder.ID,
		&folder.Name,
		&folder.ParentID,
		&folder.IsPrivate,
		&folder.OwnerID,
		&folder.CreatorID,
		&folder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &folder, nil
}

// ListFolders returns the child folders of parentID (nil means root),
// ordered by name with id as the tie-break so the order is deterministic.
func (q *Queries) ListFolders(ctx context.Context, parentID *string) ([]models.Folder, error) {
	var rows pgx.Rows
	var err error

	if parentID == nil {
		query := `SELECT id, name, parent_id, is_private, owner_id, creator_id, created_at
				  FROM folders
				  WHERE parent_id IS NULL
				  ORDER BY name, id`
		rows, err = q.db.Query(ctx, query)
	} else {
		query := `SELECT id, name, parent_id, is_private, owner_id, creator_id, created_at
				  FROM folders
				  WHERE parent_id = $1
				  ORDER BY name, id`
		rows, err = q.db.Query(ctx, query, *parentID)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.ParentID,
			&folder.IsPrivate,
			&folder.OwnerID,
			&folder.CreatorID,
			&folder.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if folders == nil {
		return []models.Folder{}, nil
	}

	return folders, nil
}

func (q *Queries) RenameFolder(ctx context.Context, id string, newName string) (bool, error) {
	query := `UPDATE folders SET name = $1 WHERE id = $2`
	res, err := q.db.Exec(ctx, query, newName, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteFolder(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM folders WHERE id = $1`
	res, err := q.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// SetFolderPrivacy patches the lock state. The wasPrivate predicate makes the
// write a compare-and-swap: a concurrent toggle that got there first leaves
// zero rows affected instead of being silently overwritten.
func (q *Queries) SetFolderPrivacy(ctx context.Context, id string, private bool, ownerID int64, wasPrivate bool) (bool, error) {
	query := `
		UPDATE folders
		SET is_private = $2, owner_id = $3
		WHERE id = $1 AND is_private = $4
	`
	res, err := q.db.Exec(ctx, query, id, private, ownerID, wasPrivate)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// CountFolderChildren counts direct children of either kind in one round trip.
func (q *Queries) CountFolderChildren(ctx context.Context, folderID string) (int64, error) {
	query := `
		SELECT (SELECT count(*) FROM folders WHERE parent_id = $1)
		     + (SELECT count(*) FROM files WHERE folder_id = $1)
	`
	var count int64
	err := q.db.QueryRow(ctx, query, folderID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// NodeIDExists reports whether an id is already taken in either collection.
func (q *Queries) NodeIDExists(ctx context.Context, id string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)
		    OR EXISTS(SELECT 1 FROM files WHERE id = $1)
	`
	var exists bool
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
