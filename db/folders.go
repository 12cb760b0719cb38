package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"notenext/models"
)

var folderColumns = []string{"id", "name", "owner_id", "created_at"}

func selectFolders() sq.SelectBuilder {
	return sq.Select(folderColumns...).From("folders")
}

func (s *Store) CreateFolder(ctx context.Context, f models.Folder) (models.Folder, error) {
	var created models.Folder
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := exec(ctx, tx, sq.Insert("folders").
			Columns("name", "owner_id", "created_at").
			Values(f.Name, f.OwnerID, s.now()))
		if err != nil {
			return fmt.Errorf("insert folder: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert folder: %w", err)
		}
		return get(ctx, tx, &created, selectFolders().Where(sq.Eq{"id": id}))
	})
	return created, err
}

func (s *Store) FolderByID(ctx context.Context, id int64) (models.Folder, error) {
	var f models.Folder
	err := get(ctx, s.db, &f, selectFolders().Where(sq.Eq{"id": id}))
	return f, err
}

// ListFolders returns the folders owned by any of ownerIDs. An empty owner
// set yields an empty result without touching the database.
func (s *Store) ListFolders(ctx context.Context, ownerIDs []int64) ([]models.Folder, error) {
	folders := []models.Folder{}
	if len(ownerIDs) == 0 {
		return folders, nil
	}
	err := selectAll(ctx, s.db, &folders, selectFolders().
		Where(sq.Eq{"owner_id": ownerIDs}).
		OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// DeleteFolder removes a folder and unfiles its notes.
func (s *Store) DeleteFolder(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := exec(ctx, tx, sq.Update("notes").
			Set("folder_id", nil).
			Where(sq.Eq{"folder_id": id})); err != nil {
			return fmt.Errorf("unfile notes of folder %d: %w", id, err)
		}
		res, err := exec(ctx, tx, sq.Delete("folders").Where(sq.Eq{"id": id}))
		if err != nil {
			return fmt.Errorf("delete folder %d: %w", id, err)
		}
		return requireAffected(res)
	})
}
