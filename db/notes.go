package db

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"notenext/models"
)

var noteColumns = []string{
	"id", "title", "content", "tags", "is_todo", "is_completed",
	"folder_id", "owner_id", "created_at", "updated_at",
}

func selectNotes() sq.SelectBuilder {
	return sq.Select(noteColumns...).From("notes")
}

func (s *Store) CreateNote(ctx context.Context, n models.Note) (models.Note, error) {
	var created models.Note
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		now := s.now()
		res, err := exec(ctx, tx, sq.Insert("notes").
			Columns("title", "content", "tags", "is_todo", "is_completed", "folder_id", "owner_id", "created_at", "updated_at").
			Values(n.Title, n.Content, n.Tags, n.IsTodo, n.IsCompleted, n.FolderID, n.OwnerID, now, now))
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		return get(ctx, tx, &created, selectNotes().Where(sq.Eq{"id": id}))
	})
	return created, err
}

func (s *Store) NoteByID(ctx context.Context, id int64) (models.Note, error) {
	var n models.Note
	err := get(ctx, s.db, &n, selectNotes().Where(sq.Eq{"id": id}))
	return n, err
}

// ListNotes returns the notes owned by q.OwnerIDs, narrowed to q.FolderID
// when set.
func (s *Store) ListNotes(ctx context.Context, q models.NoteQuery) ([]models.Note, error) {
	notes := []models.Note{}
	if len(q.OwnerIDs) == 0 {
		return notes, nil
	}
	b := selectNotes().Where(sq.Eq{"owner_id": q.OwnerIDs})
	if q.FolderID != nil {
		b = b.Where(sq.Eq{"folder_id": *q.FolderID})
	}
	if err := selectAll(ctx, s.db, &notes, b.OrderBy("id")); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies patch to note id. updated_at always moves forward, even
// when the patch is empty or the clock has not ticked since the last write.
func (s *Store) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error) {
	var updated models.Note
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var current models.Note
		if err := get(ctx, tx, &current, selectNotes().Where(sq.Eq{"id": id})); err != nil {
			return err
		}
		patch.Apply(&current)

		updatedAt := s.now()
		if !updatedAt.After(current.UpdatedAt) {
			updatedAt = current.UpdatedAt.Add(timestampResolution)
		}
		if _, err := exec(ctx, tx, sq.Update("notes").
			Set("title", current.Title).
			Set("content", current.Content).
			Set("tags", current.Tags).
			Set("is_todo", current.IsTodo).
			Set("is_completed", current.IsCompleted).
			Set("updated_at", updatedAt).
			Where(sq.Eq{"id": id})); err != nil {
			return fmt.Errorf("update note %d: %w", id, err)
		}
		return get(ctx, tx, &updated, selectNotes().Where(sq.Eq{"id": id}))
	})
	return updated, err
}

func (s *Store) DeleteNote(ctx context.Context, id int64) error {
	res, err := exec(ctx, s.db, sq.Delete("notes").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
