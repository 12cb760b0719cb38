package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notenext/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	store, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))
	return store
}

func strPtr(s string) *string { return &s }

func mustUser(t *testing.T, s *Store, u models.User) models.User {
	t.Helper()
	if u.PasswordHash == "" {
		u.PasswordHash = "hash"
	}
	created, err := s.CreateUser(context.Background(), u)
	require.NoError(t, err)
	return created
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	alice := mustUser(t, store, models.User{Username: "alice", Email: strPtr("a@x.com"), Role: models.RoleParent})
	bob := mustUser(t, store, models.User{Username: "bob", Email: alice.Email, Role: models.RoleChild, ParentID: &alice.ID})
	orphan := mustUser(t, store, models.User{Username: "orphan", Role: models.RoleChild})

	t.Run("Created user reads back", func(t *testing.T) {
		assert.NotZero(t, alice.ID)
		assert.Equal(t, models.RoleParent, alice.Role)
		assert.Nil(t, alice.ParentID)
		assert.False(t, alice.CreatedAt.IsZero())

		got, err := store.UserByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.ID)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, alice.ID, *got.ParentID)
	})

	t.Run("Missing user", func(t *testing.T) {
		_, err := store.UserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.UserByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Duplicate username is rejected by the index", func(t *testing.T) {
		_, err := store.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "x", Role: models.RoleChild})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Username taken across roles", func(t *testing.T) {
		taken, err := store.UsernameTaken(ctx, "orphan")
		require.NoError(t, err)
		assert.True(t, taken)
		taken, err = store.UsernameTaken(ctx, "carol")
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("Parent email check ignores children", func(t *testing.T) {
		child := mustUser(t, store, models.User{Username: "kid", Email: strPtr("kid@x.com"), Role: models.RoleChild})
		require.NotZero(t, child.ID)

		taken, err := store.ParentEmailTaken(ctx, "kid@x.com")
		require.NoError(t, err)
		assert.False(t, taken)

		taken, err = store.ParentEmailTaken(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("Children by reverse lookup", func(t *testing.T) {
		children, err := store.ChildrenOf(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, "bob", children[0].Username)

		children, err = store.ChildrenOf(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("Unclaimed children", func(t *testing.T) {
		unclaimed, err := store.UnclaimedChildren(ctx)
		require.NoError(t, err)
		var names []string
		for _, u := range unclaimed {
			names = append(names, u.Username)
		}
		assert.Contains(t, names, orphan.Username)
		assert.NotContains(t, names, "bob")
		assert.NotContains(t, names, "alice")
	})
}

func TestFoldersAndNotes(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	parent := mustUser(t, store, models.User{Username: "p", Email: strPtr("p@x.com"), Role: models.RoleParent})
	c1 := mustUser(t, store, models.User{Username: "c1", Role: models.RoleChild, ParentID: &parent.ID})
	c2 := mustUser(t, store, models.User{Username: "c2", Role: models.RoleChild, ParentID: &parent.ID})

	school, err := store.CreateFolder(ctx, models.Folder{Name: "School", OwnerID: c1.ID})
	require.NoError(t, err)
	games, err := store.CreateFolder(ctx, models.Folder{Name: "Games", OwnerID: c2.ID})
	require.NoError(t, err)

	hw, err := store.CreateNote(ctx, models.Note{Title: "HW", Content: "fractions", Tags: "math,school", IsTodo: true, FolderID: &school.ID, OwnerID: c1.ID})
	require.NoError(t, err)
	loose, err := store.CreateNote(ctx, models.Note{Title: "Loose", OwnerID: c1.ID})
	require.NoError(t, err)
	_, err = store.CreateNote(ctx, models.Note{Title: "Boss", FolderID: &games.ID, OwnerID: c2.ID})
	require.NoError(t, err)

	t.Run("Create reads back every column", func(t *testing.T) {
		assert.Equal(t, "HW", hw.Title)
		assert.Equal(t, "math,school", hw.Tags)
		assert.True(t, hw.IsTodo)
		assert.False(t, hw.IsCompleted)
		require.NotNil(t, hw.FolderID)
		assert.Equal(t, school.ID, *hw.FolderID)
		assert.Equal(t, hw.CreatedAt, hw.UpdatedAt)
		assert.Nil(t, loose.FolderID)
	})

	t.Run("List folders by owner set", func(t *testing.T) {
		folders, err := store.ListFolders(ctx, []int64{c1.ID, c2.ID})
		require.NoError(t, err)
		assert.Len(t, folders, 2)

		folders, err = store.ListFolders(ctx, []int64{c2.ID})
		require.NoError(t, err)
		require.Len(t, folders, 1)
		assert.Equal(t, "Games", folders[0].Name)

		folders, err = store.ListFolders(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, folders)
		assert.Empty(t, folders)
	})

	t.Run("List notes with folder filter", func(t *testing.T) {
		notes, err := store.ListNotes(ctx, models.NoteQuery{OwnerIDs: []int64{c1.ID}})
		require.NoError(t, err)
		assert.Len(t, notes, 2)

		notes, err = store.ListNotes(ctx, models.NoteQuery{OwnerIDs: []int64{c1.ID, c2.ID}, FolderID: &school.ID})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, hw.ID, notes[0].ID)

		notes, err = store.ListNotes(ctx, models.NoteQuery{OwnerIDs: []int64{c2.ID}, FolderID: &school.ID})
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Deleting a folder unfiles its notes", func(t *testing.T) {
		require.NoError(t, store.DeleteFolder(ctx, school.ID))

		_, err := store.FolderByID(ctx, school.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		n, err := store.NoteByID(ctx, hw.ID)
		require.NoError(t, err)
		assert.Nil(t, n.FolderID)
		assert.Equal(t, "HW", n.Title)
	})

	t.Run("Deleting a missing folder", func(t *testing.T) {
		assert.ErrorIs(t, store.DeleteFolder(ctx, 4242), ErrNotFound)
	})

	t.Run("Delete note", func(t *testing.T) {
		require.NoError(t, store.DeleteNote(ctx, loose.ID))
		_, err := store.NoteByID(ctx, loose.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.DeleteNote(ctx, loose.ID), ErrNotFound)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return frozen })

	child := mustUser(t, store, models.User{Username: "c", Role: models.RoleChild})
	note, err := store.CreateNote(ctx, models.Note{Title: "Draft", Content: "x", OwnerID: child.ID})
	require.NoError(t, err)

	t.Run("Empty patch only advances updated_at", func(t *testing.T) {
		updated, err := store.UpdateNote(ctx, note.ID, models.NotePatch{})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
		assert.Equal(t, note.Title, updated.Title)
		assert.Equal(t, note.Content, updated.Content)
		assert.Equal(t, note.CreatedAt, updated.CreatedAt)

		again, err := store.UpdateNote(ctx, note.ID, models.NotePatch{})
		require.NoError(t, err)
		assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
	})

	t.Run("Partial patch", func(t *testing.T) {
		todo, done := true, true
		title := "Final"
		updated, err := store.UpdateNote(ctx, note.ID, models.NotePatch{Title: &title, IsTodo: &todo, IsCompleted: &done})
		require.NoError(t, err)
		assert.Equal(t, "Final", updated.Title)
		assert.Equal(t, "x", updated.Content)
		assert.True(t, updated.IsTodo)
		assert.True(t, updated.IsCompleted)
	})

	t.Run("Missing note", func(t *testing.T) {
		_, err := store.UpdateNote(ctx, 777, models.NotePatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	parent := mustUser(t, store, models.User{Username: "p", Email: strPtr("p@x.com"), Role: models.RoleParent})
	child := mustUser(t, store, models.User{Username: "c", Role: models.RoleChild, ParentID: &parent.ID})
	folder, err := store.CreateFolder(ctx, models.Folder{Name: "F", OwnerID: child.ID})
	require.NoError(t, err)
	_, err = store.CreateNote(ctx, models.Note{Title: "N", OwnerID: child.ID, FolderID: &folder.ID})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	taken, err := store.UsernameTaken(ctx, "p")
	require.NoError(t, err)
	assert.False(t, taken)
	folders, err := store.ListFolders(ctx, []int64{child.ID})
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "postgres", "")
	assert.Error(t, err)
}
