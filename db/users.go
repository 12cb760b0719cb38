package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"notenext/models"
)

var userColumns = []string{"id", "username", "email", "password_hash", "role", "parent_id", "created_at"}

func selectUsers() sq.SelectBuilder {
	return sq.Select(userColumns...).From("users")
}

// CreateUser inserts u and returns the stored row.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := exec(ctx, tx, sq.Insert("users").
			Columns("username", "email", "password_hash", "role", "parent_id", "created_at").
			Values(u.Username, u.Email, u.PasswordHash, u.Role, u.ParentID, s.now()))
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return get(ctx, tx, &created, selectUsers().Where(sq.Eq{"id": id}))
	})
	return created, err
}

func (s *Store) UserByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := get(ctx, s.db, &u, selectUsers().Where(sq.Eq{"id": id}))
	return u, err
}

func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := get(ctx, s.db, &u, selectUsers().Where(sq.Eq{"username": username}))
	return u, err
}

func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, sq.Eq{"username": username})
}

// ParentEmailTaken only looks at parent accounts; children share their
// parent's address.
func (s *Store) ParentEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, sq.Eq{"email": email, "role": models.RoleParent})
}

// ChildrenOf resolves the children of a parent by reverse lookup on
// parent_id.
func (s *Store) ChildrenOf(ctx context.Context, parentID int64) ([]models.User, error) {
	users := []models.User{}
	err := selectAll(ctx, s.db, &users, selectUsers().
		Where(sq.Eq{"parent_id": parentID, "role": models.RoleChild}).
		OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("children of %d: %w", parentID, err)
	}
	return users, nil
}

func (s *Store) UnclaimedChildren(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := selectAll(ctx, s.db, &users, selectUsers().
		Where(sq.Eq{"role": models.RoleChild, "parent_id": nil}).
		OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("unclaimed children: %w", err)
	}
	return users, nil
}

func (s *Store) exists(ctx context.Context, where sq.Eq) (bool, error) {
	var n int
	if err := get(ctx, s.db, &n, sq.Select("COUNT(*)").From("users").Where(where)); err != nil {
		return false, err
	}
	return n > 0, nil
}
