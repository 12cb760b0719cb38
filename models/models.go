package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        *string   `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	ParentID     *int64    `json:"parent_id" db:"parent_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Unclaimed reports whether u is a child without a parent.
func (u User) Unclaimed() bool {
	return u.Role == RoleChild && u.ParentID == nil
}

type Folder struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Note struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Tags        string    `json:"tags" db:"tags"`
	IsTodo      bool      `json:"is_todo" db:"is_todo"`
	IsCompleted bool      `json:"is_completed" db:"is_completed"`
	FolderID    *int64    `json:"folder_id" db:"folder_id"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NoteDraft is the caller-supplied part of a new note. The owner is never
// part of it.
type NoteDraft struct {
	Title    string
	Content  string
	Tags     string
	IsTodo   bool
	FolderID *int64
}

// NotePatch holds a partial note update. Nil fields are left unchanged.
type NotePatch struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Tags        *string `json:"tags"`
	IsTodo      *bool   `json:"is_todo"`
	IsCompleted *bool   `json:"is_completed"`
}

// Apply copies the set fields of p onto n.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.IsTodo != nil {
		n.IsTodo = *p.IsTodo
	}
	if p.IsCompleted != nil {
		n.IsCompleted = *p.IsCompleted
	}
}

// NoteQuery restricts a note listing to a set of owners and, optionally, a
// single folder.
type NoteQuery struct {
	OwnerIDs []int64
	FolderID *int64
}
