// Package access decides what a principal may see and change. Parents get
// read-only oversight of their children's folders and notes; children own
// their records outright.
package access

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"notenext/apperr"
	"notenext/db"
	"notenext/models"
)

// Graph resolves the children of a parent.
type Graph interface {
	ChildrenOf(ctx context.Context, parentID int64) ([]models.User, error)
}

// Resources is the folder and note persistence the engine drives.
type Resources interface {
	CreateFolder(ctx context.Context, f models.Folder) (models.Folder, error)
	FolderByID(ctx context.Context, id int64) (models.Folder, error)
	ListFolders(ctx context.Context, ownerIDs []int64) ([]models.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error

	CreateNote(ctx context.Context, n models.Note) (models.Note, error)
	NoteByID(ctx context.Context, id int64) (models.Note, error)
	ListNotes(ctx context.Context, q models.NoteQuery) ([]models.Note, error)
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type Engine struct {
	graph     Graph
	resources Resources
}

func NewEngine(graph Graph, resources Resources) *Engine {
	return &Engine{graph: graph, resources: resources}
}

// Scope returns the owner ids p may read. For a parent that is every child,
// or just childID when it names one of them.
func (e *Engine) Scope(ctx context.Context, p models.User, childID *int64) ([]int64, error) {
	switch p.Role {
	case models.RoleParent:
		children, err := e.graph.ChildrenOf(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("scope for parent %d: %w", p.ID, err)
		}
		ids := make([]int64, 0, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
		}
		if childID != nil && slices.Contains(ids, *childID) {
			return []int64{*childID}, nil
		}
		return ids, nil
	case models.RoleChild:
		return []int64{p.ID}, nil
	default:
		return nil, fmt.Errorf("scope: unknown role %v", p.Role)
	}
}

func (e *Engine) ListFolders(ctx context.Context, p models.User, childID *int64) ([]models.Folder, error) {
	owners, err := e.Scope(ctx, p, childID)
	if err != nil {
		return nil, err
	}
	return e.resources.ListFolders(ctx, owners)
}

func (e *Engine) CreateFolder(ctx context.Context, p models.User, name string) (models.Folder, error) {
	if err := requireCreator(p); err != nil {
		return models.Folder{}, err
	}
	return e.resources.CreateFolder(ctx, models.Folder{Name: name, OwnerID: p.ID})
}

func (e *Engine) DeleteFolder(ctx context.Context, p models.User, id int64) error {
	folder, err := e.resources.FolderByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := authorizeMutation(p, folder.OwnerID); err != nil {
		return err
	}
	return notFound(e.resources.DeleteFolder(ctx, id))
}

// ListNotes scopes by owner first and then narrows to folderID.
func (e *Engine) ListNotes(ctx context.Context, p models.User, childID, folderID *int64) ([]models.Note, error) {
	owners, err := e.Scope(ctx, p, childID)
	if err != nil {
		return nil, err
	}
	return e.resources.ListNotes(ctx, models.NoteQuery{OwnerIDs: owners, FolderID: folderID})
}

// CreateNote files the note under draft.FolderID only if that folder belongs
// to p.
func (e *Engine) CreateNote(ctx context.Context, p models.User, draft models.NoteDraft) (models.Note, error) {
	if err := requireCreator(p); err != nil {
		return models.Note{}, err
	}
	if draft.FolderID != nil {
		folder, err := e.resources.FolderByID(ctx, *draft.FolderID)
		if err != nil {
			return models.Note{}, notFound(err)
		}
		if folder.OwnerID != p.ID {
			return models.Note{}, apperr.ErrForbidden
		}
	}
	return e.resources.CreateNote(ctx, models.Note{
		Title:    draft.Title,
		Content:  draft.Content,
		Tags:     draft.Tags,
		IsTodo:   draft.IsTodo,
		FolderID: draft.FolderID,
		OwnerID:  p.ID,
	})
}

func (e *Engine) UpdateNote(ctx context.Context, p models.User, id int64, patch models.NotePatch) (models.Note, error) {
	note, err := e.resources.NoteByID(ctx, id)
	if err != nil {
		return models.Note{}, notFound(err)
	}
	if err := authorizeMutation(p, note.OwnerID); err != nil {
		return models.Note{}, err
	}
	updated, err := e.resources.UpdateNote(ctx, id, patch)
	if err != nil {
		return models.Note{}, notFound(err)
	}
	return updated, nil
}

func (e *Engine) DeleteNote(ctx context.Context, p models.User, id int64) error {
	note, err := e.resources.NoteByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := authorizeMutation(p, note.OwnerID); err != nil {
		return err
	}
	return notFound(e.resources.DeleteNote(ctx, id))
}

func requireCreator(p models.User) error {
	switch p.Role {
	case models.RoleChild:
		return nil
	case models.RoleParent:
		return apperr.ErrForbidden
	default:
		return fmt.Errorf("create: unknown role %v", p.Role)
	}
}

// authorizeMutation allows only the owning child. Parents never write.
func authorizeMutation(p models.User, ownerID int64) error {
	switch p.Role {
	case models.RoleParent:
		return apperr.ErrForbidden
	case models.RoleChild:
		if ownerID != p.ID {
			return apperr.ErrForbidden
		}
		return nil
	default:
		return fmt.Errorf("mutate: unknown role %v", p.Role)
	}
}

func notFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
