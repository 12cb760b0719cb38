// Package seed loads demo accounts, folders and notes.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"notenext/accounts"
	"notenext/app"
	"notenext/models"
)

//go:embed demo.yaml
var demoYAML []byte

type Fixture struct {
	Password  string          `yaml:"password"`
	Parents   []ParentSpec    `yaml:"parents"`
	Unclaimed []UnclaimedSpec `yaml:"unclaimed"`
	Children  []ChildSpec     `yaml:"children"`
}

type ParentSpec struct {
	Username string   `yaml:"username"`
	Email    string   `yaml:"email"`
	Children []string `yaml:"children"`
}

type UnclaimedSpec struct {
	Username string `yaml:"username"`
}

type ChildSpec struct {
	Username string     `yaml:"username"`
	Folders  []string   `yaml:"folders"`
	Notes    []NoteSpec `yaml:"notes"`
}

type NoteSpec struct {
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Tags      string `yaml:"tags"`
	Todo      bool   `yaml:"todo"`
	Completed bool   `yaml:"completed"`
	Folder    string `yaml:"folder"`
}

// Summary counts what Load created.
type Summary struct {
	Parents, Children, Folders, Notes int
}

// Demo returns the bundled fixture.
func Demo() (Fixture, error) {
	return Parse(demoYAML)
}

func Parse(data []byte) (Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if fx.Password == "" {
		return Fixture{}, fmt.Errorf("fixture has no password")
	}
	return fx, nil
}

// Load wipes the store and recreates the fixture through the same services
// the API uses, so the seeded data obeys every signup and ownership rule.
func Load(ctx context.Context, a *app.App, fx Fixture) (Summary, error) {
	var sum Summary
	if err := a.Store.Reset(ctx); err != nil {
		return sum, err
	}

	children := map[string]models.User{}
	for _, p := range fx.Parents {
		parent, err := a.Accounts.Register(ctx, accounts.Registration{
			Username: p.Username,
			Email:    p.Email,
			Password: fx.Password,
			Role:     models.RoleParent,
		}, nil)
		if err != nil {
			return sum, fmt.Errorf("parent %s: %w", p.Username, err)
		}
		sum.Parents++
		for _, name := range p.Children {
			child, err := a.Accounts.Register(ctx, accounts.Registration{
				Username: name,
				Password: fx.Password,
				Role:     models.RoleChild,
			}, &parent)
			if err != nil {
				return sum, fmt.Errorf("child %s: %w", name, err)
			}
			children[name] = child
			sum.Children++
		}
	}

	// There is no API path to an unclaimed child, so these go straight to the
	// store.
	for _, u := range fx.Unclaimed {
		hash, err := a.Hasher.Hash(fx.Password)
		if err != nil {
			return sum, err
		}
		child, err := a.Store.CreateUser(ctx, models.User{Username: u.Username, PasswordHash: hash, Role: models.RoleChild})
		if err != nil {
			return sum, fmt.Errorf("unclaimed child %s: %w", u.Username, err)
		}
		children[u.Username] = child
		sum.Children++
	}

	for _, c := range fx.Children {
		owner, ok := children[c.Username]
		if !ok {
			return sum, fmt.Errorf("fixture child %s is not declared under a parent", c.Username)
		}
		folders := map[string]int64{}
		for _, name := range c.Folders {
			f, err := a.Access.CreateFolder(ctx, owner, name)
			if err != nil {
				return sum, fmt.Errorf("folder %s/%s: %w", c.Username, name, err)
			}
			folders[name] = f.ID
			sum.Folders++
		}
		for _, n := range c.Notes {
			draft := models.NoteDraft{Title: n.Title, Content: n.Content, Tags: n.Tags, IsTodo: n.Todo}
			if n.Folder != "" {
				id, ok := folders[n.Folder]
				if !ok {
					return sum, fmt.Errorf("note %q: unknown folder %q", n.Title, n.Folder)
				}
				draft.FolderID = &id
			}
			note, err := a.Access.CreateNote(ctx, owner, draft)
			if err != nil {
				return sum, fmt.Errorf("note %q: %w", n.Title, err)
			}
			if n.Completed {
				done := true
				if _, err := a.Access.UpdateNote(ctx, owner, note.ID, models.NotePatch{IsCompleted: &done}); err != nil {
					return sum, fmt.Errorf("complete note %q: %w", n.Title, err)
				}
			}
			sum.Notes++
		}
	}

	log.Printf("Seeded %d parents, %d children, %d folders, %d notes", sum.Parents, sum.Children, sum.Folders, sum.Notes)
	return sum, nil
}
