// Package overlook declares background entities by name so authors don't
// have to write a description for every noun a room's text mentions.
// Examining one of them falls back to its kind's default response.
package overlook

import (
	"fmt"

	"github.com/pixil98/go-overlook/internal/game"
)

// Constructor builds an entity as a child of parent. Every game.Kind
// satisfies it.
type Constructor interface {
	Construct(name, synonyms string, parent *game.Entity) (*game.Entity, error)
}

// Overlook creates one entity of kind per declaration as children of
// parent and returns them in declaration order. A nil kind means
// game.Scenery.
//
// The batch is all-or-nothing: declarations are parsed before anything is
// built, and if any construction fails the entities already created by this
// call are destroyed before the error is returned.
func Overlook(parent *game.Entity, kind Constructor, decls ...any) ([]*game.Entity, error) {
	if parent == nil {
		return nil, fmt.Errorf("overlook: %w: parent is nil", game.ErrAttachment)
	}
	if parent.Destroyed() {
		return nil, fmt.Errorf("overlook: %w: parent %q: %w", game.ErrAttachment, parent.Name, game.ErrDestroyed)
	}
	if kind == nil {
		kind = game.Scenery
	}

	pairs, err := ParseAll(decls...)
	if err != nil {
		return nil, fmt.Errorf("overlook: %w", err)
	}

	created := make([]*game.Entity, 0, len(pairs))
	for _, p := range pairs {
		e, err := kind.Construct(p.Name, p.Synonyms, parent)
		if err == nil && e == nil {
			err = fmt.Errorf("%w: constructor returned no entity", game.ErrConstruction)
		}
		if err != nil {
			for _, c := range created {
				c.Destroy()
			}
			return nil, fmt.Errorf("overlook %q: %w", p.Name, err)
		}
		created = append(created, e)
	}

	return created, nil
}
