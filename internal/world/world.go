package world

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/pixil98/go-overlook/internal/game"
	"github.com/pixil98/go-overlook/internal/overlook"
	"github.com/pixil98/go-overlook/internal/storage"
)

// Params are the construction options accepted by World.Make.
type Params struct {
	// Id registers the new entity as a room that actors can be introduced into.
	Id          storage.Identifier
	Name        string
	Synonyms    string
	Description string
	// Parent defaults to the world root.
	Parent *game.Entity

	// Scenery is equivalent to calling Overlook with game.Scenery on the new
	// entity right after it is constructed.
	Scenery []any
	// Rubble is equivalent to calling Overlook with game.Rubble on the new
	// entity right after it is constructed.
	Rubble []any
}

// World owns the entity tree for one running game.
type World struct {
	mu     sync.Mutex
	root   *game.Entity
	rooms  map[storage.Identifier]*game.Entity
	actors map[string]*game.Entity
}

// New creates an empty world.
func New() *World {
	return &World{
		root:   game.NewEntity(game.Room, "world", ""),
		rooms:  make(map[storage.Identifier]*game.Entity),
		actors: make(map[string]*game.Entity),
	}
}

// Root returns the entity every top-level entity is attached to.
func (w *World) Root() *game.Entity {
	return w.root
}

// Make constructs an entity of kind and applies p. If any part of p fails
// to apply, the new entity is destroyed and nothing is left attached.
func (w *World) Make(kind game.Kind, p Params) (*game.Entity, error) {
	if kind == nil {
		return nil, fmt.Errorf("making %q: %w: kind is nil", p.Name, game.ErrConstruction)
	}

	parent := p.Parent
	if parent == nil {
		parent = w.root
	}

	e, err := kind.Construct(p.Name, p.Synonyms, parent)
	if err != nil {
		return nil, fmt.Errorf("making %s %q: %w", kind.Name(), p.Name, err)
	}
	e.Description = p.Description

	if err := w.apply(e, p); err != nil {
		e.Destroy()
		return nil, fmt.Errorf("making %s %q: %w", kind.Name(), p.Name, err)
	}

	return e, nil
}

func (w *World) apply(e *game.Entity, p Params) error {
	if len(p.Scenery) > 0 {
		if _, err := w.Overlook(e, game.Scenery, p.Scenery...); err != nil {
			return fmt.Errorf("scenery: %w", err)
		}
	}
	if len(p.Rubble) > 0 {
		if _, err := w.Overlook(e, game.Rubble, p.Rubble...); err != nil {
			return fmt.Errorf("rubble: %w", err)
		}
	}
	if p.Id != "" {
		if err := w.AddRoom(p.Id, e); err != nil {
			return err
		}
	}
	return nil
}

// Overlook declares background entities on e. A nil kind means game.Scenery.
func (w *World) Overlook(e *game.Entity, kind game.Kind, decls ...any) ([]*game.Entity, error) {
	var c overlook.Constructor
	if kind != nil {
		c = kind
	}
	return overlook.Overlook(e, c, decls...)
}

// AddRoom registers e under id.
func (w *World) AddRoom(id storage.Identifier, e *game.Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.rooms[id]; ok {
		return fmt.Errorf("%w: %s", ErrRoomExists, id)
	}
	w.rooms[id] = e
	return nil
}

// Room returns the room registered under id, or nil.
func (w *World) Room(id storage.Identifier) *game.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.rooms[id]
}

// RoomIds returns every registered room id in sorted order.
func (w *World) RoomIds() []storage.Identifier {
	w.mu.Lock()
	defer w.mu.Unlock()

	ids := make([]storage.Identifier, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Introduce creates an actor named name in the room registered under roomId.
func (w *World) Introduce(name string, roomId storage.Identifier) (*game.Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	room, ok := w.rooms[roomId]
	if !ok {
		return nil, fmt.Errorf("introducing %q: %w: %s", name, ErrRoomNotFound, roomId)
	}

	actor, err := game.Character.Construct(name, "", room)
	if err != nil {
		return nil, fmt.Errorf("introducing %q: %w", name, err)
	}
	w.actors[actor.Id] = actor

	slog.Info("actor introduced", "actor", actor.Id, "name", name, "room", roomId)

	return actor, nil
}

// Remove destroys actor and everything it carries.
func (w *World) Remove(actor *game.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.actors, actor.Id)
	actor.Destroy()
}

// ActorCount returns the number of introduced actors still in the world.
func (w *World) ActorCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.actors)
}

// Turn runs fn while holding the world lock, so only one command mutates
// the tree at a time.
func (w *World) Turn(fn func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return fn()
}
