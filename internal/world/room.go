package world

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-overlook/internal/game"
	"github.com/pixil98/go-overlook/internal/overlook"
	"github.com/pixil98/go-overlook/internal/storage"
)

// RoomSpec is a room loaded from an asset file.
type RoomSpec struct {
	Name        string `json:"name"`
	Synonyms    string `json:"synonyms,omitempty"`
	Description string `json:"description"`

	// Scenery and Rubble take the same declarations as Overlook: a name,
	// "name // synonyms", or a [name, synonyms] pair.
	Scenery []any       `json:"scenery,omitempty"`
	Rubble  []any       `json:"rubble,omitempty"`
	Things  []ThingSpec `json:"things,omitempty"`
}

// ThingSpec is an entity placed in a room by its asset file.
type ThingSpec struct {
	Name        string `json:"name"`
	Synonyms    string `json:"synonyms,omitempty"`
	Description string `json:"description,omitempty"`
	// Kind defaults to "thing".
	Kind    string `json:"kind,omitempty"`
	Scenery []any  `json:"scenery,omitempty"`
	Rubble  []any  `json:"rubble,omitempty"`
}

func (t *ThingSpec) kind() (game.Kind, bool) {
	if t.Kind == "" {
		return game.Thing, true
	}
	return game.KindByName(t.Kind)
}

// Validate satisfies storage.ValidatingSpec.
func (r *RoomSpec) Validate() error {
	if r == nil {
		return fmt.Errorf("room spec is required")
	}

	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	el.Add(validateDecls("scenery", r.Scenery))
	el.Add(validateDecls("rubble", r.Rubble))

	for i, t := range r.Things {
		if t.Name == "" {
			el.Add(fmt.Errorf("thing %d: name is required", i))
		}
		if _, ok := t.kind(); !ok {
			el.Add(fmt.Errorf("thing %d: unknown kind %q", i, t.Kind))
		}
		el.Add(validateDecls(fmt.Sprintf("thing %d scenery", i), t.Scenery))
		el.Add(validateDecls(fmt.Sprintf("thing %d rubble", i), t.Rubble))
	}

	return el.Err()
}

func validateDecls(field string, decls []any) error {
	if _, err := overlook.ParseAll(decls...); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// LoadRooms builds every room in store, in id order, and registers each
// under its asset id.
func (w *World) LoadRooms(store storage.Storer[*RoomSpec]) error {
	for _, id := range store.Ids() {
		spec := store.Get(id)

		room, err := w.Make(game.Room, Params{
			Id:          id,
			Name:        spec.Name,
			Synonyms:    spec.Synonyms,
			Description: spec.Description,
			Scenery:     spec.Scenery,
			Rubble:      spec.Rubble,
		})
		if err != nil {
			return fmt.Errorf("room %s: %w", id, err)
		}

		for i, t := range spec.Things {
			kind, ok := t.kind()
			if !ok {
				return fmt.Errorf("room %s: thing %d: unknown kind %q", id, i, t.Kind)
			}
			_, err := w.Make(kind, Params{
				Name:        t.Name,
				Synonyms:    t.Synonyms,
				Description: t.Description,
				Parent:      room,
				Scenery:     t.Scenery,
				Rubble:      t.Rubble,
			})
			if err != nil {
				return fmt.Errorf("room %s: %w", id, err)
			}
		}

		slog.Info("room loaded", "room", id, "entities", len(room.Flatten()))
	}

	return nil
}
