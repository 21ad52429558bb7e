package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestEntity_Match(t *testing.T) {
	tests := map[string]struct {
		name       string
		synonyms   string
		phrase     string
		expMatched bool
		expExact   bool
	}{
		"primary name": {
			name:       "walls",
			synonyms:   "four",
			phrase:     "walls",
			expMatched: true,
			expExact:   true,
		},
		"synonym": {
			name:       "walls",
			synonyms:   "four",
			phrase:     "four",
			expMatched: true,
		},
		"name and synonym together": {
			name:       "walls",
			synonyms:   "four",
			phrase:     "four walls",
			expMatched: true,
		},
		"article ignored": {
			name:       "ceiling",
			phrase:     "the ceiling",
			expMatched: true,
			expExact:   true,
		},
		"case insensitive": {
			name:       "Ceiling",
			phrase:     "CEILING",
			expMatched: true,
			expExact:   true,
		},
		"multi-word synonym": {
			name:       "plates",
			synonyms:   "white china",
			phrase:     "china",
			expMatched: true,
		},
		"unknown word": {
			name:   "walls",
			phrase: "floor",
		},
		"partial phrase with unknown word": {
			name:   "walls",
			phrase: "red walls",
		},
		"only articles": {
			name:   "walls",
			phrase: "the",
		},
		"empty phrase": {
			name:   "walls",
			phrase: "   ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntity(Scenery, tt.name, tt.synonyms)
			matched, exact := e.Match(tt.phrase)
			testutil.AssertEqual(t, "matched", matched, tt.expMatched)
			testutil.AssertEqual(t, "exact", exact, tt.expExact)
		})
	}
}

func TestEntity_AddChild(t *testing.T) {
	tests := map[string]struct {
		setup  func() (*Entity, *Entity)
		expErr error
	}{
		"attach to live parent": {
			setup: func() (*Entity, *Entity) {
				return NewEntity(Room, "room", ""), NewEntity(Thing, "lamp", "")
			},
		},
		"nil child": {
			setup: func() (*Entity, *Entity) {
				return NewEntity(Room, "room", ""), nil
			},
			expErr: ErrAttachment,
		},
		"destroyed parent": {
			setup: func() (*Entity, *Entity) {
				p := NewEntity(Room, "room", "")
				p.Destroy()
				return p, NewEntity(Thing, "lamp", "")
			},
			expErr: ErrDestroyed,
		},
		"destroyed child": {
			setup: func() (*Entity, *Entity) {
				c := NewEntity(Thing, "lamp", "")
				c.Destroy()
				return NewEntity(Room, "room", ""), c
			},
			expErr: ErrDestroyed,
		},
		"cycle": {
			setup: func() (*Entity, *Entity) {
				p := NewEntity(Room, "room", "")
				c := NewEntity(Thing, "box", "")
				_ = p.AddChild(c)
				return c, p
			},
			expErr: ErrAttachment,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, child := tt.setup()
			err := parent.AddChild(child)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("expected error %v, got %v", tt.expErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "parent", child.Parent(), parent)
			testutil.AssertEqual(t, "children", len(parent.Children()), 1)
		})
	}
}

func TestEntity_AddChild_Reparents(t *testing.T) {
	a := NewEntity(Room, "kitchen", "")
	b := NewEntity(Room, "hall", "")
	lamp := NewEntity(Thing, "lamp", "")

	if err := a.AddChild(lamp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.AddChild(lamp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "old parent children", len(a.Children()), 0)
	testutil.AssertEqual(t, "new parent children", len(b.Children()), 1)
	testutil.AssertEqual(t, "parent", lamp.Parent(), b)
}

func TestEntity_Destroy(t *testing.T) {
	room := NewEntity(Room, "room", "")
	table := NewEntity(Thing, "table", "")
	cup := NewEntity(Thing, "cup", "")
	_ = room.AddChild(table)
	_ = table.AddChild(cup)

	table.Destroy()

	testutil.AssertEqual(t, "room children", len(room.Children()), 0)
	testutil.AssertEqual(t, "table destroyed", table.Destroyed(), true)
	testutil.AssertEqual(t, "cup destroyed", cup.Destroyed(), true)
	if table.Parent() != nil {
		t.Errorf("destroyed entity still has a parent")
	}
}

func TestEntity_Flatten(t *testing.T) {
	room := NewEntity(Room, "room", "")
	table := NewEntity(Thing, "table", "")
	cup := NewEntity(Thing, "cup", "")
	chair := NewEntity(Thing, "chair", "")
	_ = room.AddChild(table)
	_ = table.AddChild(cup)
	_ = room.AddChild(chair)

	var names []string
	for _, e := range room.Flatten() {
		names = append(names, e.Name)
	}
	testutil.AssertEqual(t, "names", strings.Join(names, ","), "table,cup,chair")
}

func TestConstruct(t *testing.T) {
	tests := map[string]struct {
		name     string
		parent   func() *Entity
		expErr   error
		expChild bool
	}{
		"valid": {
			name:     "ceiling",
			parent:   func() *Entity { return NewEntity(Room, "room", "") },
			expChild: true,
		},
		"nil parent": {
			name:   "ceiling",
			parent: func() *Entity { return nil },
			expErr: ErrAttachment,
		},
		"empty name": {
			name:   " ",
			parent: func() *Entity { return NewEntity(Room, "room", "") },
			expErr: ErrConstruction,
		},
		"destroyed parent": {
			name: "ceiling",
			parent: func() *Entity {
				p := NewEntity(Room, "room", "")
				p.Destroy()
				return p
			},
			expErr: ErrAttachment,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := tt.parent()
			e, err := Construct(Scenery, tt.name, "", parent)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("expected error %v, got %v", tt.expErr, err)
				}
				if parent != nil {
					testutil.AssertEqual(t, "children", len(parent.Children()), 0)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "parent", e.Parent(), parent)
			testutil.AssertEqual(t, "kind", e.Kind, Kind(Scenery))
		})
	}
}

func TestAddressable(t *testing.T) {
	tests := map[string]struct {
		name string
		exp  bool
	}{
		"plain":           {name: "walls", exp: true},
		"leading article": {name: "the walls", exp: true},
		"article only":    {name: "the", exp: false},
		"articles only":   {name: "Some A", exp: false},
		"blank":           {name: "  ", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "addressable", Addressable(tt.name), tt.exp)
		})
	}
}
