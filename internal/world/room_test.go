package world

import (
	"slices"
	"testing"

	"github.com/pixil98/go-overlook/internal/game"
	"github.com/pixil98/go-overlook/internal/storage"
	"github.com/pixil98/go-testutil"
)

func storageId(s string) storage.Identifier {
	return storage.Identifier(s)
}

type mockRoomStore struct {
	rooms map[storage.Identifier]*RoomSpec
}

func (m *mockRoomStore) Get(id storage.Identifier) *RoomSpec {
	return m.rooms[id]
}

func (m *mockRoomStore) GetAll() map[storage.Identifier]*RoomSpec {
	return m.rooms
}

func (m *mockRoomStore) Ids() []storage.Identifier {
	var ids []storage.Identifier
	for id := range m.rooms {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func TestRoomSpec_Validate(t *testing.T) {
	tests := map[string]struct {
		spec    *RoomSpec
		expErrs []string
	}{
		"valid": {
			spec: &RoomSpec{
				Name:    "room",
				Scenery: []any{"ceiling", "walls//four"},
				Rubble:  []any{[]any{"debris", []any{"rocks", "stones"}}},
				Things:  []ThingSpec{{Name: "lamp"}, {Name: "table", Kind: "scenery", Scenery: []any{"cups"}}},
			},
		},
		"nil spec": {
			spec:    nil,
			expErrs: []string{"room spec is required"},
		},
		"missing name": {
			spec:    &RoomSpec{},
			expErrs: []string{"room name is required"},
		},
		"bad declarations": {
			spec:    &RoomSpec{Name: "room", Scenery: []any{1.0}, Rubble: []any{""}},
			expErrs: []string{"scenery: declaration 0", "rubble: declaration 0"},
		},
		"bad thing": {
			spec: &RoomSpec{
				Name:   "room",
				Things: []ThingSpec{{Kind: "dragon", Rubble: []any{true}}},
			},
			expErrs: []string{"thing 0: name is required", `unknown kind "dragon"`, "thing 0 rubble"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.spec.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			for _, e := range tt.expErrs {
				testutil.AssertErrorContains(t, err, e)
			}
		})
	}
}

func TestWorld_LoadRooms(t *testing.T) {
	store := &mockRoomStore{rooms: map[storage.Identifier]*RoomSpec{
		"dining-room": {
			Name:        "dining room",
			Description: "A room with four walls and a ceiling.",
			Scenery:     []any{"ceiling", "walls//four"},
			Things: []ThingSpec{
				{Name: "table", Kind: "scenery", Description: "A table with cups and white china plates.", Scenery: []any{"cups", []any{"plates", "white china"}}},
				{Name: "lamp", Synonyms: "brass"},
			},
		},
		"yard": {
			Name:   "yard",
			Rubble: []any{"debris"},
		},
	}}

	w := New()
	if err := w.LoadRooms(store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dining := w.Room("dining-room")
	if dining == nil {
		t.Fatal("dining room not registered")
	}
	testutil.AssertEqual(t, "description", dining.Description, "A room with four walls and a ceiling.")

	var names []string
	for _, e := range dining.Flatten() {
		names = append(names, e.Name+":"+e.Kind.Name())
	}
	testutil.AssertEqual(t, "dining entities", len(names), 6)
	exp := []string{"ceiling:scenery", "walls:scenery", "table:scenery", "cups:scenery", "plates:scenery", "lamp:thing"}
	for i := range exp {
		testutil.AssertEqual(t, "entity", names[i], exp[i])
	}

	yard := w.Room("yard")
	if yard == nil {
		t.Fatal("yard not registered")
	}
	testutil.AssertEqual(t, "yard rubble", yard.Children()[0].Kind, game.Kind(game.Rubble))
}

func TestWorld_LoadRooms_Error(t *testing.T) {
	store := &mockRoomStore{rooms: map[storage.Identifier]*RoomSpec{
		"yard": {Name: "yard", Things: []ThingSpec{{Name: "rock", Kind: "boulder"}}},
	}}

	err := New().LoadRooms(store)
	testutil.AssertErrorContains(t, err, `unknown kind "boulder"`)
}
