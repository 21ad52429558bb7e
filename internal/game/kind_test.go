package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTemplateKind_Describe(t *testing.T) {
	tests := map[string]struct {
		kind        Kind
		name        string
		synonyms    string
		description string
		exp         string
	}{
		"scenery default": {
			kind: Scenery,
			name: "walls",
			exp:  "There's nothing special about the walls.",
		},
		"scenery uses primary name": {
			kind:     Scenery,
			name:     "plates",
			synonyms: "white china",
			exp:      "There's nothing special about the plates.",
		},
		"rubble default": {
			kind: Rubble,
			name: "debris",
			exp:  "There's nothing useful about the debris.",
		},
		"author description wins": {
			kind:        Scenery,
			name:        "table",
			description: "A table with cups and white china plates.",
			exp:         "A table with cups and white china plates.",
		},
		"room default": {
			kind: Room,
			name: "cellar",
			exp:  "You are in the cellar.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEntity(tt.kind, tt.name, tt.synonyms)
			e.Description = tt.description

			got, err := tt.kind.Describe(e)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "response", got, tt.exp)
		})
	}
}

func TestTemplateKind_Refuse(t *testing.T) {
	tests := map[string]struct {
		kind Kind
		exp  string
	}{
		"scenery": {kind: Scenery, exp: "You can't take the walls."},
		"rubble":  {kind: Rubble, exp: "You don't have any use for the walls."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.kind.Refuse(NewEntity(tt.kind, "walls", ""))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "response", got, tt.exp)
		})
	}
}

func TestTemplateKind_BadTemplate(t *testing.T) {
	k := &TemplateKind{KindName: "broken", DescribeTmpl: "{{ .Name "}

	_, err := k.Describe(NewEntity(k, "thing", ""))
	testutil.AssertErrorContains(t, err, "parsing template")
}

func TestKindByName(t *testing.T) {
	tests := map[string]struct {
		name  string
		exp   Kind
		expOk bool
	}{
		"scenery": {name: "scenery", exp: Scenery, expOk: true},
		"rubble":  {name: "Rubble", exp: Rubble, expOk: true},
		"padded":  {name: " thing ", exp: Thing, expOk: true},
		"unknown": {name: "dragon"},
		"empty":   {name: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			k, ok := KindByName(tt.name)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			if tt.expOk {
				testutil.AssertEqual(t, "kind", k, tt.exp)
			}
		})
	}
}
