package game

import (
	"fmt"
	"strings"
)

// Kind is the capability set shared by all entities of one class. It owns
// construction and the default responses players see when they address an
// entity that has no author-written text.
type Kind interface {
	Name() string
	// Portable reports whether entities of this kind can be picked up.
	Portable() bool
	// Construct builds an entity of this kind as a child of parent.
	Construct(name, synonyms string, parent *Entity) (*Entity, error)
	// Describe returns the response to examining e.
	Describe(e *Entity) (string, error)
	// Refuse returns the response to trying to take a non-portable e.
	Refuse(e *Entity) (string, error)
}

// TemplateKind is a Kind whose responses are text templates expanded
// against the entity's TemplateData.
type TemplateKind struct {
	KindName string
	// DescribeTmpl is used when the entity has no Description of its own.
	DescribeTmpl string
	RefuseTmpl   string
	IsPortable   bool
}

var _ Kind = &TemplateKind{}

func (k *TemplateKind) Name() string {
	return k.KindName
}

func (k *TemplateKind) Portable() bool {
	return k.IsPortable
}

func (k *TemplateKind) Construct(name, synonyms string, parent *Entity) (*Entity, error) {
	return Construct(k, name, synonyms, parent)
}

func (k *TemplateKind) Describe(e *Entity) (string, error) {
	if e.Description != "" {
		return e.Description, nil
	}
	return k.expand(k.DescribeTmpl, e)
}

func (k *TemplateKind) Refuse(e *Entity) (string, error) {
	return k.expand(k.RefuseTmpl, e)
}

func (k *TemplateKind) expand(tmpl string, e *Entity) (string, error) {
	out, err := ExpandTemplate(tmpl, TemplateDataFrom(e))
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", k.KindName, e.Name, err)
	}
	return out, nil
}

var (
	// Scenery is passive background detail.
	Scenery = &TemplateKind{
		KindName:     "scenery",
		DescribeTmpl: "There's nothing special about the {{ .Name }}.",
		RefuseTmpl:   "You can't take the {{ .Name }}.",
	}

	// Rubble is scenery that looks like it could be carried but isn't worth it.
	Rubble = &TemplateKind{
		KindName:     "rubble",
		DescribeTmpl: "There's nothing useful about the {{ .Name }}.",
		RefuseTmpl:   "You don't have any use for the {{ .Name }}.",
	}

	// Thing is an ordinary portable object.
	Thing = &TemplateKind{
		KindName:     "thing",
		DescribeTmpl: "There's nothing special about the {{ .Name }}.",
		RefuseTmpl:   "You can't take the {{ .Name }}.",
		IsPortable:   true,
	}

	// Room is a location that holds other entities.
	Room = &TemplateKind{
		KindName:     "room",
		DescribeTmpl: "You are in the {{ .Name }}.",
		RefuseTmpl:   "You can't take the {{ .Name }}.",
	}

	// Character is an actor controlled by a player.
	Character = &TemplateKind{
		KindName:     "character",
		DescribeTmpl: "{{ .Name }} looks like an ordinary adventurer.",
		RefuseTmpl:   "{{ .Name }} would object to that.",
	}
)

var kinds = map[string]Kind{
	Scenery.Name():   Scenery,
	Rubble.Name():    Rubble,
	Thing.Name():     Thing,
	Room.Name():      Room,
	Character.Name(): Character,
}

// KindByName looks up a built-in kind, ignoring case.
func KindByName(name string) (Kind, bool) {
	k, ok := kinds[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
