package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// articles are ignored when matching player input against keywords.
var articles = map[string]bool{
	"a":    true,
	"an":   true,
	"the":  true,
	"some": true,
}

// Entity is an addressable node in the game's ownership tree. Rooms,
// scenery, things and actors are all entities distinguished by their Kind.
//
// Entities are not safe for concurrent use; callers serialize access
// through the world's turn lock.
type Entity struct {
	Id          string
	Name        string
	Synonyms    string
	Description string
	Kind        Kind

	parent    *Entity
	children  []*Entity
	destroyed bool
}

// NewEntity creates a detached entity with a fresh id.
func NewEntity(kind Kind, name, synonyms string) *Entity {
	return &Entity{
		Id:       uuid.NewString(),
		Name:     name,
		Synonyms: synonyms,
		Kind:     kind,
	}
}

// Validate checks the fields every kind requires.
func (e *Entity) Validate() error {
	el := errors.NewErrorList()

	if strings.TrimSpace(e.Name) == "" {
		el.Add(fmt.Errorf("entity name is required"))
	}
	if e.Kind == nil {
		el.Add(fmt.Errorf("entity kind is required"))
	}

	return el.Err()
}

// Parent returns the entity that owns e, or nil if e is detached.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns a copy of e's children in insertion order.
func (e *Entity) Children() []*Entity {
	return slices.Clone(e.children)
}

// Destroyed reports whether Destroy has been called on e.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// AddChild attaches child to e, detaching it from any previous parent.
func (e *Entity) AddChild(child *Entity) error {
	if child == nil {
		return fmt.Errorf("%w: child is nil", ErrAttachment)
	}
	if e.destroyed {
		return fmt.Errorf("%w: parent %q: %w", ErrAttachment, e.Name, ErrDestroyed)
	}
	if child.destroyed {
		return fmt.Errorf("%w: child %q: %w", ErrAttachment, child.Name, ErrDestroyed)
	}
	for p := e; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("%w: %q cannot contain itself", ErrAttachment, child.Name)
		}
	}

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	e.children = append(e.children, child)
	child.parent = e

	return nil
}

// RemoveChild detaches child from e. It is a no-op if child is not a child of e.
func (e *Entity) RemoveChild(child *Entity) {
	i := slices.Index(e.children, child)
	if i < 0 {
		return
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
}

// Destroy detaches e from its parent and destroys its subtree.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	for _, c := range e.Children() {
		c.Destroy()
	}
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
	e.destroyed = true
}

// Flatten returns every descendant of e, depth first, not including e.
func (e *Entity) Flatten() []*Entity {
	var out []*Entity
	for _, c := range e.children {
		out = append(out, c)
		out = append(out, c.Flatten()...)
	}
	return out
}

// Keywords returns the lower-cased words of the entity's name and synonyms.
func (e *Entity) Keywords() []string {
	words := strings.Fields(strings.ToLower(e.Name + " " + e.Synonyms))
	slices.Sort(words)
	return slices.Compact(words)
}

// Match reports whether every meaningful word of phrase is one of e's
// keywords. exact is true when the phrase names e by its full primary name.
func (e *Entity) Match(phrase string) (matched bool, exact bool) {
	words := phraseWords(phrase)
	if len(words) == 0 {
		return false, false
	}

	keywords := e.Keywords()
	for _, w := range words {
		if _, found := slices.BinarySearch(keywords, w); !found {
			return false, false
		}
	}

	name := strings.Join(phraseWords(e.Name), " ")
	return true, strings.Join(words, " ") == name
}

// Addressable reports whether name has at least one word a player can type
// to refer to it. Names made only of articles are not addressable.
func Addressable(name string) bool {
	return len(phraseWords(name)) > 0
}

func phraseWords(phrase string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if articles[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Construct builds an entity of kind and attaches it to parent. It is the
// shared construction contract used by every built-in kind.
func Construct(kind Kind, name, synonyms string, parent *Entity) (*Entity, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: parent is nil", ErrAttachment)
	}

	e := NewEntity(kind, name, synonyms)
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	if err := parent.AddChild(e); err != nil {
		return nil, err
	}

	return e, nil
}
