package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-overlook/internal/game"
)

// FindTarget searches the actor's surroundings for the entity named by
// phrase. Everything in the actor's room is in scope, including what the
// actor carries, except the actor itself and what other characters carry.
//
// A match on an entity's full primary name beats matches on synonyms. If
// more than one entity remains, the player is asked to be more specific.
func FindTarget(actor *game.Entity, phrase string) (*game.Entity, error) {
	room := actor.Parent()
	if room == nil {
		return nil, NewUserError("You are nowhere.")
	}

	var exact, partial []*game.Entity
	for _, e := range room.Flatten() {
		if e == actor || heldByOther(e, actor, room) {
			continue
		}
		matched, isExact := e.Match(phrase)
		if !matched {
			continue
		}
		if isExact {
			exact = append(exact, e)
		} else {
			partial = append(partial, e)
		}
	}

	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return nil, ambiguous(exact)
	case len(partial) == 1:
		return partial[0], nil
	case len(partial) > 1:
		return nil, ambiguous(partial)
	}

	return nil, NewUserError(fmt.Sprintf("You don't see any %q here.", phrase))
}

// heldByOther reports whether e is carried by a character other than actor.
func heldByOther(e, actor, room *game.Entity) bool {
	for p := e.Parent(); p != nil && p != room; p = p.Parent() {
		if p != actor && p.Kind == game.Character {
			return true
		}
	}
	return false
}

func ambiguous(matches []*game.Entity) *UserError {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = "the " + m.Name
	}
	return NewUserError(fmt.Sprintf("Which do you mean: %s?", joinOr(names)))
}

func joinOr(items []string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
