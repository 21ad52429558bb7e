package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-overlook/internal/display"
	"github.com/pixil98/go-overlook/internal/game"
)

func (h *Handler) look(ctx context.Context, actor *game.Entity, cmd *Command) error {
	if cmd.Phrase == "" {
		return h.showRoom(actor)
	}
	return h.examine(ctx, actor, cmd)
}

func (h *Handler) examine(_ context.Context, actor *game.Entity, cmd *Command) error {
	if cmd.Phrase == "" {
		return NewUserError(fmt.Sprintf("What do you want to %s?", cmd.Verb))
	}

	target, err := FindTarget(actor, cmd.Phrase)
	if err != nil {
		return err
	}

	// The target's kind answers; overlooked scenery relies on this for its
	// "nothing special" text.
	msg, err := target.Kind.Describe(target)
	if err != nil {
		return fmt.Errorf("describing %q: %w", target.Name, err)
	}

	return h.tell(actor, msg)
}

func (h *Handler) showRoom(actor *game.Entity) error {
	room := actor.Parent()
	if room == nil {
		return NewUserError("You are nowhere.")
	}

	desc, err := room.Kind.Describe(room)
	if err != nil {
		return fmt.Errorf("describing room %q: %w", room.Name, err)
	}

	lines := []string{display.Title(room.Name), desc}

	var seen []string
	for _, e := range room.Children() {
		if e == actor {
			continue
		}
		if e.Kind.Portable() || e.Kind == game.Character {
			seen = append(seen, e.Name)
		}
	}
	if len(seen) > 0 {
		lines = append(lines, fmt.Sprintf("You see: %s.", strings.Join(seen, ", ")))
	}

	return h.tell(actor, strings.Join(lines, "\n"))
}
