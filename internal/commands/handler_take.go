package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-overlook/internal/game"
)

func (h *Handler) take(_ context.Context, actor *game.Entity, cmd *Command) error {
	if cmd.Phrase == "" {
		return NewUserError(fmt.Sprintf("What do you want to %s?", cmd.Verb))
	}

	target, err := FindTarget(actor, cmd.Phrase)
	if err != nil {
		return err
	}

	if target.Parent() == actor {
		return NewUserError(fmt.Sprintf("You already have the %s.", target.Name))
	}

	if !target.Kind.Portable() {
		msg, err := target.Kind.Refuse(target)
		if err != nil {
			return fmt.Errorf("refusing %q: %w", target.Name, err)
		}
		return h.tell(actor, msg)
	}

	if err := actor.AddChild(target); err != nil {
		return fmt.Errorf("taking %q: %w", target.Name, err)
	}

	return h.tell(actor, fmt.Sprintf("You take the %s.", target.Name))
}

func (h *Handler) inventory(_ context.Context, actor *game.Entity, _ *Command) error {
	carried := actor.Children()
	if len(carried) == 0 {
		return h.tell(actor, "You aren't carrying anything.")
	}

	names := make([]string, len(carried))
	for i, c := range carried {
		names[i] = c.Name
	}
	return h.tell(actor, fmt.Sprintf("You are carrying: %s.", strings.Join(names, ", ")))
}
