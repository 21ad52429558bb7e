package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-overlook/internal/game"
)

// VerbFunc performs one verb for an actor.
type VerbFunc func(ctx context.Context, actor *game.Entity, cmd *Command) error

// Publisher delivers output to a single actor.
type Publisher interface {
	PublishToActor(actorId string, data []byte) error
}

// Handler dispatches parsed player input to registered verbs.
type Handler struct {
	verbs map[string]VerbFunc
	pub   Publisher
}

// NewHandler creates a Handler with the built-in verbs registered.
func NewHandler(pub Publisher) *Handler {
	h := &Handler{
		verbs: make(map[string]VerbFunc),
		pub:   pub,
	}

	// Built-in verbs cannot collide, so registration errors are impossible here.
	_ = h.Register(h.look, "look", "l")
	_ = h.Register(h.examine, "examine", "x", "inspect")
	_ = h.Register(h.take, "take", "get")
	_ = h.Register(h.inventory, "inventory", "i", "inv")

	return h
}

// Register adds fn under each of the given verbs.
func (h *Handler) Register(fn VerbFunc, verbs ...string) error {
	if fn == nil {
		return fmt.Errorf("verb func cannot be nil")
	}
	if len(verbs) == 0 {
		return fmt.Errorf("at least one verb is required")
	}
	for _, v := range verbs {
		if v == "" {
			return fmt.Errorf("verb cannot be empty")
		}
		if _, exists := h.verbs[v]; exists {
			return fmt.Errorf("verb %q already registered", v)
		}
	}
	for _, v := range verbs {
		h.verbs[v] = fn
	}
	return nil
}

// Perform parses line and runs the matching verb for actor. Player
// mistakes are returned as *UserError.
func (h *Handler) Perform(ctx context.Context, actor *game.Entity, line string) error {
	cmd := Parse(line)
	if cmd == nil {
		return nil
	}

	fn, ok := h.verbs[cmd.Verb]
	if !ok {
		return NewUserError(fmt.Sprintf("I don't know how to %q.", cmd.Verb))
	}

	return fn(ctx, actor, cmd)
}

func (h *Handler) tell(actor *game.Entity, msg string) error {
	if h.pub == nil {
		return nil
	}
	return h.pub.PublishToActor(actor.Id, []byte(msg))
}
