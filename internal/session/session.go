package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pixil98/go-overlook/internal/commands"
	"github.com/pixil98/go-overlook/internal/display"
	"github.com/pixil98/go-overlook/internal/game"
	"github.com/pixil98/go-overlook/internal/storage"
	"github.com/pixil98/go-overlook/internal/world"
)

const (
	maxNameLength = 20
	maxNameTries  = 3
)

// Performer runs one line of player input for an actor.
type Performer interface {
	Perform(ctx context.Context, actor *game.Entity, line string) error
}

// Subscriber delivers messages addressed to an actor.
type Subscriber interface {
	SubscribeActor(actorId string, handler func(data []byte)) (func(), error)
}

// Manager runs player sessions against a world.
type Manager struct {
	world     *world.World
	performer Performer
	sub       Subscriber
	startRoom storage.Identifier
	width     int
}

func NewManager(w *world.World, p Performer, sub Subscriber, startRoom storage.Identifier) *Manager {
	return &Manager{
		world:     w,
		performer: p,
		sub:       sub,
		startRoom: startRoom,
		width:     display.DefaultWidth,
	}
}

// RunSession drives a single connection: it asks for a name, places a new
// actor in the start room and performs each line the player sends until
// they quit or the connection closes. The actor is removed on return.
func (m *Manager) RunSession(ctx context.Context, rw io.ReadWriter) error {
	br := bufio.NewReader(rw)
	out := &lockedWriter{w: rw}

	name, err := prompt(br, out, "By what name are you known? ",
		withValidator(validName),
		withMaxTries(maxNameTries),
	)
	if err != nil {
		return fmt.Errorf("reading name: %w", err)
	}

	actor, err := m.world.Introduce(display.Capitalize(strings.ToLower(name)), m.startRoom)
	if err != nil {
		return fmt.Errorf("introducing actor: %w", err)
	}
	defer m.world.Remove(actor)

	unsub, err := m.sub.SubscribeActor(actor.Id, func(data []byte) {
		m.write(out, string(data))
	})
	if err != nil {
		return fmt.Errorf("subscribing actor %s: %w", actor.Id, err)
	}
	defer unsub()

	slog.InfoContext(ctx, "session started", "actor", actor.Id, "name", actor.Name)
	defer slog.InfoContext(ctx, "session ended", "actor", actor.Id)

	m.write(out, fmt.Sprintf("Welcome, %s.", actor.Name))
	m.perform(ctx, out, actor, "look")

	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := io.WriteString(out, "> "); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.EqualFold(line, "quit") {
			m.write(out, "Goodbye.")
			return nil
		}

		m.perform(ctx, out, actor, line)
	}
}

func (m *Manager) perform(ctx context.Context, out io.Writer, actor *game.Entity, line string) {
	err := m.world.Turn(func() error {
		return m.performer.Perform(ctx, actor, line)
	})
	if err == nil {
		return
	}

	var ue *commands.UserError
	if errors.As(err, &ue) {
		m.write(out, ue.Message)
		return
	}

	slog.ErrorContext(ctx, "performing command", "actor", actor.Id, "line", line, "error", err)
	m.write(out, "Something went wrong.")
}

func (m *Manager) write(out io.Writer, msg string) {
	if _, err := io.WriteString(out, display.Wrap(msg, m.width)+"\n"); err != nil {
		slog.Warn("writing to session", "error", err)
	}
}

// lockedWriter serializes writes from the session loop and from message
// subscriptions.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
