package listener

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// SessionRunner drives one player's connection until it ends.
type SessionRunner interface {
	RunSession(ctx context.Context, rw io.ReadWriter) error
}

// ConnectionManager hands accepted connections to the session runner and
// keeps count of the open ones.
type ConnectionManager struct {
	runner SessionRunner
	open   atomic.Int64
}

func NewConnectionManager(runner SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: runner,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	n := m.open.Add(1)
	defer m.open.Add(-1)

	slog.InfoContext(ctx, "connection accepted", "open", n)

	if err := m.runner.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}

// Open returns the number of connections currently in a session.
func (m *ConnectionManager) Open() int {
	return int(m.open.Load())
}
