package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-overlook/internal/commands"
	"github.com/pixil98/go-overlook/internal/listener"
	"github.com/pixil98/go-overlook/internal/messaging"
	"github.com/pixil98/go-overlook/internal/script"
	"github.com/pixil98/go-overlook/internal/session"
	"github.com/pixil98/go-overlook/internal/storage"
	"github.com/pixil98/go-overlook/internal/world"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	w, err := cfg.BuildWorld()
	if err != nil {
		return nil, err
	}

	server, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	bus := messaging.NewActorBus(server)

	sessions := session.NewManager(w, commands.NewHandler(bus), bus, storage.Identifier(cfg.StartRoom))
	cm := listener.NewConnectionManager(sessions)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lw, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lw
	}

	return service.WorkerList{
		"nats":      server,
		"listeners": &listeners,
	}, nil
}

// BuildWorld loads room assets, then runs scripts in order, and checks the
// start room exists.
func (c *Config) BuildWorld() (*world.World, error) {
	w := world.New()

	if err := c.Storage.LoadWorld(w); err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}

	if err := script.LoadFiles(w, c.Scripts...); err != nil {
		return nil, fmt.Errorf("loading scripts: %w", err)
	}

	if w.Room(storage.Identifier(c.StartRoom)) == nil {
		return nil, fmt.Errorf("start room %q not found", c.StartRoom)
	}

	slog.Info("world built", "rooms", len(w.RoomIds()))

	return w, nil
}
