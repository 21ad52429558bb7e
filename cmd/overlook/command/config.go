package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
)

type Config struct {
	StartRoom string           `json:"start_room"`
	Scripts   []string         `json:"scripts"`
	Listeners []ListenerConfig `json:"listeners"`
	Storage   StorageConfig    `json:"storage"`
	Nats      NatsConfig       `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}

	for i, s := range c.Scripts {
		if _, err := os.Stat(s); err != nil {
			el.Add(fmt.Errorf("script %d: %w", i, err))
		}
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		if err := l.Validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())

	return el.Err()
}
