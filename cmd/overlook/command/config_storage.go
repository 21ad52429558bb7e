package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-overlook/internal/storage"
	"github.com/pixil98/go-overlook/internal/world"
)

type StorageConfig struct {
	Rooms AssetConfig[*world.RoomSpec] `json:"rooms"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	return el.Err()
}

// LoadWorld builds the rooms described by the configured assets into w.
func (c *StorageConfig) LoadWorld(w *world.World) error {
	if !c.Rooms.Configured() {
		return nil
	}

	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return fmt.Errorf("creating room store: %w", err)
	}

	return w.LoadRooms(rooms)
}

// AssetConfig points at a directory of JSON assets. An empty path means the
// assets are not used.
type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Configured() bool {
	return c.Path != ""
}

func (c *AssetConfig[T]) Validate(name string) error {
	if !c.Configured() {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}
	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
