// Package script lets world authors build rooms and declare scenery from Lua.
//
//	local hall = make("room", {id = "hall", name = "hall", description = "A long hall."})
//	hall:overlook("ceiling", "walls//four", {"plates", {"white", "china"}})
//	hall:overlook("crumbs//bread", {kind = "rubble"})
package script

import (
	"fmt"

	"github.com/pixil98/go-overlook/internal/world"
	lua "github.com/yuin/gopher-lua"
)

// Runtime is a Lua state bound to a world. It is not safe for concurrent use.
type Runtime struct {
	L     *lua.LState
	world *world.World
}

func NewRuntime(w *world.World) *Runtime {
	r := &Runtime{
		L:     lua.NewState(),
		world: w,
	}
	r.register()
	return r
}

func (r *Runtime) Close() { r.L.Close() }

// LoadFile runs the script at path.
func (r *Runtime) LoadFile(path string) error {
	if err := r.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// LoadString runs src as a script.
func (r *Runtime) LoadString(src string) error {
	if err := r.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// LoadFiles runs each script in order against w.
func LoadFiles(w *world.World, paths ...string) error {
	r := NewRuntime(w)
	defer r.Close()

	for _, p := range paths {
		if err := r.LoadFile(p); err != nil {
			return err
		}
	}
	return nil
}
