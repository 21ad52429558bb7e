package script

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-overlook/internal/game"
	lua "github.com/yuin/gopher-lua"
)

func (r *Runtime) wrap(e *game.Entity) *lua.LUserData {
	ud := r.L.NewUserData()
	ud.Value = e
	r.L.SetMetatable(ud, r.L.GetTypeMetatable(entityTypeName))
	return ud
}

func (r *Runtime) wrapAll(entities []*game.Entity) *lua.LTable {
	t := r.L.CreateTable(len(entities), 0)
	for _, e := range entities {
		t.Append(r.wrap(e))
	}
	return t
}

func toEntity(v lua.LValue) (*game.Entity, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, false
	}
	e, ok := ud.Value.(*game.Entity)
	return e, ok && e != nil
}

func checkEntity(L *lua.LState, n int) *game.Entity {
	e, ok := toEntity(L.Get(n))
	if !ok {
		L.ArgError(n, "entity expected")
		return nil
	}
	return e
}

// maxTableDepth bounds table nesting in declarations: a list of
// declarations, a {name, synonyms} pair, and a list of synonyms.
const maxTableDepth = 3

// toGo converts a Lua value to the Go value declarations are parsed from.
// Array tables become []any; anything without a Go counterpart, including
// tables nested deeper than maxTableDepth, is passed through so the
// declaration parser can reject it.
func toGo(v lua.LValue) any {
	return toGoDepth(v, maxTableDepth)
}

func toGoDepth(v lua.LValue, depth int) any {
	switch lv := v.(type) {
	case lua.LString:
		return string(lv)
	case lua.LNumber:
		return float64(lv)
	case lua.LBool:
		return bool(lv)
	case *lua.LNilType:
		return nil
	case *lua.LTable:
		if depth <= 0 {
			return v
		}
		n := lv.Len()
		out := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, toGoDepth(lv.RawGetInt(i), depth-1))
		}
		return out
	case *lua.LUserData:
		return lv.Value
	default:
		return v
	}
}

// getString reads an optional string field.
func getString(t *lua.LTable, key string) (string, error) {
	switch v := t.RawGetString(key).(type) {
	case *lua.LNilType:
		return "", nil
	case lua.LString:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s must be a string, got %s", key, v.Type())
	}
}

// getWords reads a field holding either a string or a list of strings,
// joining the list with single spaces.
func getWords(t *lua.LTable, key string) (string, error) {
	tbl, ok := t.RawGetString(key).(*lua.LTable)
	if !ok {
		return getString(t, key)
	}

	words := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return "", fmt.Errorf("%s must be strings, got %s", key, tbl.RawGetInt(i).Type())
		}
		words = append(words, string(s))
	}
	return strings.Join(words, " "), nil
}

// getList reads a list of declarations. A lone value is a list of one, so
// the declaration parser sees and rejects anything that isn't a declaration.
func getList(t *lua.LTable, key string) []any {
	switch v := t.RawGetString(key).(type) {
	case *lua.LNilType:
		return nil
	case *lua.LTable:
		l, _ := toGo(v).([]any)
		return l
	default:
		return []any{toGo(v)}
	}
}
