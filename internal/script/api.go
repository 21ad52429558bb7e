package script

import (
	"github.com/pixil98/go-overlook/internal/game"
	"github.com/pixil98/go-overlook/internal/storage"
	"github.com/pixil98/go-overlook/internal/world"
	lua "github.com/yuin/gopher-lua"
)

const entityTypeName = "entity"

func (r *Runtime) register() {
	mt := r.L.NewTypeMetatable(entityTypeName)
	r.L.SetField(mt, "__index", r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"overlook":    r.apiOverlook,
		"name":        entityName,
		"synonyms":    entitySynonyms,
		"description": entityDescription,
		"kind":        entityKind,
		"children":    r.entityChildren,
	}))
	r.L.SetField(mt, "__tostring", r.L.NewFunction(entityName))

	r.L.SetGlobal("make", r.L.NewFunction(r.apiMake))
	r.L.SetGlobal("room", r.L.NewFunction(r.apiRoom))
	r.L.SetGlobal("overlook", r.L.NewFunction(r.apiOverlook))
}

// make(kind, params) builds an entity. params may set id, name, synonyms,
// description, parent, scenery and rubble.
func (r *Runtime) apiMake(L *lua.LState) int {
	kindName := L.CheckString(1)
	params := L.OptTable(2, L.NewTable())

	kind, ok := game.KindByName(kindName)
	if !ok {
		L.ArgError(1, "unknown kind "+kindName)
		return 0
	}

	id, err := getString(params, "id")
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	name, err := getString(params, "name")
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	synonyms, err := getWords(params, "synonyms")
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	description, err := getString(params, "description")
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}

	p := world.Params{
		Id:          storage.Identifier(id),
		Name:        name,
		Synonyms:    synonyms,
		Description: description,
		Scenery:     getList(params, "scenery"),
		Rubble:      getList(params, "rubble"),
	}
	if v := params.RawGetString("parent"); v != lua.LNil {
		parent, ok := toEntity(v)
		if !ok {
			L.ArgError(2, "parent must be an entity")
			return 0
		}
		p.Parent = parent
	}

	e, err := r.world.Make(kind, p)
	if err != nil {
		L.RaiseError("make: %s", err.Error())
		return 0
	}

	L.Push(r.wrap(e))
	return 1
}

// room(id) returns the room registered under id, or nil.
func (r *Runtime) apiRoom(L *lua.LState) int {
	e := r.world.Room(storage.Identifier(L.CheckString(1)))
	if e == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(r.wrap(e))
	return 1
}

// overlook(entity, decl...[, {kind = "rubble"}]) declares scenery on entity
// and returns a list of the new entities. It is also the entity:overlook method.
func (r *Runtime) apiOverlook(L *lua.LState) int {
	parent := checkEntity(L, 1)

	last := L.GetTop()
	var kind game.Kind
	if opts, ok := L.Get(last).(*lua.LTable); ok && last > 1 && opts.RawGetString("kind") != lua.LNil {
		name := lua.LVAsString(opts.RawGetString("kind"))
		k, ok := game.KindByName(name)
		if !ok {
			L.ArgError(last, "unknown kind "+name)
			return 0
		}
		kind = k
		last--
	}

	decls := make([]any, 0, last-1)
	for i := 2; i <= last; i++ {
		decls = append(decls, toGo(L.Get(i)))
	}

	created, err := r.world.Overlook(parent, kind, decls...)
	if err != nil {
		L.RaiseError("overlook: %s", err.Error())
		return 0
	}

	L.Push(r.wrapAll(created))
	return 1
}

func entityName(L *lua.LState) int {
	L.Push(lua.LString(checkEntity(L, 1).Name))
	return 1
}

func entitySynonyms(L *lua.LState) int {
	L.Push(lua.LString(checkEntity(L, 1).Synonyms))
	return 1
}

func entityDescription(L *lua.LState) int {
	L.Push(lua.LString(checkEntity(L, 1).Description))
	return 1
}

func entityKind(L *lua.LState) int {
	L.Push(lua.LString(checkEntity(L, 1).Kind.Name()))
	return 1
}

func (r *Runtime) entityChildren(L *lua.LState) int {
	L.Push(r.wrapAll(checkEntity(L, 1).Children()))
	return 1
}
