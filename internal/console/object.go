package console

import (
	"github.com/mj1618/object-viewer/internal/model"
	lua "github.com/yuin/gopher-lua"
)

func (c *Console) registerObjectType() {
	mt := c.state.NewTypeMetatable(objectTypeName)
	c.state.SetField(mt, "__index", c.state.NewFunction(c.objectIndex))
	c.state.SetField(mt, "__tostring", c.state.NewFunction(objectToString))
	c.state.SetField(mt, "__eq", c.state.NewFunction(objectEqual))
}

func (c *Console) wrap(obj model.Object) lua.LValue {
	if obj == nil {
		return lua.LNil
	}
	ud := c.state.NewUserData()
	ud.Value = obj
	c.state.SetMetatable(ud, c.state.GetTypeMetatable(objectTypeName))
	return ud
}

func checkObject(L *lua.LState, n int) model.Object {
	ud := L.CheckUserData(n)
	obj, ok := ud.Value.(model.Object)
	if !ok {
		L.ArgError(n, "accessible object expected")
		return nil
	}
	return obj
}

func (c *Console) objectIndex(L *lua.LState) int {
	obj := checkObject(L, 1)
	key := L.CheckString(2)

	var v lua.LValue = lua.LNil
	switch key {
	case "id":
		v = lua.LString(obj.ID())
	case "role":
		v = lua.LString(obj.Role())
	case "name":
		v = lua.LString(obj.Name())
	case "display":
		v = lua.LString(model.DisplayText(obj))
	case "devInfo":
		v = c.stringTable(obj.DevInfo())
	case "app":
		if app := obj.App(); app != nil {
			t := L.NewTable()
			t.RawSetString("name", lua.LString(app.Name))
			t.RawSetString("pid", lua.LNumber(app.PID))
			t.RawSetString("path", lua.LString(app.Path))
			v = t
		}
	case "parent":
		v = c.wrap(obj.Parent(c.mode))
	case "firstChild":
		v = c.wrap(obj.FirstChild(c.mode))
	case "next":
		v = c.wrap(obj.Next(c.mode))
	case "children":
		t := L.NewTable()
		for _, child := range obj.Children() {
			t.Append(c.wrap(child))
		}
		v = t
	}
	L.Push(v)
	return 1
}

func objectToString(L *lua.LState) int {
	L.Push(lua.LString(model.DisplayText(checkObject(L, 1))))
	return 1
}

func objectEqual(L *lua.LState) int {
	L.Push(lua.LBool(model.SameObject(checkObject(L, 1), checkObject(L, 2))))
	return 1
}
