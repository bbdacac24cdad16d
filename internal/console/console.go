// Package console provides the interactive namespace bound to the viewer.
//
// The namespace is a Lua state restricted to the base, table, string and
// math libraries. Accessibility objects are exposed as userdata with
// read-only fields for their properties and relations.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mj1618/object-viewer/internal/model"
	lua "github.com/yuin/gopher-lua"
)

const objectTypeName = "AccessibleObject"

// Intro is shown when the console is first displayed.
const Intro = "Lua console (" + lua.PackageName + " " + lua.PackageVersion + ")\n" +
	"NOTE: The 'obj' variable refers to the object selected in the tree.\n" +
	"Also available: focus, nav, mouse, desktop."

// Console is a Lua namespace with accessibility objects injected into it.
// It is not safe for concurrent use.
type Console struct {
	state *lua.LState
	out   io.Writer
	mode  model.TraversalMode
}

// New creates a console writing print output and results to out.
func New(out io.Writer) (*Console, error) {
	if out == nil {
		out = io.Discard
	}
	c := &Console{state: lua.NewState(lua.Options{SkipOpenLibs: true}), out: out}
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := c.state.CallByParam(lua.P{
			Fn:      c.state.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			c.state.Close()
			return nil, fmt.Errorf("console: open %s: %w", lib.name, err)
		}
	}
	for _, name := range []string{"dofile", "loadfile", "require", "module"} {
		c.state.SetGlobal(name, lua.LNil)
	}
	c.state.SetGlobal("print", c.state.NewFunction(c.print))
	c.registerObjectType()
	return c, nil
}

// Close releases the Lua state.
func (c *Console) Close() {
	c.state.Close()
}

// SetOutput redirects print output and results.
func (c *Console) SetOutput(out io.Writer) {
	if out == nil {
		out = io.Discard
	}
	c.out = out
}

// SetMode selects the relation variant used by parent, firstChild and next.
func (c *Console) SetMode(mode model.TraversalMode) {
	c.mode = mode
}

// Set binds name in the namespace. Objects become userdata; strings, bools,
// numbers and string slices are converted to Lua values.
func (c *Console) Set(name string, v any) {
	c.state.SetGlobal(name, c.toLua(v))
}

// Get returns the string form of a namespace value, as tostring would.
func (c *Console) Get(name string) string {
	return c.state.ToStringMeta(c.state.GetGlobal(name)).String()
}

func (c *Console) toLua(v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case model.Object:
		return c.wrap(x)
	case string:
		return lua.LString(x)
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case []string:
		return c.stringTable(x)
	default:
		return lua.LString(fmt.Sprint(x))
	}
}

// Eval runs one line. An expression has its results written to the output;
// anything else runs as a statement.
func (c *Console) Eval(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	fn, err := c.state.LoadString("return " + line)
	if err != nil {
		if fn, err = c.state.LoadString(line); err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}

	base := c.state.GetTop()
	c.state.Push(fn)
	if err := c.state.PCall(0, lua.MultRet, nil); err != nil {
		c.state.SetTop(base)
		return fmt.Errorf("console: %w", err)
	}
	n := c.state.GetTop() - base
	if n == 0 {
		return nil
	}
	parts := make([]string, 0, n)
	for i := base + 1; i <= c.state.GetTop(); i++ {
		parts = append(parts, c.state.ToStringMeta(c.state.Get(i)).String())
	}
	c.state.SetTop(base)
	_, err = fmt.Fprintln(c.out, strings.Join(parts, "\t"))
	return err
}

func (c *Console) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(c.out, strings.Join(parts, "\t"))
	return 0
}

func (c *Console) stringTable(items []string) *lua.LTable {
	t := c.state.NewTable()
	for _, s := range items {
		t.Append(lua.LString(s))
	}
	return t
}
