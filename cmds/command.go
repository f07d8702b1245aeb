package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Params      []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Param names the arguments shown in usage; unnamed ones show their type.
func (c *Command) Param(names ...string) *Command {
	c.Params = append(c.Params, names...)
	return c
}

func (c *Command) signature() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	var b strings.Builder
	for i := range t.NumIn() {
		in := t.In(i)
		name := in.String()
		if in.Kind() == reflect.Pointer {
			name = in.Elem().String()
		}
		if i < len(c.Params) {
			name = c.Params[i]
		}
		if in.Kind() == reflect.Pointer {
			fmt.Fprintf(&b, " [%s]", name)
		} else {
			fmt.Fprintf(&b, " <%s>", name)
		}
	}
	return b.String()
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	if err := checkSignature(fnValue.Type()); err != nil {
		panic(err)
	}
	return &Command{
		Func: fnValue,
	}
}

func checkSignature(t reflect.Type) error {
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return fmt.Errorf("must return error, got %v", t.Out(0))
		}
	default:
		return fmt.Errorf("must return 0 or 1 value")
	}
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			in = in.Elem()
		}
		if !argKinds[in.Kind()] {
			return fmt.Errorf("unsupported argument type: %v", t.In(i))
		}
	}
	return nil
}

var argKinds = map[reflect.Kind]bool{
	reflect.Bool:    true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.String:  true,
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
