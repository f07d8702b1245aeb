package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/interstack/interstack"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Globals exposes the machine to Starlark.
// Stacks are lists of ints with the top last.
func Globals(vm *interstack.VM) starlark.StringDict {
	state := vm.State()
	tape := vm.Tape
	return starlark.StringDict{
		"value":    toStarlarkValue(state.Value),
		"stack":    toStarlarkValue(state.Stack),
		"loops":    toStarlarkValue(state.Loops),
		"position": toStarlarkValue(state.Position),
		"halted":   toStarlarkValue(state.Halted),
		"source":   toStarlarkValue(tape.String()),
		"length":   toStarlarkValue(len(tape)),
		"op": toStarlarkValue(func(pos int) string {
			if pos < 0 || pos >= len(tape) {
				return ""
			}
			return tape[pos].String()
		}),
	}
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint8:
		return starlark.MakeUint(uint(v))
	case uint64:
		return starlark.MakeUint64(v)

	case []byte:
		// machine bytes are numbers, not text
		elems := make([]starlark.Value, len(v))
		for i, b := range v {
			elems[i] = starlark.MakeInt(int(b))
		}
		return starlark.NewList(elems)

	case interstack.Instruction:
		return starlark.String(v.String())

	case interstack.Op:
		return starlark.String(v.String())

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
