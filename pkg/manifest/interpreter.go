package manifest

import (
	"bytes"
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

// Reporter receives messages printed by the manifest.  It is implemented by
// (*testing.T).Logf.
type Reporter func(format string, args ...any)

type interpreter struct {
	// Global state
	globals starlark.StringDict
	// Thread context
	thread *starlark.Thread
	// builtins visible to the manifest
	predeclared starlark.StringDict
}

func newInterpreter(reporter Reporter, predeclared starlark.StringDict) *interpreter {
	return &interpreter{
		predeclared: predeclared,
		thread: &starlark.Thread{
			Name: "manifest",
			Print: func(_ *starlark.Thread, msg string) {
				reporter("%s", msg)
			},
		},
	}
}

func (i *interpreter) exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	globals, err := starlark.ExecFile(i.thread, filename, bytes.NewReader(data), i.predeclared)
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return fmt.Errorf("%s", evalErr.Backtrace())
		}
		return err
	}
	i.globals = globals
	return nil
}

func (i *interpreter) global(name string) (starlark.Value, bool) {
	value, ok := i.globals[name]
	return value, ok
}

// stringList converts a starlark list of strings, flattening nested lists.
func stringList(name string, value starlark.Value) ([]string, error) {
	list, ok := value.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("%s must be a list (got %s)", name, value.Type())
	}
	var values []string
	for i := 0; i < list.Len(); i++ {
		switch elem := list.Index(i).(type) {
		case starlark.String:
			values = append(values, elem.GoString())
		case *starlark.List:
			nested, err := stringList(name, elem)
			if err != nil {
				return nil, err
			}
			values = append(values, nested...)
		default:
			return nil, fmt.Errorf("%s[%d] must be a string (got %s)", name, i, elem.Type())
		}
	}
	return values, nil
}
