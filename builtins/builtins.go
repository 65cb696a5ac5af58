/*
File   : builtins/builtins.go
Package: builtins

The six native functions resolved only after the environment chain
(spec §4.4). Grounded on the teacher's objects/builtins.go registration
table shape (name -> handler map), trimmed to exactly this closed set —
none of the teacher's math/io/json/http/etc. std library survives here,
since nothing in this dialect's spec names them.
*/
package builtins

import (
	"fmt"
	"io"
	"os"

	"monkey/object"
	"monkey/token"
)

// Output is where puts writes, matching the teacher's io.Writer-based
// builtin output convention (objects/builtins.go) so the REPL/CLI driver
// can redirect it and tests can capture it without touching os.Stdout.
var Output io.Writer = os.Stdout

// errArgType/errArgCount build the two builtin-specific runtime error
// kinds without needing the evaluator's live call stack: a builtin
// invocation is itself the current frame, so the caller (eval) supplies
// position and frames when wrapping these.
func errArgType(format string, args ...interface{}) *object.RuntimeError {
	return object.NewError(object.InvalidArgumentType, token.Position{}, nil, fmt.Sprintf(format, args...))
}

func errArgCount(format string, args ...interface{}) *object.RuntimeError {
	return object.NewError(object.WrongArgumentCount, token.Position{}, nil, fmt.Sprintf(format, args...))
}

// Table is the name -> *object.Builtin registry, looked up by the
// evaluator after a bare identifier misses the environment chain.
var Table = map[string]*object.Builtin{
	"len": {
		Name: "len",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return errArgCount("wrong number of arguments to len: got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			case *object.Array:
				return &object.Integer{Value: int64(len(arg.Elements))}
			default:
				return errArgType("argument to len not supported, got %s", arg.Type())
			}
		},
	},
	"first": {
		Name: "first",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return errArgCount("wrong number of arguments to first: got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return errArgType("argument to first must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return object.NULL
			}
			return arr.Elements[0]
		},
	},
	"last": {
		Name: "last",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return errArgCount("wrong number of arguments to last: got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return errArgType("argument to last must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return object.NULL
			}
			return arr.Elements[len(arr.Elements)-1]
		},
	},
	"rest": {
		Name: "rest",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return errArgCount("wrong number of arguments to rest: got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return errArgType("argument to rest must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return object.NULL
			}
			rest := make([]object.Object, len(arr.Elements)-1)
			copy(rest, arr.Elements[1:])
			return &object.Array{Elements: rest}
		},
	},
	"push": {
		Name: "push",
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return errArgCount("wrong number of arguments to push: got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return errArgType("argument to push must be ARRAY, got %s", args[0].Type())
			}
			newElems := make([]object.Object, len(arr.Elements)+1)
			copy(newElems, arr.Elements)
			newElems[len(arr.Elements)] = args[1]
			return &object.Array{Elements: newElems}
		},
	},
	"puts": {
		Name: "puts",
		Fn: func(args ...object.Object) object.Object {
			for _, arg := range args {
				fmt.Fprintln(Output, arg.Inspect())
			}
			return object.NULL
		},
	},
}

// Lookup resolves name in the builtin table, returning (nil, false) when
// it is not one of the six names.
func Lookup(name string) (*object.Builtin, bool) {
	b, ok := Table[name]
	return b, ok
}
