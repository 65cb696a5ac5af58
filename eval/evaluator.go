/*
File   : eval/evaluator.go
Package: eval

Tree-walking evaluator: walks an *ast.Program against an *object.Environment,
producing an object.Object (either a user-visible Value or a
*object.RuntimeError carrying the position and call-stack frames at
failure time). Grounded on the teacher's eval/evaluator.go Evaluator
struct and its mutable-state pattern, generalized to hold an explicit
call stack instead of reading the lexer's live cursor for positions.
*/
package eval

import (
	"monkey/ast"
	"monkey/builtins"
	"monkey/object"
	"monkey/token"
)

// Evaluator carries the one piece of state that outlives a single Eval
// call: the call stack used to build RuntimeError.Frames. Everything
// else threads through as an explicit *object.Environment argument.
type Evaluator struct {
	stack      []object.Frame
	whileDepth int // lexical while-nesting depth; reset to 0 across a function call boundary
}

// New constructs an Evaluator with the synthetic root frame already
// pushed (spec §3: "the outermost frame is always the synthetic root
// <repl>(0 args) @ 1:1").
func New() *Evaluator {
	return &Evaluator{stack: []object.Frame{object.RootFrame()}}
}

func (e *Evaluator) pushFrame(name string, argCount int, callSite token.Position) {
	e.stack = append(e.stack, object.Frame{FunctionName: name, ArgCount: argCount, CallSite: callSite})
}

func (e *Evaluator) popFrame() {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *Evaluator) newError(kind object.ErrorKind, pos token.Position, message string) *object.RuntimeError {
	return object.NewError(kind, pos, e.stack, message)
}

func isError(obj object.Object) bool {
	_, ok := obj.(*object.RuntimeError)
	return ok
}

// Eval is the main dispatcher: one type switch over every AST node kind
// the spec names (spec §4.3).
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	switch n := node.(type) {
	case *ast.Program:
		return e.evalProgram(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(n, env)
	case *ast.LetStatement:
		return e.evalLetStatement(n, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *ast.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *ast.BreakStatement:
		if e.whileDepth == 0 {
			return e.newError(object.InvalidControlFlow, n.Pos(), "break used outside of any while loop")
		}
		return object.BREAK
	case *ast.ContinueStatement:
		if e.whileDepth == 0 {
			return e.newError(object.InvalidControlFlow, n.Pos(), "continue used outside of any while loop")
		}
		return object.CONTINUE

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *ast.IfExpression:
		return e.evalIfExpression(n, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: n.Parameters, Body: n.Body, Env: env, Name: n.Name}
	case *ast.CallExpression:
		return e.evalCallExpression(n, env)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *ast.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env)
	}
	return object.NULL
}

// Lookup resolves a bare builtin by name, exposed so the :env and
// completeness/meta-command collaborators can introspect without
// importing the builtins package directly.
func Lookup(name string) (*object.Builtin, bool) { return builtins.Lookup(name) }
