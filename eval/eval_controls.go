/*
File   : eval/eval_controls.go
Package: eval

While-loop evaluation and function/builtin calls, including call-stack
frame push/pop. Grounded on the teacher's eval/eval_loops.go two-level
scoping idea and eval/eval_controls.go arity-check-then-invoke shape,
trimmed to this dialect's single while-loop construct and six builtins.
*/
package eval

import (
	"strconv"

	"monkey/ast"
	"monkey/object"
	"monkey/token"
)

// evalWhileStatement loops while the condition is truthy. break/continue
// are consumed here; any other propagated control wrapper (error,
// return) stops the loop immediately. The statement's own result is
// always Null, on both normal exit and break (spec §4.3).
func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *object.Environment) object.Object {
	e.whileDepth++
	defer func() { e.whileDepth-- }()

	for {
		cond := e.Eval(node.Condition, env)
		if isError(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			return object.NULL
		}

		result := e.Eval(node.Body, env)
		switch {
		case result == object.BREAK:
			return object.NULL
		case result == object.CONTINUE:
			continue
		}
		if result != nil {
			switch result.(type) {
			case *object.RuntimeError, *object.ReturnValue:
				return result
			}
		}
	}
}

// evalCallExpression evaluates the callee and arguments left-to-right,
// aborting on the first error, then dispatches to a user function or a
// builtin.
func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Object {
	callee := e.Eval(node.Function, env)
	if isError(callee) {
		return callee
	}

	args := make([]object.Object, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		val := e.Eval(argNode, env)
		if isError(val) {
			return val
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args, node.Pos())
	case *object.Builtin:
		result := fn.Fn(args...)
		if re, ok := result.(*object.RuntimeError); ok {
			return e.newError(re.Kind, node.Pos(), re.Message)
		}
		return result
	default:
		return e.newError(object.NotCallable, node.Pos(), "not a function: "+string(callee.Type()))
	}
}

// callFunction binds args positionally into a child of the function's
// captured environment, pushes a call-stack frame, evaluates the body,
// and unwraps a ReturnValue result back to its plain value. A function
// call is a lexical boundary for break/continue as much as for return:
// whileDepth resets to 0 for the duration of the call so a stray break
// inside the body (with no while of its own) is reported there, not
// misattributed to a while loop the call happens to be lexically inside.
func (e *Evaluator) callFunction(fn *object.Function, args []object.Object, callSite token.Position) object.Object {
	if len(args) != len(fn.Parameters) {
		return e.newError(object.WrongArgumentCount, callSite,
			"wrong number of arguments: expected "+strconv.Itoa(len(fn.Parameters))+", got "+strconv.Itoa(len(args)))
	}

	name := fn.Name
	if name == "" {
		name = "<anonymous>"
	}
	e.pushFrame(name, len(args), callSite)
	defer e.popFrame()

	savedDepth := e.whileDepth
	e.whileDepth = 0
	defer func() { e.whileDepth = savedDepth }()

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Value, args[i])
	}

	result := e.evalBlockStatement(fn.Body, callEnv)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	if result == object.BREAK || result == object.CONTINUE {
		return e.newError(object.InvalidControlFlow, callSite, "break/continue used outside of any while loop")
	}
	return result
}
