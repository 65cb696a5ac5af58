/*
File   : eval/eval_statements.go
Package: eval

Program and Block evaluation, Let, and Return. Grounded on the teacher's
eval/eval_statements.go short-circuit propagation pattern (stop at the
first error or control wrapper), adapted to this dialect's simpler
single-kind Let binding and to unwrap Return only at the two boundaries
the spec names: function call, and program top level.
*/
package eval

import (
	"monkey/ast"
	"monkey/object"
)

func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch r := result.(type) {
		case *object.RuntimeError:
			return r
		case *object.ReturnValue:
			return r.Value
		}
	}
	return result
}

// evalBlockStatement evaluates statements in order without creating a
// new scope (the teacher's evalBlockStatement never does either): it
// propagates the first error or control wrapper unexamined, so Return
// stays wrapped until a call boundary or program top level unwraps it.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			switch result.(type) {
			case *object.RuntimeError, *object.ReturnValue:
				return result
			}
			if result == object.BREAK || result == object.CONTINUE {
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalLetStatement(stmt *ast.LetStatement, env *object.Environment) object.Object {
	val := e.Eval(stmt.Value, env)
	if isError(val) {
		return val
	}
	env.Set(stmt.Name.Value, val)
	return object.NULL
}

func (e *Evaluator) evalReturnStatement(stmt *ast.ReturnStatement, env *object.Environment) object.Object {
	if stmt.ReturnValue == nil {
		return &object.ReturnValue{Value: object.NULL}
	}
	val := e.Eval(stmt.ReturnValue, env)
	if isError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}
