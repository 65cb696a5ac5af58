/*
File   : eval/eval_expressions.go
Package: eval

Identifier resolution, prefix/infix operators (including short-circuit
&&/||), If, Array/Hash construction, and Index. Grounded on the teacher's
eval/eval_expressions.go evaluateBinaryOp dispatch shape, trimmed to the
spec's Integer/Boolean/String-only operand set (no floats, no bitwise).
*/
package eval

import (
	"monkey/ast"
	"monkey/builtins"
	"monkey/object"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if b, ok := builtins.Lookup(node.Value); ok {
		return b
	}
	if node.Value == "null" {
		return object.NULL
	}
	return e.newError(object.UnknownIdentifier, node.Pos(), "identifier not found: "+node.Value)
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment) object.Object {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return object.NativeBool(!object.IsTruthy(right))
	case "-":
		switch r := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -r.Value}
		case *object.Null:
			return object.NULL
		default:
			return e.newError(object.TypeMismatch, node.Pos(), "unknown operator: -"+string(right.Type()))
		}
	default:
		return e.newError(object.TypeMismatch, node.Pos(), "unknown operator: "+node.Operator)
	}
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Object {
	// && and || short-circuit and always yield Boolean, never the
	// operand values themselves (spec §4.3).
	if node.Operator == "&&" {
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		if !object.IsTruthy(left) {
			return object.FALSE
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return object.NativeBool(object.IsTruthy(right))
	}
	if node.Operator == "||" {
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		if object.IsTruthy(left) {
			return object.TRUE
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return object.NativeBool(object.IsTruthy(right))
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return e.evalIntegerInfix(node, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return e.evalStringInfix(node, left.(*object.String), right.(*object.String))
	case left.Type() == object.BOOLEAN_OBJ && right.Type() == object.BOOLEAN_OBJ:
		return e.evalBooleanInfix(node, left.(*object.Boolean), right.(*object.Boolean))
	default:
		return e.newError(object.TypeMismatch, node.Pos(),
			"type mismatch: "+string(left.Type())+" "+node.Operator+" "+string(right.Type()))
	}
}

func (e *Evaluator) evalIntegerInfix(node *ast.InfixExpression, left, right *object.Integer) object.Object {
	switch node.Operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return e.newError(object.DivisionByZero, node.Pos(), "division by zero")
		}
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return e.newError(object.UnsupportedOperation, node.Pos(), "unknown operator: INTEGER "+node.Operator+" INTEGER")
	}
}

func (e *Evaluator) evalStringInfix(node *ast.InfixExpression, left, right *object.String) object.Object {
	switch node.Operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return e.newError(object.UnsupportedOperation, node.Pos(), "unknown operator: STRING "+node.Operator+" STRING")
	}
}

func (e *Evaluator) evalBooleanInfix(node *ast.InfixExpression, left, right *object.Boolean) object.Object {
	switch node.Operator {
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return e.newError(object.UnsupportedOperation, node.Pos(), "unknown operator: BOOLEAN "+node.Operator+" BOOLEAN")
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Object {
	cond := e.Eval(node.Condition, env)
	if isError(cond) {
		return cond
	}

	if object.IsTruthy(cond) {
		return e.evalBlockStatement(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.evalBlockStatement(node.Alternative, env)
	}
	return object.NULL
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, env *object.Environment) object.Object {
	elems := make([]object.Object, 0, len(node.Elements))
	for _, elemNode := range node.Elements {
		val := e.Eval(elemNode, env)
		if isError(val) {
			return val
		}
		elems = append(elems, val)
	}
	return &object.Array{Elements: elems}
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *object.Environment) object.Object {
	hash := object.NewHash()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isError(key) {
			return key
		}
		hashable, ok := key.(object.Hashable)
		if !ok {
			return e.newError(object.Unhashable, pair.Key.Pos(), "unusable as hash key: "+string(key.Type()))
		}

		value := e.Eval(pair.Value, env)
		if isError(value) {
			return value
		}

		hash.Set(key, hashable.HashKey(), value)
	}
	return hash
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}

	switch target := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return e.newError(object.InvalidIndex, node.Pos(), "array index must be INTEGER, got "+string(index.Type()))
		}
		if idx.Value < 0 || idx.Value >= int64(len(target.Elements)) {
			return object.NULL
		}
		return target.Elements[idx.Value]
	case *object.Hash:
		hashable, ok := index.(object.Hashable)
		if !ok {
			return e.newError(object.Unhashable, node.Pos(), "unusable as hash key: "+string(index.Type()))
		}
		pair, ok := target.Pairs[hashable.HashKey()]
		if !ok {
			return object.NULL
		}
		return pair.Value
	default:
		return e.newError(object.InvalidIndex, node.Pos(), "index operator not supported: "+string(left.Type()))
	}
}
