/*
File   : monkey.go
Package: monkey

Driver glue (spec §2 component 11): the four entry points a CLI or REPL
collaborator calls into the core through — Tokenize, Parse, Eval, and
RunSource. Grounded on CWBudde-go-dws's pkg/dwscript facade shape
(engine.Eval(src) returning a result/error pair) adapted to this
dialect's two-channel error model.
*/
package monkey

import (
	"monkey/ast"
	"monkey/eval"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
	"monkey/token"
)

// Tokenize lexes src to completion and returns every token, including
// the trailing EOF (spec §8: "the last token is always EOF").
func Tokenize(src string) []token.Token {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

// Parse lexes and parses src, returning the (possibly partial) program
// and the accumulated parse-error strings. Callers MUST check
// len(errs) == 0 before evaluating the program (spec §4.2).
func Parse(src string) (*ast.Program, []string) {
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	return program, p.Errors()
}

// Eval walks program against env, returning either a user-visible
// object.Object or an *object.RuntimeError.
func Eval(program *ast.Program, env *object.Environment) object.Object {
	return eval.New().Eval(program, env)
}

// Result is the outcome of RunSource: either a successful Value, a set
// of ParseErrors, or a RuntimeErr — never more than one populated.
type Result struct {
	Value       object.Object
	ParseErrors []string
	RuntimeErr  *object.RuntimeError
}

// RunSource tokenizes, parses, and (if parsing succeeded) evaluates src
// against env. path is carried only for the caller's own error-message
// prefixing; RunSource itself does no I/O.
func RunSource(src string, env *object.Environment, path string) Result {
	program, errs := Parse(src)
	if len(errs) > 0 {
		return Result{ParseErrors: errs}
	}

	result := Eval(program, env)
	if re, ok := result.(*object.RuntimeError); ok {
		return Result{RuntimeErr: re}
	}
	return Result{Value: result}
}
