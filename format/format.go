/*
File   : format/format.go
Package: format

Deterministic, byte-stable renderings for tokens, parse errors, and
runtime errors — the contracts downstream parity tests compare against
(spec §1, §6, §9). AST rendering itself lives on ast.Node.String(); this
package only wraps it for the --ast driver contract.
*/
package format

import (
	"fmt"
	"strings"

	"monkey/ast"
	"monkey/object"
	"monkey/token"
)

// Tokens renders one line per token as `TYPE('literal') @ line:col`,
// always including the trailing EOF line (spec §4.1).
func Tokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.String())
		b.WriteString("\n")
	}
	return b.String()
}

// AST renders the canonical stringification of a parsed program
// (spec §4.2).
func AST(program *ast.Program) string {
	return program.String()
}

// ParseErrors renders the `Parse errors in <path>:` block.
func ParseErrors(path string, errs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parse errors in %s:\n", path)
	for _, e := range errs {
		fmt.Fprintf(&b, "- %s\n", e)
	}
	return b.String()
}

// RuntimeErrorSingleLine renders `Error[TYPE] at line:col: message`.
func RuntimeErrorSingleLine(err *object.RuntimeError) string {
	return fmt.Sprintf("Error[%s] at %s: %s", err.Kind, err.Position, err.Message)
}

// RuntimeErrorMultiline renders the single line, a `Stack trace:`
// header, then one `    at <name>(<argcount> args) @ line:col` line per
// frame, innermost to outermost.
func RuntimeErrorMultiline(err *object.RuntimeError) string {
	var b strings.Builder
	b.WriteString(RuntimeErrorSingleLine(err))
	b.WriteString("\n")
	b.WriteString("Stack trace:\n")
	for _, frame := range err.Frames {
		fmt.Fprintf(&b, "    at %s(%d args) @ %s\n", frame.FunctionName, frame.ArgCount, frame.CallSite)
	}
	return b.String()
}

// RuntimeErrorBlock renders the `Runtime error in <path>:` prefix
// followed by the multiline runtime error block (spec §6).
func RuntimeErrorBlock(path string, err *object.RuntimeError) string {
	return fmt.Sprintf("Runtime error in %s:\n%s", path, RuntimeErrorMultiline(err))
}
