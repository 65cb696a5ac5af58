/*
File   : replcore/metacommand.go
Package: replcore

Meta-command recognition for the REPL driver (spec §4.7): `:help`,
`:tokens [inline]`, `:ast [inline]`, `:env`, `:quit`, `:exit`, and the
guidance line for anything else. Parsing is pure and side-effect free;
the driver is what actually runs tokenize/parse/env lookups against the
recognized Kind.
*/
package replcore

import (
	"sort"
	"strings"

	"monkey/object"
)

// Kind identifies which meta-command was recognized.
type Kind int

const (
	Help Kind = iota
	Tokens
	AST
	Env
	Quit
	Exit
	Unknown
)

// Command is a parsed meta-command: its Kind, and an optional inline
// source snippet for :tokens/:ast.
type Command struct {
	Kind      Kind
	Inline    string
	HasInline bool
	Raw       string // the whole input line with surrounding whitespace trimmed, used for the Unknown guidance line
}

// ParseCommand recognizes line as a meta-command. ok is false when line
// does not start with ':' — meta-commands are only accepted when the
// REPL's accumulation buffer is empty, which the driver must check
// separately before calling this.
func ParseCommand(line string) (Command, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		return Command{}, false
	}

	fields := strings.SplitN(trimmed, " ", 2)
	name := fields[0]
	var inline string
	hasInline := false
	if len(fields) == 2 && strings.TrimSpace(fields[1]) != "" {
		inline = strings.TrimSpace(fields[1])
		hasInline = true
	}

	switch name {
	case ":help":
		return Command{Kind: Help, Raw: trimmed}, true
	case ":tokens":
		return Command{Kind: Tokens, Inline: inline, HasInline: hasInline, Raw: trimmed}, true
	case ":ast":
		return Command{Kind: AST, Inline: inline, HasInline: hasInline, Raw: trimmed}, true
	case ":env":
		return Command{Kind: Env, Raw: trimmed}, true
	case ":quit":
		return Command{Kind: Quit, Raw: trimmed}, true
	case ":exit":
		return Command{Kind: Exit, Raw: trimmed}, true
	default:
		return Command{Kind: Unknown, Raw: trimmed}, true
	}
}

// HelpText is the body of the :help response.
const HelpText = `Available commands:
  :help            show this message
  :tokens [src]    tokenize src, or the next complete input if omitted
  :ast [src]       parse and print the AST of src, or the next input
  :env             list bindings in the current scope
  :quit, :exit     leave the REPL`

// UnknownGuidance is the guidance line for an unrecognized meta-command.
func UnknownGuidance(raw string) string {
	return "Unknown command: " + raw + " (type :help for a list of commands)"
}

// FormatEnv renders the :env response: `ENV:` followed by sorted
// `name = inspect(value)` lines from the innermost scope, or `(empty)`.
func FormatEnv(env *object.Environment) string {
	names := env.Names()
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("ENV:\n")
	if len(names) == 0 {
		b.WriteString("(empty)\n")
		return b.String()
	}
	for _, name := range names {
		val, _ := env.Get(name)
		b.WriteString(name)
		b.WriteString(" = ")
		b.WriteString(val.Inspect())
		b.WriteString("\n")
	}
	return b.String()
}
