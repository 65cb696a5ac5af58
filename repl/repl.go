/*
File   : repl/repl.go
Package: repl

The interactive line-reader driver: not part of the core contract (spec
§1 Non-goals list the REPL loop itself as an external collaborator), but
wired to the core's completeness predicate and meta-command table, which
are. Grounded on the teacher's repl/repl.go banner/color/readline shape
and on junhat6-go-monkey's persistent-environment-across-the-loop idea.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"monkey"
	"monkey/format"
	"monkey/object"
	"monkey/replcore"
)

const (
	banner     = `Monkey REPL`
	prompt     = ">> "
	contPrompt = ".. "
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
)

// Repl owns the session environment and the prompt chrome.
type Repl struct {
	env *object.Environment
}

// New constructs a Repl with a fresh root environment.
func New() *Repl {
	return &Repl{env: object.NewEnvironment()}
}

// Start runs the read-eval-print loop against in/out until the user
// quits or the input stream closes.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	infoColor.Fprintln(out, banner)
	infoColor.Fprintln(out, "Type :help for the list of commands.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var buf strings.Builder
	var pendingTokens, pendingAST bool

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}

		if buf.Len() == 0 {
			if cmd, ok := replcore.ParseCommand(line); ok {
				if cmd.Kind == replcore.Quit || cmd.Kind == replcore.Exit {
					fmt.Fprintln(out, "bye")
					return nil
				}
				r.runCommand(cmd, out, &pendingTokens, &pendingAST)
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if !replcore.IsComplete(buf.String()) {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(prompt)

		src := buf.String()
		buf.Reset()

		switch {
		case pendingTokens:
			pendingTokens = false
			fmt.Fprint(out, format.Tokens(monkey.Tokenize(src)))
		case pendingAST:
			pendingAST = false
			r.printAST(src, out)
		default:
			r.evalAndPrint(src, out)
		}
	}
}

func (r *Repl) printAST(src string, out io.Writer) {
	program, errs := monkey.Parse(src)
	if len(errs) > 0 {
		errColor.Fprint(out, format.ParseErrors("<repl>", errs))
		return
	}
	fmt.Fprintln(out, format.AST(program))
}

func (r *Repl) evalAndPrint(src string, out io.Writer) {
	result := monkey.RunSource(src, r.env, "<repl>")
	switch {
	case len(result.ParseErrors) > 0:
		errColor.Fprint(out, format.ParseErrors("<repl>", result.ParseErrors))
	case result.RuntimeErr != nil:
		errColor.Fprintln(out, format.RuntimeErrorMultiline(result.RuntimeErr))
	default:
		okColor.Fprintln(out, result.Value.Inspect())
	}
}

func (r *Repl) runCommand(cmd replcore.Command, out io.Writer, pendingTokens, pendingAST *bool) {
	switch cmd.Kind {
	case replcore.Help:
		fmt.Fprintln(out, replcore.HelpText)
	case replcore.Tokens:
		if cmd.HasInline {
			fmt.Fprint(out, format.Tokens(monkey.Tokenize(cmd.Inline)))
		} else {
			*pendingTokens = true
		}
	case replcore.AST:
		if cmd.HasInline {
			r.printAST(cmd.Inline, out)
		} else {
			*pendingAST = true
		}
	case replcore.Env:
		fmt.Fprint(out, replcore.FormatEnv(r.env))
	case replcore.Unknown:
		fmt.Fprintln(out, replcore.UnknownGuidance(cmd.Raw))
	}
}
