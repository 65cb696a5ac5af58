/*
File   : cmd/monkey/main.go
Package: main

CLI driver: argument dispatch, file loading, and exit-code mapping are
all explicitly out of the core's scope (spec §1) but still need a home.
Grounded on the teacher's main/main.go dispatch shape (run/help/version),
reworked onto cobra (spec_full.md ambient stack) instead of hand-rolled
os.Args parsing, and extended with the --tokens/--ast dump modes and
`bench` timing the teacher's CLI never had.
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"monkey"
	"monkey/builtins"
	"monkey/format"
	"monkey/object"
	"monkey/repl"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code instead of calling os.Exit directly
// so the dispatch logic itself stays a plain, inspectable function.
func run() int {
	var tokensPath string
	var astPath string

	root := &cobra.Command{
		Use:           "monkey",
		Short:         "Monkey language interpreter",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	exitCode := 0

	root.RunE = func(cmd *cobra.Command, args []string) error {
		switch {
		case tokensPath != "":
			exitCode = dumpTokens(tokensPath)
		case astPath != "":
			exitCode = dumpAST(astPath)
		case len(args) == 0:
			if err := repl.New().Start(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				exitCode = 1
			}
		default:
			exitCode = 2
			fmt.Fprintln(os.Stderr, "usage: monkey [run <path> | bench <path> | --tokens <path> | --ast <path>]")
		}
		return nil
	}
	root.Flags().StringVar(&tokensPath, "tokens", "", "dump tokens for the given source file")
	root.Flags().StringVar(&astPath, "ast", "", "dump the AST for the given source file")

	runCmd := &cobra.Command{
		Use:  "run <path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runFile(args[0], false)
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:  "bench <path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runFile(args[0], true)
			return nil
		},
	}

	root.AddCommand(runCmd, benchCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitCode
}

func readSource(path string) (string, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		return "", 1
	}
	return string(data), 0
}

func dumpTokens(path string) int {
	src, code := readSource(path)
	if code != 0 {
		return code
	}
	fmt.Print(format.Tokens(monkey.Tokenize(src)))
	return 0
}

func dumpAST(path string) int {
	src, code := readSource(path)
	if code != 0 {
		return code
	}
	program, errs := monkey.Parse(src)
	if len(errs) > 0 {
		fmt.Fprint(os.Stderr, format.ParseErrors(path, errs))
		return 1
	}
	fmt.Println(format.AST(program))
	return 0
}

func runFile(path string, bench bool) int {
	src, code := readSource(path)
	if code != 0 {
		return code
	}

	env := object.NewEnvironment()
	builtins.Output = os.Stdout

	start := time.Now()
	result := monkey.RunSource(src, env, path)
	elapsed := time.Since(start)

	switch {
	case len(result.ParseErrors) > 0:
		color.New(color.FgRed).Fprint(os.Stderr, format.ParseErrors(path, result.ParseErrors))
		return 1
	case result.RuntimeErr != nil:
		color.New(color.FgRed).Fprint(os.Stderr, format.RuntimeErrorBlock(path, result.RuntimeErr))
		return 1
	}

	if result.Value != nil {
		fmt.Println(result.Value.Inspect())
	}
	if bench {
		fmt.Fprintf(os.Stderr, "Execution time: %.2f ms\n", float64(elapsed.Microseconds())/1000.0)
	}
	return 0
}
