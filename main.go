package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"go.creack.net/stackc/compiler"
	"go.creack.net/stackc/lexer"
	"go.creack.net/stackc/parser"
)

func main() {
	compileCmd := &cli.Command{
		Name:        "compile",
		Description: "compile expressions and print the instructions",
		Action:      compileAct,
		Args:        cli.Args{},
	}

	traceCmd := &cli.Command{
		Name:        "trace",
		Description: "compile expressions, logging every stage",
		Action:      traceAct,
		Args:        cli.Args{},
	}

	fileCmd := &cli.Command{
		Name:        "file",
		Description: "compile the expression stored in each file",
		Action:      fileAct,
		Args:        cli.Args{},
	}

	tokensCmd := &cli.Command{
		Name:        "tokens",
		Description: "print the tokens of expressions",
		Action:      tokensAct,
		Args:        cli.Args{},
	}

	astCmd := &cli.Command{
		Name:        "ast",
		Description: "print the syntax tree of expressions",
		Action:      astAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "stackc",
		Description: "stackc compiles prefix arithmetic expressions to stack-machine code",
		Action:      sampleAct,
		Commands: []*cli.Command{
			compileCmd,
			traceCmd,
			fileCmd,
			tokensCmd,
			astCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

// sampleAct compiles the built-in sample program.
func sampleAct(c *cli.Command) error {
	return compileAll(context.Background(), []string{compiler.SampleProgram})
}

func compileAct(c *cli.Command) error {
	return compileAll(context.Background(), c.Args)
}

func traceAct(c *cli.Command) error {
	ctx := tlog.ContextWithSpan(context.Background(), tlog.Root())

	return compileAll(ctx, c.Args)
}

func fileAct(c *cli.Command) error {
	inputs := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}
		inputs = append(inputs, strings.TrimSpace(string(text)))
	}

	return compileAll(context.Background(), inputs)
}

func tokensAct(c *cli.Command) error {
	if len(c.Args) == 0 {
		return errors.New("expression expected")
	}

	for _, a := range c.Args {
		tokens, err := lexer.Tokenize(a)
		if err != nil {
			return reportErr(err)
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	}

	return nil
}

func astAct(c *cli.Command) error {
	if len(c.Args) == 0 {
		return errors.New("expression expected")
	}

	for _, a := range c.Args {
		expr, err := parser.ParseString(a)
		if err != nil {
			return reportErr(err)
		}
		pretty.Println(expr)
	}

	return nil
}

// compileAll prints the instruction list of every input. It stops at the
// first failing input and never prints a partial list.
func compileAll(ctx context.Context, inputs []string) error {
	if len(inputs) == 0 {
		return errors.New("expression expected")
	}

	for _, in := range inputs {
		lines, err := compiler.Compile(ctx, in)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("%q\n", lines)
	}

	return nil
}

func reportErr(err error) error {
	fmt.Printf("ERR: %s\n", err)
	os.Exit(1)
	return nil
}
