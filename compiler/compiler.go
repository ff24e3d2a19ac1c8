// Package compiler runs the whole pipeline: text, tokens, tree, instructions.
package compiler

import (
	"context"

	"tlog.app/go/tlog"

	"go.creack.net/stackc/emitter"
	"go.creack.net/stackc/lexer"
	"go.creack.net/stackc/parser"
)

// SampleProgram is compiled when no input is given.
const SampleProgram = "(+ 1 5)"

// Compile compiles one expression into the textual instruction list.
// Errors from any stage are returned unchanged and no partial list is produced.
func Compile(ctx context.Context, input string) ([]string, error) {
	insts, err := CompileInstructions(ctx, input)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(insts))
	for _, inst := range insts {
		lines = append(lines, inst.String())
	}
	return lines, nil
}

// CompileInstructions is like Compile but returns structured instructions.
func CompileInstructions(ctx context.Context, input string) ([]emitter.Instruction, error) {
	tr := tlog.SpanFromContext(ctx)

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		tr.Printw("lex", "err", err)
		return nil, err
	}
	tr.Printw("lex", "tokens", len(tokens))

	expr, err := parser.Parse(tokens)
	if err != nil {
		tr.Printw("parse", "err", err)
		return nil, err
	}
	tr.Printw("parse", "ast", expr.Dump())

	insts, err := emitter.Emit(expr)
	if err != nil {
		tr.Printw("emit", "err", err)
		return nil, err
	}
	tr.Printw("emit", "instructions", len(insts))

	return insts, nil
}
