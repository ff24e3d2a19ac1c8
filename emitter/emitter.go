// Package emitter turns a syntax tree into stack-machine instructions.
package emitter

import (
	"fmt"
	"slices"

	"go.creack.net/stackc/ast"
)

// mnemonics maps every operator to its opcode. It must cover all of ast.Operator.
var mnemonics = map[ast.Operator]Opcode{
	ast.Addition:       OpAdd,
	ast.Subtraction:    OpSub,
	ast.Multiplication: OpMul,
	ast.Division:       OpDiv,
}

// Emitter accumulates instructions in emission order. It only ever appends.
type Emitter struct {
	instructions []Instruction
}

// PushNumber emits `PUSH <value>`, value unmodified.
func (e *Emitter) PushNumber(value string) {
	e.instructions = append(e.instructions, Instruction{Op: OpPush, Operand: value})
}

// PushOperator emits the mnemonic of op.
func (e *Emitter) PushOperator(op ast.Operator) error {
	code, ok := mnemonics[op]
	if !ok {
		return fmt.Errorf("no mnemonic for operator %s", op)
	}
	e.instructions = append(e.instructions, Instruction{Op: code})
	return nil
}

// Instructions returns a copy of the instructions emitted so far.
func (e *Emitter) Instructions() []Instruction {
	return slices.Clone(e.instructions)
}

// Lines returns the emitted instructions in their textual form.
func (e *Emitter) Lines() []string {
	lines := make([]string, 0, len(e.instructions))
	for _, inst := range e.instructions {
		lines = append(lines, inst.String())
	}
	return lines
}
