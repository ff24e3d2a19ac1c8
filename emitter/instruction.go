package emitter

import "fmt"

// Opcode is a stack-machine operation.
type Opcode int

const (
	OpPush Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv

	// End of opcodes.
	FinalOpcode
)

var opcodeStrings = map[Opcode]string{
	OpPush: "PUSH",
	OpAdd:  "ADD",
	OpSub:  "SUB",
	OpMul:  "MUL",
	OpDiv:  "DIV",
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if s, ok := opcodeStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is one line of stack-machine code.
type Instruction struct {
	Op      Opcode
	Operand string // Only set for OpPush.
}

// String renders the instruction as text, e.g. "PUSH 1" or "ADD".
func (i Instruction) String() string {
	if i.Operand == "" {
		return i.Op.String()
	}
	return i.Op.String() + " " + i.Operand
}
