package emitter

import (
	"errors"
	"fmt"

	"go.creack.net/stackc/ast"
)

var errNilExpr = errors.New("nil expression")

// Traverser walks a tree in post-order (left, right, self) and feeds an Emitter.
type Traverser struct {
	emitter Emitter
}

func NewTraverser() *Traverser {
	return &Traverser{}
}

// Traverse appends the instructions evaluating expr. The tree is not modified.
// On error the instructions are incomplete and must not be used.
func (t *Traverser) Traverse(expr ast.Expr) error {
	return t.traverseExpr(expr)
}

func (t *Traverser) traverseExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		t.emitter.PushNumber(e.Value)
		return nil
	case *ast.BinaryExpr:
		return t.traverseBinaryExpr(e)
	case nil:
		return errNilExpr
	default:
		return fmt.Errorf("unsupported expression type %T", e)
	}
}

func (t *Traverser) traverseBinaryExpr(e *ast.BinaryExpr) error {
	if err := t.traverseExpr(e.Left); err != nil {
		return fmt.Errorf("left operand of %s: %w", e.Operator, err)
	}
	if err := t.traverseExpr(e.Right); err != nil {
		return fmt.Errorf("right operand of %s: %w", e.Operator, err)
	}
	return t.emitter.PushOperator(e.Operator)
}

// Instructions returns the instructions emitted so far.
func (t *Traverser) Instructions() []Instruction {
	return t.emitter.Instructions()
}

// Lines returns the instructions emitted so far as text.
func (t *Traverser) Lines() []string {
	return t.emitter.Lines()
}

// Emit traverses expr with a fresh Traverser and returns its instructions.
func Emit(expr ast.Expr) ([]Instruction, error) {
	t := NewTraverser()
	if err := t.Traverse(expr); err != nil {
		return nil, err
	}
	return t.Instructions(), nil
}
