package ast

import "fmt"

// NumberExpr is a numeric literal, kept as its source text.
type NumberExpr struct {
	Value string
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return n.Value
}

// BinaryExpr applies Operator to Left and Right. Both operands are always set.
type BinaryExpr struct {
	Operator Operator
	Left     Expr
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Operator, b.Left.Dump(), b.Right.Dump())
}
