// Package ast defines the syntax tree of a prefix arithmetic expression.
package ast

// Structure following the expression grammar:
//
//	expr     : '(' operator number number ')'
//	operator : '+' | '-' | '*' | '/'
//	number   : [0-9]

// Expr is a node of the tree. It is either a *NumberExpr leaf or a
// *BinaryExpr applying an Operator to two operands.
type Expr interface {
	Dump() string
	expr()
}
