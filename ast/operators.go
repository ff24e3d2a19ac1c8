package ast

import "fmt"

// Operator is the closed set of arithmetic operators.
type Operator int

const (
	Addition Operator = iota
	Subtraction
	Multiplication
	Division

	// End of operators.
	FinalOperator
)

var operatorSymbols = map[Operator]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
}

var operatorNames = map[Operator]string{
	Addition:       "Addition",
	Subtraction:    "Subtraction",
	Multiplication: "Multiplication",
	Division:       "Division",
}

// LookupOperator resolves an operator symbol such as "+".
func LookupOperator(symbol string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

// String returns the operator symbol.
func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Name returns the operator's kind name, e.g. "Addition".
func (op Operator) Name() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return op.String()
}
