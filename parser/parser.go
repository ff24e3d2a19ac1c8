// Package parser builds the syntax tree of a prefix arithmetic expression.
package parser

import (
	"fmt"

	"go.creack.net/stackc/ast"
	"go.creack.net/stackc/lexer"
)

// minTokens is the shortest sequence holding a delimiter, an operator and two operands.
const minTokens = 4

// StructuralError reports a token sequence that does not have the
// `( operator number number )` shape.
type StructuralError struct {
	Msg string
	Pos int // Byte offset in the input where the problem was found.
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("malformed expression at %d: %s", e.Pos, e.Msg)
}

// UnsupportedOperatorError reports a token in operator position that is not
// one of + - * /.
type UnsupportedOperatorError struct {
	Operator string
	Pos      int
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q at %d", e.Operator, e.Pos)
}

type parser struct {
	tokens []lexer.Token
	idx    int // Index of curToken in tokens.

	curToken lexer.Token
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens, idx: -1}
	p.nextToken()
	return p
}

// ParseString lexes and parses input. Lexer errors are returned as is.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds the tree for a token sequence. The whole sequence must be
// exactly one expression.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, &StructuralError{Msg: "empty expression"}
	}
	if len(tokens) < minTokens {
		return nil, &StructuralError{
			Msg: fmt.Sprintf("expression too short: got %d tokens, need at least %d", len(tokens), minTokens),
			Pos: endPos(tokens),
		}
	}

	p := newParser(tokens)
	expr, err := parseBinaryExpr(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, &StructuralError{
			Msg: fmt.Sprintf("unexpected trailing token %s", p.curToken),
			Pos: p.curToken.Pos,
		}
	}
	return expr, nil
}

func parseBinaryExpr(p *parser) (ast.Expr, error) {
	if _, err := p.expect(lexer.TokParenLeft); err != nil {
		return nil, err
	}
	p.nextToken()

	op, err := parseOperator(p)
	if err != nil {
		return nil, err
	}

	left, err := parseNumberExpr(p)
	if err != nil {
		return nil, err
	}
	right, err := parseNumberExpr(p)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return nil, err
	}
	p.nextToken()

	return &ast.BinaryExpr{
		Operator: op,
		Left:     left,
		Right:    right,
	}, nil
}

func parseOperator(p *parser) (ast.Operator, error) {
	tok := p.curToken
	if tok.Type == lexer.TokEOF {
		return 0, &StructuralError{Msg: "missing operator", Pos: tok.Pos}
	}
	op, ok := ast.LookupOperator(tok.Value)
	if tok.Type != lexer.TokOperator || !ok {
		return 0, &UnsupportedOperatorError{Operator: tok.Value, Pos: tok.Pos}
	}
	p.nextToken()
	return op, nil
}

func parseNumberExpr(p *parser) (ast.Expr, error) {
	tok, err := p.expect(lexer.TokNumber)
	if err != nil {
		return nil, err
	}
	p.nextToken()
	return &ast.NumberExpr{Value: tok.Value}, nil
}

// nextToken advances to the next token. Past the end of the sequence the
// current token is TokEOF, positioned right after the last token.
func (p *parser) nextToken() lexer.Token {
	p.idx++
	if p.idx >= len(p.tokens) {
		p.idx = len(p.tokens)
		p.curToken = lexer.Token{Type: lexer.TokEOF, Pos: endPos(p.tokens)}
		return p.curToken
	}
	p.curToken = p.tokens[p.idx]
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) (lexer.Token, error) {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken, nil
	}
	return p.curToken, &StructuralError{
		Msg: fmt.Sprintf("expected token %v but got %s", kind, p.curToken),
		Pos: p.curToken.Pos,
	}
}

func endPos(tokens []lexer.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	last := tokens[len(tokens)-1]
	return last.Pos + len(last.Value)
}
