// Package lexer provides the lexical analyzer for prefix arithmetic expressions.
package lexer

import (
	"fmt"
	"unicode/utf8"
)

const (
	digitChars    = "0123456789"
	operatorChars = "+-*/"
)

// Error is returned when the input contains a character outside the grammar.
type Error struct {
	Char rune
	Pos  int // Byte offset of Char in the input.
}

func (e *Error) Error() string {
	return fmt.Sprintf("unrecognized character %q at %d", e.Char, e.Pos)
}

type Lexer struct {
	input string

	curToken Token
	err      error

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans and returns the next token.
// Once the input is exhausted it keeps returning TokEOF. After a lexing
// failure it returns a TokError token and Err reports the cause.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return l.curToken
	}
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize scans the whole input and returns its tokens in source order,
// without the trailing TokEOF.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokEOF:
			return tokens, nil
		case TokError:
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorf(r rune) stateFn {
	l.err = &Error{Char: r, Pos: l.start}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		Pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
