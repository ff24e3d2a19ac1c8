package lexer

import (
	"strings"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.pos >= len(l.input) {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case unicode.IsSpace(r):
		return lexSpace
	case strings.ContainsRune(digitChars, r):
		l.next()
		return l.emit(TokNumber)
	case strings.ContainsRune(operatorChars, r):
		l.next()
		return l.emit(TokOperator)
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf(r)
	}
}

func lexSpace(l *Lexer) stateFn {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
	l.ignore()
	return lexText
}
