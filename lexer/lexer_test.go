package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF || tok.Type == TokError {
			break
		}
	}
	require.Len(t, tokens, len(expectedTokens), "tokens: %v", tokens)
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		assert.Equal(t, expectedToken.Type, token.Type, "tests[%d] - wrong type (%s)", i, token)
		assert.Equal(t, expectedToken.Value, token.Value, "tests[%d] - wrong value (%s)", i, token)
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
}

func TestLexerExpression(t *testing.T) {
	input := "(+ 1 5)"
	expectedTokens := []Token{
		{Type: TokParenLeft, Value: "("},
		{Type: TokOperator, Value: "+"},
		{Type: TokNumber, Value: "1"},
		{Type: TokNumber, Value: "5"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerOperators(t *testing.T) {
	input := "+ - * /"
	expectedTokens := []Token{
		{Type: TokOperator, Value: "+"},
		{Type: TokOperator, Value: "-"},
		{Type: TokOperator, Value: "*"},
		{Type: TokOperator, Value: "/"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerNoWhitespace(t *testing.T) {
	input := "(*34)"
	expectedTokens := []Token{
		{Type: TokParenLeft, Value: "("},
		{Type: TokOperator, Value: "*"},
		{Type: TokNumber, Value: "3"},
		{Type: TokNumber, Value: "4"},
		{Type: TokParenRight, Value: ")"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerError(t *testing.T) {
	input := "(+ 1 $)"
	expectedTokens := []Token{
		{Type: TokParenLeft, Value: "("},
		{Type: TokOperator, Value: "+"},
		{Type: TokNumber, Value: "1"},
		{Type: TokError, Value: "unrecognized character '$' at 5"},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerErrorIsSticky(t *testing.T) {
	l := New("$1")
	first := l.NextToken()
	require.Equal(t, TokError, first.Type)
	require.Error(t, l.Err())

	assert.Equal(t, first, l.NextToken())
}

func TestTokenizeDigits(t *testing.T) {
	for _, d := range digitChars {
		tokens, err := Tokenize(string(d))
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, TokNumber, tokens[0].Type)
		assert.Equal(t, string(d), tokens[0].Value)
	}
}

func TestTokenizeWhitespace(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n", "   \r\n  "} {
		tokens, err := Tokenize(input)
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, tokens, "input %q", input)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("  ( -  7 2 )")
	require.NoError(t, err)

	var positions []int
	for _, tok := range tokens {
		positions = append(positions, tok.Pos)
	}
	assert.Equal(t, []int{2, 4, 7, 9, 11}, positions)
}

func TestTokenizeUnrecognized(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"$", '$', 0},
		{"(+ 1 a)", 'a', 5},
		{"(% 1 2)", '%', 1},
		{"(+ 1.5 2)", '.', 4},
		{"é", 'é', 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			assert.Nil(t, tokens)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.pos, lexErr.Pos)
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `NUMBER[3]: "7"`, Token{Type: TokNumber, Value: "7", Pos: 3}.String())
	assert.Equal(t, "EOF", Token{Type: TokEOF}.String())
	assert.Equal(t, "ERROR [1]: boom", Token{Type: TokError, Value: "boom", Pos: 1}.String())
}
