package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from the condition text
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in the condition text
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of input

	TRUE   // true
	FALSE  // false
	LENGTH // length (only after '.')

	ID  // id (identifier)
	NUM // num (integer literal, optionally signed)

	AND   // &&
	OR    // ||
	NOT   // !
	MINUS // -
	LT    // <
	GT    // >
	LE    // <=
	GE    // >=
	EQ    // ==
	NE    // !=

	DOT     // .
	LPAREN  // (
	RPAREN  // )
	LSBRACE // [
	RSBRACE // ]

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"true":   TRUE,
	"false":  FALSE,
	"length": LENGTH,
}

var tokenNames = map[TokenType]string{
	TRUE:    "true",
	FALSE:   "false",
	LENGTH:  "length",
	AND:     "&&",
	OR:      "||",
	NOT:     "!",
	MINUS:   "-",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",
	EQ:      "==",
	NE:      "!=",
	DOT:     ".",
	LPAREN:  "(",
	RPAREN:  ")",
	LSBRACE: "[",
	RSBRACE: "]",
	ID:      "id",
	NUM:     "num",
	EOF:     "$",
	ILLEGAL: "illegal",
}

// TokenToString converts a TokenType to its string representation
func (t Token) TokenToString() (string, bool) {
	str, ok := tokenNames[t.Type]
	return str, ok
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case TRUE, FALSE, LENGTH:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case NUM:
		return LITERAL
	case AND, OR, NOT, MINUS, LT, GT, LE, GE, EQ, NE:
		return OPERATOR
	case DOT, LPAREN, RPAREN, LSBRACE, RSBRACE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsComparison reports whether the token compares two operands
func (t TokenType) IsComparison() bool {
	switch t {
	case LT, GT, LE, GE, EQ, NE:
		return true
	default:
		return false
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
