package lexer

type Lexer struct {
	input        string // condition text to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	column       int    // current column number for error reporting
	currentToken Token  // current token for context (e.g., unary minus handling)
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	// '-' directly followed by digits is a signed literal wherever an operand may start
	if l.input[l.position] == '-' && l.prevAllowsUnary() {
		if l.position+1 < l.length && isDigit(l.input[l.position+1]) {
			remaining := l.input[l.position+1:]
			t, lex, matched := MatchToken(remaining)
			if matched && t == NUM && lex != "" {
				lexeme := "-" + lex

				tok := NewToken(NUM, lexeme, lexeme, l.currentPosition())

				l.advance(len(lexeme))
				l.currentToken = tok

				return tok
			}
		}
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		pos := l.currentPosition()
		char := string(l.input[l.position])
		l.advance(1)

		tok := NewToken(ILLEGAL, char, "", pos)
		l.currentToken = tok
		return tok
	}

	var literal string
	switch tokenType {
	case NUM:
		literal = lexeme
	case TRUE:
		literal = "true"
	case FALSE:
		literal = "false"
	case ID:
		literal = lexeme
	}

	tok := NewToken(tokenType, lexeme, literal, l.currentPosition())
	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	cpos := l.position
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	l.position = cpos
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Tokens drains the lexer, EOF included
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == EOF {
			return out
		}
	}
}

// Skip whitespace
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		l.position++
		l.column++
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for range n {
		if l.position >= l.length {
			break
		}
		l.column++
		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Column: l.column,
		Offset: l.position,
	}
}

// Check if the previous token allows a signed literal to start here
func (l *Lexer) prevAllowsUnary() bool {
	switch l.currentToken.Type {
	case EOF,
		LPAREN, LSBRACE,
		LT, GT, LE, GE, EQ, NE,
		AND, OR, NOT:
		return true
	default:
		return false
	}
}
