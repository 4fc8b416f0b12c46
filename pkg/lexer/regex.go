package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	LE:  {regexp.MustCompile(`^<=`), `^<=`},
	GE:  {regexp.MustCompile(`^>=`), `^>=`},
	EQ:  {regexp.MustCompile(`^==`), `^==`},
	NE:  {regexp.MustCompile(`^!=`), `^!=`},
	AND: {regexp.MustCompile(`^&&`), `^&&`},
	OR:  {regexp.MustCompile(`^\|\|`), `^\|\|`},

	TRUE:   {regexp.MustCompile(`^true\b`), `^true\b`},
	FALSE:  {regexp.MustCompile(`^false\b`), `^false\b`},
	LENGTH: {regexp.MustCompile(`^length\b`), `^length\b`},

	NOT:   {regexp.MustCompile(`^!`), `^!`},
	MINUS: {regexp.MustCompile(`^-`), `^-`},
	LT:    {regexp.MustCompile(`^<`), `^<`},
	GT:    {regexp.MustCompile(`^>`), `^>`},

	DOT:     {regexp.MustCompile(`^\.`), `^\.`},
	LPAREN:  {regexp.MustCompile(`^\(`), `^\(`},
	RPAREN:  {regexp.MustCompile(`^\)`), `^\)`},
	LSBRACE: {regexp.MustCompile(`^\[`), `^\[`},
	RSBRACE: {regexp.MustCompile(`^\]`), `^\]`},

	NUM: {regexp.MustCompile(`^\d+\b`), `^\d+\b`},
	ID:  {regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), `^[a-zA-Z_][a-zA-Z0-9_]*`},
}

var whitespaceRegex = regexp.MustCompile(`^\s+`)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	LENGTH, FALSE, TRUE, LE, GE, EQ, NE, AND, OR,
	NOT, MINUS, LT, GT, DOT, LPAREN, RPAREN, LSBRACE, RSBRACE,
	NUM, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// MatchToken matches the first token at the start of the string.
// Whitespace is reported as EOF with the skipped lexeme.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
