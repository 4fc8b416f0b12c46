package lexer_test

import (
	"blockly/pkg/lexer"
	"testing"
)

func TestTokens(t *testing.T) {
	input := "(x < 3 && !naheWand()) || a[2] >= a.length"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.LPAREN, lexer.ID, lexer.LT, lexer.NUM, lexer.AND, lexer.NOT, lexer.ID, lexer.LPAREN, lexer.RPAREN, lexer.RPAREN,
		lexer.OR,
		lexer.ID, lexer.LSBRACE, lexer.NUM, lexer.RSBRACE, lexer.GE, lexer.ID, lexer.DOT, lexer.LENGTH,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.TokenType
	}{
		{"true", lexer.TRUE},
		{"false", lexer.FALSE},
		{"trueish", lexer.ID},
		{"falsehood", lexer.ID},
		{"length", lexer.LENGTH},
		{"WandOben", lexer.ID},
		{"_tmp1", lexer.ID},
	}

	for _, test := range tests {
		tok := lexer.NewLexer(test.input).NextToken()
		if tok.Type != test.expected {
			t.Errorf("Input %s: expected %s, got %s", test.input, test.expected, tok.Type)
		}
		if tok.Lexeme != test.input {
			t.Errorf("Input %s: expected lexeme %s, got %s", test.input, test.input, tok.Lexeme)
		}
	}
}

func TestIllegal(t *testing.T) {
	tokens := lexer.NewLexer("x & y").Tokens()
	if tokens[1].Type != lexer.ILLEGAL {
		t.Fatalf("expected ILLEGAL for single '&', got %s", tokens[1].Type)
	}
	if tokens[1].Pos.Column != 3 {
		t.Errorf("expected ILLEGAL at column 3, got %d", tokens[1].Pos.Column)
	}
}
