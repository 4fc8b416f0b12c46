package parser

import (
	"blockly/pkg/lexer"
	"fmt"
)

// handleTerminalError is called when the current token doesn't match the expected terminal.
func (p *Parser) handleTerminalError(expected lexer.TokenType) {
	switch expected {
	case lexer.RPAREN:
		p.addError("Missing closing parenthesis")
	case lexer.RSBRACE:
		p.addError("Missing closing bracket")
	case lexer.LENGTH:
		p.addError("Expected 'length' after '.'")
	default:
		p.addContextualError(fmt.Sprintf("'%s'", expected))
	}
}

// handleMissingComparison is called when an operand is not followed by a comparison operator
func (p *Parser) handleMissingComparison() {
	if p.currentToken.Type == lexer.EOF || p.currentToken.Type == lexer.RPAREN {
		p.addError("Missing comparison operator")
		return
	}

	p.addContextualError("comparison operator")
}

// handleMissingOperand is called where an operand must start
func (p *Parser) handleMissingOperand() {
	if p.currentToken.Type == lexer.EOF || p.currentToken.Type == lexer.RPAREN {
		p.addError("Missing operand")
		return
	}

	p.addContextualError("operand")
}

// handleUnexpectedToken reports a token that cannot start or continue a condition
func (p *Parser) handleUnexpectedToken() {
	if p.currentToken.Type == lexer.EOF {
		p.addError("Unexpected end of condition")
		return
	}

	p.addError(fmt.Sprintf("Unexpected token '%s'", p.currentToken.Lexeme))
}

// addError records a parsing error with location
func (p *Parser) addError(msg string) {
	pos := p.currentToken.Pos
	p.errors = append(p.errors, fmt.Sprintf("%s at column %d", msg, pos.Column))
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

// addContextualError generates an error message based on expected and current token
func (p *Parser) addContextualError(expected string) {
	current := p.currentToken
	if current.Type == lexer.ILLEGAL {
		p.addError(fmt.Sprintf("Illegal character '%s'", current.Lexeme))
		return
	}

	p.addError(fmt.Sprintf("Expected %s, found '%s'", expected, current.Lexeme))
}
