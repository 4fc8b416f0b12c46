package parser

import (
	"blockly/pkg/lexer"
	"errors"
	"fmt"
	"strings"
)

// Env resolves an operand (literal, variable, a[i], a.length) to its integer value
type Env interface {
	Operand(text string) (int, error)
}

// Predicate answers a zero-argument boolean built-in such as WandOben()
type Predicate func() bool

// ErrSyntax is wrapped by every error caused by malformed condition text
var ErrSyntax = errors.New("invalid condition")

// Parser evaluates a condition while parsing it (recursive descent).
// Sub-expressions skipped by short-circuiting are parsed but not resolved.
type Parser struct {
	lexer        *lexer.Lexer         // lexer instance
	currentToken lexer.Token          // current token
	env          Env                  // variable lookup
	predicates   map[string]Predicate // known predicate names
	errors       []string             // syntax errors, first one wins
	lookupErr    error                // first failed operand lookup
}

// NewParser creates a new parser for a single condition
func NewParser(l *lexer.Lexer, env Env, predicates map[string]Predicate) *Parser {
	p := &Parser{
		lexer:      l,
		env:        env,
		predicates: predicates,
		errors:     []string{},
	}

	p.nextToken()

	return p
}

// Evaluate parses cond and returns its truth value
func Evaluate(cond string, env Env, predicates map[string]Predicate) (bool, error) {
	p := NewParser(lexer.NewLexer(cond), env, predicates)
	result := p.Parse()

	if p.lookupErr != nil {
		return false, p.lookupErr
	}
	if errs := p.Errors(); len(errs) > 0 {
		return false, fmt.Errorf("%w: %s in %q", ErrSyntax, errs[0], cond)
	}

	return result, nil
}

// Parse consumes the whole input and returns the condition value
func (p *Parser) Parse() bool {
	if p.currentToken.Type == lexer.EOF {
		p.addError("Empty condition")
		return false
	}

	result := p.parseOr(true)
	if p.failed() {
		return false
	}

	if p.currentToken.Type != lexer.EOF {
		p.handleUnexpectedToken()
		return false
	}

	return result
}

// or := and { "||" and }
func (p *Parser) parseOr(eval bool) bool {
	result := p.parseAnd(eval)
	for !p.failed() && p.currentToken.Type == lexer.OR {
		p.nextToken()
		right := p.parseAnd(eval && !result)
		result = result || right
	}

	return result
}

// and := not { "&&" not }
func (p *Parser) parseAnd(eval bool) bool {
	result := p.parseNot(eval)
	for !p.failed() && p.currentToken.Type == lexer.AND {
		p.nextToken()
		right := p.parseNot(eval && result)
		result = result && right
	}

	return result
}

// not := "!" not | atom
func (p *Parser) parseNot(eval bool) bool {
	if p.currentToken.Type == lexer.NOT {
		p.nextToken()
		return !p.parseNot(eval)
	}

	return p.parseAtom(eval)
}

// atom := "(" cond ")" | true | false | predicate "(" ")" | operand cmp operand
func (p *Parser) parseAtom(eval bool) bool {
	switch p.currentToken.Type {
	case lexer.LPAREN:
		p.nextToken()
		result := p.parseOr(eval)
		if p.failed() {
			return false
		}
		if !p.expect(lexer.RPAREN) {
			return false
		}
		return result

	case lexer.TRUE:
		p.nextToken()
		return true

	case lexer.FALSE:
		p.nextToken()
		return false

	case lexer.ID:
		if p.lexer.Peek().Type == lexer.LPAREN {
			return p.parsePredicate(eval)
		}
		return p.parseComparison(eval)

	case lexer.NUM:
		return p.parseComparison(eval)

	default:
		p.handleUnexpectedToken()
		return false
	}
}

func (p *Parser) parsePredicate(eval bool) bool {
	name := p.currentToken.Lexeme
	pred, ok := p.predicates[name]
	if !ok {
		p.addError(fmt.Sprintf("Unknown predicate '%s'", name))
		return false
	}

	p.nextToken() // id
	p.nextToken() // (
	if !p.expect(lexer.RPAREN) {
		return false
	}

	if !eval {
		return false
	}

	return pred()
}

func (p *Parser) parseComparison(eval bool) bool {
	left := p.parseOperand()
	if p.failed() {
		return false
	}

	op := p.currentToken.Type
	if !op.IsComparison() {
		p.handleMissingComparison()
		return false
	}
	p.nextToken()

	right := p.parseOperand()
	if p.failed() || !eval {
		return false
	}

	lv, ok := p.resolve(left)
	if !ok {
		return false
	}
	rv, ok := p.resolve(right)
	if !ok {
		return false
	}

	switch op {
	case lexer.LT:
		return lv < rv
	case lexer.GT:
		return lv > rv
	case lexer.LE:
		return lv <= rv
	case lexer.GE:
		return lv >= rv
	case lexer.EQ:
		return lv == rv
	default: // NE
		return lv != rv
	}
}

// parseOperand reassembles an operand into the canonical text the Env understands
func (p *Parser) parseOperand() string {
	switch p.currentToken.Type {
	case lexer.NUM:
		text := p.currentToken.Literal
		p.nextToken()
		return text

	case lexer.ID:
		var sb strings.Builder
		sb.WriteString(p.currentToken.Lexeme)
		p.nextToken()

		switch p.currentToken.Type {
		case lexer.LSBRACE:
			p.nextToken()
			if p.currentToken.Type != lexer.NUM {
				p.addError("Array index must be an integer literal")
				return ""
			}
			sb.WriteString("[" + p.currentToken.Literal + "]")
			p.nextToken()
			if !p.expect(lexer.RSBRACE) {
				return ""
			}

		case lexer.DOT:
			p.nextToken()
			if !p.expect(lexer.LENGTH) {
				return ""
			}
			sb.WriteString(".length")
		}

		return sb.String()

	default:
		p.handleMissingOperand()
		return ""
	}
}

func (p *Parser) resolve(operand string) (int, bool) {
	v, err := p.env.Operand(operand)
	if err != nil {
		if p.lookupErr == nil {
			p.lookupErr = err
		}
		return 0, false
	}

	return v, true
}

// expect consumes a token of type t or records an error
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.currentToken.Type != t {
		p.handleTerminalError(t)
		return false
	}

	p.nextToken()
	return true
}

// failed reports whether parsing must stop
func (p *Parser) failed() bool {
	return len(p.errors) > 0 || p.lookupErr != nil
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}
