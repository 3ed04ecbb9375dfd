package expr

import (
	"fmt"

	"github.com/your_username/arischeck/internal/lexer"
	"github.com/your_username/arischeck/internal/token"
)

// Parser is a hand-rolled recursive-descent parser for the surface syntax of
// proof expressions (spec.md §6.1): quantifiers bind loosest, then
// biconditional, then implication (right-associative), then or, then and,
// then unary not, then atoms.
type Parser struct {
	l      *lexer.Lexer
	cur    token.Token
	peek   token.Token
	errors []string
}

// NewParser returns a Parser ready to parse a single expression from src.
func NewParser(src string) *Parser {
	p := &Parser{l: lexer.New(src)}
	p.next()
	p.next()
	return p
}

// Parse parses one complete expression, returning an error that names every
// syntax problem found if the input is malformed or left with trailing
// tokens.
func Parse(src string) (Expression, error) {
	p := NewParser(src)
	e := p.parseExpression()
	if p.cur.Type != token.EOF {
		p.errorf("unexpected trailing input at line %d, column %d: %q", p.cur.Line, p.cur.Column, p.cur.Lexeme)
	}
	if len(p.errors) > 0 {
		return nil, &ParseError{Messages: p.errors}
	}
	return e, nil
}

// ParseError collects every syntax error found while parsing; its Error()
// joins them with "; ".
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	out := ""
	for i, m := range e.Messages {
		if i > 0 {
			out += "; "
		}
		out += m
	}
	return out
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type == t {
		p.next()
		return true
	}
	p.errorf("expected %s at line %d, column %d, got %q", t, p.cur.Line, p.cur.Column, p.cur.Lexeme)
	return false
}

// parseExpression is the top-level entry; it also recognizes a leading
// quantifier, which extends as far right as syntactically possible.
func (p *Parser) parseExpression() Expression {
	if p.cur.Type == token.FORALL_KW || p.cur.Type == token.EXISTS_KW {
		kind := Universal
		if p.cur.Type == token.EXISTS_KW {
			kind = Existential
		}
		p.next()
		if p.cur.Type != token.IDENT {
			p.errorf("expected bound variable name at line %d, column %d", p.cur.Line, p.cur.Column)
			return Contradiction{}
		}
		bound := p.cur.Lexeme
		p.next()
		if p.cur.Type == token.COMMA {
			p.next()
		}
		body := p.parseExpression()
		return Quantifier{Kind: kind, Bound: bound, Body: body}
	}
	return p.parseBiconditional()
}

func (p *Parser) parseBiconditional() Expression {
	left := p.parseImplication()
	var operands []Expression
	for p.cur.Type == token.BICOND {
		p.next()
		operands = append(operands, p.parseImplication())
	}
	if operands == nil {
		return left
	}
	return Associative{Op: Biconditional, Operands: append([]Expression{left}, operands...)}
}

func (p *Parser) parseImplication() Expression {
	left := p.parseOr()
	if p.cur.Type == token.ARROW {
		p.next()
		right := p.parseImplication() // right-associative
		return Implication{Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseOr() Expression {
	left := p.parseAnd()
	var operands []Expression
	for p.cur.Type == token.OR {
		p.next()
		operands = append(operands, p.parseAnd())
	}
	if operands == nil {
		return left
	}
	return Associative{Op: Or, Operands: append([]Expression{left}, operands...)}
}

func (p *Parser) parseAnd() Expression {
	left := p.parseUnary()
	var operands []Expression
	for p.cur.Type == token.AND {
		p.next()
		operands = append(operands, p.parseUnary())
	}
	if operands == nil {
		return left
	}
	return Associative{Op: And, Operands: append([]Expression{left}, operands...)}
}

func (p *Parser) parseUnary() Expression {
	if p.cur.Type == token.NOT {
		p.next()
		return Not{Operand: p.parseUnary()}
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() Expression {
	switch p.cur.Type {
	case token.CONTRA:
		p.next()
		return Contradiction{}
	case token.LPAREN:
		p.next()
		e := p.parseExpression()
		p.expect(token.RPAREN)
		return e
	case token.FORALL_KW, token.EXISTS_KW:
		return p.parseExpression()
	case token.IDENT:
		name := p.cur.Lexeme
		p.next()
		if p.cur.Type == token.LPAREN {
			p.next()
			var args []Expression
			if p.cur.Type != token.RPAREN {
				args = append(args, p.parseTerm())
				for p.cur.Type == token.COMMA {
					p.next()
					args = append(args, p.parseTerm())
				}
			}
			p.expect(token.RPAREN)
			return Predicate{Name: name, Args: args}
		}
		return Variable{Name: name}
	case token.INT:
		name := p.cur.Lexeme
		p.next()
		return Variable{Name: name}
	default:
		p.errorf("unexpected token %q at line %d, column %d", p.cur.Lexeme, p.cur.Line, p.cur.Column)
		p.next()
		return Contradiction{}
	}
}

// parseTerm parses a predicate argument, which may be an arithmetic
// expression over variables and integer literals (Add/Multiply), or a bare
// identifier naming an object.
func (p *Parser) parseTerm() Expression {
	return p.parseSum()
}

func (p *Parser) parseSum() Expression {
	left := p.parseProduct()
	var operands []Expression
	for p.cur.Type == token.PLUS {
		p.next()
		operands = append(operands, p.parseProduct())
	}
	if operands == nil {
		return left
	}
	return Associative{Op: Add, Operands: append([]Expression{left}, operands...)}
}

func (p *Parser) parseProduct() Expression {
	left := p.parseTermAtom()
	var operands []Expression
	for p.cur.Type == token.STAR {
		p.next()
		operands = append(operands, p.parseTermAtom())
	}
	if operands == nil {
		return left
	}
	return Associative{Op: Multiply, Operands: append([]Expression{left}, operands...)}
}

func (p *Parser) parseTermAtom() Expression {
	switch p.cur.Type {
	case token.LPAREN:
		p.next()
		e := p.parseSum()
		p.expect(token.RPAREN)
		return e
	case token.IDENT:
		name := p.cur.Lexeme
		p.next()
		if p.cur.Type == token.LPAREN {
			p.next()
			var args []Expression
			if p.cur.Type != token.RPAREN {
				args = append(args, p.parseTerm())
				for p.cur.Type == token.COMMA {
					p.next()
					args = append(args, p.parseTerm())
				}
			}
			p.expect(token.RPAREN)
			return Predicate{Name: name, Args: args}
		}
		return Variable{Name: name}
	case token.INT:
		name := p.cur.Lexeme
		p.next()
		return Variable{Name: name}
	default:
		p.errorf("unexpected token %q in term at line %d, column %d", p.cur.Lexeme, p.cur.Line, p.cur.Column)
		p.next()
		return Contradiction{}
	}
}
