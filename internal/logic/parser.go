package logic

// Parser consumes tokens produced by the lexer and builds a Statement tree.
// It is a recursive-descent parser with one method per precedence level,
// high to low: !, &, |, ->, <->. All binary connectives associate to the
// left.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over the given token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds a Statement from a source expression. It is a convenience
// wrapper around Tokenize and Parser.Parse.
func Parse(input string) (Statement, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// Parse processes the whole token sequence and returns the resulting
// statement. A *SyntaxError is returned for an empty expression,
// unbalanced parentheses, a missing operand, or two adjacent operands.
func (p *Parser) Parse() (Statement, error) {
	if p.peek().Type == TokenEOF {
		return nil, syntaxErrorf(p.peek().Pos, "empty expression")
	}
	stmt, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	// anything left over means two operands met without an operator,
	// or a stray closing parenthesis
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, syntaxErrorf(tok.Pos, "unexpected %s", tok)
	}
	return stmt, nil
}

func (p *Parser) parseIff() (Statement, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenIff {
		p.next()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = Iff(left, right)
	}
	return left, nil
}

func (p *Parser) parseImplies() (Statement, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenImplies {
		p.next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = Implies(left, right)
	}
	return left, nil
}

func (p *Parser) parseOr() (Statement, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (Statement, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (Statement, error) {
	if p.peek().Type == TokenNot {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Statement, error) {
	tok := p.next()
	switch tok.Type {
	case TokenVariable:
		return Var(tok.Value), nil
	case TokenTrue:
		return True(), nil
	case TokenFalse:
		return False(), nil
	case TokenLParen:
		inner, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return nil, syntaxErrorf(closing.Pos, "unbalanced parentheses")
		}
		return inner, nil
	case TokenEOF:
		return nil, syntaxErrorf(tok.Pos, "missing operand")
	default:
		return nil, syntaxErrorf(tok.Pos, "unexpected %s", tok)
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Pos: p.endPos()}
	}
	return p.tokens[p.current]
}

// next consumes and returns the current token. The EOF token is never
// consumed, so next is safe to call past the end of input.
func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Type != TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) endPos() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Pos + len(last.Value)
}
