package rgx

import "fmt"

// Parser builds an AST from a Lexer's token stream using standard
// recursive descent: expr (alternation) -> term (concatenation) -> factor
// (quantified atom) -> atom.
type Parser struct {
	lex     *Lexer
	tok     Token
	groups  *groupRegistry
}

func newParser(input string) *Parser {
	return &Parser{
		lex:    newLexer(input),
		groups: newGroupRegistry(),
	}
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// Parse consumes the entire pattern and returns its AST along with the
// group registry built while parsing it.
func (p *Parser) Parse() (Node, *groupRegistry, error) {
	if err := p.advance(); err != nil {
		return nil, nil, err
	}

	node, err := p.parseAlt()
	if err != nil {
		return nil, nil, err
	}
	if p.tok.Type == TokenRParen {
		return nil, nil, newCompileError(p.tok.Start, ErrUnmatchedRParen)
	}
	if p.tok.Type != TokenEOF {
		return nil, nil, newCompileError(p.tok.Start, fmt.Errorf("%w: %v", ErrUnexpectedToken, p.tok.Type))
	}
	if err := p.groups.finish(); err != nil {
		return nil, nil, err
	}
	return node, p.groups, nil
}

// parseAlt handles branch | branch | ...
func (p *Parser) parseAlt() (Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	branches := []Node{first}
	for p.tok.Type == TokenPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}

	if len(branches) == 1 {
		return branches[0], nil
	}
	return &Alt{Children: branches}, nil
}

// parseConcat handles a run of quantified atoms.
func (p *Parser) parseConcat() (Node, error) {
	var children []Node
	for !p.atConcatEnd() {
		n, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	if len(children) == 0 {
		return &Empty{}, nil
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &Concat{Children: children}, nil
}

func (p *Parser) atConcatEnd() bool {
	return p.tok.Type == TokenEOF || p.tok.Type == TokenPipe || p.tok.Type == TokenRParen
}

// parseFactor handles an atom optionally followed by a quantifier.
func (p *Parser) parseFactor() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.tok.Type != TokenQuant {
		return atom, nil
	}
	q := p.tok.Quant
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Repeat{Child: atom, Bound: q}, nil
}

// parseAtom handles a single non-quantified unit.
func (p *Parser) parseAtom() (Node, error) {
	tok := p.tok

	switch tok.Type {
	case TokenQuant:
		return nil, newCompileError(tok.Start, ErrQuantifierNoAtom)

	case TokenChar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Rune: tok.Val}, nil

	case TokenAny:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Any{}, nil

	case TokenClass:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Class{Ranges: tok.Ranges, Negated: tok.Negated}, nil

	case TokenAnchorStart:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Anchor{Kind: AnchorStart}, nil

	case TokenAnchorEnd:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Anchor{Kind: AnchorEnd}, nil

	case TokenBackrefNum:
		if tok.Num < 1 || tok.Num > p.groups.count() {
			return nil, newCompileError(tok.Start, fmt.Errorf("%w: %d", ErrUnknownBackrefIndex, tok.Num))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Backref{Kind: BackrefByIndex, Index: tok.Num}, nil

	case TokenBackrefName:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, ok := p.groups.resolveName(tok.Name); !ok {
			p.groups.recordForwardRef(tok.Name, tok.Start)
		}
		return &Backref{Kind: BackrefByName, Name: tok.Name}, nil

	case TokenBackrefRel:
		idx, err := p.groups.resolveRelative(tok.Num, tok.Start)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Backref{Kind: BackrefByIndex, Index: idx}, nil

	case TokenLParen:
		return p.parseGroupBody(0, "")

	case TokenLParenNC:
		return p.parseGroupBody(-1, "")

	case TokenLParenNamed:
		return p.parseGroupBody(-2, tok.Name)

	case TokenEOF:
		return nil, newCompileError(tok.Start, fmt.Errorf("%w: unexpected end of pattern", ErrUnexpectedToken))

	default:
		return nil, newCompileError(tok.Start, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok.Type))
	}
}

// parseGroupBody parses the body of any parenthesized group. mode selects
// the opener already consumed by the caller: 0 means plain capturing,
// -1 means non-capturing, -2 means named (name holds the group name).
func (p *Parser) parseGroupBody(mode int, name string) (Node, error) {
	openPos := p.tok.Start

	var idx int
	var capture bool
	var err error

	switch mode {
	case 0:
		idx, err = p.groups.openCapture("", openPos)
		capture = true
	case -2:
		idx, err = p.groups.openCapture(name, openPos)
		capture = true
	}
	if err != nil {
		return nil, err
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	body, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	if p.tok.Type != TokenRParen {
		return nil, newCompileError(openPos, ErrUnterminatedGroup)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return &Group{Child: body, Index: idx, Name: name, Capture: capture}, nil
}
