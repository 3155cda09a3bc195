package graph

// rule identifies the grammar production a parse tree node was matched by.
type rule int

const (
	ruleAssigns rule = iota
	ruleAssign
	ruleExpr
	ruleAdd
	ruleMul
	ruleNeg
	ruleExp
	ruleCall1
	ruleCall2
	rulePrimary
	ruleVar
	ruleConst
	ruleOp
)

// pair is one node of the parse tree. Leaf rules (ruleVar, ruleConst,
// ruleOp) carry their token; inner rules carry children in grammar order.
// For ruleAdd and ruleMul the children alternate operand, operator,
// operand, ... so each operator token sits immediately before the operand
// it applies to. For ruleNeg the minus flag records a leading '-'.
type pair struct {
	tok   token
	kids  []*pair
	rule  rule
	minus bool
}

// parser is a recursive-descent parser with backtracking limited to the
// call production. It tracks the furthest token that failed an
// expectation so that syntax errors report the first genuinely
// unparseable position rather than a backtracked one.
type parser struct {
	toks   []token
	pos    int
	farTok token
	farPos int
}

func newParser(toks []token) *parser {
	return &parser{toks: toks, farPos: -1}
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}

	return tok
}

// fail records tok as an expectation failure if it is the furthest seen.
func (p *parser) fail(tok token) {
	if p.pos > p.farPos {
		p.farPos = p.pos
		p.farTok = tok
	}
}

func (p *parser) syntaxErr() error {
	tok := p.farTok
	if p.farPos < 0 {
		tok = p.peek()
	}

	return syntaxError(tok.line, tok.col)
}

// parseAssigns parses a where clause: a sequence of assignments terminated
// by end of input.
func parseAssigns(toks []token) (*pair, error) {
	p := newParser(toks)
	root := &pair{rule: ruleAssigns}

	for p.peek().kind != tokenEOF {
		a, ok := p.assign()
		if !ok {
			return nil, p.syntaxErr()
		}

		root.kids = append(root.kids, a)
	}

	return root, nil
}

// parseFunc parses a single top-level expression spanning the whole input.
func parseFunc(toks []token) (*pair, error) {
	p := newParser(toks)

	e, ok := p.expr()
	if !ok {
		return nil, p.syntaxErr()
	}

	if tok := p.peek(); tok.kind != tokenEOF {
		p.fail(tok)

		return nil, p.syntaxErr()
	}

	return e, nil
}

func (p *parser) assign() (*pair, bool) {
	name := p.peek()
	if name.kind != tokenIdent {
		p.fail(name)

		return nil, false
	}

	p.next()

	if eq := p.peek(); eq.kind != tokenAssign {
		p.fail(eq)

		return nil, false
	}

	p.next()

	e, ok := p.expr()
	if !ok {
		return nil, false
	}

	return &pair{
		rule: ruleAssign,
		kids: []*pair{{rule: ruleVar, tok: name}, e},
	}, true
}

func (p *parser) expr() (*pair, bool) {
	n, ok := p.add()
	if !ok {
		return nil, false
	}

	return &pair{rule: ruleExpr, kids: []*pair{n}}, true
}

func (p *parser) add() (*pair, bool) {
	return p.opSequence(ruleAdd, p.mul, "+", "-")
}

func (p *parser) mul() (*pair, bool) {
	return p.opSequence(ruleMul, p.neg, "*", "/", "//", "%")
}

// opSequence parses operand (op operand)* for the given operator tokens,
// interleaving operator leaves between operands.
func (p *parser) opSequence(
	r rule,
	operand func() (*pair, bool),
	ops ...string,
) (*pair, bool) {
	first, ok := operand()
	if !ok {
		return nil, false
	}

	kids := []*pair{first}

	for {
		tok := p.peek()
		if tok.kind != tokenOp || !oneOf(tok.text, ops) {
			break
		}

		p.next()

		rhs, ok := operand()
		if !ok {
			return nil, false
		}

		kids = append(kids, &pair{rule: ruleOp, tok: tok}, rhs)
	}

	return &pair{rule: r, kids: kids}, true
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}

	return false
}

func (p *parser) neg() (*pair, bool) {
	minus := false
	if tok := p.peek(); tok.kind == tokenOp && tok.text == "-" {
		p.next()

		minus = true
	}

	n, ok := p.exp()
	if !ok {
		return nil, false
	}

	return &pair{rule: ruleNeg, minus: minus, kids: []*pair{n}}, true
}

func (p *parser) exp() (*pair, bool) {
	first, ok := p.call()
	if !ok {
		return nil, false
	}

	kids := []*pair{first}

	for {
		tok := p.peek()
		if tok.kind != tokenOp || tok.text != "^" {
			break
		}

		p.next()

		rhs, ok := p.call()
		if !ok {
			return nil, false
		}

		kids = append(kids, rhs)
	}

	return &pair{rule: ruleExp, kids: kids}, true
}

// call tries call2 (name primary primary), then call1 (name primary),
// then falls through to a plain primary. Whether the name denotes a
// registered function is not the grammar's concern; the builder rejects
// unknown names with their position.
func (p *parser) call() (*pair, bool) {
	if name := p.peek(); name.kind == tokenIdent {
		save := p.pos

		p.next()

		if arg1, ok := p.primary(); ok {
			fn := &pair{rule: ruleVar, tok: name}

			if arg2, ok := p.primary(); ok {
				return &pair{
					rule: ruleCall2,
					kids: []*pair{fn, arg1, arg2},
				}, true
			}

			return &pair{rule: ruleCall1, kids: []*pair{fn, arg1}}, true
		}

		p.pos = save
	}

	return p.primary()
}

func (p *parser) primary() (*pair, bool) {
	switch tok := p.peek(); tok.kind {
	case tokenLParen:
		p.next()

		e, ok := p.expr()
		if !ok {
			return nil, false
		}

		if rp := p.peek(); rp.kind != tokenRParen {
			p.fail(rp)

			return nil, false
		}

		p.next()

		return &pair{rule: rulePrimary, kids: []*pair{e}}, true

	case tokenIdent:
		p.next()

		return &pair{
			rule: rulePrimary,
			kids: []*pair{{rule: ruleVar, tok: tok}},
		}, true

	case tokenNumber:
		p.next()

		return &pair{
			rule: rulePrimary,
			kids: []*pair{{rule: ruleConst, tok: tok}},
		}, true

	default:
		p.fail(tok)

		return nil, false
	}
}
