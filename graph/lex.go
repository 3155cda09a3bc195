package graph

import "strings"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenNumber
	tokenOp
	tokenLParen
	tokenRParen
	tokenAssign
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenIdent:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenOp:
		return "operator"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenAssign:
		return "="
	default:
		return "unknown"
	}
}

// token is a lexeme with its 1-based source position.
type token struct {
	text string
	kind tokenKind
	line int
	col  int
}

// lexer scans a source string into tokens, tracking line and column.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// lexAll tokenizes the entire source. The returned slice always ends with
// an EOF token positioned just past the last character. Any character that
// cannot start a token, and any malformed numeric literal, is a syntax
// error at that position.
func lexAll(src string) ([]token, error) {
	l := &lexer{src: src, line: 1, col: 1}

	var toks []token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()

	tok := token{line: l.line, col: l.col}

	if l.pos >= len(l.src) {
		tok.kind = tokenEOF

		return tok, nil
	}

	c := l.src[l.pos]

	switch {
	case isLetter(c):
		start := l.pos
		for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
			l.advance()
		}

		tok.kind = tokenIdent
		tok.text = l.src[start:l.pos]

		return tok, nil

	case isDigit(c) || c == '.':
		return l.scanNumber(tok)

	case c == '(':
		l.advance()
		tok.kind, tok.text = tokenLParen, "("

		return tok, nil

	case c == ')':
		l.advance()
		tok.kind, tok.text = tokenRParen, ")"

		return tok, nil

	case c == '=':
		l.advance()
		tok.kind, tok.text = tokenAssign, "="

		return tok, nil

	case c == '/':
		l.advance()

		tok.kind, tok.text = tokenOp, "/"
		if l.pos < len(l.src) && l.src[l.pos] == '/' {
			l.advance()

			tok.text = "//"
		}

		return tok, nil

	case strings.IndexByte("+-*%^", c) >= 0:
		l.advance()
		tok.kind, tok.text = tokenOp, string(c)

		return tok, nil

	default:
		return tok, syntaxError(tok.line, tok.col)
	}
}

// scanNumber scans a floating-point literal: digits with an optional
// fraction and an optional exponent. A literal that starts a fraction or
// exponent without following digits is malformed.
func (l *lexer) scanNumber(tok token) (token, error) {
	start := l.pos
	digits := false

	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		digits = true

		l.advance()
	}

	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.advance()

		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			digits = true

			l.advance()
		}
	}

	if !digits {
		// A lone '.' with no digits on either side.
		return tok, syntaxError(tok.line, tok.col)
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.advance()

		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.advance()
		}

		exp := false
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			exp = true

			l.advance()
		}

		if !exp {
			return tok, syntaxError(tok.line, tok.col)
		}
	}

	tok.kind = tokenNumber
	tok.text = l.src[start:l.pos]

	return tok, nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// advance consumes one byte and updates the position counters. The input
// language is ASCII, so byte positions and column positions coincide.
func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentChar reports whether c can continue an identifier. Digits are
// allowed after the first character so that names like log2 and atan2
// lex as single tokens.
func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
