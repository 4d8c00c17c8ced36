// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements a parsing collaborator turning source text
// and an identifier table into an atom tree (or an error). It is not
// part of the core's correctness contract — this is one concrete,
// swappable implementation, a small recursive-descent expression parser over
// infix +, -, *, /, ^, parentheses, and f(a,b,c) function calls. Token
// classification follows the shape of robpike.io/ivy/scan.Scanner
// (a rune-at-a-time Scanner type holding position and the last token),
// simplified to this grammar's much smaller token set (ivy's scanner
// additionally handles APL's extended operator glyphs and numeric
// literal bases, neither of which this grammar needs).
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"symbolica.dev/core/atom"
	"symbolica.dev/core/ident"
	"symbolica.dev/core/number"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

// scanner turns source text into tokens, mirroring
// robpike.io/ivy/scan.Scanner's "peek one rune, classify, consume"
// shape.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner { return &scanner{src: src} }

func (s *scanner) peekRune() (rune, int) {
	if s.pos >= len(s.src) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, w
}

func (s *scanner) next() token {
	for {
		r, w := s.peekRune()
		if w == 0 {
			return token{kind: tokEOF}
		}
		if unicode.IsSpace(r) {
			s.pos += w
			continue
		}
		break
	}

	r, w := s.peekRune()
	switch {
	case r == '+':
		s.pos += w
		return token{kind: tokPlus, text: "+"}
	case r == '-':
		s.pos += w
		return token{kind: tokMinus, text: "-"}
	case r == '*':
		s.pos += w
		return token{kind: tokStar, text: "*"}
	case r == '/':
		s.pos += w
		return token{kind: tokSlash, text: "/"}
	case r == '^':
		s.pos += w
		return token{kind: tokCaret, text: "^"}
	case r == '(':
		s.pos += w
		return token{kind: tokLParen, text: "("}
	case r == ')':
		s.pos += w
		return token{kind: tokRParen, text: ")"}
	case r == ',':
		s.pos += w
		return token{kind: tokComma, text: ","}
	case unicode.IsDigit(r):
		return s.scanNumber()
	case unicode.IsLetter(r) || r == '_':
		return s.scanIdent()
	}
	panic(fmt.Sprintf("parser: unexpected character %q", r))
}

func (s *scanner) scanNumber() token {
	start := s.pos
	for {
		r, w := s.peekRune()
		if w == 0 || !(unicode.IsDigit(r) || r == '.') {
			break
		}
		s.pos += w
	}
	return token{kind: tokNumber, text: s.src[start:s.pos]}
}

func (s *scanner) scanIdent() token {
	start := s.pos
	for {
		r, w := s.peekRune()
		if w == 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			break
		}
		s.pos += w
	}
	return token{kind: tokIdent, text: s.src[start:s.pos]}
}

// parser is a recursive-descent precedence-climbing expression parser:
// expr := term (('+'|'-') term)*
// term := unary (('*'|'/') unary)*
// unary := '-' unary | power
// power := atomExpr ['^' unary]
// atomExpr := NUMBER | IDENT ['(' (expr (',' expr)*)? ')'] | '(' expr ')'
type parser struct {
	sc   *scanner
	cur  token
	tbl  *ident.Table
}

// Parse implements the parsing collaborator. The returned atom is dirty
// (unnormalized); callers run it through normalize.Normalize.
func Parse(src string, tbl *ident.Table) (*atom.Atom, error) {
	p := &parser{sc: newScanner(src), tbl: tbl}
	p.advance()
	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("parser: unexpected trailing input %q", p.cur.text)
	}
	return result, nil
}

func (p *parser) advance() { p.cur = p.sc.next() }

func (p *parser) parseExpr() (*atom.Atom, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []*atom.Atom{left}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		neg := p.cur.kind == tokMinus
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if neg {
			t = atom.NewMul([]*atom.Atom{atom.NewNum(number.Int(-1)), t}, true, true)
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return atom.NewAdd(terms, true), nil
}

func (p *parser) parseTerm() (*atom.Atom, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []*atom.Atom{left}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		div := p.cur.kind == tokSlash
		p.advance()
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if div {
			f = atom.NewPow(f, atom.NewNum(number.Int(-1)), true)
		}
		factors = append(factors, f)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return atom.NewMul(factors, false, true), nil
}

func (p *parser) parseUnary() (*atom.Atom, error) {
	if p.cur.kind == tokMinus {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return atom.NewMul([]*atom.Atom{atom.NewNum(number.Int(-1)), inner}, true, true), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*atom.Atom, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.advance()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return atom.NewPow(base, exp, true), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (*atom.Atom, error) {
	switch p.cur.kind {
	case tokNumber:
		text := p.cur.text
		p.advance()
		return parseNumberLiteral(text)
	case tokIdent:
		name := p.cur.text
		p.advance()
		if p.cur.kind == tokLParen {
			p.advance()
			var args []*atom.Atom
			if p.cur.kind != tokRParen {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.cur.kind != tokComma {
						break
					}
					p.advance()
				}
			}
			if p.cur.kind != tokRParen {
				return nil, fmt.Errorf("parser: expected ')' after arguments to %q", name)
			}
			p.advance()
			return atom.NewFun(p.tbl.GetOrInsertFn(name, ident.FnNone), args, true), nil
		}
		return atom.NewVar(p.tbl.GetOrInsertVar(name)), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("parser: expected ')'")
		}
		p.advance()
		return inner, nil
	}
	return nil, fmt.Errorf("parser: unexpected token %q", p.cur.text)
}

func parseNumberLiteral(text string) (*atom.Atom, error) {
	if !strings.Contains(text, ".") {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parser: bad integer literal %q: %w", text, err)
		}
		return atom.NewNum(number.Int(n)), nil
	}
	// Decimal literal: parse as an exact fraction over a power of ten,
	// then let number.Rat reduce it (e.g. "1.5" -> 3/2).
	dot := strings.IndexByte(text, '.')
	digits := text[:dot] + text[dot+1:]
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parser: bad decimal literal %q: %w", text, err)
	}
	den := int64(1)
	for i := 0; i < len(text)-dot-1; i++ {
		den *= 10
	}
	return atom.NewNum(number.Rat(n, den)), nil
}
