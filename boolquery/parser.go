// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boolquery

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

// Parser is a recursive-descent parser over the grammar documented in
// token.go, producing a Node tree.
type Parser struct {
	tok *Tokenizer
	cur Token
}

// NewParser builds a Parser over input.
func NewParser(input string) *Parser {
	p := &Parser{tok: NewTokenizer(input)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.tok.Next()
}

// Parse consumes the whole input and returns its Node, or an
// sql.ErrParseError carrying the 0-based position of the rejected
// token on malformed input. An empty or whitespace-only input parses
// to the Empty node.
func (p *Parser) Parse() (Node, error) {
	if p.cur.Kind == TokenEOF {
		return Empty, nil
	}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, sql.ErrParseError.New(p.cur.Pos, fmt.Sprintf("unexpected trailing token %q", p.cur.Text))
	}
	return n, nil
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokenAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.cur.Kind == TokenNot {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.cur.Kind {
	case TokenWord:
		w := &Word{Token: p.cur.Text}
		p.advance()
		return w, nil
	case TokenLParen:
		p.advance()
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokenRParen {
			return nil, sql.ErrParseError.New(p.cur.Pos, "expected closing parenthesis")
		}
		p.advance()
		return n, nil
	case TokenEOF:
		return nil, sql.ErrParseError.New(p.cur.Pos, "unexpected end of query")
	default:
		return nil, sql.ErrParseError.New(p.cur.Pos, fmt.Sprintf("unexpected token %q", p.cur.Text))
	}
}

// Parse tokenizes and parses input in one step.
func Parse(input string) (Node, error) {
	return NewParser(input).Parse()
}
