// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/philologus/morphquery/internal/books"
	"github.com/philologus/morphquery/internal/morph"
	"github.com/philologus/morphquery/pkg/types"
)

// Parse tokenizes and parses a query string. The token order is strict:
// optional scope clause, then one or more &-joined terms each with an
// optional morphology suffix, then an optional proximity clause.
func Parse(input string, reg *books.Registry) (Parsed, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &types.SyntaxError{Reason: "empty query"}
	}

	if tokens[0].Kind == TokenRel {
		return &Relative{Reference: tokens[0].Text}, nil
	}

	p := &parser{tokens: tokens, registry: reg}
	return p.parseStandard()
}

type parser struct {
	tokens   []Token
	pos      int
	registry *books.Registry
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) parseStandard() (*Standard, error) {
	q := &Standard{}

	if err := p.parseScope(q); err != nil {
		return nil, err
	}

	for {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		q.Terms = append(q.Terms, term)

		tok, ok := p.peek()
		if !ok || tok.Kind != TokenAmp {
			break
		}
		p.pos++
	}

	if tok, ok := p.peek(); ok && tok.Kind == TokenProximity {
		p.pos++
		if tok.Value <= 0 {
			return nil, &types.SyntaxError{
				Fragment: tok.Text,
				Offset:   tok.Offset,
				Reason:   "proximity distance must be a positive integer",
			}
		}
		q.Proximity = tok.Value
	}

	if tok, ok := p.peek(); ok {
		return nil, &types.SyntaxError{
			Fragment: tok.Text,
			Offset:   tok.Offset,
			Reason:   "unexpected trailing token",
		}
	}

	if len(q.Terms) == 0 {
		return nil, &types.SyntaxError{Reason: "query has no search terms"}
	}

	return q, nil
}

// parseScope consumes "*" or "[books] +". A bracket not followed by "+"
// is left in place: it is the first term's special token.
func (p *parser) parseScope(q *Standard) error {
	tok, ok := p.peek()
	if !ok {
		return nil
	}

	switch tok.Kind {
	case TokenStar:
		p.pos++
		return nil

	case TokenBracket:
		if p.pos+1 >= len(p.tokens) || p.tokens[p.pos+1].Kind != TokenPlus {
			return nil
		}
		p.pos += 2

		names := strings.Split(tok.Text, ",")
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			book, err := p.registry.Resolve(name)
			if err != nil {
				return err
			}
			q.BookCodes = append(q.BookCodes, book.Code)
		}
		if len(q.BookCodes) == 0 {
			return &types.SyntaxError{
				Fragment: "[" + tok.Text + "]",
				Offset:   tok.Offset,
				Reason:   "book scope list is empty",
			}
		}
		return nil
	}

	return nil
}

func (p *parser) parseTerm() (Term, error) {
	tok, ok := p.next()
	if !ok {
		return Term{}, &types.SyntaxError{Reason: "expected a search term"}
	}

	var term Term
	switch tok.Kind {
	case TokenWord:
		term.Lexeme = tok.Text

	case TokenBracket:
		name := strings.TrimSpace(tok.Text)
		special, err := morph.LookupSpecial(name)
		if err != nil {
			return Term{}, err
		}
		term.Special = special.Name
		term.Constraints.POS = special.POS
		term.MorphCodePrefix = special.MorphCodePrefix

	default:
		return Term{}, &types.SyntaxError{
			Fragment: tok.Text,
			Offset:   tok.Offset,
			Reason:   "expected a word or special token",
		}
	}

	if suffix, ok := p.peek(); ok && suffix.Kind == TokenMorph {
		p.pos++
		decoded, err := morph.Decode(suffix.Text)
		if err != nil {
			return Term{}, err
		}
		if term.Constraints.POS != "" && decoded.POS != "" && decoded.POS != term.Constraints.POS {
			return Term{}, &types.SyntaxError{
				Fragment: suffix.Text,
				Offset:   suffix.Offset,
				Reason:   "morphology suffix contradicts the special token's part of speech",
			}
		}
		if term.Constraints.POS != "" {
			decoded.POS = term.Constraints.POS
		}
		term.Constraints = decoded
	}

	return term, nil
}
