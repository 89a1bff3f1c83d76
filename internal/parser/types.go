package parser

import (
	"github.com/AlexxNica/ts2re/internal/ast"
	"github.com/AlexxNica/ts2re/internal/token"
)

// typeKeywords sono le keyword primitive riconosciute nelle annotazioni.
var typeKeywords = map[string]bool{
	"string":    true,
	"number":    true,
	"boolean":   true,
	"void":      true,
	"symbol":    true,
	"any":       true,
	"unknown":   true,
	"never":     true,
	"undefined": true,
	"null":      true,
	"object":    true,
	"bigint":    true,
}

// parseType legge una espressione di tipo completa (con union).
func (p *Parser) parseType() ast.Type {
	first := p.parsePostfixType()

	if !p.at(token.Pipe) && !p.at(token.Amp) {
		return first
	}

	// le intersezioni non sono modellate: si tiene il primo operando
	if p.at(token.Amp) {
		for p.at(token.Amp) {
			p.next()
			p.parsePostfixType()
		}
		return first
	}

	union := &ast.UnionType{Arms: []ast.Type{first}}
	for p.at(token.Pipe) {
		p.next()
		union.Arms = append(union.Arms, p.parsePostfixType())
	}
	return union
}

// parsePostfixType applica i suffissi `[]` a un tipo primario.
func (p *Parser) parsePostfixType() ast.Type {
	t := p.parsePrimaryType()
	for p.at(token.LBracket) && p.peek(1).Kind == token.RBracket {
		p.next()
		p.next()
		t = &ast.ArrayType{Elem: t}
	}
	return t
}

func (p *Parser) parsePrimaryType() ast.Type {
	tok := p.cur()

	switch tok.Kind {
	case token.This:
		p.next()
		return &ast.ThisType{ThisPos: tok.Pos}

	case token.String:
		p.next()
		return &ast.StringLitType{LitPos: tok.Pos, Value: tok.Lexeme}

	case token.Number:
		// i numeric literal type degradano a un riferimento senza nome
		p.next()
		return &ast.TypeRef{RefPos: tok.Pos}

	case token.LParen:
		if p.functionTypeAhead() {
			return p.parseFunctionType()
		}
		p.next()
		inner := p.parseType()
		p.expect(token.RParen)
		return &ast.ParenType{ParenPos: tok.Pos, Inner: inner}

	case token.New:
		// constructor type `new (...) => T`: trattato come function type
		p.next()
		return p.parseFunctionType()

	case token.Lt:
		// function type generico `<T>(...) => U`
		p.parseTypeParams()
		return p.parseFunctionType()

	case token.LBracket:
		p.next()
		tuple := &ast.TupleType{TuplePos: tok.Pos}
		for !p.at(token.RBracket) && !p.at(token.EOF) {
			tuple.Elems = append(tuple.Elems, p.parseType())
			if p.at(token.Comma) {
				p.next()
			}
		}
		p.expect(token.RBracket)
		return tuple

	case token.LBrace:
		obj := &ast.ObjectType{BracePos: tok.Pos}
		obj.Members = p.parseMembers()
		return obj

	case token.Typeof:
		// `typeof expr.member`: forma qualificata expression-style
		p.next()
		return p.parseTypeRef()

	case token.Ident:
		if typeKeywords[tok.Lexeme] && p.peek(1).Kind != token.Dot {
			p.next()
			return &ast.KeywordType{KwPos: tok.Pos, Kw: tok.Lexeme}
		}
		return p.parseTypeRef()
	}

	p.errorf(tok.Pos, "unexpected token in type: %s (%q)", tok.Kind, tok.Lexeme)
	p.next()
	return &ast.TypeRef{RefPos: tok.Pos}
}

func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.cur()
	ref := &ast.TypeRef{RefPos: tok.Pos}

	ref.Parts = append(ref.Parts, p.identLike().Lexeme)
	for p.at(token.Dot) {
		p.next()
		ref.Parts = append(ref.Parts, p.identLike().Lexeme)
	}

	if p.at(token.Lt) {
		p.next()
		for !p.at(token.Gt) && !p.at(token.EOF) {
			ref.Args = append(ref.Args, p.parseType())
			if p.at(token.Comma) {
				p.next()
			}
		}
		p.expect(token.Gt)
	}
	return ref
}

func (p *Parser) parseFunctionType() *ast.FunctionType {
	fn := &ast.FunctionType{FnPos: p.cur().Pos}
	fn.Params = p.parseParams()
	p.expect(token.Arrow)
	fn.Ret = p.parseType()
	return fn
}

// functionTypeAhead guarda oltre la parentesi bilanciata: se subito dopo
// c'è `=>`, il tipo corrente è un function type.
func (p *Parser) functionTypeAhead() bool {
	depth := 0
	for i := 0; p.pos+i < len(p.toks); i++ {
		switch p.peek(i).Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peek(i + 1).Kind == token.Arrow
			}
		case token.EOF:
			return false
		}
	}
	return false
}
