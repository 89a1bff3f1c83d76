package parser

import (
	"fmt"
	"strings"

	"github.com/AlexxNica/ts2re/internal/ast"
	"github.com/AlexxNica/ts2re/internal/lexer"
	"github.com/AlexxNica/ts2re/internal/token"
)

// Parser è un recursive-descent sul sottoinsieme dichiarativo di .d.ts.
// Bufferizza tutti i token per permettere il lookahead arbitrario che serve
// a distinguere un function type da un tipo tra parentesi.
type Parser struct {
	toks []token.Token
	pos  int

	errors []string
}

func New(l *lexer.Lexer) *Parser {
	return &Parser{toks: l.Tokens()}
}

// ParseSource è la scorciatoia usata da CLI e test: sorgente → File.
// name è l'identità del file di input (il nome base, senza estensione).
func ParseSource(name, src string) (*ast.File, []string) {
	p := New(lexer.New(src))
	f := p.ParseFile(name)
	return f, p.Errors()
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peek(i int) token.Token {
	if p.pos+i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+i]
}

func (p *Parser) next() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) {
	msg := fmt.Sprintf("%d:%d: ", pos.Line, pos.Column) + fmt.Sprintf(format, args...)
	p.errors = append(p.errors, msg)
}

func (p *Parser) expect(kind token.Kind) token.Token {
	if !p.at(kind) {
		p.errorf(p.cur().Pos, "expected %s, got %s (%q)", kind, p.cur().Kind, p.cur().Lexeme)
	}
	return p.next()
}

// identLike consuma il token corrente come nome: accetta Ident e le keyword
// usate come nomi di membri o di namespace (type, module, new, ...).
func (p *Parser) identLike() token.Token {
	tok := p.cur()
	switch tok.Kind {
	case token.Ident, token.Declare, token.Export, token.Default, token.Namespace,
		token.Module, token.Interface, token.Class, token.Type, token.Var,
		token.Let, token.Const, token.Function, token.Enum, token.Extends,
		token.Implements, token.New, token.Typeof, token.This:
		return p.next()
	}
	p.errorf(tok.Pos, "expected identifier, got %s (%q)", tok.Kind, tok.Lexeme)
	p.next()
	return token.Token{Kind: token.Ident, Lexeme: "", Pos: tok.Pos}
}

// ---------- Top-level ----------

func (p *Parser) ParseFile(name string) *ast.File {
	f := &ast.File{Name: name}
	for !p.at(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			f.Stmts = append(f.Stmts, stmt)
		}
	}
	return f
}

func (p *Parser) parseStmt() ast.Stmt {
	// modificatori di statement
	for p.at(token.Export) || p.at(token.Declare) || p.at(token.Default) {
		p.next()
	}

	switch p.cur().Kind {
	case token.Namespace, token.Module:
		return p.parseNamespace()
	case token.Interface:
		return p.parseInterface()
	case token.Class:
		return p.parseClass()
	case token.Type:
		return p.parseTypeAlias()
	case token.Var, token.Let:
		return p.parseVariableStmt()
	case token.Const:
		if p.peek(1).Kind == token.Enum {
			p.next() // const
			return p.parseEnum()
		}
		return p.parseVariableStmt()
	case token.Function:
		return p.parseFunction()
	case token.Enum:
		return p.parseEnum()
	case token.Semi:
		p.next()
		return nil
	default:
		p.errorf(p.cur().Pos, "unexpected token at top level: %s (%q)", p.cur().Kind, p.cur().Lexeme)
		p.next()
		return nil
	}
}

// parseNamespace gestisce `namespace A.B { ... }` e `declare module "m"`.
// I nomi puntati producono una catena di NamespaceDecl annidati.
func (p *Parser) parseNamespace() *ast.NamespaceDecl {
	p.next() // namespace | module

	var names []string
	var namePos token.Position
	if p.at(token.String) {
		tok := p.next()
		names = []string{tok.Lexeme}
		namePos = tok.Pos
	} else {
		tok := p.identLike()
		names = []string{tok.Lexeme}
		namePos = tok.Pos
		for p.at(token.Dot) {
			p.next()
			names = append(names, p.identLike().Lexeme)
		}
	}

	p.expect(token.LBrace)
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(token.RBrace)

	// costruisci la catena dall'interno verso l'esterno
	decl := &ast.NamespaceDecl{Name: names[len(names)-1], NamePos: namePos, Stmts: stmts}
	for i := len(names) - 2; i >= 0; i-- {
		decl = &ast.NamespaceDecl{Name: names[i], NamePos: namePos, Nested: decl}
	}
	return decl
}

func (p *Parser) parseInterface() *ast.InterfaceDecl {
	p.next() // interface
	nameTok := p.identLike()

	decl := &ast.InterfaceDecl{Name: nameTok.Lexeme, NamePos: nameTok.Pos}
	decl.TypeParams = p.parseTypeParams()

	if p.at(token.Extends) {
		p.next()
		decl.Parents = p.parseTypeList()
	}

	decl.Members = p.parseMembers()
	return decl
}

func (p *Parser) parseClass() *ast.ClassDecl {
	p.next() // class
	nameTok := p.identLike()

	decl := &ast.ClassDecl{Name: nameTok.Lexeme, NamePos: nameTok.Pos}
	decl.TypeParams = p.parseTypeParams()

	if p.at(token.Extends) {
		p.next()
		decl.Parents = append(decl.Parents, p.parseTypeList()...)
	}
	if p.at(token.Implements) {
		p.next()
		decl.Parents = append(decl.Parents, p.parseTypeList()...)
	}

	decl.Members = p.parseMembers()
	return decl
}

func (p *Parser) parseTypeAlias() *ast.TypeAliasDecl {
	p.next() // type
	nameTok := p.identLike()

	decl := &ast.TypeAliasDecl{Name: nameTok.Lexeme, NamePos: nameTok.Pos}
	decl.TypeParams = p.parseTypeParams()
	p.expect(token.Assign)
	decl.Type = p.parseType()
	p.eatTerminator()
	return decl
}

func (p *Parser) parseVariableStmt() *ast.VariableStmt {
	varTok := p.next() // var | let | const
	stmt := &ast.VariableStmt{VarPos: varTok.Pos}

	for {
		nameTok := p.identLike()
		binding := &ast.VarBinding{Name: nameTok.Lexeme, NamePos: nameTok.Pos}
		if p.at(token.Colon) {
			p.next()
			binding.Type = p.parseType()
		}
		stmt.Decls = append(stmt.Decls, binding)
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	p.eatTerminator()
	return stmt
}

func (p *Parser) parseFunction() *ast.FunctionDecl {
	p.next() // function
	nameTok := p.identLike()

	decl := &ast.FunctionDecl{Name: nameTok.Lexeme, NamePos: nameTok.Pos}
	decl.TypeParams = p.parseTypeParams()
	decl.Params = p.parseParams()
	if p.at(token.Colon) {
		p.next()
		decl.Ret = p.parseType()
	}
	p.eatTerminator()
	return decl
}

// parseEnum registra solo i nomi dei membri; gli inizializzatori vengono
// saltati fino alla virgola o alla chiusura.
func (p *Parser) parseEnum() *ast.EnumDecl {
	p.next() // enum
	nameTok := p.identLike()
	decl := &ast.EnumDecl{Name: nameTok.Lexeme, NamePos: nameTok.Pos}

	p.expect(token.LBrace)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Ident) || p.at(token.String) {
			decl.Members = append(decl.Members, p.next().Lexeme)
		} else {
			p.next()
			continue
		}
		if p.at(token.Assign) {
			p.next()
			for !p.at(token.Comma) && !p.at(token.RBrace) && !p.at(token.EOF) {
				p.next()
			}
		}
		if p.at(token.Comma) {
			p.next()
		}
	}
	p.expect(token.RBrace)
	return decl
}

// ---------- Members ----------

func (p *Parser) parseMembers() []ast.Member {
	p.expect(token.LBrace)
	var members []ast.Member
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		m := p.parseMember()
		if m != nil {
			members = append(members, m)
		}
	}
	p.expect(token.RBrace)
	return members
}

func (p *Parser) parseMember() ast.Member {
	// modificatori member-level, riconosciuti per lessema
	static := false
	readonly := false
	for p.at(token.Ident) {
		lex := p.cur().Lexeme
		if lex == "public" || lex == "private" || lex == "protected" || lex == "abstract" {
			p.next()
			continue
		}
		if lex == "static" && p.memberNameFollows(1) {
			static = true
			p.next()
			continue
		}
		if lex == "readonly" && p.memberNameFollows(1) {
			readonly = true
			p.next()
			continue
		}
		break
	}

	switch {
	// construct signature: new (...)
	case p.at(token.New) && (p.peek(1).Kind == token.LParen || p.peek(1).Kind == token.Lt):
		tok := p.next()
		sig := &ast.ConstructSig{SigPos: tok.Pos}
		p.parseTypeParams()
		sig.Params = p.parseParams()
		if p.at(token.Colon) {
			p.next()
			sig.Ret = p.parseType()
		}
		p.eatTerminator()
		return sig

	// call signature: (...) o <T>(...)
	case p.at(token.LParen) || p.at(token.Lt):
		sig := &ast.CallSig{SigPos: p.cur().Pos}
		sig.TypeParams = p.parseTypeParams()
		sig.Params = p.parseParams()
		if p.at(token.Colon) {
			p.next()
			sig.Ret = p.parseType()
		}
		p.eatTerminator()
		return sig

	// index signature o computed name: [ ...
	case p.at(token.LBracket):
		return p.parseBracketMember()

	// constructor(...)
	case p.at(token.Ident) && p.cur().Lexeme == "constructor" && p.peek(1).Kind == token.LParen:
		tok := p.next()
		ctor := &ast.Constructor{CtorPos: tok.Pos}
		ctor.Params = p.parseParams()
		if p.at(token.Colon) {
			p.next()
			p.parseType()
		}
		p.eatTerminator()
		return ctor
	}

	// property o method con nome semplice (eventualmente una keyword
	// o una stringa usata come nome)
	var nameTok token.Token
	if p.at(token.String) {
		nameTok = p.next()
	} else {
		nameTok = p.identLike()
	}

	optional := false
	if p.at(token.Question) {
		optional = true
		p.next()
	}

	if p.at(token.LParen) || p.at(token.Lt) {
		m := &ast.MethodSig{
			Name:     nameTok.Lexeme,
			NamePos:  nameTok.Pos,
			Optional: optional,
			Static:   static,
		}
		m.TypeParams = p.parseTypeParams()
		m.Params = p.parseParams()
		if p.at(token.Colon) {
			p.next()
			m.Ret = p.parseType()
		}
		p.eatTerminator()
		return m
	}

	prop := &ast.PropertySig{
		Name:     nameTok.Lexeme,
		NamePos:  nameTok.Pos,
		Optional: optional,
		Static:   static,
		Readonly: readonly,
	}
	if p.at(token.Colon) {
		p.next()
		prop.Type = p.parseType()
	}
	p.eatTerminator()
	return prop
}

// memberNameFollows decide se il token a distanza i inizia un nome di
// membro, per distinguere il modificatore `static` dalla property `static`.
func (p *Parser) memberNameFollows(i int) bool {
	switch p.peek(i).Kind {
	case token.Ident, token.String, token.LBracket, token.New,
		token.Type, token.Module, token.Default, token.Function:
		return true
	}
	return false
}

// parseBracketMember distingue una index signature `[k: string]: T` da un
// computed name `[Symbol.iterator](): T`.
func (p *Parser) parseBracketMember() ast.Member {
	open := p.expect(token.LBracket)

	// index signature: Ident ':' dentro le quadre
	if p.at(token.Ident) && p.peek(1).Kind == token.Colon {
		sig := &ast.IndexSig{SigPos: open.Pos, KeyName: p.next().Lexeme}
		p.expect(token.Colon)
		sig.KeyType = p.parseType()
		p.expect(token.RBracket)
		if p.at(token.Colon) {
			p.next()
			sig.ValueType = p.parseType()
		}
		p.eatTerminator()
		return sig
	}

	// computed name: raccogli il testo qualificato fino alla quadra chiusa
	var parts []string
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		tok := p.next()
		if tok.Kind == token.Dot {
			parts = append(parts, ".")
		} else {
			parts = append(parts, tok.Lexeme)
		}
	}
	p.expect(token.RBracket)

	m := &ast.MethodSig{NameExpr: strings.Join(parts, ""), NamePos: open.Pos}
	if p.at(token.Question) {
		m.Optional = true
		p.next()
	}
	if p.at(token.LParen) || p.at(token.Lt) {
		m.TypeParams = p.parseTypeParams()
		m.Params = p.parseParams()
	}
	if p.at(token.Colon) {
		p.next()
		m.Ret = p.parseType()
	}
	p.eatTerminator()
	return m
}

// eatTerminator consuma un eventuale `;` o `,` a fine membro/statement.
func (p *Parser) eatTerminator() {
	if p.at(token.Semi) || p.at(token.Comma) {
		p.next()
	}
}

// ---------- Parameters e type parameters ----------

func (p *Parser) parseParams() []*ast.Param {
	p.expect(token.LParen)
	var params []*ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param := &ast.Param{}
		if p.at(token.Ellipsis) {
			param.Rest = true
			p.next()
		}
		nameTok := p.identLike()
		param.Name = nameTok.Lexeme
		param.NamePos = nameTok.Pos
		if p.at(token.Question) {
			param.Optional = true
			p.next()
		}
		if p.at(token.Colon) {
			p.next()
			param.Type = p.parseType()
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.next()
		}
	}
	p.expect(token.RParen)
	return params
}

// parseTypeParams legge `<T, U extends X>` e restituisce i soli nomi.
func (p *Parser) parseTypeParams() []string {
	if !p.at(token.Lt) {
		return nil
	}
	p.next()
	var names []string
	depth := 0
	for !p.at(token.EOF) {
		if p.at(token.Gt) {
			if depth == 0 {
				break
			}
			depth--
			p.next()
			continue
		}
		if p.at(token.Lt) {
			depth++
			p.next()
			continue
		}
		if depth == 0 && p.at(token.Ident) {
			names = append(names, p.next().Lexeme)
			// vincoli e default del parametro vengono ignorati
			for depth == 0 && !p.at(token.Comma) && !p.at(token.Gt) && !p.at(token.EOF) {
				if p.at(token.Lt) {
					depth++
				}
				p.next()
			}
			continue
		}
		p.next()
	}
	p.expect(token.Gt)
	return names
}

func (p *Parser) parseTypeList() []ast.Type {
	var list []ast.Type
	list = append(list, p.parseType())
	for p.at(token.Comma) {
		p.next()
		list = append(list, p.parseType())
	}
	return list
}
