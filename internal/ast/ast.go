// Package ast describes the declaration tree produced by the front-end.
// The translator consumes this tree; it never looks back at source text.
package ast

import "github.com/AlexxNica/ts2re/internal/token"

type Node interface {
	Pos() token.Position
}

// Stmt is a top-level or namespace-level declaration statement.
type Stmt interface {
	Node
	stmtNode()
}

// Member is a class/interface/object-type member.
type Member interface {
	Node
	memberNode()
}

// Type is a type annotation node.
type Type interface {
	Node
	typeNode()
}

// File is the translation unit root.
type File struct {
	Name  string // base name of the source, without extension
	Stmts []Stmt
}

func (f *File) Pos() token.Position {
	if len(f.Stmts) > 0 {
		return f.Stmts[0].Pos()
	}
	return token.Position{}
}

// ---------- Statements ----------

// NamespaceDecl is a namespace or external-module declaration. Its body is
// either a single nested namespace (dotted names produce a chain) or a flat
// statement block; exactly one of Nested and Stmts is meaningful.
type NamespaceDecl struct {
	Name    string
	NamePos token.Position
	Nested  *NamespaceDecl
	Stmts   []Stmt
}

func (d *NamespaceDecl) Pos() token.Position { return d.NamePos }

type ClassDecl struct {
	Name       string
	NamePos    token.Position
	TypeParams []string
	Parents    []Type // extends target plus implements targets, in order
	Members    []Member
}

func (d *ClassDecl) Pos() token.Position { return d.NamePos }

type InterfaceDecl struct {
	Name       string
	NamePos    token.Position
	TypeParams []string
	Parents    []Type
	Members    []Member
}

func (d *InterfaceDecl) Pos() token.Position { return d.NamePos }

type TypeAliasDecl struct {
	Name       string
	NamePos    token.Position
	TypeParams []string
	Type       Type
}

func (d *TypeAliasDecl) Pos() token.Position { return d.NamePos }

// VariableStmt is a var/let/const statement; one statement may declare
// several bindings.
type VariableStmt struct {
	VarPos token.Position
	Decls  []*VarBinding
}

func (d *VariableStmt) Pos() token.Position { return d.VarPos }

type VarBinding struct {
	Name    string
	NamePos token.Position
	Type    Type // may be nil
}

func (b *VarBinding) Pos() token.Position { return b.NamePos }

type FunctionDecl struct {
	Name       string
	NamePos    token.Position
	TypeParams []string
	Params     []*Param
	Ret        Type // may be nil
}

func (d *FunctionDecl) Pos() token.Position { return d.NamePos }

type EnumDecl struct {
	Name    string
	NamePos token.Position
	Members []string
}

func (d *EnumDecl) Pos() token.Position { return d.NamePos }

func (*NamespaceDecl) stmtNode() {}
func (*ClassDecl) stmtNode()     {}
func (*InterfaceDecl) stmtNode() {}
func (*TypeAliasDecl) stmtNode() {}
func (*VariableStmt) stmtNode()  {}
func (*FunctionDecl) stmtNode()  {}
func (*EnumDecl) stmtNode()      {}

// ---------- Members ----------

type PropertySig struct {
	Name     string
	NamePos  token.Position
	Optional bool
	Static   bool
	Readonly bool
	Type     Type // may be nil
}

func (m *PropertySig) Pos() token.Position { return m.NamePos }

// MethodSig is a method signature or declaration. NameExpr carries the text
// of a computed property name ("Symbol.iterator"); Name is empty in that
// case.
type MethodSig struct {
	Name       string
	NameExpr   string
	NamePos    token.Position
	Optional   bool
	Static     bool
	TypeParams []string
	Params     []*Param
	Ret        Type // may be nil
}

func (m *MethodSig) Pos() token.Position { return m.NamePos }

type CallSig struct {
	SigPos     token.Position
	TypeParams []string
	Params     []*Param
	Ret        Type
}

func (m *CallSig) Pos() token.Position { return m.SigPos }

type ConstructSig struct {
	SigPos token.Position
	Params []*Param
	Ret    Type
}

func (m *ConstructSig) Pos() token.Position { return m.SigPos }

type IndexSig struct {
	SigPos    token.Position
	KeyName   string
	KeyType   Type
	ValueType Type
	Readonly  bool
}

func (m *IndexSig) Pos() token.Position { return m.SigPos }

type Constructor struct {
	CtorPos token.Position
	Params  []*Param
}

func (m *Constructor) Pos() token.Position { return m.CtorPos }

func (*PropertySig) memberNode()  {}
func (*MethodSig) memberNode()    {}
func (*CallSig) memberNode()      {}
func (*ConstructSig) memberNode() {}
func (*IndexSig) memberNode()     {}
func (*Constructor) memberNode()  {}

// ---------- Parameters ----------

type Param struct {
	Name     string
	NamePos  token.Position
	Optional bool
	Rest     bool
	Type     Type // may be nil
}

func (p *Param) Pos() token.Position { return p.NamePos }

// ---------- Types ----------

// KeywordType is a primitive keyword annotation: string, number, boolean,
// void, symbol, any, and friends.
type KeywordType struct {
	KwPos token.Position
	Kw    string
}

func (t *KeywordType) Pos() token.Position { return t.KwPos }

type ArrayType struct {
	Elem Type
}

func (t *ArrayType) Pos() token.Position { return t.Elem.Pos() }

type FunctionType struct {
	FnPos  token.Position
	Params []*Param
	Ret    Type
}

func (t *FunctionType) Pos() token.Position { return t.FnPos }

type UnionType struct {
	Arms []Type
}

func (t *UnionType) Pos() token.Position {
	if len(t.Arms) > 0 {
		return t.Arms[0].Pos()
	}
	return token.Position{}
}

type TupleType struct {
	TuplePos token.Position
	Elems    []Type
}

func (t *TupleType) Pos() token.Position { return t.TuplePos }

type ParenType struct {
	ParenPos token.Position
	Inner    Type
}

func (t *ParenType) Pos() token.Position { return t.ParenPos }

// ThisType refers to the enclosing instance.
type ThisType struct {
	ThisPos token.Position
}

func (t *ThisType) Pos() token.Position { return t.ThisPos }

type StringLitType struct {
	LitPos token.Position
	Value  string
}

func (t *StringLitType) Pos() token.Position { return t.LitPos }

// ObjectType is an inline object-type literal.
type ObjectType struct {
	BracePos token.Position
	Members  []Member
}

func (t *ObjectType) Pos() token.Position { return t.BracePos }

// TypeRef is a named or qualified type reference. One part means a simple
// name; two or more cover both the dotted-name and the expression-qualified
// forms, which the mapper renders identically.
type TypeRef struct {
	RefPos token.Position
	Parts  []string
	Args   []Type
}

func (t *TypeRef) Pos() token.Position { return t.RefPos }

func (*KeywordType) typeNode()   {}
func (*ArrayType) typeNode()     {}
func (*FunctionType) typeNode()  {}
func (*UnionType) typeNode()     {}
func (*TupleType) typeNode()     {}
func (*ParenType) typeNode()     {}
func (*ThisType) typeNode()      {}
func (*StringLitType) typeNode() {}
func (*ObjectType) typeNode()    {}
func (*TypeRef) typeNode()       {}
