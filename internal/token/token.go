package token

import "fmt"

type Kind int

const (
	Illegal Kind = iota
	EOF

	Ident  // identifier
	String // string literal
	Number // numeric literal

	// Keywords
	Declare
	Export
	Default
	Namespace
	Module
	Interface
	Class
	Type
	Var
	Let
	Const
	Function
	Enum
	Extends
	Implements
	New
	Typeof
	This

	// Symbols
	LBrace   // {
	RBrace   // }
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	Lt       // <
	Gt       // >
	Comma    // ,
	Semi     // ;
	Colon    // :
	Question // ?
	Pipe     // |
	Amp      // &
	Dot      // .
	Ellipsis // ...
	Arrow    // =>
	Assign   // =
)

type Position struct {
	Line   int
	Column int
}

type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (k Kind) String() string {
	switch k {
	case Illegal:
		return "Illegal"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case String:
		return "String"
	case Number:
		return "Number"
	case Declare:
		return "Declare"
	case Export:
		return "Export"
	case Default:
		return "Default"
	case Namespace:
		return "Namespace"
	case Module:
		return "Module"
	case Interface:
		return "Interface"
	case Class:
		return "Class"
	case Type:
		return "Type"
	case Var:
		return "Var"
	case Let:
		return "Let"
	case Const:
		return "Const"
	case Function:
		return "Function"
	case Enum:
		return "Enum"
	case Extends:
		return "Extends"
	case Implements:
		return "Implements"
	case New:
		return "New"
	case Typeof:
		return "Typeof"
	case This:
		return "This"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Lt:
		return "Lt"
	case Gt:
		return "Gt"
	case Comma:
		return "Comma"
	case Semi:
		return "Semi"
	case Colon:
		return "Colon"
	case Question:
		return "Question"
	case Pipe:
		return "Pipe"
	case Amp:
		return "Amp"
	case Dot:
		return "Dot"
	case Ellipsis:
		return "Ellipsis"
	case Arrow:
		return "Arrow"
	case Assign:
		return "Assign"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var keywords = map[string]Kind{
	"declare":    Declare,
	"export":     Export,
	"default":    Default,
	"namespace":  Namespace,
	"module":     Module,
	"interface":  Interface,
	"class":      Class,
	"type":       Type,
	"var":        Var,
	"let":        Let,
	"const":      Const,
	"function":   Function,
	"enum":       Enum,
	"extends":    Extends,
	"implements": Implements,
	"new":        New,
	"typeof":     Typeof,
	"this":       This,
}

// LookupIdent restituisce il Kind keyword se lit è una parola chiave,
// altrimenti Ident. I modificatori member-level (static, readonly, ...)
// restano Ident e vengono riconosciuti dal parser per lessema.
func LookupIdent(lit string) Kind {
	if kind, ok := keywords[lit]; ok {
		return kind
	}
	return Ident
}
