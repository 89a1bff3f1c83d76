// Package typemap converte i nodi di tipo dell'albero dichiarativo in
// espressioni di tipo Reason. La conversione è totale: ogni input produce
// una stringa, le forme non supportate degradano a un placeholder.
package typemap

import (
	"strings"

	"github.com/AlexxNica/ts2re/internal/ast"
)

const (
	// Placeholder è la type variable generica usata per ogni forma
	// non riconosciuta o non modellata.
	Placeholder = "'a"

	// InstanceType è il nome canonico del tipo opaco di istanza dentro
	// ogni sub-module generato.
	InstanceType = "t"

	// Unit è il literal unit del target.
	Unit = "unit"

	// marker per le union con primo ramo string-literal
	stringEnum = "/* TODO StringEnum */ string"

	// symbol non è ancora supportato; nome esplicito in attesa
	symbolPlaceholder = "js_symbol"
)

// overrides è la tabella statica di sostituzione per i nomi ben noti,
// costruita una volta e mai modificata.
var overrides = map[string]string{
	"Date":       "DateTime",
	"Object":     "obj",
	"Array":      "ResizeArray",
	"RegExp":     "Regex",
	"String":     "string",
	"Number":     "float",
	"Function.t": "('a => 'b)",
}

// Context porta la catena delle dichiarazioni che racchiudono il nodo
// corrente: le liste di type parameter, dalla più esterna alla più interna,
// più eventuali override aggiuntivi da configurazione. Push restituisce un
// nuovo Context, quindi un Context condiviso non viene mai mutato.
type Context struct {
	scopes [][]string
	extra  map[string]string
}

// NewContext crea un Context radice. extra può essere nil; le sue voci
// hanno precedenza sulla tabella statica.
func NewContext(extra map[string]string) *Context {
	return &Context{extra: extra}
}

// Push estende la catena con la lista di type parameter di una
// dichiarazione. Liste vuote vengono ignorate.
func (c *Context) Push(typeParams []string) *Context {
	if len(typeParams) == 0 {
		return c
	}
	scopes := make([][]string, len(c.scopes), len(c.scopes)+1)
	copy(scopes, c.scopes)
	return &Context{scopes: append(scopes, typeParams), extra: c.extra}
}

// isTypeParam cammina la catena verso la radice cercando name tra i type
// parameter visibili.
func (c *Context) isTypeParam(name string) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		for _, p := range c.scopes[i] {
			if p == name {
				return true
			}
		}
	}
	return false
}

func (c *Context) lookupOverride(raw string) (string, bool) {
	if c.extra != nil {
		if v, ok := c.extra[raw]; ok {
			return v, true
		}
	}
	v, ok := overrides[raw]
	return v, ok
}

// Map converte un nodo di tipo in una espressione di tipo del target.
// Totale e senza side effect: nessun input la fa fallire.
func Map(t ast.Type, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext(nil)
	}
	switch x := t.(type) {
	case nil:
		return Placeholder

	case *ast.KeywordType:
		switch x.Kw {
		case "string":
			return "string"
		case "number":
			return "float"
		case "boolean":
			return "bool"
		case "void":
			return Unit
		case "symbol":
			return symbolPlaceholder
		default:
			// any, unknown, never, undefined, null, object, ...
			return Placeholder
		}

	case *ast.ArrayType:
		return "array(" + Map(x.Elem, ctx) + ")"

	case *ast.FunctionType:
		var parts []string
		for _, p := range x.Params {
			if p.Rest {
				// i parametri variadici non sono modellati
				parts = append(parts, Placeholder)
				continue
			}
			parts = append(parts, Map(p.Type, ctx))
		}
		if len(parts) == 0 {
			parts = []string{Unit}
		}
		return strings.Join(parts, " => ") + " => " + Map(x.Ret, ctx)

	case *ast.UnionType:
		if len(x.Arms) > 0 {
			if _, ok := x.Arms[0].(*ast.StringLitType); ok {
				return stringEnum
			}
		}
		// TODO: modellare le union piccole come polymorphic variant
		// invece di degradare a placeholder
		if len(x.Arms) <= 4 {
			return Placeholder
		}
		return Placeholder

	case *ast.TupleType:
		var parts []string
		for _, e := range x.Elems {
			parts = append(parts, Map(e, ctx))
		}
		return strings.Join(parts, " * ")

	case *ast.ParenType:
		return Map(x.Inner, ctx)

	case *ast.ThisType:
		return InstanceType

	case *ast.StringLitType:
		return "string"

	case *ast.TypeRef:
		return mapRef(x, ctx)

	default:
		// ObjectType inline e ogni forma futura degradano
		return Placeholder
	}
}

// mapRef gestisce il caso di default: riferimenti a tipi con nome, semplici
// o qualificati, con eventuali argomenti generici.
func mapRef(ref *ast.TypeRef, ctx *Context) string {
	var raw string
	switch {
	case len(ref.Parts) == 0:
		return Placeholder
	case len(ref.Parts) == 1:
		raw = ref.Parts[0]
		if ov, ok := ctx.lookupOverride(raw); ok {
			raw = ov
		}
	default:
		// la tabella vede il nome puntato nudo; il suffisso di istanza
		// si applica solo ai nomi non sostituiti
		raw = strings.Join(ref.Parts, ".")
		if ov, ok := ctx.lookupOverride(raw); ok {
			raw = ov
		} else {
			raw += "." + InstanceType
		}
	}

	if len(ref.Args) > 0 {
		var args []string
		for _, a := range ref.Args {
			args = append(args, Map(a, ctx))
		}
		raw += "(" + strings.Join(args, ", ") + ")"
	}

	// un nome uguale a un type parameter visibile è una vera type
	// variable, non un tipo concreto omonimo
	if ctx.isTypeParam(raw) {
		return "'" + raw
	}
	return raw
}
