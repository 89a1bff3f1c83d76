// Package render serializza il modello strutturale in testo Reason.
// La serializzazione è deterministica: dipende solo dal contenuto e
// dall'ordine delle liste del modello.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AlexxNica/ts2re/internal/typemap"
	"github.com/AlexxNica/ts2re/pkg/model"
)

const indentUnit = "  "

// Render produce il testo dei binding per l'intero albero. Il modulo
// radice è appiattito: i suoi blocchi compaiono al livello zero senza
// header di modulo.
func Render(root *model.Module) string {
	var b strings.Builder
	writeBlocks(&b, root, 0)
	return b.String()
}

// writeBlocks emette il corpo di un modulo nell'ordine fisso: variabili,
// metodi, interface, moduli annidati; una riga vuota separa i blocchi.
func writeBlocks(b *strings.Builder, m *model.Module, depth int) {
	wrote := false

	if len(m.Variables) > 0 {
		for _, v := range m.Variables {
			writeVariable(b, v, depth)
		}
		wrote = true
	}

	if len(m.Methods) > 0 {
		if wrote {
			b.WriteString("\n")
		}
		for _, fn := range m.Methods {
			writeMethod(b, fn, depth)
		}
		wrote = true
	}

	for _, iface := range m.Interfaces {
		if wrote {
			b.WriteString("\n")
		}
		writeInterface(b, iface, depth)
		wrote = true
	}

	for _, sub := range m.Modules {
		if wrote {
			b.WriteString("\n")
		}
		writeModule(b, sub, depth)
		wrote = true
	}
}

func writeModule(b *strings.Builder, m *model.Module, depth int) {
	in := strings.Repeat(indentUnit, depth)
	b.WriteString(in + "module " + m.Name + " = {\n")
	writeBlocks(b, m, depth+1)
	b.WriteString(in + "};\n")
}

// writeInterface emette il sub-module di una interface: il tipo opaco di
// istanza, poi tutti i metodi, poi tutte le properties. Le properties
// vengono sempre dopo i metodi, qualunque fosse l'ordine di dichiarazione.
func writeInterface(b *strings.Builder, iface *model.Interface, depth int) {
	in := strings.Repeat(indentUnit, depth)
	b.WriteString(in + "module " + iface.Name + " = {\n")
	b.WriteString(in + indentUnit + "type " + typemap.InstanceType + ";\n")
	for _, fn := range iface.Methods {
		writeMethod(b, fn, depth+1)
	}
	for _, prop := range iface.Properties {
		writeProperty(b, prop, depth+1)
	}
	b.WriteString(in + "};\n")
}

// writeVariable emette il value binding di una variabile, collegato per
// nome a un valore della libreria.
func writeVariable(b *strings.Builder, v *model.Property, depth int) {
	in := strings.Repeat(indentUnit, depth)
	b.WriteString(in + "external " + v.Name + " : " + v.Type +
		" = \"" + v.Name + "\" [@@bs.val];\n")
}

func writeMethod(b *strings.Builder, fn *model.Method, depth int) {
	in := strings.Repeat(indentUnit, depth)

	switch {
	case fn.Ctor:
		// catena di frecce (o unit se vuota) verso il tipo di istanza,
		// collegata per nome al modulo della libreria
		b.WriteString(in + "external make : " + ctorChain(fn.Params, false) +
			" => " + typemap.InstanceType +
			" = \"" + fn.ModuleName + "\" [@@bs.new] [@@bs.module];\n")

	case fn.Maker:
		// come il ctor, ma costruisce un valore fresco: linkage vuoto
		b.WriteString(in + "external make : " + ctorChain(fn.Params, true) +
			" => " + typemap.InstanceType + " = \"\" [@@bs.obj];\n")

	case fn.Static:
		b.WriteString(in + "external " + fn.Name + " : " + paramChain(fn.Params) +
			" => " + fn.Type + " = \"" + fn.Name + "\" [@@bs.val];\n")

	default:
		// metodo di istanza: riceve il tipo di istanza più i parametri
		// dichiarati
		chain := typemap.InstanceType
		if len(fn.Params) > 0 {
			chain += " => " + paramChain(fn.Params)
		}
		b.WriteString(in + "external " + fn.Name + " : " + chain +
			" => " + fn.Type + " = \"" + fn.Name + "\" [@@bs.send];\n")
	}
}

// writeProperty emette sempre due binding: il setter e il getter. Per le
// properties opzionali il tipo è avvolto in option e il getter converte il
// valore assente del sottostante con la direttiva nullable.
func writeProperty(b *strings.Builder, prop *model.Property, depth int) {
	in := strings.Repeat(indentUnit, depth)
	t := prop.Type
	nullable := ""
	if prop.Optional {
		t = "option(" + t + ")"
		nullable = " [@@bs.return nullable]"
	}
	b.WriteString(in + "external set" + capitalize(prop.Name) + " : " +
		typemap.InstanceType + " => " + t + " => unit = \"" + prop.Name +
		"\" [@@bs.set];\n")
	b.WriteString(in + "external " + prop.Name + " : " +
		typemap.InstanceType + " => " + t + " = \"" + prop.Name +
		"\" [@@bs.get]" + nullable + ";\n")
}

// paramChain rende i soli tipi dei parametri; quelli opzionali hanno il
// prefisso labeled per chiarezza al call site. Lista vuota = unit.
func paramChain(params []*model.Parameter) string {
	if len(params) == 0 {
		return typemap.Unit
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, renderParam(p, false))
	}
	return strings.Join(parts, " => ")
}

// ctorChain rende la catena di un ctor/maker; il maker etichetta tutti i
// parametri dichiarati, perché il binding obj li richiede per nome.
func ctorChain(params []*model.Parameter, labelAll bool) string {
	if len(params) == 0 {
		return typemap.Unit
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, renderParam(p, labelAll))
	}
	return strings.Join(parts, " => ")
}

func renderParam(p *model.Parameter, labelAll bool) string {
	if p.Optional {
		return "~" + p.Name + ": " + p.Type + "=?"
	}
	if labelAll && p.Name != "" {
		return "~" + p.Name + ": " + p.Type
	}
	return p.Type
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
