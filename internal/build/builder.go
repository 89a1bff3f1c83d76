// Package build walks the declaration tree and produces the structural
// module model. Each run is a pure function of the input tree: records are
// constructed once and only appended to while their declaration is visited.
package build

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AlexxNica/ts2re/internal/ast"
	"github.com/AlexxNica/ts2re/internal/typemap"
	"github.com/AlexxNica/ts2re/pkg/model"
)

// Config configura la costruzione del modello.
type Config struct {
	// RootName sovrascrive il nome del modulo radice; vuoto = identità
	// del file di input.
	RootName string
	// Overrides aggiunge voci alla tabella statica del type mapper.
	Overrides map[string]string
}

// Build costruisce il Module radice a partire da una translation unit.
func Build(file *ast.File, cfg Config) *model.Module {
	name := cfg.RootName
	if name == "" {
		name = file.Name
	}
	ctx := typemap.NewContext(cfg.Overrides)
	return buildModule(name, file.Stmts, ctx)
}

// buildModule smista ogni statement del blocco e fonde i record risultanti
// in un unico Module.
func buildModule(name string, stmts []ast.Stmt, ctx *typemap.Context) *model.Module {
	m := model.NewModule(name)

	for _, stmt := range stmts {
		switch d := stmt.(type) {
		case *ast.NamespaceDecl:
			m.Modules = append(m.Modules, buildNamespace(d, ctx))

		case *ast.ClassDecl:
			m.Interfaces = append(m.Interfaces, buildClass(d, ctx))

		case *ast.InterfaceDecl:
			m.Interfaces = append(m.Interfaces, buildInterface(d, ctx))

		case *ast.TypeAliasDecl:
			m.Interfaces = append(m.Interfaces, buildAlias(d, ctx))

		case *ast.VariableStmt:
			for _, b := range d.Decls {
				v, anon := buildVariable(b, ctx)
				if anon != nil {
					m.Interfaces = append(m.Interfaces, anon)
				}
				m.Variables = append(m.Variables, v)
			}

		case *ast.FunctionDecl:
			// le funzioni module-level sono sempre static
			m.Methods = append(m.Methods, buildFunction(d, name, ctx))

		case *ast.EnumDecl:
			// gli enum sono esclusi dalla traduzione: nessun record
		}
	}

	return m
}

// buildNamespace scioglie ricorsivamente i namespace annidati: un body che
// è a sua volta un namespace diventa l'unico figlio del Module.
func buildNamespace(d *ast.NamespaceDecl, ctx *typemap.Context) *model.Module {
	if d.Nested != nil {
		m := model.NewModule(d.Name)
		m.Modules = append(m.Modules, buildNamespace(d.Nested, ctx))
		return m
	}
	return buildModule(d.Name, d.Stmts, ctx)
}

func buildClass(d *ast.ClassDecl, ctx *typemap.Context) *model.Interface {
	ctx = ctx.Push(d.TypeParams)
	iface := newInterface(d.Name, model.KindClass, d.Parents, ctx)
	buildMembers(iface, d.Members, ctx)
	// le classi espongono i loro costruttori dichiarati: nessun maker
	return iface
}

func buildInterface(d *ast.InterfaceDecl, ctx *typemap.Context) *model.Interface {
	ctx = ctx.Push(d.TypeParams)
	iface := newInterface(d.Name, model.KindInterface, d.Parents, ctx)
	buildMembers(iface, d.Members, ctx)
	addMaker(iface)
	return iface
}

// buildAlias ripiega un type alias nella forma di una interface.
func buildAlias(d *ast.TypeAliasDecl, ctx *typemap.Context) *model.Interface {
	ctx = ctx.Push(d.TypeParams)
	iface := newInterface(d.Name, model.KindInterface, nil, ctx)
	if obj, ok := d.Type.(*ast.ObjectType); ok {
		buildMembers(iface, obj.Members, ctx)
	}
	addMaker(iface)
	return iface
}

// buildVariable produce la Variable (sempre static) e, per le annotazioni
// object-type inline, la interface anonima sintetizzata che ne descrive la
// forma. La interface viene agganciata al modulo dal chiamante.
func buildVariable(b *ast.VarBinding, ctx *typemap.Context) (*model.Property, *model.Interface) {
	v := &model.Property{Name: b.Name, Static: true}

	if obj, ok := b.Type.(*ast.ObjectType); ok {
		anon := newInterface(b.Name+"Type", model.KindInterface, nil, ctx)
		buildMembers(anon, obj.Members, ctx)
		addMaker(anon)
		v.Type = anon.Name + "." + typemap.InstanceType
		return v, anon
	}

	v.Type = typemap.Map(b.Type, ctx)
	return v, nil
}

func buildFunction(d *ast.FunctionDecl, moduleName string, ctx *typemap.Context) *model.Method {
	ctx = ctx.Push(d.TypeParams)
	return &model.Method{
		Name:       d.Name,
		Type:       typemap.Map(d.Ret, ctx),
		Static:     true,
		Params:     buildParams(d.Params, ctx),
		ModuleName: moduleName,
	}
}

func newInterface(name, kind string, parents []ast.Type, ctx *typemap.Context) *model.Interface {
	iface := &model.Interface{
		Name:       name,
		Kind:       kind,
		Properties: []*model.Property{},
		Methods:    []*model.Method{},
	}
	// i parent restano testo, mai riferimenti ad altri record
	for _, p := range parents {
		iface.Parents = append(iface.Parents, typemap.Map(p, ctx))
	}
	return iface
}

// buildMembers discrimina i membri dichiarati di una class/interface nelle
// liste di properties e methods del record.
func buildMembers(iface *model.Interface, members []ast.Member, ctx *typemap.Context) {
	for _, member := range members {
		switch m := member.(type) {
		case *ast.PropertySig:
			iface.Properties = append(iface.Properties, &model.Property{
				Name:     m.Name,
				Type:     typemap.Map(m.Type, ctx),
				Optional: m.Optional,
				Static:   m.Static,
			})

		case *ast.MethodSig:
			mctx := ctx.Push(m.TypeParams)
			method := &model.Method{
				Name:       m.Name,
				Type:       typemap.Map(m.Ret, mctx),
				Optional:   m.Optional,
				Static:     m.Static,
				Params:     buildParams(m.Params, mctx),
				ModuleName: iface.Name,
			}
			if m.NameExpr != "" {
				// membro con nome computato: indicizzazione a bracket
				method.Name = m.NameExpr
				method.Emit = fmt.Sprintf("$0[%s]($1)", m.NameExpr)
			}
			iface.Methods = append(iface.Methods, method)

		case *ast.CallSig:
			sctx := ctx.Push(m.TypeParams)
			iface.Methods = append(iface.Methods, &model.Method{
				Name:       "invoke",
				Type:       typemap.Map(m.Ret, sctx),
				Params:     buildParams(m.Params, sctx),
				ModuleName: iface.Name,
				Emit:       "$0($1)",
			})

		case *ast.ConstructSig:
			iface.Methods = append(iface.Methods, &model.Method{
				Name:       "Create",
				Type:       typemap.Map(m.Ret, ctx),
				Params:     buildParams(m.Params, ctx),
				ModuleName: iface.Name,
				Emit:       "new $0($1)",
			})

		case *ast.IndexSig:
			// pseudo-property con template a subscript
			iface.Properties = append(iface.Properties, &model.Property{
				Name: "Item",
				Type: typemap.Map(m.ValueType, ctx),
				Emit: "$0[$1]",
			})

		case *ast.Constructor:
			iface.Methods = append(iface.Methods, &model.Method{
				Name:       "make",
				Type:       typemap.InstanceType,
				Ctor:       true,
				Params:     buildParams(m.Params, ctx),
				ModuleName: iface.Name,
			})
		}
	}
}

// addMaker sintetizza il costruttore di convenienza `make` per le forme che
// non hanno un vero costruttore. I parametri sono costruiti 1:1 dalle
// properties dichiarate, nello stesso ordine.
func addMaker(iface *model.Interface) {
	params := make([]*model.Parameter, 0, len(iface.Properties))
	optional := false
	for _, prop := range iface.Properties {
		if prop.Optional {
			optional = true
		}
		params = append(params, &model.Parameter{
			Name:     prop.Name,
			Type:     prop.Type,
			Optional: prop.Optional,
		})
	}
	if optional {
		params = appendSentinel(params)
	}
	iface.Methods = append(iface.Methods, &model.Method{
		Name:       "make",
		Type:       typemap.InstanceType,
		Maker:      true,
		Params:     params,
		ModuleName: iface.Name,
	})
}

// buildParams mappa una lista di parametri dichiarata e applica la regola
// del sentinel: se almeno un parametro è opzionale, in coda viene aggiunto
// esattamente un parametro unit non opzionale.
func buildParams(params []*ast.Param, ctx *typemap.Context) []*model.Parameter {
	out := make([]*model.Parameter, 0, len(params))
	optional := false
	for _, p := range params {
		if p.Optional {
			optional = true
		}
		out = append(out, &model.Parameter{
			Name:     p.Name,
			Type:     typemap.Map(p.Type, ctx),
			Optional: p.Optional,
			Rest:     p.Rest,
		})
	}
	if optional {
		out = appendSentinel(out)
	}
	return out
}

func appendSentinel(params []*model.Parameter) []*model.Parameter {
	return append(params, &model.Parameter{Type: typemap.Unit})
}

// RootNameFromPath deriva il nome del modulo radice dall'identità del file.
func RootNameFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".ts")
	name = strings.TrimSuffix(name, ".d")
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
