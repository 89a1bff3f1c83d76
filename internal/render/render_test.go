package render

import (
	"strings"
	"testing"

	"github.com/AlexxNica/ts2re/pkg/model"
)

func TestRender_Variable(t *testing.T) {
	root := model.NewModule("Lib")
	root.Variables = append(root.Variables, &model.Property{Name: "version", Type: "string", Static: true})

	got := Render(root)
	want := "external version : string = \"version\" [@@bs.val];\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_CtorEmptyParams(t *testing.T) {
	root := model.NewModule("Lib")
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name: "Foo",
		Kind: model.KindClass,
		Methods: []*model.Method{
			{Name: "make", Type: "t", Ctor: true, ModuleName: "Foo"},
		},
		Properties: []*model.Property{},
	})

	got := Render(root)
	want := "" +
		"module Foo = {\n" +
		"  type t;\n" +
		"  external make : unit => t = \"Foo\" [@@bs.new] [@@bs.module];\n" +
		"};\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_SetterNameNonASCII(t *testing.T) {
	root := model.NewModule("Lib")
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name:    "W",
		Kind:    model.KindInterface,
		Methods: []*model.Method{},
		Properties: []*model.Property{
			{Name: "état", Type: "string"},
		},
	})

	got := Render(root)
	if !strings.Contains(got, "external setÉtat : t => string => unit = \"état\" [@@bs.set];\n") {
		t.Fatalf("setter name not capitalized by rune:\n%s", got)
	}
}

func TestRender_MakerAndProperties(t *testing.T) {
	root := model.NewModule("Lib")
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name: "P",
		Kind: model.KindInterface,
		Methods: []*model.Method{
			{Name: "make", Type: "t", Maker: true, ModuleName: "P", Params: []*model.Parameter{
				{Name: "x", Type: "float"},
				{Name: "y", Type: "string", Optional: true},
				{Type: "unit"},
			}},
		},
		Properties: []*model.Property{
			{Name: "x", Type: "float"},
			{Name: "y", Type: "string", Optional: true},
		},
	})

	got := Render(root)
	want := "" +
		"module P = {\n" +
		"  type t;\n" +
		"  external make : ~x: float => ~y: string=? => unit => t = \"\" [@@bs.obj];\n" +
		"  external setX : t => float => unit = \"x\" [@@bs.set];\n" +
		"  external x : t => float = \"x\" [@@bs.get];\n" +
		"  external setY : t => option(string) => unit = \"y\" [@@bs.set];\n" +
		"  external y : t => option(string) = \"y\" [@@bs.get] [@@bs.return nullable];\n" +
		"};\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_InstanceAndStaticMethods(t *testing.T) {
	root := model.NewModule("Lib")
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name: "Util",
		Kind: model.KindClass,
		Methods: []*model.Method{
			{Name: "now", Type: "float", Static: true, ModuleName: "Util"},
			{Name: "add", Type: "float", ModuleName: "Util", Params: []*model.Parameter{
				{Name: "n", Type: "float"},
			}},
			{Name: "tick", Type: "unit", ModuleName: "Util"},
		},
		Properties: []*model.Property{},
	})

	got := Render(root)
	if !strings.Contains(got, "external now : unit => float = \"now\" [@@bs.val];\n") {
		t.Fatalf("static method rendering:\n%s", got)
	}
	if !strings.Contains(got, "external add : t => float => float = \"add\" [@@bs.send];\n") {
		t.Fatalf("instance method rendering:\n%s", got)
	}
	// metodo di istanza senza parametri: solo il receiver
	if !strings.Contains(got, "external tick : t => unit = \"tick\" [@@bs.send];\n") {
		t.Fatalf("nullary instance method rendering:\n%s", got)
	}
}

func TestRender_OptionalParamsAreLabeled(t *testing.T) {
	root := model.NewModule("Lib")
	root.Methods = append(root.Methods, &model.Method{
		Name: "greet", Type: "unit", Static: true, ModuleName: "Lib",
		Params: []*model.Parameter{
			{Name: "name", Type: "string"},
			{Name: "loud", Type: "bool", Optional: true},
			{Type: "unit"},
		},
	})

	got := Render(root)
	want := "external greet : string => ~loud: bool=? => unit => unit = \"greet\" [@@bs.val];\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Le properties vengono sempre dopo i metodi, qualunque fosse l'ordine di
// dichiarazione: il riordino è del printer, non del builder.
func TestRender_PropertiesAfterMethods(t *testing.T) {
	root := model.NewModule("Lib")
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name: "Mixed",
		Kind: model.KindInterface,
		Methods: []*model.Method{
			{Name: "run", Type: "unit", ModuleName: "Mixed"},
		},
		Properties: []*model.Property{
			{Name: "first", Type: "string"},
		},
	})

	got := Render(root)
	run := strings.Index(got, "external run")
	first := strings.Index(got, "external setFirst")
	if run < 0 || first < 0 || run > first {
		t.Fatalf("ordering wrong:\n%s", got)
	}
}

func TestRender_ModuleBlockOrderAndSpacing(t *testing.T) {
	sub := model.NewModule("Inner")
	sub.Variables = append(sub.Variables, &model.Property{Name: "x", Type: "float", Static: true})

	root := model.NewModule("Lib")
	root.Variables = append(root.Variables, &model.Property{Name: "v", Type: "string", Static: true})
	root.Methods = append(root.Methods, &model.Method{Name: "f", Type: "unit", Static: true, ModuleName: "Lib"})
	root.Interfaces = append(root.Interfaces, &model.Interface{
		Name: "I", Kind: model.KindInterface,
		Methods: []*model.Method{}, Properties: []*model.Property{},
	})
	root.Modules = append(root.Modules, sub)

	got := Render(root)
	want := "" +
		"external v : string = \"v\" [@@bs.val];\n" +
		"\n" +
		"external f : unit => unit = \"f\" [@@bs.val];\n" +
		"\n" +
		"module I = {\n" +
		"  type t;\n" +
		"};\n" +
		"\n" +
		"module Inner = {\n" +
		"  external x : float = \"x\" [@@bs.val];\n" +
		"};\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_NestedIndentation(t *testing.T) {
	inner := model.NewModule("B")
	inner.Variables = append(inner.Variables, &model.Property{Name: "x", Type: "float", Static: true})
	outer := model.NewModule("A")
	outer.Modules = append(outer.Modules, inner)
	root := model.NewModule("Lib")
	root.Modules = append(root.Modules, outer)

	got := Render(root)
	want := "" +
		"module A = {\n" +
		"  module B = {\n" +
		"    external x : float = \"x\" [@@bs.val];\n" +
		"  };\n" +
		"};\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// Stessa struttura, stesso testo.
func TestRender_Deterministic(t *testing.T) {
	root := model.NewModule("Lib")
	root.Variables = append(root.Variables, &model.Property{Name: "v", Type: "string", Static: true})
	first := Render(root)
	for i := 0; i < 5; i++ {
		if got := Render(root); got != first {
			t.Fatalf("render not deterministic")
		}
	}
}
