// Package model definisce i record strutturali prodotti dal builder.
package model

// Kind di una Interface.
const (
	KindClass     = "class"
	KindInterface = "interface"
)

// Parameter è un singolo parametro di un metodo o di un function type.
type Parameter struct {
	Name     string `json:"name,omitempty"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Rest     bool   `json:"rest,omitempty"`
}

// Property è un campo dichiarato su una interface/classe, oppure una
// variabile module-level (Static=true).
type Property struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Static   bool   `json:"static,omitempty"`
	// Emit è un template di emissione specializzato (index signature).
	// Prodotto dal builder; il printer attuale non lo consuma.
	Emit string `json:"emit,omitempty"`
}

// Method è un metodo di interface/classe o una funzione module-level.
type Method struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"` // return type, già mappato
	Optional   bool         `json:"optional,omitempty"`
	Static     bool         `json:"static,omitempty"`
	Ctor       bool         `json:"ctor,omitempty"`  // costruttore di classe
	Maker      bool         `json:"maker,omitempty"` // costruttore sintetizzato
	Params     []*Parameter `json:"params"`
	ModuleName string       `json:"moduleName,omitempty"` // nome del proprietario, usato per il linkage
	Emit       string       `json:"emit,omitempty"`       // template specializzato, non consumato dal printer
}

// Interface rappresenta una class, una interface o un type alias
// ripiegato in forma di interface.
type Interface struct {
	Name       string      `json:"name"`
	Kind       string      `json:"kind"`
	Parents    []string    `json:"parents,omitempty"` // testo, mai riferimenti ad altri record
	Properties []*Property `json:"properties"`
	Methods    []*Method   `json:"methods"`
}

// Module rappresenta un namespace, o l'intera translation unit alla radice.
// L'ordine di inserimento di ogni lista rispecchia l'ordine di dichiarazione
// nell'input e viene preservato fino all'output.
type Module struct {
	Name       string       `json:"name"`
	Modules    []*Module    `json:"modules"`
	Variables  []*Property  `json:"variables"`
	Interfaces []*Interface `json:"interfaces"`
	Methods    []*Method    `json:"methods"`
}

// NewModule crea un Module con tutte le liste inizializzate vuote.
func NewModule(name string) *Module {
	return &Module{
		Name:       name,
		Modules:    []*Module{},
		Variables:  []*Property{},
		Interfaces: []*Interface{},
		Methods:    []*Method{},
	}
}
