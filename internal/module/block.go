// internal/module/block.go
package module

import (
	"strings"

	"keggmod/internal/common"
	"keggmod/internal/sheet"
)

// Block is the in-progress state of one module. Use it through a pointer.
type Block struct {
	ModuleID  string
	Target    string
	StartLine int

	Enzymes     *common.OrderedSet[string]
	ModuleRefs  *common.OrderedSet[string] // collected, not rendered
	PathwayMaps *common.OrderedSet[string]

	def strings.Builder
}

func NewBlock(moduleID, target string, line int) *Block {
	return &Block{
		ModuleID:    moduleID,
		Target:      target,
		StartLine:   line,
		Enzymes:     common.NewOrderedSet[string](),
		ModuleRefs:  common.NewOrderedSet[string](),
		PathwayMaps: common.NewOrderedSet[string](),
	}
}

// Definition is the accumulated pathway expression.
func (b *Block) Definition() string { return b.def.String() }

// Apply folds one row into the block.
func (b *Block) Apply(r sheet.Row) {
	if b.ModuleID == "" && r.ModuleID != "" {
		b.ModuleID, b.Target = r.ModuleID, r.Target
	}

	switch sheet.Classify(r.Expr) {
	case sheet.Connector:
		b.def.WriteString(sheet.NormalizeConnector(r.Expr))
	case sheet.EnzymeList:
		b.Enzymes.Add(sheet.EnzymeTokens(r.Expr)...)
		if needsSpace(b.def.String()) {
			b.def.WriteByte(' ')
		}
		b.def.WriteString(sheet.DefinitionText(r.Expr))
	}

	b.ModuleRefs.Add(r.ModuleRefs...)
	b.PathwayMaps.Add(r.PathwayMaps...)
}

// needsSpace reports whether an enzyme list appended to def needs a leading
// separator. Connectors that already end in one don't get a second.
func needsSpace(def string) bool {
	if def == "" {
		return false
	}
	switch def[len(def)-1] {
	case '(', ',', ' ':
		return false
	}
	return true
}
