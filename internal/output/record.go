// internal/output/record.go
package output

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"keggmod/internal/module"
)

// Lookup resolves an enzyme id to its definition.
type Lookup interface {
	Definition(id string) (string, bool)
}

// Options are the file-level inputs of a record.
type Options struct {
	CompoundType string // header label, e.g. "Amino Acid"
	Source       string // annotation source tag; SourceKOfam when empty
}

// Annotation is one resolved enzyme.
type Annotation struct {
	ID         string
	Definition string
}

// Record is a fully resolved module, ready to be written.
type Record struct {
	ModuleID     string
	Name         string
	Definition   string
	Orthology    []Annotation
	CompoundType string
	Pathways     []string
	Source       string
}

// MissingEnzymeError is returned when a block names an enzyme the reference
// table does not know. No record is produced for that module.
type MissingEnzymeError struct {
	ModuleID string
	EnzymeID string
}

func (e *MissingEnzymeError) Error() string {
	return fmt.Sprintf("module %s: enzyme %s not found in reference table", e.ModuleID, e.EnzymeID)
}

// Resolve looks up every enzyme of b and returns the record to render. The
// first unknown enzyme aborts the whole record.
func Resolve(b *module.Block, defs Lookup, opt Options) (Record, error) {
	src := opt.Source
	if src == "" {
		src = SourceKOfam
	}
	ids := b.Enzymes.Items()
	orth := make([]Annotation, 0, len(ids))
	for _, id := range ids {
		d, ok := defs.Definition(id)
		if !ok {
			return Record{}, errors.WithStack(&MissingEnzymeError{ModuleID: b.ModuleID, EnzymeID: id})
		}
		orth = append(orth, Annotation{ID: id, Definition: d})
	}
	return Record{
		ModuleID:     b.ModuleID,
		Name:         b.Target + " biosynthesis",
		Definition:   b.Definition(),
		Orthology:    orth,
		CompoundType: opt.CompoundType,
		Pathways:     b.PathwayMaps.Items(),
		Source:       src,
	}, nil
}

// Render resolves b and formats it as a module file.
func Render(b *module.Block, defs Lookup, opt Options) (string, error) {
	rec, err := Resolve(b, defs, opt)
	if err != nil {
		return "", err
	}
	return FormatRecord(rec), nil
}

// FormatRecord lays out rec in the fixed module-file field order. Every line,
// including the terminator, ends in a newline.
func FormatRecord(rec Record) string {
	var sb strings.Builder
	field := func(width int, label, value string) {
		fmt.Fprintf(&sb, "%-*s%s\n", width, label, value)
	}

	field(LabelWidth, FieldEntry, rec.ModuleID)
	field(LabelWidth, FieldName, rec.Name)
	field(LabelWidth, FieldDefinition, rec.Definition)
	for i, a := range rec.Orthology {
		label := ""
		if i == 0 {
			label = FieldOrthology
		}
		field(LabelWidth, label, a.ID+"  "+a.Definition)
	}
	field(LabelWidth, FieldClass, ClassPrefix+rec.CompoundType+" Biosynthesis")
	field(LabelWidth, FieldPathway, strings.Join(rec.Pathways, ";"))
	for i, a := range rec.Orthology {
		label := ""
		if i == 0 {
			label = FieldAnnotationSource
		}
		field(SourceLabelWidth, label, a.ID+"  "+rec.Source)
	}
	sb.WriteString(Terminator)
	sb.WriteByte('\n')
	return sb.String()
}
