// internal/sheet/row.go
package sheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"keggmod/internal/common"
)

// Column layout of a data row.
const (
	ColModule     = 0
	ColTarget     = 1
	ColExpr       = 3
	ColModuleRefs = 5
	ColPathways   = 6

	MinFields = 7
)

// EnzymeMarker is the leading letter shared by every KEGG orthology id.
const EnzymeMarker = "K"

// enzymeSeparators splits an enzyme-list fragment into identifiers.
const enzymeSeparators = `()",+- `

// Placeholder is the literal "missing step" connector.
const Placeholder = "--"

var (
	andRe = regexp.MustCompile(` ?AND ?`)
	orRe  = regexp.MustCompile(` ?OR ?`)
)

type FragmentKind int

const (
	Connector FragmentKind = iota
	EnzymeList
)

func (k FragmentKind) String() string {
	switch k {
	case Connector:
		return "connector"
	case EnzymeList:
		return "enzyme-list"
	}
	return fmt.Sprintf("FragmentKind(%d)", int(k))
}

// Row is one tokenized data row.
type Row struct {
	Line        int
	ModuleID    string
	Target      string
	Expr        string
	ModuleRefs  []string
	PathwayMaps []string
}

// RowError reports a data row with too few columns.
type RowError struct {
	Line   int
	Fields int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: expected at least %d tab-separated fields, got %d", e.Line, MinFields, e.Fields)
}

// HeaderError reports an unusable header line.
type HeaderError struct {
	Msg string
}

func (e *HeaderError) Error() string { return "header: " + e.Msg }

// ParseHeader returns the compound-type label from the second header column.
func ParseHeader(line string) (string, error) {
	f := strings.Split(common.TrimEOL(line), "\t")
	if len(f) < 2 {
		return "", errors.WithStack(&HeaderError{Msg: "expected at least 2 tab-separated columns"})
	}
	label := strings.TrimSpace(f[1])
	if label == "" {
		return "", errors.WithStack(&HeaderError{Msg: "compound type (column 2) is empty"})
	}
	return label, nil
}

// ParseRow splits a non-blank data line into its positional fields.
func ParseRow(line string, lineNo int) (Row, error) {
	f := strings.Split(common.TrimEOL(line), "\t")
	if len(f) < MinFields {
		return Row{}, errors.WithStack(&RowError{Line: lineNo, Fields: len(f)})
	}
	return Row{
		Line:        lineNo,
		ModuleID:    f[ColModule],
		Target:      f[ColTarget],
		Expr:        f[ColExpr],
		ModuleRefs:  SplitSlash(f[ColModuleRefs]),
		PathwayMaps: SplitSlash(f[ColPathways]),
	}, nil
}

// Classify is a lexical check: any fragment containing the enzyme marker is an
// enzyme list, everything else is a connector.
func Classify(fragment string) FragmentKind {
	if strings.Contains(fragment, EnzymeMarker) {
		return EnzymeList
	}
	return Connector
}

// NormalizeConnector rewrites a connector fragment into definition syntax.
// First match wins: AND -> " ", OR -> ",", "--" -> " --", anything else as-is.
func NormalizeConnector(fragment string) string {
	switch {
	case strings.Contains(fragment, "AND"):
		return andRe.ReplaceAllLiteralString(fragment, " ")
	case strings.Contains(fragment, "OR"):
		return orRe.ReplaceAllLiteralString(fragment, ",")
	case fragment == Placeholder:
		return " " + Placeholder
	}
	return fragment
}

// EnzymeTokens returns the identifiers of an enzyme-list fragment, in order.
func EnzymeTokens(fragment string) []string {
	return common.FieldsAny(fragment, enzymeSeparators)
}

// DefinitionText is the fragment as it appears in a definition: surrounding
// spreadsheet quotes removed.
func DefinitionText(fragment string) string {
	return strings.Trim(fragment, `"`)
}

// SplitSlash splits a slash-delimited field, dropping empty tokens.
func SplitSlash(field string) []string {
	return common.FieldsAny(field, "/")
}
