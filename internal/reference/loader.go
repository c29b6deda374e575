// internal/reference/loader.go
package reference

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"keggmod/internal/common"
	"keggmod/internal/textio"
)

// DefinitionField is the header name of the column holding enzyme definitions.
const DefinitionField = "definition"

// Table maps an enzyme identifier to its textual definition. Read-only once loaded.
type Table struct {
	Path string
	defs map[string]string
}

// FromMap builds a table directly from id -> definition pairs.
func FromMap(m map[string]string) *Table {
	t := &Table{defs: make(map[string]string, len(m))}
	for k, v := range m {
		t.defs[k] = v
	}
	return t
}

// Definition returns the definition recorded for id.
func (t *Table) Definition(id string) (string, bool) {
	d, ok := t.defs[id]
	return d, ok
}

func (t *Table) Len() int { return len(t.defs) }

// FormatError points at the offending line of a reference file.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// LoadTSV reads a tab-separated reference file (KEGG ko_list.txt layout):
// a header row naming the columns, the enzyme id in the first column and a
// column named "definition". Blank lines are skipped.
func LoadTSV(path string) (*Table, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Read(rc, path)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Read parses a reference table from r; name is only used in errors.
func Read(r io.Reader, name string) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	t := &Table{defs: make(map[string]string, 1<<15)}
	col := -1
	ln := 0
	for sc.Scan() {
		ln++
		line := common.TrimEOL(sc.Text())
		if common.IsBlank(line) {
			continue
		}
		f := strings.Split(line, "\t")
		if col < 0 {
			for i, h := range f {
				if strings.TrimSpace(h) == DefinitionField {
					col = i
					break
				}
			}
			if col <= 0 {
				return nil, errors.WithStack(&FormatError{Path: name, Line: ln,
					Msg: fmt.Sprintf("header has no %q field after the key column", DefinitionField)})
			}
			continue
		}
		if len(f) <= col {
			return nil, errors.WithStack(&FormatError{Path: name, Line: ln,
				Msg: fmt.Sprintf("expected at least %d fields, got %d", col+1, len(f))})
		}
		id := strings.TrimSpace(f[0])
		if id == "" {
			return nil, errors.WithStack(&FormatError{Path: name, Line: ln, Msg: "empty key"})
		}
		if _, dup := t.defs[id]; dup {
			return nil, errors.WithStack(&FormatError{Path: name, Line: ln, Msg: fmt.Sprintf("duplicate key %q", id)})
		}
		t.defs[id] = f[col]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if col < 0 {
		return nil, errors.WithStack(&FormatError{Path: name, Msg: "missing header"})
	}
	return t, nil
}
