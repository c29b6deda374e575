// internal/module/accumulator.go
package module

import (
	"github.com/pkg/errors"

	"keggmod/internal/sheet"
)

type State int

const (
	Idle State = iota
	Accumulating
)

func (s State) String() string {
	if s == Accumulating {
		return "accumulating"
	}
	return "idle"
}

// ErrOrphanRow is returned by Feed for a row that cannot open a block because
// its module id column is empty.
var ErrOrphanRow = errors.New("row has no module id and no block is open")

// Accumulator groups rows into blocks. The zero value is ready to use.
type Accumulator struct {
	open *Block
}

func (a *Accumulator) State() State {
	if a.open == nil {
		return Idle
	}
	return Accumulating
}

// Current returns the open block, or nil when idle.
func (a *Accumulator) Current() *Block { return a.open }

// Feed applies a non-blank row. While idle, only a row carrying a module id
// opens a block; any other row is rejected with ErrOrphanRow and changes nothing.
func (a *Accumulator) Feed(r sheet.Row) error {
	if a.open == nil {
		if r.ModuleID == "" {
			return errors.Wrapf(ErrOrphanRow, "line %d", r.Line)
		}
		a.open = NewBlock(r.ModuleID, r.Target, r.Line)
	}
	a.open.Apply(r)
	return nil
}

// Boundary closes the open block and returns it. It returns nil when idle, so
// repeated boundaries (or EOF after a boundary) never yield an empty block.
func (a *Accumulator) Boundary() *Block {
	b := a.open
	a.open = nil
	return b
}
