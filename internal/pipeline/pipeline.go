// internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"keggmod/internal/common"
	"keggmod/internal/module"
	"keggmod/internal/sheet"
	"keggmod/internal/textio"
)

// Config controls how the spreadsheet is read.
type Config struct {
	Encoding string // textio encoding name; "" means UTF-8

	// OnOrphan is called for a row that cannot open a block (empty module id
	// while idle). The row is dropped either way.
	OnOrphan func(line int, err error)
}

// Header is the file-level information from the first line.
type Header struct {
	CompoundType string
}

// ForEachBlock opens path ("-" for stdin, ".gz" accepted) and runs Scan on it.
func ForEachBlock(ctx context.Context, cfg Config, path string, visit func(Header, *module.Block) error) error {
	rc, err := textio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, cfg, rc, visit)
}

// Scan reads the header, then data rows, calling visit for each block at a
// blank line and for the last open block at end of input. It returns the
// first error from parsing or visit, or ctx.Err() if cancelled.
func Scan(ctx context.Context, cfg Config, r io.Reader, visit func(Header, *module.Block) error) error {
	dr, err := textio.NewReader(r, cfg.Encoding)
	if err != nil {
		return err
	}
	br := bufio.NewReader(dr)

	first, err := readLine(br)
	if err == io.EOF && first == "" {
		return errors.WithStack(&sheet.HeaderError{Msg: "missing header line"})
	}
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "reading header")
	}
	ctype, err := sheet.ParseHeader(first)
	if err != nil {
		return err
	}
	hdr := Header{CompoundType: ctype}

	var acc module.Accumulator
	flush := func() error {
		if b := acc.Boundary(); b != nil {
			return visit(hdr, b)
		}
		return nil
	}

	ln := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, rerr := readLine(br)
		if rerr != nil && rerr != io.EOF {
			return errors.Wrapf(rerr, "reading line %d", ln+1)
		}
		if rerr == io.EOF && line == "" {
			break
		}
		ln++

		if common.IsBlank(line) {
			if err := flush(); err != nil {
				return err
			}
		} else {
			row, err := sheet.ParseRow(line, ln)
			if err != nil {
				return err
			}
			if err := acc.Feed(row); err != nil {
				if !errors.Is(err, module.ErrOrphanRow) {
					return err
				}
				if cfg.OnOrphan != nil {
					cfg.OnOrphan(ln, err)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	return flush()
}

// readLine returns the next line without its terminator. Bytes that were not
// valid in the input encoding are dropped.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = common.TrimEOL(line)
	line = strings.ToValidUTF8(line, "")
	line = strings.ReplaceAll(line, "\uFFFD", "")
	return line, err
}
