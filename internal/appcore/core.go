// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"keggmod/internal/cmdutil"
	"keggmod/internal/config"
	"keggmod/internal/module"
	"keggmod/internal/output"
	"keggmod/internal/pipeline"
	"keggmod/internal/writers"
)

type Options struct {
	Input     string
	Encoding  string
	OnMissing string // config.OnMissingAbort or config.OnMissingSkip
	Source    string
}

// Summary counts what a run did.
type Summary struct {
	Written []string // paths, in input order
	Skipped []string // module ids dropped by the skip policy
}

// Run converts every block of o.Input into a record in sink. One report line
// per written record goes to report. The returned error is an
// *cmdutil.ExitError; records written before a failure are kept.
func Run(
	ctx context.Context,
	report io.Writer,
	logger *log.Logger,
	o Options,
	defs output.Lookup,
	sink Sink,
) (Summary, error) {
	var sum Summary
	outw := bufio.NewWriter(report)
	reportOK := true

	cfg := pipeline.Config{
		Encoding: o.Encoding,
		OnOrphan: func(line int, err error) {
			logger.Warn("ignoring row outside any module", "line", line)
		},
	}

	err := pipeline.ForEachBlock(ctx, cfg, o.Input, func(h pipeline.Header, b *module.Block) error {
		text, err := output.Render(b, defs, output.Options{CompoundType: h.CompoundType, Source: o.Source})
		if err != nil {
			var miss *output.MissingEnzymeError
			if errors.As(err, &miss) && o.OnMissing == config.OnMissingSkip {
				logger.Warn("skipping module", "module", miss.ModuleID, "enzyme", miss.EnzymeID, "line", b.StartLine)
				sum.Skipped = append(sum.Skipped, b.ModuleID)
				return nil
			}
			return err
		}

		path, err := sink.Put(b.ModuleID, text)
		if err != nil {
			return errors.Wrapf(err, "module %s", b.ModuleID)
		}
		sum.Written = append(sum.Written, path)
		logger.Debug("module written", "module", b.ModuleID, "enzymes", b.Enzymes.Len(), "line", b.StartLine)

		if reportOK {
			if _, err := fmt.Fprintf(outw, "Printed %s to output file path: %s\n", b.ModuleID, path); err != nil {
				return reportErr(err, &reportOK)
			}
		}
		return nil
	})

	if e := outw.Flush(); e != nil && err == nil {
		err = reportErr(e, &reportOK)
	}

	switch {
	case err == nil:
		return sum, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return sum, &cmdutil.ExitError{Code: cmdutil.ExitCanceled, Err: err}
	}
	return sum, cmdutil.Runtime(err)
}

// reportErr swallows a broken report pipe (stop reporting, keep converting)
// and passes anything else through.
func reportErr(err error, ok *bool) error {
	if writers.IsBrokenPipe(err) {
		*ok = false
		return nil
	}
	return errors.Wrap(err, "writing report")
}
