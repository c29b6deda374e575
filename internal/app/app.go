// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"keggmod/internal/appcore"
	"keggmod/internal/cli"
	"keggmod/internal/cmdutil"
	"keggmod/internal/config"
	"keggmod/internal/reference"
	"keggmod/internal/textio"
	"keggmod/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewCommand(config.New(), func(cmd *cobra.Command, o cli.Options) error {
		return convert(cmd.Context(), stdout, stderr, o)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return cmdutil.ExitOK
	}

	var ee *cmdutil.ExitError
	if !errors.As(err, &ee) {
		// argument or flag parsing failed before anything ran
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return cmdutil.ExitUsage
	}
	if ee.Code != cmdutil.ExitCanceled && !writers.IsBrokenPipe(ee.Err) {
		_, _ = fmt.Fprintln(stderr, err)
	}
	return ee.Code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func convert(ctx context.Context, stdout, stderr io.Writer, o cli.Options) error {
	logger := cmdutil.NewLogger(stderr, o.Config.Quiet, o.Config.Verbose)

	if o.Input != textio.Stdin {
		if _, err := os.Stat(o.Input); err != nil {
			return cmdutil.Usage(errors.Errorf("No input file at %s", o.Input))
		}
	}
	refPath := filepath.Join(o.KEGGDir, o.Config.ReferenceFile)
	if _, err := os.Stat(refPath); err != nil {
		return cmdutil.Usage(errors.Errorf("No KO list file at %s", refPath))
	}
	table, err := reference.LoadTSV(refPath)
	if err != nil {
		return cmdutil.Usage(err)
	}
	logger.Debug("reference table loaded", "path", refPath, "entries", table.Len())

	sink, err := appcore.NewDirSink(o.Config.OutputDir)
	if err != nil {
		return cmdutil.Runtime(err)
	}

	sum, err := appcore.Run(ctx, stdout, logger, appcore.Options{
		Input:     o.Input,
		Encoding:  o.Config.Encoding,
		OnMissing: o.Config.OnMissing,
		Source:    o.Config.Source,
	}, table, sink)
	if err != nil {
		return err
	}
	logger.Info("conversion finished", "written", len(sum.Written), "skipped", len(sum.Skipped), "dir", sink.Dir)
	return nil
}
