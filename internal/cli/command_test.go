package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keggmod/internal/cmdutil"
	"keggmod/internal/config"
)

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var got Options
	cmd := NewCommand(config.New(), func(_ *cobra.Command, o Options) error {
		got = o
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestPositionals(t *testing.T) {
	o, err := parse(t, "Amino_Acids.txt", "/kegg")
	require.NoError(t, err)
	assert.Equal(t, "Amino_Acids.txt", o.Input)
	assert.Equal(t, "/kegg", o.KEGGDir)
	assert.Equal(t, config.Defaults(), o.Config)

	o, err = parse(t, "Vitamins.txt", "/kegg", "out")
	require.NoError(t, err)
	assert.Equal(t, "out", o.Config.OutputDir)
}

func TestMissingPositionals(t *testing.T) {
	for _, args := range [][]string{{}, {"only-input.txt"}, {"a", "b", "c", "d"}} {
		_, err := parse(t, args...)
		assert.Truef(t, errors.Is(err, ErrArgs), "args %v: %v", args, err)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "keggmod.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("on_missing: skip\nsource: fromfile\n"), 0o644))

	o, err := parse(t, "--config", fn, "--source", "flag", "-q", "in.txt", "/kegg")
	require.NoError(t, err)
	assert.Equal(t, config.OnMissingSkip, o.Config.OnMissing)
	assert.Equal(t, "flag", o.Config.Source)
	assert.True(t, o.Config.Quiet)
}

func TestBadConfigIsUsageError(t *testing.T) {
	_, err := parse(t, "--on-missing", "retry", "in.txt", "/kegg")
	var ee *cmdutil.ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, cmdutil.ExitUsage, ee.Code)
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(config.New(), func(*cobra.Command, Options) error {
		t.Fatal("run must not be called for --version")
		return nil
	})
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "keggmod version")
}
