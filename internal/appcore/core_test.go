package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keggmod/internal/cmdutil"
	"keggmod/internal/config"
	"keggmod/internal/output"
	"keggmod/internal/reference"
)

type memSink struct {
	files map[string]string
	order []string
	fail  string
}

func (m *memSink) Put(id, text string) (string, error) {
	if id == m.fail {
		return "", errors.New("disk full")
	}
	if m.files == nil {
		m.files = map[string]string{}
	}
	m.files[id] = text
	m.order = append(m.order, id)
	return "mem/" + id, nil
}

var defs = reference.FromMap(map[string]string{
	"K00001": "enzyme A",
	"K00002": "enzyme B",
})

func row(fields ...string) string {
	for len(fields) < 7 {
		fields = append(fields, "")
	}
	return strings.Join(fields, "\t") + "\n"
}

func writeInput(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "Amino_Acids.txt")
	require.NoError(t, os.WriteFile(fn, []byte("Module\tAmino Acid\n"+body), 0o644))
	return fn
}

func run(t *testing.T, in, policy string, sink Sink) (Summary, string, string, error) {
	t.Helper()
	var report, logs bytes.Buffer
	sum, err := Run(context.Background(), &report, cmdutil.NewLogger(&logs, false, false),
		Options{Input: in, OnMissing: policy, Source: output.SourceKOfam}, defs, sink)
	return sum, report.String(), logs.String(), err
}

func TestRunWritesEveryBlock(t *testing.T) {
	in := writeInput(t,
		row("UM1", "lysine", "", "K00001", "", "", "map00300")+
			row("", "", "", "AND")+
			row("", "", "", "K00002")+
			"\n"+
			row("UM2", "threonine", "", "K00002"))
	sink := &memSink{}
	sum, report, _, err := run(t, in, config.OnMissingAbort, sink)
	require.NoError(t, err)

	assert.Equal(t, []string{"UM1", "UM2"}, sink.order)
	assert.Equal(t, []string{"mem/UM1", "mem/UM2"}, sum.Written)
	assert.Empty(t, sum.Skipped)
	assert.Equal(t,
		"Printed UM1 to output file path: mem/UM1\n"+
			"Printed UM2 to output file path: mem/UM2\n", report)
	assert.Contains(t, sink.files["UM1"], "DEFINITION  K00001 K00002\n")
	assert.Contains(t, sink.files["UM1"], "PATHWAY     map00300\n")
}

func TestRunAbortOnMissingEnzyme(t *testing.T) {
	in := writeInput(t,
		row("UM1", "x", "", "K00001")+"\n"+
			row("UM2", "y", "", "K07777")+"\n"+
			row("UM3", "z", "", "K00002"))
	sink := &memSink{}
	sum, _, _, err := run(t, in, config.OnMissingAbort, sink)
	require.Error(t, err)

	var ee *cmdutil.ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, cmdutil.ExitRuntime, ee.Code)
	var miss *output.MissingEnzymeError
	require.True(t, errors.As(err, &miss))
	assert.Equal(t, "UM2", miss.ModuleID)
	assert.Equal(t, "K07777", miss.EnzymeID)

	assert.Equal(t, []string{"UM1"}, sink.order, "earlier records stay, nothing for UM2 or later")
	assert.Len(t, sum.Written, 1)
}

func TestRunSkipOnMissingEnzyme(t *testing.T) {
	in := writeInput(t,
		row("UM1", "x", "", "K00001")+"\n"+
			row("UM2", "y", "", "K07777")+"\n"+
			row("UM3", "z", "", "K00002"))
	sink := &memSink{}
	sum, report, logs, err := run(t, in, config.OnMissingSkip, sink)
	require.NoError(t, err)

	assert.Equal(t, []string{"UM1", "UM3"}, sink.order)
	assert.Equal(t, []string{"UM2"}, sum.Skipped)
	assert.NotContains(t, report, "UM2")
	assert.Contains(t, logs, "UM2")
	assert.Contains(t, logs, "K07777")
}

func TestRunMalformedRow(t *testing.T) {
	in := writeInput(t, row("UM1", "x", "", "K00001")+"UM2\tshort\n")
	_, _, _, err := run(t, in, config.OnMissingAbort, &memSink{})
	var ee *cmdutil.ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, cmdutil.ExitRuntime, ee.Code)
	assert.Contains(t, err.Error(), "line 3")
}

func TestRunSinkFailure(t *testing.T) {
	in := writeInput(t, row("UM1", "x", "", "K00001"))
	_, _, _, err := run(t, in, config.OnMissingAbort, &memSink{fail: "UM1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module UM1")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunCancelled(t *testing.T) {
	in := writeInput(t, row("UM1", "x", "", "K00001"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var report, logs bytes.Buffer
	_, err := Run(ctx, &report, cmdutil.NewLogger(&logs, true, false),
		Options{Input: in, OnMissing: config.OnMissingAbort}, defs, &memSink{})
	var ee *cmdutil.ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, cmdutil.ExitCanceled, ee.Code)
}

func TestRunOrphanRowWarns(t *testing.T) {
	in := writeInput(t, row("", "", "", "K00002")+row("UM1", "x", "", "K00001"))
	sink := &memSink{}
	_, _, logs, err := run(t, in, config.OnMissingAbort, sink)
	require.NoError(t, err)
	assert.Contains(t, logs, "ignoring row outside any module")
	assert.Equal(t, []string{"UM1"}, sink.order)
	assert.NotContains(t, sink.files["UM1"], "K00002")
}

func TestDirSink(t *testing.T) {
	out := t.TempDir()
	s, err := NewDirSink(out)
	require.NoError(t, err)
	p, err := s.Put("UM1", "ENTRY       UM1\n///\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "modules", "UM1"), p)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "ENTRY       UM1\n///\n", string(b))
}
