package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/source"
)

func newDecodedSource(t *testing.T, raw string) (*source.Source, *config.CompilerMetadata) {
	t.Helper()
	src, err := source.New("test.dl")
	require.NoError(t, err)
	require.NoError(t, src.SetDecoded([]byte(raw)))
	opts, _ := config.NewCompilerOptions(config.CompilerOptionsParams{})
	return src, config.NewCompilerMetadata(opts)
}

func TestPreprocessPlainLinesSurvive(t *testing.T) {
	src, meta := newDecodedSource(t, "a\nb\nc")
	require.True(t, Preprocess(src, meta), "%+v", meta.Sink.All())
	lines := src.Lines()
	require.Len(t, lines, 3)
	for idx, want := range []string{"a", "b", "c"} {
		require.Equal(t, want, string(lines[idx].Data))
	}
}

func TestPreprocessEmptyBuffer(t *testing.T) {
	src, meta := newDecodedSource(t, "")
	require.True(t, Preprocess(src, meta), "%+v", meta.Sink.All())
	require.Empty(t, src.Lines())
}

func TestPreprocessTrailingNewlineNoSpuriousLine(t *testing.T) {
	src, meta := newDecodedSource(t, "a\n")
	require.True(t, Preprocess(src, meta), "%+v", meta.Sink.All())
	require.Len(t, src.Lines(), 1)
}

// Scenario E from the concrete scenarios table.
func TestPreprocessErrorAndWarningMix(t *testing.T) {
	src, meta := newDecodedSource(t, "#warning deprecated\n#error bad\ncode")
	require.False(t, Preprocess(src, meta))

	diags := meta.Sink.All()
	var sawWarning, sawError bool
	for _, d := range diags {
		if d.Severity == reporter.Warning && d.ID == 1101 {
			sawWarning = true
		}
		if d.Severity == reporter.Error && d.ID == 1104 {
			sawError = true
		}
	}
	require.True(t, sawWarning, "expected a W1101 diagnostic")
	require.True(t, sawError, "expected an E1104 diagnostic")

	lines := src.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "code", string(lines[0].Data))
}

// Scenario F from the concrete scenarios table.
func TestPreprocessUnknownDirective(t *testing.T) {
	src, meta := newDecodedSource(t, "#frobnicate x")
	require.False(t, Preprocess(src, meta))

	found := false
	for _, d := range meta.Sink.All() {
		if d.Severity == reporter.Error && d.ID == 1105 {
			found = true
		}
	}
	require.True(t, found, "expected an E1105 diagnostic")
}

func TestPreprocessEmptyDirectiveName(t *testing.T) {
	src, meta := newDecodedSource(t, "#")
	require.False(t, Preprocess(src, meta))

	found := false
	for _, d := range meta.Sink.All() {
		if d.ID == 1100 {
			found = true
		}
	}
	require.True(t, found, "expected a 1100 diagnostic")
}

// A non-alphabetic byte glued directly onto the directive name run (no
// intervening whitespace) is a bad byte at that position, not the start of
// the argument.
func TestPreprocessNonAlphaByteGluedToDirectiveName(t *testing.T) {
	src, meta := newDecodedSource(t, "#error1")
	require.False(t, Preprocess(src, meta))

	found := false
	for _, d := range meta.Sink.All() {
		if d.Severity == reporter.Error && d.ID == 1101 {
			found = true
		}
	}
	require.True(t, found, "expected an E1101 diagnostic")
}
