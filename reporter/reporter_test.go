package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullID(t *testing.T) {
	d := Diagnostic{Severity: Error, ID: 1001}
	require.Equal(t, "DE1001", d.FullID())
}

func TestCatalogueFormat(t *testing.T) {
	c := NewCatalogue()
	got := c.Format(Error, 1001, "utf8")
	require.Equal(t, "Failed to decode the input using 'utf8'.", got)
}

func TestCatalogueFormatUnknown(t *testing.T) {
	c := NewCatalogue()
	got := c.Format(Error, 9999)
	require.Contains(t, got, "9999")
}

func TestCatalogueOverlayJSON(t *testing.T) {
	c := NewCatalogue()
	overlay := []byte(`{"error": {"1000": "Could not open '%1%'."}}`)
	require.NoError(t, c.LoadOverlay(overlay))
	got := c.Format(Error, 1000, "a.dl")
	require.Equal(t, "Could not open 'a.dl'.", got)
}

func TestCatalogueOverlayYAML(t *testing.T) {
	c := NewCatalogue()
	overlay := []byte("warning:\n  \"1100\": \"warned: #warning\"\n")
	require.NoError(t, c.LoadOverlay(overlay))
	require.Equal(t, "warned: #warning", c.Format(Warning, 1100))
}

func TestSinkQueries(t *testing.T) {
	s := NewSink()
	require.False(t, s.AnyError() || s.AnyWarning() || s.AnyInfo(), "empty sink should report no diagnostics of any severity")

	s.Push(Diagnostic{Severity: Warning, ID: 1100})
	require.False(t, s.AnyError(), "AnyError should be false after only a warning was pushed")
	require.True(t, s.AnyWarning())

	s.Push(Diagnostic{Severity: Error, ID: 2000})
	require.True(t, s.AnyError(), "AnyError should be true after an error was pushed")
	require.Len(t, s.All(), 2)
}

func TestRenderExcerptBasic(t *testing.T) {
	line := []byte("0b1021")
	excerpt := RenderExcerpt(1, line, 3, 1)
	lines := strings.Split(excerpt, "\n")
	require.Lenf(t, lines, 3, "expected 3-line excerpt, got %q", excerpt)
	require.Contains(t, lines[1], "0b1021")
	require.Contains(t, lines[2], "^")
}

func TestRenderExcerptTabAlignment(t *testing.T) {
	line := []byte("\tx")
	excerpt := RenderExcerpt(1, line, 1, 1)
	lines := strings.Split(excerpt, "\n")
	caretCol := strings.Index(lines[2], "^") - strings.Index(lines[2], "| ") - 2
	require.Equal(t, defaultTabstop, caretCol, "caret column should reflect tab expanded to tabstop width")
}

func TestDiagnosticRender(t *testing.T) {
	d := Diagnostic{
		Severity: Error,
		ID:       1000,
		Text:     "Failed to open the input.",
		Where:    "a.dl:1:1",
	}
	rendered := d.Render()
	require.True(t, strings.HasPrefix(rendered, "error[DE1000]: Failed to open the input."), "unexpected render header: %q", rendered)
	require.Contains(t, rendered, " --> a.dl:1:1")
}
