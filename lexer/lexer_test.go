package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/source"
	"github.com/dlink-lang/dlinkc/token"
)

func newPreprocessedSource(t *testing.T, raw string) (*source.Source, *config.CompilerMetadata) {
	t.Helper()
	src, err := source.New("test.dl")
	require.NoError(t, err)
	require.NoError(t, src.SetDecoded([]byte(raw)))

	var lines []source.Line
	if len(raw) > 0 {
		start := 0
		lineNo := 1
		for i := 0; i < len(raw); i++ {
			if raw[i] == '\n' {
				lines = append(lines, source.Line{Number: lineNo, Data: []byte(raw[start:i])})
				start = i + 1
				lineNo++
			}
		}
		if start < len(raw) {
			lines = append(lines, source.Line{Number: lineNo, Data: []byte(raw[start:])})
		}
	}
	require.NoError(t, src.SetPreprocessed(lines))
	opts, _ := config.NewCompilerOptions(config.CompilerOptionsParams{})
	return src, config.NewCompilerMetadata(opts)
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func hasDiagnostic(meta *config.CompilerMetadata, sev reporter.Severity, id int) bool {
	for _, d := range meta.Sink.All() {
		if d.Severity == sev && d.ID == id {
			return true
		}
	}
	return false
}

// Scenario A: a malformed binary literal reports the bad-digit diagnostic
// and the stage fails.
func TestLexScenarioABadBinaryDigit(t *testing.T) {
	src, meta := newPreprocessedSource(t, "0b1021")
	require.False(t, Lex(src, meta), "expected Lex to report failure")
	require.True(t, hasDiagnostic(meta, reporter.Error, 2000), "expected an E2000 diagnostic")
	require.Equal(t, source.Preprocessed, src.State(), "lex failure must not advance state")
}

// Scenario B: a decimal literal with a scientific-notation exponent merges
// into a single token whose trailing non-digit suffix is carried as postfix
// literal text rather than split into a separate token, since sub-pass A's
// has-meaning run never separates a digit run from an immediately adjacent
// letter run.
func TestLexScenarioBScientificNotation(t *testing.T) {
	src, meta := newPreprocessedSource(t, "1.5e+10x")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 1, "%+v", kindsOf(tokens))
	require.Equal(t, token.Decimal, tokens[0].Kind)
	require.Equal(t, "1.5e+10", string(tokens[0].Data))
	require.Equal(t, "x", string(tokens[0].PostfixLiteral))
}

// Scenario C: a maximal-munch triple-character operator is recognized
// whole, not split into Less/Less/Assign.
func TestLexScenarioCMaximalMunchOperator(t *testing.T) {
	src, meta := newPreprocessedSource(t, "<<=x")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 2, "%+v", kindsOf(tokens))
	require.Equal(t, token.BitShiftLeftAssign, tokens[0].Kind)
	require.Equal(t, token.Identifier, tokens[1].Kind)
}

// Scenario D: an escaped quote inside a string literal does not end it.
func TestLexScenarioDEscapedQuoteInString(t *testing.T) {
	src, meta := newPreprocessedSource(t, `"a\"b"`)
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 1, "%+v", kindsOf(tokens))
	require.Equal(t, token.String, tokens[0].Kind)
	require.Equal(t, `"a\"b"`, string(tokens[0].Data))
}

func TestLexEmptySourceProducesNoTokens(t *testing.T) {
	src, meta := newPreprocessedSource(t, "")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	require.Empty(t, src.Tokens())
}

func TestLexUnterminatedMultilineComment(t *testing.T) {
	src, meta := newPreprocessedSource(t, "x /* comment\nmore text")
	require.False(t, Lex(src, meta), "expected Lex to report failure")
	require.True(t, hasDiagnostic(meta, reporter.Error, 2007), "expected an E2007 diagnostic")
}

func TestLexUnterminatedString(t *testing.T) {
	src, meta := newPreprocessedSource(t, `"unterminated`)
	require.False(t, Lex(src, meta), "expected Lex to report failure")
	require.True(t, hasDiagnostic(meta, reporter.Error, 2009), "expected an E2009 diagnostic")
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	src, meta := newPreprocessedSource(t, "func foobar")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 2, "%+v", kindsOf(tokens))
	require.NotEqual(t, token.Identifier, tokens[0].Kind, "token[0] should be a keyword kind")
	require.Equal(t, token.Identifier, tokens[1].Kind)
}

// A dot immediately following an integer literal, with no whitespace gap,
// is always taken as a decimal point: if what follows isn't itself a
// digit-led fragment the merge fails rather than falling back to separate
// dot/identifier tokens.
func TestLexIntegerDotIdentifierIsAMergeFailure(t *testing.T) {
	src, meta := newPreprocessedSource(t, "42.field")
	require.False(t, Lex(src, meta), "expected Lex to report failure")
	require.True(t, hasDiagnostic(meta, reporter.Error, 2011), "expected an E2011 diagnostic")
}

// A dot following an identifier (not an integer) is left as a standalone
// token, since the merge rule only triggers after integer_dec.
func TestLexIdentifierDotIdentifierStaysSeparate(t *testing.T) {
	src, meta := newPreprocessedSource(t, "x.field")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 3, "%+v", kindsOf(tokens))
	require.Equal(t, token.Identifier, tokens[0].Kind)
	require.Equal(t, "x", string(tokens[0].Data))
	require.Equal(t, token.Dot, tokens[1].Kind)
	require.Equal(t, token.Identifier, tokens[2].Kind)
	require.Equal(t, "field", string(tokens[2].Data))
}

func TestLexBareTrailingDotMergesToDecimal(t *testing.T) {
	src, meta := newPreprocessedSource(t, "42. ")
	require.True(t, Lex(src, meta), "%+v", meta.Sink.All())
	tokens := src.Tokens()
	require.Lenf(t, tokens, 1, "%+v", kindsOf(tokens))
	require.Equal(t, token.Decimal, tokens[0].Kind)
	require.Equal(t, "42.", string(tokens[0].Data))
}
