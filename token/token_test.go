package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{None, "none"},
		{Identifier, "identifier"},
		{IntegerBin, "integer_bin"},
		{KeywordAuto, "keyword_auto"},
		{KeywordStaticAssert, "keyword_static_assert"},
		{KeywordTrue, "keyword_true"},
		{BitShiftLeftAssign, "bit_shift_left_assign"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.k.String())
	}
}

func TestKeywordsTableComplete(t *testing.T) {
	for word, kind := range Keywords {
		assert.NotEmptyf(t, kind.String(), "keyword %q maps to kind with empty spelling", word)
	}
	require.GreaterOrEqual(t, len(Keywords), 60)
}

func TestIsNumeric(t *testing.T) {
	for _, k := range []Kind{IntegerBin, IntegerOct, IntegerDec, IntegerHex, Decimal} {
		assert.Truef(t, k.IsNumeric(), "%v.IsNumeric()", k)
	}
	assert.False(t, Identifier.IsNumeric())
}

func TestTokenIsWhitespace(t *testing.T) {
	require.True(t, Token{Kind: Whitespace}.IsWhitespace())
	require.False(t, Token{Kind: Identifier}.IsWhitespace())
}
