// Package lexer implements the two-sub-pass tokenizer: sub-pass A is a
// coarse byte scan that produces whitespace placeholders, none_hm
// fragments, string/character literals, and operator tokens; sub-pass B
// classifies each none_hm fragment as a numeric literal, keyword, or
// identifier, merges decimal-point and scientific-notation fragments, and
// drops the whitespace placeholders.
package lexer

import (
	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/source"
)

// Lex runs both sub-passes over src's preprocessed lines and, on success,
// installs the resulting token vector via src.SetLexed. On failure the
// Source is left at the Preprocessed state with no token vector installed,
// per SetLexed's contract.
func Lex(src *source.Source, meta *config.CompilerMetadata) bool {
	if err := src.CheckAtLeast(source.Preprocessed); err != nil {
		panic(err)
	}

	rawTokens, okA := scanSubpassA(src.Path(), src.Lines(), meta)
	tokens, okB := classifySubpassB(src.Path(), rawTokens, meta)
	if !okA || !okB {
		return false
	}

	if err := src.SetLexed(tokens); err != nil {
		panic(err)
	}
	return true
}
