package lexer

import (
	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/token"
)

// classifySubpassB walks the sub-pass-A token vector and produces the
// final token vector: none_hm fragments become numeric/identifier/keyword
// tokens, integer_dec+dot+fraction triples collapse into decimal tokens,
// and every synthetic whitespace token is dropped.
func classifySubpassB(path string, tokens []token.Token, meta *config.CompilerMetadata) ([]token.Token, bool) {
	ok := true
	out := make([]token.Token, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.Whitespace:
			i++

		case token.NoneHM:
			if isASCIIDigit(t.Data[0]) {
				classified, consumed, success := classifyNumberAndMerge(path, tokens, i, false, meta)
				out = append(out, classified)
				i += consumed
				if !success {
					ok = false
				}
				continue
			}
			nt := t
			if kind, isKeyword := token.Keywords[string(t.Data)]; isKeyword {
				nt.Kind = kind
			} else {
				nt.Kind = token.Identifier
			}
			out = append(out, nt)
			i++

		case token.Dot:
			adjacent := i > 0 && tokens[i-1].Kind != token.Whitespace
			if adjacent && len(out) > 0 && out[len(out)-1].Kind == token.IntegerDec {
				prev := out[len(out)-1]
				if i+1 >= len(tokens) || tokens[i+1].Kind != token.NoneHM {
					merged := prev
					merged.Kind = token.Decimal
					merged.Data = prev.LineData[prev.Column : t.Column+len(t.Data)]
					out[len(out)-1] = merged
					i++
					continue
				}
				frac, consumed, success := classifyNumberAndMerge(path, tokens, i+1, true, meta)
				if frac.Kind == token.IntegerDec {
					merged := prev
					merged.Kind = token.Decimal
					merged.Data = prev.LineData[prev.Column : frac.Column+len(frac.Data)]
					merged.PostfixLiteral = frac.PostfixLiteral
					out[len(out)-1] = merged
					i += 1 + consumed
					if !success {
						ok = false
					}
					continue
				}
				emitLexErr(meta, path, t.Line, t.LineData, t.Column, len(t.Data), reporter.Error, 2011)
				ok = false
				i++
				continue
			}
			out = append(out, t)
			i++

		default:
			out = append(out, t)
			i++
		}
	}

	return out, ok
}

// classifyNumberAndMerge classifies the none_hm token tokens[i] as a
// numeric literal and, if it ends on a bare scientific-notation marker,
// attempts the 3-token merge with a following sign and digit fragment. It
// returns the resulting token, how many entries of tokens it consumed
// (starting at i), and whether the classification succeeded without an
// error-severity diagnostic.
func classifyNumberAndMerge(path string, tokens []token.Token, i int, fractionMode bool, meta *config.CompilerMetadata) (token.Token, int, bool) {
	t := tokens[i]
	res := classifyNumericFragment(t.Data, fractionMode)

	if fractionMode && !isASCIIDigit(t.Data[0]) {
		// No leading digit at all (e.g. an identifier immediately after a
		// bare dot): not a fraction. The caller (the dot-merge rule) treats
		// a non-integer_dec result as failure and reports 2011 itself.
		nt := t
		nt.Kind = token.NoneHM
		return nt, 1, true
	}

	ok := res.err == nil
	if res.err != nil {
		emitLexErr(meta, path, t.Line, t.LineData, t.Column+res.err.offset, res.err.length, reporter.Error, res.err.id, res.err.args...)
	}

	nt := t
	nt.Kind = res.kind
	nt.Data = t.Data[:res.mainLen]
	nt.PostfixLiteral = res.postfix(t.Data)

	if !res.endsOnE || res.err != nil {
		return nt, 1, ok
	}

	if i+1 < len(tokens) && (tokens[i+1].Kind == token.Plus || tokens[i+1].Kind == token.Minus) {
		if i+2 < len(tokens) && tokens[i+2].Kind == token.NoneHM {
			frac := tokens[i+2]
			fracRes := classifyNumericFragment(frac.Data, false)
			if fracRes.err == nil && fracRes.kind == token.IntegerDec {
				nt.Kind = token.IntegerDec
				nt.Data = t.LineData[t.Column : frac.Column+fracRes.mainLen]
				nt.PostfixLiteral = fracRes.postfix(frac.Data)
				return nt, 3, ok
			}
		}
		emitLexErr(meta, path, t.Line, t.LineData, t.Column, len(t.Data), reporter.Error, 2010)
		ok = false
	}

	// Back out: the trailing 'e'/'E' was not part of a valid exponent: trim
	// it into the postfix literal instead.
	nt.Data = t.Data[:res.mainLen-1]
	nt.PostfixLiteral = t.Data[res.mainLen-1:]
	return nt, 1, ok
}

func emitLexErr(meta *config.CompilerMetadata, path string, lineNo int, lineData []byte, col, length int, sev reporter.Severity, id int, args ...string) {
	meta.Sink.Push(reporter.Diagnostic{
		Severity: sev,
		ID:       id,
		Text:     meta.Catalogue.Format(sev, id, args...),
		Where:    reporter.Location(path, lineNo, col),
		Excerpt:  reporter.RenderExcerpt(lineNo, lineData, col, length),
	})
}
