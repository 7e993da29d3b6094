package lexer

import "github.com/dlink-lang/dlinkc/token"

// numErr records a numeric-literal diagnostic: the catalogue ID, its
// template arguments, and the byte offset within the fragment it points at.
type numErr struct {
	id     int
	args   []string
	offset int
	length int
}

// numResult is the outcome of classifying one fragment as a numeric
// literal: the resulting kind, how many leading bytes of data belong to the
// literal proper (the rest is the postfix literal), and whether the
// consumed run ends exactly on a trailing 'e'/'E' with nothing after it
// (a candidate for the scientific-notation 3-token merge).
type numResult struct {
	kind    token.Kind
	mainLen int
	err     *numErr
	endsOnE bool
}

func (r numResult) postfix(data []byte) []byte {
	return data[r.mainLen:]
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func isBinDigit(b byte) bool { return b == '0' || b == '1' || b == '_' }

func isOctDigit(b byte) bool { return (b >= '0' && b <= '7') || b == '_' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_'
}

func isDecDigit(b byte) bool { return (b >= '0' && b <= '9') || b == '_' }

// classifyNumericFragment runs the numeric literal algorithm (spec §4.6)
// against data, whose first byte must be an ASCII digit, unless
// forceDecimal is set — used for the decimal-fraction-only classification
// the dot-merge rule requires, which never interprets a leading "0" as the
// start of an octal/binary/hex literal.
func classifyNumericFragment(data []byte, forceDecimal bool) numResult {
	if !forceDecimal {
		if len(data) == 1 && data[0] == '0' {
			return numResult{kind: token.IntegerDec, mainLen: 1}
		}
		if len(data) >= 2 && data[0] == '0' && (data[1] == 'b' || data[1] == 'B') {
			return classifyBase(data, 2, token.IntegerBin, isBinDigit, 2000, 2004)
		}
		if len(data) >= 2 && data[0] == '0' && (data[1] == 'x' || data[1] == 'X') {
			return classifyBase(data, 2, token.IntegerHex, isHexDigit, 2003, 2005)
		}
		if data[0] == '0' {
			return classifyOctal(data)
		}
	}
	return classifyDecimal(data)
}

// classifyBase handles the base-2 and base-16 sub-routine: requires at
// least one valid digit after the prefix, else emits noDigitsID (2004 for
// binary, 2005 for hex). For base 2 only, an ASCII digit outside {0,1} is
// reported via badDigitID (2000); any other non-digit byte starts the
// postfix literal.
func classifyBase(data []byte, prefixLen int, kind token.Kind, valid func(byte) bool, badDigitID, noDigitsID int) numResult {
	body := data[prefixLen:]
	idx := 0
	for idx < len(body) {
		c := body[idx]
		if valid(c) {
			idx++
			continue
		}
		if kind == token.IntegerBin && isASCIIDigit(c) {
			return numResult{
				kind:    kind,
				mainLen: len(data),
				err:     &numErr{id: badDigitID, args: []string{string(c)}, offset: prefixLen + idx, length: 1},
			}
		}
		break
	}
	if idx == 0 {
		return numResult{
			kind:    kind,
			mainLen: len(data),
			err:     &numErr{id: noDigitsID, offset: 0, length: len(data)},
		}
	}
	return numResult{kind: kind, mainLen: prefixLen + idx}
}

// classifyOctal handles the base-8 branch entered by a leading "0" that
// isn't "0b"/"0x". A digit 8 or 9 is an error (2001); any other non-octal,
// non-underscore byte starts the postfix literal. If trimming the postfix
// leaves just "0", the literal relabels to integer_dec — preserved exactly
// as specified even though it is asymmetric with the base-2/16 paths.
func classifyOctal(data []byte) numResult {
	idx := 1
	for idx < len(data) {
		c := data[idx]
		if isOctDigit(c) {
			idx++
			continue
		}
		if c == '8' || c == '9' {
			return numResult{
				kind:    token.IntegerOct,
				mainLen: len(data),
				err:     &numErr{id: 2001, args: []string{string(c)}, offset: idx, length: 1},
			}
		}
		break
	}
	kind := token.IntegerOct
	if idx == 1 {
		kind = token.IntegerDec
	}
	return numResult{kind: kind, mainLen: idx}
}

// classifyDecimal handles the default decimal branch: digits and
// underscores, with a single 'e'/'E' permitted as a scientific-notation
// marker. If consumption ends exactly on that marker (no postfix), endsOnE
// is set so the caller can attempt the 3-token exponent merge.
func classifyDecimal(data []byte) numResult {
	idx := 0
	sawE := false
	for idx < len(data) {
		c := data[idx]
		if isDecDigit(c) {
			idx++
			continue
		}
		if (c == 'e' || c == 'E') && !sawE {
			sawE = true
			idx++
			continue
		}
		break
	}
	endsOnE := sawE && idx == len(data) && (data[idx-1] == 'e' || data[idx-1] == 'E')
	return numResult{kind: token.IntegerDec, mainLen: idx, endsOnE: endsOnE}
}
