package encoding

import "unicode/utf8"

// EOLKind identifies which end-of-line sequence was recognised.
type EOLKind int

const (
	NotEOL EOLKind = iota
	LF             // 0x0A
	CR             // 0x0D, not followed by LF
	CRLF           // 0x0D 0x0A
	FF             // 0x0C
	VT             // 0x0B
	NEL            // U+0085
	LS             // U+2028
	PS             // U+2029
	RS             // 0x1E
)

// Code points that require a \u escape to reference unambiguously: NEL
// (U+0085, a C1 control code), LINE SEPARATOR / PARAGRAPH SEPARATOR
// (U+2028 / U+2029), and the various Unicode space separators recognised
// alongside ASCII space and tab.
const (
	runeNEL              = ''
	runeLS               = ' '
	runePS               = ' '
	runeNoBreakSpace     = ' '
	runeOghamSpaceMark   = ' '
	runeEnQuad           = ' '
	runeEmQuad           = ' '
	runeEnSpace          = ' '
	runeEmSpace          = ' '
	runeThreePerEmSpace  = ' '
	runeFourPerEmSpace   = ' '
	runeSixPerEmSpace    = ' '
	runeFigureSpace      = ' '
	runePunctuationSpace = ' '
	runeThinSpace        = ' '
	runeHairSpace        = ' '
	runeNarrowNoBreak    = ' '
	runeMedMathSpace     = ' '
	runeIdeographicSpace = '　'
)

// ClassifyEOL inspects data starting at offset i and reports whether it
// begins with a recognised end-of-line sequence. On a match it returns the
// kind and the number of bytes the sequence occupies (2 for CR+LF, else the
// width of the single code point). On no match it returns (NotEOL, 0) and
// leaves the caller's read position conceptually unchanged: this function
// peeks, it never consumes past the match it reports.
func ClassifyEOL(data []byte, i int) (EOLKind, int) {
	if i >= len(data) {
		return NotEOL, 0
	}
	switch data[i] {
	case 0x0A:
		return LF, 1
	case 0x0D:
		if i+1 < len(data) && data[i+1] == 0x0A {
			return CRLF, 2
		}
		return CR, 1
	case 0x0C:
		return FF, 1
	case 0x0B:
		return VT, 1
	case 0x1E:
		return RS, 1
	}

	r, size := utf8.DecodeRune(data[i:])
	if r == utf8.RuneError {
		return NotEOL, 0
	}
	switch r {
	case runeNEL:
		return NEL, size
	case runeLS:
		return LS, size
	case runePS:
		return PS, size
	}
	return NotEOL, 0
}

// exoticSpaces lists the whitespace code points beyond plain ASCII space
// and tab: no-break space, ideographic space, and the various fixed-width
// spaces used in typesetting.
var exoticSpaces = map[rune]bool{
	runeNoBreakSpace:     true,
	runeOghamSpaceMark:   true,
	runeEnQuad:           true,
	runeEmQuad:           true,
	runeEnSpace:          true,
	runeEmSpace:          true,
	runeThreePerEmSpace:  true,
	runeFourPerEmSpace:   true,
	runeSixPerEmSpace:    true,
	runeFigureSpace:      true,
	runePunctuationSpace: true,
	runeThinSpace:        true,
	runeHairSpace:        true,
	runeNarrowNoBreak:    true,
	runeMedMathSpace:     true,
	runeIdeographicSpace: true,
}

// IsExoticSpace reports whether r is one of the non-ASCII whitespace code
// points recognised alongside plain space and tab. Exposed so diagnostic
// rendering can normalise an excerpt line the same way the lexer classifies
// it, without duplicating the table.
func IsExoticSpace(r rune) bool {
	return exoticSpaces[r]
}

// ClassifyWhitespace reports whether data at offset i is whitespace: any
// recognised EOL sequence, an ASCII tab or space, or one of the exotic
// Unicode space separators. It returns the number of bytes consumed, or 0
// if data at i is not whitespace — in which case, per §4.1, the stream
// position is unchanged from the caller's point of view.
func ClassifyWhitespace(data []byte, i int) int {
	if kind, n := ClassifyEOL(data, i); kind != NotEOL {
		return n
	}
	if i >= len(data) {
		return 0
	}
	if data[i] == 0x09 || data[i] == 0x20 {
		return 1
	}
	r, size := utf8.DecodeRune(data[i:])
	if r != utf8.RuneError && exoticSpaces[r] {
		return size
	}
	return 0
}
