package reporter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlink-lang/dlinkc/encoding"
	"github.com/dlink-lang/dlinkc/internal/width"
)

const defaultTabstop = 4

// Location formats a "<path>:<line>:<col>" string. Produced eagerly so a
// Diagnostic never needs to borrow from the Source it was raised against.
func Location(path string, line, col int) string {
	return fmt.Sprintf("%s:%d:%d", path, line, col+1)
}

// RenderExcerpt builds the 3-line excerpt box for a diagnostic pointing at
// byte offset [col, col+length) of lineData (the physical line at 1-based
// lineNo): a blank gutter, the line-number gutter followed by the line with
// tabs expanded to the next tabstop and exotic spaces replaced by single
// ASCII spaces, and a blank gutter followed by a caret span aligned to the
// normalised column.
func RenderExcerpt(lineNo int, lineData []byte, col, length int) string {
	normalized, colMap := normalizeLine(lineData, defaultTabstop)

	gutter := strconv.Itoa(lineNo)
	pad := strings.Repeat(" ", len(gutter))

	startCol := mapColumn(colMap, col)
	endCol := mapColumn(colMap, col+length)
	if endCol <= startCol {
		endCol = startCol + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%s | %s\n", gutter, normalized)
	fmt.Fprintf(&b, "%s | %s%s", pad, strings.Repeat(" ", startCol), strings.Repeat("^", endCol-startCol))
	return b.String()
}

// normalizeLine expands every tab and exotic whitespace code point in line
// to plain ASCII spaces so a rendered caret lines up visually, and returns
// the resulting string alongside colMap, a mapping from byte offset in line
// to column offset in the normalised string (colMap has len(line)+1
// entries, the last covering an offset at end-of-line).
func normalizeLine(line []byte, tabstop int) (string, []int) {
	var b strings.Builder
	colMap := make([]int, 0, len(line)+1)
	col := 0
	i := 0
	for i < len(line) {
		colMap = append(colMap, col)
		if line[i] == '\t' {
			n := tabstop - col%tabstop
			b.WriteString(strings.Repeat(" ", n))
			col += n
			i++
			continue
		}
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(line[i])
			col++
			i++
			continue
		}
		if encoding.IsExoticSpace(r) {
			b.WriteByte(' ')
			col++
			i += size
			continue
		}
		b.WriteRune(r)
		col += width.Width(string(r), tabstop)
		i += size
	}
	colMap = append(colMap, col)
	return b.String(), colMap
}

// mapColumn resolves a byte offset into its normalised column, clamping to
// the last known column for an offset past the end of colMap.
func mapColumn(colMap []int, byteOffset int) int {
	if byteOffset < 0 {
		return 0
	}
	if byteOffset >= len(colMap) {
		if len(colMap) == 0 {
			return 0
		}
		return colMap[len(colMap)-1]
	}
	return colMap[byteOffset]
}
