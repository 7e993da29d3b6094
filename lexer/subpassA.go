package lexer

import (
	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/encoding"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/source"
	"github.com/dlink-lang/dlinkc/token"
)

// scanState carries sub-pass A's running state across bytes and, for the
// multiline-comment case, across physical lines.
type scanState struct {
	path string
	meta *config.CompilerMetadata

	tokens []token.Token
	ok     bool

	hmOpen bool
	hmLine int
	hmData *source.Line // the line the pending hm run belongs to
	hmFrom int
	hmTo   int

	isPrevWhitespace bool

	inString        bool
	inChar          bool
	literalOpenLine int
	literalOpenCol  int
	literalOpenData *source.Line
	literalStart    int

	inMultilineComment bool
	commentOpenLine    int
	commentOpenCol     int
	commentOpenData    *source.Line
}

// scanSubpassA walks every preprocessed line of src and produces the
// sub-pass-A token vector: synthetic whitespace placeholders, none_hm
// fragments, string/character literals, and classified operator tokens. It
// returns the tokens and whether the stage succeeded (no error-severity
// diagnostic emitted).
func scanSubpassA(path string, lines []source.Line, meta *config.CompilerMetadata) ([]token.Token, bool) {
	st := &scanState{path: path, meta: meta, ok: true}

	for li := range lines {
		line := &lines[li]
		st.scanLine(line)
	}

	if st.inMultilineComment {
		var data []byte
		if st.commentOpenData != nil {
			data = st.commentOpenData.Data
		}
		st.emit(reporter.Error, 2007, st.commentOpenLine, data, st.commentOpenCol, 2)
		st.ok = false
	}

	return st.tokens, st.ok
}

func (st *scanState) scanLine(line *source.Line) {
	data := line.Data
	pos := 0
	for pos < len(data) {
		if st.inMultilineComment {
			if data[pos] == '*' && pos+1 < len(data) && data[pos+1] == '/' {
				st.inMultilineComment = false
				pos += 2
				continue
			}
			pos++
			continue
		}

		if st.inString || st.inChar {
			if data[pos] == '\\' && pos+1 < len(data) {
				pos += 2
				continue
			}
			closing := byte('"')
			if st.inChar {
				closing = '\''
			}
			if data[pos] == closing {
				pos++
				kind := token.String
				if st.inChar {
					kind = token.Character
				}
				st.pushToken(token.Token{
					Kind:     kind,
					Line:     st.literalOpenLine,
					Column:   st.literalStart,
					Data:     st.literalOpenData.Data[st.literalStart:pos],
					LineData: st.literalOpenData.Data,
				})
				st.inString = false
				st.inChar = false
				continue
			}
			size := encoding.UTF8SequenceLength(data[pos])
			if size == 0 {
				size = 1
			}
			pos += size
			continue
		}

		if n := encoding.ClassifyWhitespace(data, pos); n > 0 {
			st.flushHM()
			st.emitWhitespaceOnce()
			pos += n
			continue
		}
		st.isPrevWhitespace = false

		b := data[pos]

		if b == '/' && pos+1 < len(data) && data[pos+1] == '*' {
			st.flushHM()
			st.inMultilineComment = true
			st.commentOpenLine = line.Number
			st.commentOpenCol = pos
			st.commentOpenData = line
			pos += 2
			continue
		}
		if b == '/' && pos+1 < len(data) && data[pos+1] == '/' {
			st.flushHM()
			pos = len(data)
			continue
		}
		if b == '"' || b == '\'' {
			st.flushHM()
			if b == '"' {
				st.inString = true
			} else {
				st.inChar = true
			}
			st.literalOpenLine = line.Number
			st.literalOpenCol = pos
			st.literalOpenData = line
			st.literalStart = pos
			pos++
			continue
		}

		if invalidSpecialBytes[b] {
			st.flushHM()
			st.emit(reporter.Error, 2006, line.Number, line.Data, pos, 1, string(b))
			st.ok = false
			pos++
			continue
		}

		if kind, isOperator := singleCharKind[b]; isOperator {
			st.flushHM()
			start := pos
			pos++
			curKind := kind
			for depth := 1; depth < 3 && pos < len(data); depth++ {
				next, found := complexTokenType[complexKey{curKind, data[pos]}]
				if !found {
					break
				}
				curKind = next
				pos++
			}
			st.pushToken(token.Token{
				Kind:     curKind,
				Line:     line.Number,
				Column:   start,
				Data:     data[start:pos],
				LineData: data,
			})
			continue
		}

		// Letter, digit, or UTF-8 continuation byte: extend the pending
		// has-meaning run.
		if !st.hmOpen {
			st.hmOpen = true
			st.hmLine = line.Number
			st.hmData = line
			st.hmFrom = pos
		}
		size := encoding.UTF8SequenceLength(b)
		if size == 0 {
			size = 1
		}
		pos += size
		st.hmTo = pos
	}

	st.flushHM()

	switch {
	case st.inMultilineComment:
		// carries across the line boundary; no whitespace token here.
	case st.inString:
		st.emit(reporter.Error, 2009, st.literalOpenLine, st.literalOpenData.Data, st.literalOpenCol, len(st.literalOpenData.Data)-st.literalOpenCol)
		st.ok = false
		st.inString = false
	case st.inChar:
		st.emit(reporter.Error, 2008, st.literalOpenLine, st.literalOpenData.Data, st.literalOpenCol, len(st.literalOpenData.Data)-st.literalOpenCol)
		st.ok = false
		st.inChar = false
	default:
		st.emitWhitespaceOnce()
	}
}

func (st *scanState) flushHM() {
	if !st.hmOpen {
		return
	}
	st.pushToken(token.Token{
		Kind:     token.NoneHM,
		Line:     st.hmLine,
		Column:   st.hmFrom,
		Data:     st.hmData.Data[st.hmFrom:st.hmTo],
		LineData: st.hmData.Data,
	})
	st.hmOpen = false
}

func (st *scanState) pushToken(t token.Token) {
	st.isPrevWhitespace = t.Kind == token.Whitespace
	st.tokens = append(st.tokens, t)
}

func (st *scanState) emitWhitespaceOnce() {
	if st.isPrevWhitespace {
		return
	}
	st.pushToken(token.Token{Kind: token.Whitespace, Line: -1, Column: -1})
}

func (st *scanState) emit(sev reporter.Severity, id int, lineNo int, lineData []byte, col, length int, args ...string) {
	st.meta.Sink.Push(reporter.Diagnostic{
		Severity: sev,
		ID:       id,
		Text:     st.meta.Catalogue.Format(sev, id, args...),
		Where:    reporter.Location(st.path, lineNo, col),
		Excerpt:  reporter.RenderExcerpt(lineNo, lineData, col, length),
	})
}
