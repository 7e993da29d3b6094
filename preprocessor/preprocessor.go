// Package preprocessor implements stage 2: a line-oriented directive
// scanner over the decoded buffer, producing the list of lines that
// survive into the lexer.
package preprocessor

import (
	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/encoding"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/source"
)

// Preprocess runs stage 2 over src, which must be Decoded. It splits
// src.Raw() into physical lines, scans each for a '#' directive, and
// installs the surviving lines on src, advancing it to Preprocessed.
// It returns true iff no error-severity diagnostic was emitted for src in
// this stage.
func Preprocess(src *source.Source, meta *config.CompilerMetadata) bool {
	raw := src.Raw()
	path := src.Path()

	ok := true
	var survivors []source.Line

	lineNo := 0
	i := 0
	for i < len(raw) {
		lineNo++
		start := i
		for i < len(raw) {
			if kind, _ := encoding.ClassifyEOL(raw, i); kind != encoding.NotEOL {
				break
			}
			i++
		}
		line := raw[start:i]

		_, eolLen := encoding.ClassifyEOL(raw, i)
		i += eolLen

		keep, failed := processLine(path, lineNo, line, meta)
		if keep {
			survivors = append(survivors, source.Line{Number: lineNo, Data: line})
		}
		if failed {
			ok = false
		}
	}

	if err := src.SetPreprocessed(survivors); err != nil {
		panic("preprocessor: " + err.Error())
	}
	return ok
}

// processLine inspects one physical line (without its EOL). It reports
// keep (whether the line survives into the preprocessed output) and failed
// (whether an error-severity diagnostic was emitted for it — a directive
// line is always dropped; every directive diagnostic except a #warning
// fails the stage).
func processLine(path string, lineNo int, line []byte, meta *config.CompilerMetadata) (keep, failed bool) {
	i := 0
	for i < len(line) {
		n := encoding.ClassifyWhitespace(line, i)
		if n == 0 {
			break
		}
		i += n
	}

	if i >= len(line) {
		return true, false
	}
	if line[i] != '#' {
		return true, false
	}

	nameStart := i + 1
	j := nameStart
	for j < len(line) && isASCIIAlpha(line[j]) {
		j++
	}
	name := string(line[nameStart:j])

	if j < len(line) && encoding.ClassifyWhitespace(line, j) == 0 {
		emit(meta, reporter.Error, 1101, path, lineNo, line, j, 1)
		return false, true
	}
	if name == "" {
		emit(meta, reporter.Error, 1100, path, lineNo, line, i, len(line)-i)
		return false, true
	}

	argStart := j
	for argStart < len(line) {
		n := encoding.ClassifyWhitespace(line, argStart)
		if n == 0 {
			break
		}
		argStart += n
	}
	arg := string(line[argStart:])

	switch name {
	case "error":
		if arg == "" {
			emit(meta, reporter.Error, 1103, path, lineNo, line, i, len(line)-i)
		} else {
			emit(meta, reporter.Error, 1104, path, lineNo, line, i, len(line)-i, arg)
		}
		return false, true
	case "warning":
		if arg == "" {
			emit(meta, reporter.Warning, 1100, path, lineNo, line, i, len(line)-i)
		} else {
			emit(meta, reporter.Warning, 1101, path, lineNo, line, i, len(line)-i, arg)
		}
		return false, false
	default:
		emit(meta, reporter.Error, 1105, path, lineNo, line, i, len(line)-i)
		return false, true
	}
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func emit(meta *config.CompilerMetadata, sev reporter.Severity, id int, path string, lineNo int, line []byte, col, length int, args ...string) {
	meta.Sink.Push(reporter.Diagnostic{
		Severity: sev,
		ID:       id,
		Text:     meta.Catalogue.Format(sev, id, args...),
		Where:    reporter.Location(path, lineNo, col),
		Excerpt:  reporter.RenderExcerpt(lineNo, line, col, length),
	})
}
