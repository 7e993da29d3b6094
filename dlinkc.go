// Package dlinkc is the pipeline façade: given a CompilerOptions, it opens
// one Source per input path and drives each through decode, preprocess, and
// lex, in parallel or sequentially, reporting to a shared diagnostic sink.
package dlinkc

import (
	"encoding/json"
	"io"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/decoder"
	"github.com/dlink-lang/dlinkc/driver"
	"github.com/dlink-lang/dlinkc/lexer"
	"github.com/dlink-lang/dlinkc/preprocessor"
	"github.com/dlink-lang/dlinkc/source"
)

// Pipeline owns one Source per configured input path and drives them
// through the three pipeline stages.
type Pipeline struct {
	meta    *config.CompilerMetadata
	sources []*source.Source
}

// New constructs a Pipeline from options, opening a Source for every
// configured input path. It panics if any input path is empty, which
// NewCompilerOptions already guards against by construction.
func New(options *config.CompilerOptions) *Pipeline {
	meta := config.NewCompilerMetadata(options)
	sources := make([]*source.Source, len(options.InputPaths()))
	for i, path := range options.InputPaths() {
		src, err := source.New(path)
		if err != nil {
			panic(err)
		}
		sources[i] = src
	}
	return &Pipeline{meta: meta, sources: sources}
}

// Metadata returns the pipeline's CompilerMetadata, shared across every
// stage call.
func (p *Pipeline) Metadata() *config.CompilerMetadata {
	return p.meta
}

// Sources returns every Source the pipeline owns, in input-path order.
func (p *Pipeline) Sources() []*source.Source {
	return p.sources
}

// Decode runs the decoder stage over every source in parallel.
func (p *Pipeline) Decode() bool {
	return driver.Run(p.sources, p.meta, decoder.Decode)
}

// DecodeSequential runs the decoder stage over every source, in order, on
// the calling goroutine.
func (p *Pipeline) DecodeSequential() bool {
	return driver.RunSequential(p.sources, p.meta, decoder.Decode)
}

// Preprocess runs the preprocessor stage over every source in parallel.
func (p *Pipeline) Preprocess() bool {
	return driver.Run(p.sources, p.meta, preprocessor.Preprocess)
}

// PreprocessSequential runs the preprocessor stage over every source, in
// order, on the calling goroutine.
func (p *Pipeline) PreprocessSequential() bool {
	return driver.RunSequential(p.sources, p.meta, preprocessor.Preprocess)
}

// Lex runs the lexer stage over every source in parallel.
func (p *Pipeline) Lex() bool {
	return driver.Run(p.sources, p.meta, lexer.Lex)
}

// LexSequential runs the lexer stage over every source, in order, on the
// calling goroutine.
func (p *Pipeline) LexSequential() bool {
	return driver.RunSequential(p.sources, p.meta, lexer.Lex)
}

// CompileUntilPreprocessing runs decode then preprocess, in parallel,
// stopping early (without attempting preprocess) if decode already failed.
func (p *Pipeline) CompileUntilPreprocessing() bool {
	return p.Decode() && p.Preprocess()
}

// CompileUntilPreprocessingSequential is CompileUntilPreprocessing's
// worker-free equivalent.
func (p *Pipeline) CompileUntilPreprocessingSequential() bool {
	return p.DecodeSequential() && p.PreprocessSequential()
}

// CompileUntilLexing runs decode, preprocess, and lex, in parallel, each
// stage gated on the previous one's success.
func (p *Pipeline) CompileUntilLexing() bool {
	return p.CompileUntilPreprocessing() && p.Lex()
}

// CompileUntilLexingSequential is CompileUntilLexing's worker-free
// equivalent.
func (p *Pipeline) CompileUntilLexingSequential() bool {
	return p.CompileUntilPreprocessingSequential() && p.LexSequential()
}

// DumpMessages renders every diagnostic in the sink, in sink order, and
// writes them to w separated by newlines.
func (p *Pipeline) DumpMessages(w io.Writer) error {
	for _, d := range p.meta.Sink.All() {
		if _, err := io.WriteString(w, d.Render()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// dumpLocation and dumpLiteral mirror the dump schema's nested objects.
type dumpLocation struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

type dumpLiteral struct {
	Prefix  string `json:"prefix"`
	Postfix string `json:"postfix"`
}

type dumpToken struct {
	Data     string       `json:"data"`
	Location dumpLocation `json:"location"`
	Type     string       `json:"type"`
	Literal  dumpLiteral  `json:"literal"`
}

type dumpSource struct {
	Path         string      `json:"path"`
	Preprocessed []string    `json:"preprocessed,omitempty"`
	Tokens       []dumpToken `json:"tokens,omitempty"`
}

type dumpRoot struct {
	Sources []dumpSource `json:"sources"`
}

// DumpSources produces a structured JSON-shaped record of every source:
// its path, its preprocessed line list (if the source has reached that
// state), and its token list (if lexed), per the dump schema.
func (p *Pipeline) DumpSources() ([]byte, error) {
	root := dumpRoot{Sources: make([]dumpSource, len(p.sources))}
	for i, src := range p.sources {
		d := dumpSource{Path: src.Path()}
		if src.State() >= source.Preprocessed {
			lines := src.Lines()
			d.Preprocessed = make([]string, len(lines))
			for j, line := range lines {
				d.Preprocessed[j] = string(line.Data)
			}
		}
		if src.State() >= source.Lexed {
			tokens := src.Tokens()
			d.Tokens = make([]dumpToken, len(tokens))
			for j, t := range tokens {
				d.Tokens[j] = dumpToken{
					Data:     string(t.Data),
					Location: dumpLocation{Line: t.Line, Col: t.Column},
					Type:     t.Kind.String(),
					Literal: dumpLiteral{
						Prefix:  string(t.PrefixLiteral),
						Postfix: string(t.PostfixLiteral),
					},
				}
			}
		}
		root.Sources[i] = d
	}
	return json.Marshal(root)
}
