// Package config holds the immutable records that cross every stage
// boundary: CompilerOptions (the parsed command line, opaque to the core
// except for the fields it reads) and CompilerMetadata (options plus the
// shared diagnostic sink). It is a leaf package: every stage package
// depends on it, and it depends on nothing above it, so no import cycle
// forms back to the pipeline façade.
package config

import (
	"fmt"

	"github.com/dlink-lang/dlinkc/encoding"
	"github.com/dlink-lang/dlinkc/reporter"
)

// MaxThreadCount is the upper clamp on a configured thread count.
const MaxThreadCount = 128

// CompilerOptions is immutable once constructed by NewCompilerOptions.
type CompilerOptions struct {
	help    bool
	version bool

	threadCount int // 0 = auto

	inputPaths []string
	outputPath string

	forcedEncoding encoding.Tag

	macros map[string]string
}

// CompilerOptionsParams is the mutable record a CLI layer fills in before
// handing it to NewCompilerOptions, which validates and freezes it.
type CompilerOptionsParams struct {
	Help           bool
	Version        bool
	ThreadCount    int
	InputPaths     []string
	OutputPath     string
	ForcedEncoding encoding.Tag
	Macros         map[string]string
}

// NewCompilerOptions validates p and returns an immutable CompilerOptions.
// Input paths must be non-empty and unique (order preserved); thread count
// is clamped to [0, MaxThreadCount].
func NewCompilerOptions(p CompilerOptionsParams) (*CompilerOptions, error) {
	seen := make(map[string]bool, len(p.InputPaths))
	paths := make([]string, 0, len(p.InputPaths))
	for _, path := range p.InputPaths {
		if path == "" {
			return nil, fmt.Errorf("config: empty input path")
		}
		if seen[path] {
			return nil, fmt.Errorf("config: duplicate input path %q", path)
		}
		seen[path] = true
		paths = append(paths, path)
	}

	threadCount := p.ThreadCount
	if threadCount < 0 {
		threadCount = 0
	}
	if threadCount > MaxThreadCount {
		threadCount = MaxThreadCount
	}

	macros := make(map[string]string, len(p.Macros))
	for name, value := range p.Macros {
		if err := ValidateMacroName(name); err != nil {
			return nil, err
		}
		macros[name] = value
	}

	return &CompilerOptions{
		help:           p.Help,
		version:        p.Version,
		threadCount:    threadCount,
		inputPaths:     paths,
		outputPath:     p.OutputPath,
		forcedEncoding: p.ForcedEncoding,
		macros:         macros,
	}, nil
}

// ValidateMacroName reports an error if name is empty or contains any
// whitespace or special character, per the macro-name validity rule: a
// macro name is scanned byte-by-byte and rejected if any byte is
// whitespace or one of the lexer's special characters.
func ValidateMacroName(name string) error {
	if name == "" {
		return fmt.Errorf("config: macro name must not be empty")
	}
	data := []byte(name)
	for i := 0; i < len(data); {
		if n := encoding.ClassifyWhitespace(data, i); n > 0 {
			return fmt.Errorf("config: macro name %q contains whitespace", name)
		}
		if isSpecialByte(data[i]) {
			return fmt.Errorf("config: macro name %q contains a special character", name)
		}
		i++
	}
	return nil
}

func isSpecialByte(b byte) bool {
	switch b {
	case '~', '!', '$', '%', '^', '&', '*', '(', ')', '-', '+', '=',
		'|', '{', '[', '}', ']', ':', ';', '<', ',', '>', '.', '?', '/',
		'"', '\'', '`', '@', '#', '\\':
		return true
	default:
		return false
	}
}

func (o *CompilerOptions) Help() bool                     { return o.help }
func (o *CompilerOptions) Version() bool                  { return o.version }
func (o *CompilerOptions) ThreadCount() int                { return o.threadCount }
func (o *CompilerOptions) InputPaths() []string           { return o.inputPaths }
func (o *CompilerOptions) OutputPath() string             { return o.outputPath }
func (o *CompilerOptions) ForcedEncoding() encoding.Tag    { return o.forcedEncoding }
func (o *CompilerOptions) Macro(name string) (string, bool) {
	v, ok := o.macros[name]
	return v, ok
}
func (o *CompilerOptions) Macros() map[string]string {
	out := make(map[string]string, len(o.macros))
	for k, v := range o.macros {
		out[k] = v
	}
	return out
}

// CompilerMetadata is the (options, diagnostic sink, message catalogue)
// triple threaded through every stage. The catalogue is modelled as an
// explicit dependency here rather than as a package-level global, per the
// "no global process state" design note.
type CompilerMetadata struct {
	Options   *CompilerOptions
	Sink      *reporter.Sink
	Catalogue *reporter.Catalogue
}

// NewCompilerMetadata pairs options with a freshly constructed sink and the
// built-in message catalogue.
func NewCompilerMetadata(options *CompilerOptions) *CompilerMetadata {
	return &CompilerMetadata{
		Options:   options,
		Sink:      reporter.NewSink(),
		Catalogue: reporter.NewCatalogue(),
	}
}
