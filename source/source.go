// Package source defines the per-file state machine that every pipeline
// stage advances: New returns a Source in the initialized state (empty is
// only State's zero value), and it is driven through
// initialized -> decoded -> preprocessed -> lexed by exactly one worker,
// which is the sole owner of its buffers.
package source

import (
	"errors"
	"fmt"

	"github.com/dlink-lang/dlinkc/token"
)

// State is a Source's position in its stage lifecycle. States are totally
// ordered and a Source's state is monotonically non-decreasing.
type State int

const (
	Empty State = iota
	Initialized
	Decoded
	Preprocessed
	Lexed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Initialized:
		return "initialized"
	case Decoded:
		return "decoded"
	case Preprocessed:
		return "preprocessed"
	case Lexed:
		return "lexed"
	default:
		return "unknown"
	}
}

// ErrInvalidState is returned (wrapped with context) whenever a stage is
// invoked on a Source that isn't in the required pre-state. This is a
// programmer error per the error-handling model, not a diagnostic: it never
// reaches the sink.
var ErrInvalidState = errors.New("source: invalid state for operation")

// Line is one surviving physical line after preprocessing: a borrowed view
// into the Source's raw buffer, or into a replacement string the
// preprocessor produced.
type Line struct {
	Number int // 1-based physical line number in the original buffer
	Data   []byte
}

// Source holds one input file's state through the pipeline. The path is
// immutable; everything else is mutated only by the single worker that
// owns this Source, and only by advancing to the next state.
type Source struct {
	path  string
	state State

	raw []byte

	lines []Line

	tokens []token.Token
}

// New constructs a Source in the Initialized state for path. Construction
// requires a non-empty path; an empty path is a programmer error, not a
// diagnostic.
func New(path string) (*Source, error) {
	if path == "" {
		return nil, errors.New("source: path must not be empty")
	}
	return &Source{path: path, state: Initialized}, nil
}

// Path returns the Source's immutable input path.
func (s *Source) Path() string {
	return s.path
}

// State returns the Source's current lifecycle state.
func (s *Source) State() State {
	return s.state
}

// Raw returns the decoded UTF-8 buffer. Valid once State() >= Decoded.
func (s *Source) Raw() []byte {
	return s.raw
}

// Lines returns the surviving preprocessed line list. Valid once
// State() >= Preprocessed.
func (s *Source) Lines() []Line {
	return s.lines
}

// Tokens returns the lexed token vector. Valid once State() >= Lexed.
func (s *Source) Tokens() []token.Token {
	return s.tokens
}

// requireState fails with ErrInvalidState unless the Source is currently in
// exactly want.
func (s *Source) requireState(want State) error {
	if s.state != want {
		return fmt.Errorf("source: %s: %w (need %s, have %s)", s.path, ErrInvalidState, want, s.state)
	}
	return nil
}

// SetDecoded installs raw as the Source's decoded buffer and advances it
// from Initialized to Decoded. Called by the decoder stage.
func (s *Source) SetDecoded(raw []byte) error {
	if err := s.requireState(Initialized); err != nil {
		return err
	}
	s.raw = raw
	s.state = Decoded
	return nil
}

// SetPreprocessed installs the surviving line list and advances the Source
// from Decoded to Preprocessed. Called by the preprocessor stage.
func (s *Source) SetPreprocessed(lines []Line) error {
	if err := s.requireState(Decoded); err != nil {
		return err
	}
	s.lines = lines
	s.state = Preprocessed
	return nil
}

// SetLexed installs the token vector and advances the Source from
// Preprocessed to Lexed. Called by the lexer stage. Per the propagation
// policy, a failed lex must not call this: the token vector stays nil.
func (s *Source) SetLexed(tokens []token.Token) error {
	if err := s.requireState(Preprocessed); err != nil {
		return err
	}
	s.tokens = tokens
	s.state = Lexed
	return nil
}

// CheckAtLeast returns ErrInvalidState-wrapping error unless the Source is at
// least in want. Used by stages that accept "already past this point" as
// well as "exactly at this point" (e.g. compile_until_lexing resuming after
// compile_until_preprocessing).
func (s *Source) CheckAtLeast(want State) error {
	if s.state < want {
		return fmt.Errorf("source: %s: %w (need at least %s, have %s)", s.path, ErrInvalidState, want, s.state)
	}
	return nil
}
