package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCompilerOptionsRejectsDuplicatePaths(t *testing.T) {
	_, err := NewCompilerOptions(CompilerOptionsParams{
		InputPaths: []string{"a.dl", "b.dl", "a.dl"},
	})
	require.Error(t, err)
}

func TestNewCompilerOptionsClampsThreadCount(t *testing.T) {
	o, err := NewCompilerOptions(CompilerOptionsParams{ThreadCount: 9999})
	require.NoError(t, err)
	require.Equal(t, MaxThreadCount, o.ThreadCount())
}

func TestNewCompilerOptionsNegativeThreadCount(t *testing.T) {
	o, err := NewCompilerOptions(CompilerOptionsParams{ThreadCount: -5})
	require.NoError(t, err)
	require.Zero(t, o.ThreadCount())
}

func TestValidateMacroName(t *testing.T) {
	valid := []string{"FOO", "foo_bar", "X1"}
	for _, name := range valid {
		require.NoErrorf(t, ValidateMacroName(name), "ValidateMacroName(%q)", name)
	}
	invalid := []string{"", "foo bar", "foo=bar", "foo.bar"}
	for _, name := range invalid {
		require.Errorf(t, ValidateMacroName(name), "ValidateMacroName(%q)", name)
	}
}

func TestNewCompilerOptionsRejectsBadMacroName(t *testing.T) {
	_, err := NewCompilerOptions(CompilerOptionsParams{
		Macros: map[string]string{"bad name": "1"},
	})
	require.Error(t, err)
}

func TestCompilerMetadataPairing(t *testing.T) {
	o, _ := NewCompilerOptions(CompilerOptionsParams{})
	m := NewCompilerMetadata(o)
	require.Same(t, o, m.Options)
	require.NotNil(t, m.Sink)
	require.NotNil(t, m.Catalogue)
}
