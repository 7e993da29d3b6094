package decoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/source"
)

func newMeta(t *testing.T) *config.CompilerMetadata {
	t.Helper()
	opts, err := config.NewCompilerOptions(config.CompilerOptionsParams{})
	require.NoError(t, err)
	return config.NewCompilerMetadata(opts)
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.dl")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodePlainUTF8(t *testing.T) {
	path := writeTemp(t, []byte("hello"))
	src, _ := source.New(path)
	meta := newMeta(t)
	require.True(t, Decode(src, meta), "%+v", meta.Sink.All())
	require.Equal(t, source.Decoded, src.State())
	require.Equal(t, "hello", string(src.Raw()))
}

func TestDecodeMissingFile(t *testing.T) {
	src, _ := source.New(filepath.Join(t.TempDir(), "missing.dl"))
	meta := newMeta(t)
	require.False(t, Decode(src, meta))
	require.True(t, meta.Sink.AnyError())
}

func TestDecodeUTF16LEWithBOM(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'H', 0, 'i', 0}
	path := writeTemp(t, data)
	src, _ := source.New(path)
	meta := newMeta(t)
	require.True(t, Decode(src, meta), "%+v", meta.Sink.All())
	require.Equal(t, "Hi", string(src.Raw()))
}

func TestDecodeUTF16OddLength(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'H', 0, 'i'}
	path := writeTemp(t, data)
	src, _ := source.New(path)
	meta := newMeta(t)
	require.False(t, Decode(src, meta))
	require.True(t, meta.Sink.AnyError())
}

func TestDecodeEmptyFile(t *testing.T) {
	path := writeTemp(t, nil)
	src, _ := source.New(path)
	meta := newMeta(t)
	require.True(t, Decode(src, meta), "%+v", meta.Sink.All())
	require.Empty(t, src.Raw())
}
