// Package encoding detects and converts between the Unicode encodings a
// Dlink source file may be stored in, and classifies the code points the
// rest of the front end needs to recognise (end-of-line sequences and
// whitespace).
package encoding

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Tag identifies a Unicode transformation format a source file may be
// encoded in. The zero value, None, means "undetermined" and is treated as
// UTF-8 by the decoder.
type Tag int

const (
	None Tag = iota
	UTF8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

func (t Tag) String() string {
	switch t {
	case None:
		return "none"
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	case UTF32LE:
		return "utf32le"
	case UTF32BE:
		return "utf32be"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// CodeUnitWidth returns the width, in bytes, of one code unit of t, or 0 for
// variable-width encodings (UTF-8 and None).
func (t Tag) CodeUnitWidth() int {
	switch t {
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 0
	}
}

// Endianness is the byte order of a fixed-width encoding's code units.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

var hostEndianness = func() Endianness {
	var x uint16 = 1
	b := make([]byte, 2)
	binary.NativeEndian.PutUint16(b, x)
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// HostEndianness reports the byte order of the running process, detected
// once from the in-memory representation of a known value.
func HostEndianness() Endianness {
	return hostEndianness
}

// bomTable lists the byte-order marks in priority order. UTF-32 entries
// must be checked before the UTF-16 entries they share a prefix with: both
// UTF-32 BOMs begin with a valid UTF-16 BOM (FF FE / FE FF), so testing
// UTF-16 first would misdetect every UTF-32LE file as UTF-16LE.
var bomTable = []struct {
	tag Tag
	bom []byte
}{
	{UTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{UTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF8, []byte{0xEF, 0xBB, 0xBF}},
	{UTF16LE, []byte{0xFF, 0xFE}},
	{UTF16BE, []byte{0xFE, 0xFF}},
}

// DetectBOM inspects up to the first 4 bytes of data for a byte-order mark,
// matching the longest, most-specific mark first. It returns the detected
// tag and the number of bytes the caller should skip past (0 if no BOM
// matched, in which case the tag is None and none of data was consumed).
func DetectBOM(data []byte) (Tag, int) {
	for _, entry := range bomTable {
		if len(data) >= len(entry.bom) && bytesEqual(data[:len(entry.bom)], entry.bom) {
			return entry.tag, len(entry.bom)
		}
	}
	return None, 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// UTF8SequenceLength classifies the length, in bytes, of the UTF-8 sequence
// that starts with first, per spec §4.1: <0x80 -> 1, 0xC0..0xDF -> 2,
// 0xE0..0xEF -> 3, 0xF0..0xF7 -> 4. It returns 0 for any other leading byte,
// which is a decoding failure in this context.
func UTF8SequenceLength(first byte) int {
	switch {
	case first < 0x80:
		return 1
	case first >= 0xC0 && first <= 0xDF:
		return 2
	case first >= 0xE0 && first <= 0xEF:
		return 3
	case first >= 0xF0 && first <= 0xF7:
		return 4
	default:
		return 0
	}
}

// SwapUTF16 byte-swaps every code unit of data in place. It is its own
// inverse: SwapUTF16(SwapUTF16(x)) == x.
func SwapUTF16(data []byte) {
	for i := 0; i+1 < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
}

// SwapUTF32 byte-swaps every code unit of data in place. It is its own
// inverse.
func SwapUTF32(data []byte) {
	for i := 0; i+3 < len(data); i += 4 {
		data[i], data[i+3] = data[i+3], data[i]
		data[i+1], data[i+2] = data[i+2], data[i+1]
	}
}

// DecodeUTF16 converts host-endian UTF-16 code units (already corrected for
// host endianness by the caller, per spec: byte-swap in place whenever the
// source's endianness differs from the host's) into a UTF-8 byte string.
func DecodeUTF16(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("encoding: UTF-16 data length %d is not a multiple of 2", len(data))
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.NativeEndian.Uint16(data[i*2:])
	}
	runes := utf16ToRunes(units)
	return string(runes), nil
}

// DecodeUTF32 converts host-endian UTF-32 code units (already corrected for
// host endianness by the caller, per spec: byte-swap in place whenever the
// source's endianness differs from the host's) into a UTF-8 byte string.
func DecodeUTF32(data []byte) (string, error) {
	if len(data)%4 != 0 {
		return "", fmt.Errorf("encoding: UTF-32 data length %d is not a multiple of 4", len(data))
	}
	runes := make([]rune, len(data)/4)
	for i := range runes {
		v := binary.NativeEndian.Uint32(data[i*4:])
		if !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("encoding: invalid UTF-32 code point U+%X", v)
		}
		runes[i] = rune(v)
	}
	return string(runes), nil
}

// EncodeUTF8 validates that data is well-formed UTF-8. It is the identity
// function on success, returning data unchanged; it exists so that the
// decoder has a single validation entry point for the UTF-8/None case,
// mirroring the round-trip property decode(encode(x)) == x for the other
// encodings in spec §8.
func EncodeUTF8(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("encoding: input is not valid UTF-8")
	}
	return data, nil
}

// utf16ToRunes decodes a UTF-16 code unit sequence (including surrogate
// pairs) into runes, using the replacement character for invalid sequences.
func utf16ToRunes(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			out = append(out, rune(u))
		case u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF:
			lo := units[i+1]
			r := (rune(u-0xD800) << 10) | rune(lo-0xDC00)
			out = append(out, r+0x10000)
			i++
		default:
			out = append(out, utf8.RuneError)
		}
	}
	return out
}
