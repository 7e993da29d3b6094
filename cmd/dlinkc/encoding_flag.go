package main

import (
	"fmt"
	"strings"

	"github.com/dlink-lang/dlinkc/encoding"
)

// encodingSpellings maps every accepted -finput-encoding spelling (already
// lowercased) to the Tag it forces.
var encodingSpellings = map[string]encoding.Tag{
	"utf8": encoding.UTF8, "utf-8": encoding.UTF8, "u8": encoding.UTF8,

	"utf16": encoding.UTF16LE, "utf-16": encoding.UTF16LE, "u16": encoding.UTF16LE,
	"utf16le": encoding.UTF16LE, "utf-16le": encoding.UTF16LE, "u16le": encoding.UTF16LE,
	"utf16be": encoding.UTF16BE, "utf-16be": encoding.UTF16BE, "u16be": encoding.UTF16BE,

	"utf32": encoding.UTF32LE, "utf-32": encoding.UTF32LE, "u32": encoding.UTF32LE,
	"utf32le": encoding.UTF32LE, "utf-32le": encoding.UTF32LE, "u32le": encoding.UTF32LE,
	"utf32be": encoding.UTF32BE, "utf-32be": encoding.UTF32BE, "u32be": encoding.UTF32BE,
}

// parseEncodingSpelling resolves a -finput-encoding argument to a Tag. On an
// unrecognised spelling it returns an error that names the closest encoding
// family when the spelling carries an 8/16/32 digit marker.
func parseEncodingSpelling(raw string) (encoding.Tag, error) {
	name := strings.ToLower(raw)
	if tag, ok := encodingSpellings[name]; ok {
		return tag, nil
	}

	switch {
	case strings.Contains(name, "8"):
		return encoding.None, fmt.Errorf("unknown input encoding %q: did you mean a UTF-8 spelling (utf8, utf-8, u8)?", raw)
	case strings.Contains(name, "16"):
		return encoding.None, fmt.Errorf("unknown input encoding %q: did you mean a UTF-16 spelling (utf16, utf16le, utf16be)?", raw)
	case strings.Contains(name, "32"):
		return encoding.None, fmt.Errorf("unknown input encoding %q: did you mean a UTF-32 spelling (utf32, utf32le, utf32be)?", raw)
	default:
		return encoding.None, fmt.Errorf("unknown input encoding %q", raw)
	}
}
