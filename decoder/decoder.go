// Package decoder implements stage 1 of the pipeline: open a file, detect
// or enforce its Unicode encoding, and convert it into the UTF-8 buffer a
// Source advances to Decoded with.
package decoder

import (
	"fmt"
	"os"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/encoding"
	"github.com/dlink-lang/dlinkc/reporter"
	"github.com/dlink-lang/dlinkc/source"
)

// Decode runs stage 1 over src, reading from disk at src.Path(). It emits
// diagnostics to meta.Sink and advances src to Decoded on success. It
// returns false (without advancing src) iff an error-severity diagnostic
// was emitted for this source.
func Decode(src *source.Source, meta *config.CompilerMetadata) bool {
	path := src.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		emit(meta, reporter.Error, 1000, path)
		return false
	}

	detected, bomLen := encoding.DetectBOM(data)
	body := data[bomLen:]

	effective := detected
	if effective == encoding.None {
		effective = encoding.UTF8
	}

	forced := meta.Options.ForcedEncoding()
	if forced != encoding.None {
		forcedEffective := forced
		if forcedEffective == encoding.None {
			forcedEffective = encoding.UTF8
		}
		if forcedEffective != effective {
			emit(meta, reporter.Error, 1002, path, forced.String())
			return false
		}
	}

	var utf8Bytes []byte
	switch effective {
	case encoding.UTF16LE, encoding.UTF16BE:
		width := effective.CodeUnitWidth()
		if len(body)%width != 0 {
			emit(meta, reporter.Error, 1001, path, effective.String())
			return false
		}
		decodeBody := append([]byte(nil), body...)
		if effective.String() != hostUTF16Variant() {
			encoding.SwapUTF16(decodeBody)
		}
		s, err := encoding.DecodeUTF16(decodeBody)
		if err != nil {
			emit(meta, reporter.Error, 1001, path, effective.String())
			return false
		}
		utf8Bytes = []byte(s)

	case encoding.UTF32LE, encoding.UTF32BE:
		width := effective.CodeUnitWidth()
		if len(body)%width != 0 {
			emit(meta, reporter.Error, 1001, path, effective.String())
			return false
		}
		decodeBody := append([]byte(nil), body...)
		if effective.String() != hostUTF32Variant() {
			encoding.SwapUTF32(decodeBody)
		}
		s, err := encoding.DecodeUTF32(decodeBody)
		if err != nil {
			emit(meta, reporter.Error, 1001, path, effective.String())
			return false
		}
		utf8Bytes = []byte(s)

	default: // UTF8 / None
		valid, err := encoding.EncodeUTF8(body)
		if err != nil {
			emit(meta, reporter.Error, 1001, path, "utf8")
			return false
		}
		utf8Bytes = valid
	}

	if err := src.SetDecoded(utf8Bytes); err != nil {
		panic(fmt.Sprintf("decoder: %v", err))
	}
	return true
}

func hostUTF16Variant() string {
	if encoding.HostEndianness() == encoding.LittleEndian {
		return encoding.UTF16LE.String()
	}
	return encoding.UTF16BE.String()
}

func hostUTF32Variant() string {
	if encoding.HostEndianness() == encoding.LittleEndian {
		return encoding.UTF32LE.String()
	}
	return encoding.UTF32BE.String()
}

func emit(meta *config.CompilerMetadata, sev reporter.Severity, id int, path string, args ...string) {
	meta.Sink.Push(reporter.Diagnostic{
		Severity: sev,
		ID:       id,
		Text:     meta.Catalogue.Format(sev, id, args...),
		Where:    path,
	})
}
