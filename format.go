package bytepack

import (
	"encoding/binary"
	"regexp"
	"unsafe"

	"github.com/pkg/errors"
)

// pat matches an optional byte-order prefix followed by one or more
// repeat-prefixed format codes; a prefix with no codes does not match
var pat = `^([@=<>!]?)((?:\d*[xcbB?hHiIlLqQefdsp])+)$`

var formatRegex = regexp.MustCompile(pat)

// NativeLittleEndian reports whether the host lays multi-byte values out
// least significant byte first. It is resolved once at startup by probing
// how a 2-byte value sits in memory.
var NativeLittleEndian = func() bool {
	v := uint16(0x0102)
	return *(*byte)(unsafe.Pointer(&v)) == 0x02
}()

// Item is one field group of a parsed format: a repeat count and the
// format code it applies to. For every code except 's' and 'p' the repeat
// is an element multiplier; for 's' and 'p' it is the total byte width of
// the field.
type Item struct {
	Repeat int
	Code   byte
}

// Format is the parsed representation of a format string
type Format struct {
	LittleEndian bool
	Items        []Item
}

func (f Format) order() binary.ByteOrder {
	if f.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Parse compiles a format string into a Format. It returns
// ErrMalformedFormat if the string does not match the format grammar.
// Parsing is pure; the same string always yields an equal Format.
func Parse(format string) (Format, error) {
	m := formatRegex.FindStringSubmatch(format)
	if m == nil {
		return Format{}, errors.Wrapf(ErrMalformedFormat, "%q", format)
	}

	f := Format{LittleEndian: NativeLittleEndian}
	switch m[1] {
	case "<":
		f.LittleEndian = true
	case ">", "!":
		f.LittleEndian = false
	}

	body := m[2]
	items := make([]Item, 0, len(body))
	for i := 0; i < len(body); {
		repeat, explicit := 0, false
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			repeat = repeat*10 + int(body[i]-'0')
			explicit = true
			if repeat > 1<<30 {
				return Format{}, errors.Wrapf(ErrMalformedFormat, "repeat count too large in %q", format)
			}
			i++
		}
		if !explicit {
			repeat = 1
		}

		code := body[i]
		i++

		// the length prefix byte of a pascal string cannot address
		// more than 255 bytes, so oversized widths clamp silently
		if code == 'p' && repeat > 255 {
			repeat = 255
		}

		items = append(items, Item{Repeat: repeat, Code: code})
	}

	f.Items = items
	return f, nil
}
