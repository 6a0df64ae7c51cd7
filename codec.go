package bytepack

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/bytepack/bytepack/float16"
)

// valueQueue consumes the caller's variadic values front to back. Values
// are consumed lazily, one field at a time, so running out partway
// through a format leaves the earlier fields already written.
type valueQueue struct {
	vals []any
}

func (q *valueQueue) next(code byte) (any, error) {
	if len(q.vals) == 0 {
		return nil, errors.Wrapf(ErrNotEnoughValues, "for format code %q", string(code))
	}
	v := q.vals[0]
	q.vals = q.vals[1:]
	return v, nil
}

// pack and unpack functions receive the resolved byte order and the
// current cursor, and return the advanced cursor. Capacity has already
// been validated by the caller, so they index the buffer directly.
type packFunc func(buf []byte, off, repeat int, order binary.ByteOrder, vals *valueQueue) (int, error)
type unpackFunc func(buf []byte, off, repeat int, order binary.ByteOrder, out *[]any) (int, error)

type codec struct {
	size     int  // bytes per element
	variable bool // repeat counts total bytes, not elements ('s' and 'p')
	pack     packFunc
	unpack   unpackFunc
}

// codecs is indexed directly by the format code byte. Codes the parser
// never emits have a zero entry with nil handlers.
var codecs [256]codec

func init() {
	codecs['x'] = codec{size: 1, pack: packPad, unpack: unpackPad}
	codecs['c'] = codec{size: 1, pack: packChar, unpack: unpackChar}
	codecs['b'] = codec{size: 1, pack: packInt(1, true), unpack: unpackInt(1, true)}
	codecs['B'] = codec{size: 1, pack: packInt(1, false), unpack: unpackInt(1, false)}
	codecs['?'] = codec{size: 1, pack: packBool, unpack: unpackBool}
	codecs['h'] = codec{size: 2, pack: packInt(2, true), unpack: unpackInt(2, true)}
	codecs['H'] = codec{size: 2, pack: packInt(2, false), unpack: unpackInt(2, false)}
	codecs['i'] = codec{size: 4, pack: packInt(4, true), unpack: unpackInt(4, true)}
	codecs['I'] = codec{size: 4, pack: packInt(4, false), unpack: unpackInt(4, false)}
	codecs['l'] = codec{size: 4, pack: packInt(4, true), unpack: unpackInt(4, true)}
	codecs['L'] = codec{size: 4, pack: packInt(4, false), unpack: unpackInt(4, false)}
	codecs['q'] = codec{size: 8, pack: packInt(8, true), unpack: unpackInt(8, true)}
	codecs['Q'] = codec{size: 8, pack: packInt(8, false), unpack: unpackInt(8, false)}
	codecs['e'] = codec{size: 2, pack: packFloat16, unpack: unpackFloat16}
	codecs['f'] = codec{size: 4, pack: packFloat32, unpack: unpackFloat32}
	codecs['d'] = codec{size: 8, pack: packFloat64, unpack: unpackFloat64}
	codecs['s'] = codec{size: 1, variable: true, pack: packString, unpack: unpackString}
	codecs['p'] = codec{size: 1, variable: true, pack: packPascal, unpack: unpackPascal}
}

func putUint(b []byte, width int, u uint64, order binary.ByteOrder) {
	switch width {
	case 1:
		b[0] = byte(u)
	case 2:
		order.PutUint16(b, uint16(u))
	case 4:
		order.PutUint32(b, uint32(u))
	case 8:
		order.PutUint64(b, u)
	}
}

func getUint(b []byte, width int, order binary.ByteOrder) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	default:
		return order.Uint64(b)
	}
}

// packPad writes repeat zero bytes and consumes no values
func packPad(buf []byte, off, repeat int, _ binary.ByteOrder, _ *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		buf[off+i] = 0
	}
	return off + repeat, nil
}

func unpackPad(_ []byte, off, repeat int, _ binary.ByteOrder, _ *[]any) (int, error) {
	return off + repeat, nil
}

// packChar writes the first byte of a one-byte string or byte slice, or
// zero when the value is empty or nil
func packChar(buf []byte, off, repeat int, _ binary.ByteOrder, vals *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		v, err := vals.next('c')
		if err != nil {
			return off, err
		}
		b, err := asBytes(v)
		if err != nil {
			return off, err
		}
		if len(b) > 0 {
			buf[off] = b[0]
		} else {
			buf[off] = 0
		}
		off++
	}
	return off, nil
}

// unpackChar yields one-byte sub-views, not decoded characters
func unpackChar(buf []byte, off, repeat int, _ binary.ByteOrder, out *[]any) (int, error) {
	for i := 0; i < repeat; i++ {
		*out = append(*out, buf[off:off+1:off+1])
		off++
	}
	return off, nil
}

func packInt(width int, signed bool) packFunc {
	return func(buf []byte, off, repeat int, order binary.ByteOrder, vals *valueQueue) (int, error) {
		for i := 0; i < repeat; i++ {
			v, err := vals.next(intCode(width, signed))
			if err != nil {
				return off, err
			}
			var u uint64
			if signed {
				n, err := asInt64(v)
				if err != nil {
					return off, err
				}
				u = uint64(n)
			} else {
				u, err = asUint64(v)
				if err != nil {
					return off, err
				}
			}
			putUint(buf[off:], width, u, order)
			off += width
		}
		return off, nil
	}
}

func unpackInt(width int, signed bool) unpackFunc {
	return func(buf []byte, off, repeat int, order binary.ByteOrder, out *[]any) (int, error) {
		for i := 0; i < repeat; i++ {
			u := getUint(buf[off:], width, order)
			if signed {
				switch width {
				case 1:
					*out = append(*out, int8(u))
				case 2:
					*out = append(*out, int16(u))
				case 4:
					*out = append(*out, int32(u))
				default:
					*out = append(*out, int64(u))
				}
			} else {
				switch width {
				case 1:
					*out = append(*out, uint8(u))
				case 2:
					*out = append(*out, uint16(u))
				case 4:
					*out = append(*out, uint32(u))
				default:
					*out = append(*out, u)
				}
			}
			off += width
		}
		return off, nil
	}
}

// intCode maps a width and signedness back to a representative format
// code for error messages.
func intCode(width int, signed bool) byte {
	var c byte
	switch width {
	case 1:
		c = 'b'
	case 2:
		c = 'h'
	case 4:
		c = 'i'
	default:
		c = 'q'
	}
	if !signed {
		c -= 'a' - 'A'
	}
	return c
}

func packBool(buf []byte, off, repeat int, _ binary.ByteOrder, vals *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		v, err := vals.next('?')
		if err != nil {
			return off, err
		}
		if truthy(v) {
			buf[off] = 1
		} else {
			buf[off] = 0
		}
		off++
	}
	return off, nil
}

func unpackBool(buf []byte, off, repeat int, _ binary.ByteOrder, out *[]any) (int, error) {
	for i := 0; i < repeat; i++ {
		*out = append(*out, buf[off] != 0)
		off++
	}
	return off, nil
}

func packFloat16(buf []byte, off, repeat int, order binary.ByteOrder, vals *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		v, err := vals.next('e')
		if err != nil {
			return off, err
		}
		f, err := asFloat64(v)
		if err != nil {
			return off, err
		}
		order.PutUint16(buf[off:], float16.FromFloat64(f))
		off += 2
	}
	return off, nil
}

func unpackFloat16(buf []byte, off, repeat int, order binary.ByteOrder, out *[]any) (int, error) {
	for i := 0; i < repeat; i++ {
		*out = append(*out, float16.ToFloat32(order.Uint16(buf[off:])))
		off += 2
	}
	return off, nil
}

func packFloat32(buf []byte, off, repeat int, order binary.ByteOrder, vals *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		v, err := vals.next('f')
		if err != nil {
			return off, err
		}
		f, err := asFloat64(v)
		if err != nil {
			return off, err
		}
		order.PutUint32(buf[off:], math.Float32bits(float32(f)))
		off += 4
	}
	return off, nil
}

func unpackFloat32(buf []byte, off, repeat int, order binary.ByteOrder, out *[]any) (int, error) {
	for i := 0; i < repeat; i++ {
		*out = append(*out, math.Float32frombits(order.Uint32(buf[off:])))
		off += 4
	}
	return off, nil
}

func packFloat64(buf []byte, off, repeat int, order binary.ByteOrder, vals *valueQueue) (int, error) {
	for i := 0; i < repeat; i++ {
		v, err := vals.next('d')
		if err != nil {
			return off, err
		}
		f, err := asFloat64(v)
		if err != nil {
			return off, err
		}
		order.PutUint64(buf[off:], math.Float64bits(f))
		off += 8
	}
	return off, nil
}

func unpackFloat64(buf []byte, off, repeat int, order binary.ByteOrder, out *[]any) (int, error) {
	for i := 0; i < repeat; i++ {
		*out = append(*out, math.Float64frombits(order.Uint64(buf[off:])))
		off += 8
	}
	return off, nil
}

// packString consumes exactly one value regardless of repeat, and
// right-pads or truncates it to exactly repeat bytes
func packString(buf []byte, off, repeat int, _ binary.ByteOrder, vals *valueQueue) (int, error) {
	v, err := vals.next('s')
	if err != nil {
		return off, err
	}
	b, err := asBytes(v)
	if err != nil {
		return off, err
	}
	n := copy(buf[off:off+repeat], b)
	for i := off + n; i < off+repeat; i++ {
		buf[i] = 0
	}
	return off + repeat, nil
}

// unpackString yields the full-width sub-view, zero padding included
func unpackString(buf []byte, off, repeat int, _ binary.ByteOrder, out *[]any) (int, error) {
	*out = append(*out, buf[off:off+repeat:off+repeat])
	return off + repeat, nil
}

// packPascal writes a length prefix byte of min(len, repeat-1) followed
// by the value truncated or zero padded to repeat-1 bytes
func packPascal(buf []byte, off, repeat int, _ binary.ByteOrder, vals *valueQueue) (int, error) {
	v, err := vals.next('p')
	if err != nil {
		return off, err
	}
	b, err := asBytes(v)
	if err != nil {
		return off, err
	}
	if repeat == 0 {
		return off, nil
	}
	n := len(b)
	if max := repeat - 1; n > max {
		n = max
	}
	buf[off] = byte(n)
	copy(buf[off+1:off+1+n], b[:n])
	for i := off + 1 + n; i < off+repeat; i++ {
		buf[i] = 0
	}
	return off + repeat, nil
}

// unpackPascal yields a sub-view of the prefixed length, clamped to the
// field width, discarding the prefix byte and any trailing pad
func unpackPascal(buf []byte, off, repeat int, _ binary.ByteOrder, out *[]any) (int, error) {
	if repeat == 0 {
		*out = append(*out, []byte{})
		return off, nil
	}
	n := int(buf[off])
	if max := repeat - 1; n > max {
		n = max
	}
	*out = append(*out, buf[off+1:off+1+n:off+1+n])
	return off + repeat, nil
}
