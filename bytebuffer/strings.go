package bytebuffer

import (
	"github.com/pkg/errors"

	"github.com/bytepack/bytepack/strcodec"
)

// WriteStringAt encodes s under the named encoding and writes it at
// offset, returning the next offset.
func (b *ByteBuffer) WriteStringAt(s string, offset int, enc strcodec.Encoding) (int, error) {
	data, err := strcodec.Encode(enc, s)
	if err != nil {
		return offset, err
	}
	if err := b.check(offset, len(data)); err != nil {
		return offset, err
	}
	copy(b.buffer[offset:], data)
	return offset + len(data), nil
}

// StringAt decodes [start, end) of the buffer under the named encoding.
func (b *ByteBuffer) StringAt(start, end int, enc strcodec.Encoding) (string, error) {
	if start < 0 || end > len(b.buffer) || start > end {
		return "", errors.Errorf("string range [%d, %d) out of range [0, %d)", start, end, len(b.buffer))
	}
	return strcodec.Decode(enc, b.buffer[start:end])
}
