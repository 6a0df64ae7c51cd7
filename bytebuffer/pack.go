package bytebuffer

import (
	"github.com/pkg/errors"

	"github.com/bytepack/bytepack"
)

// PackAt packs vals according to format into the buffer starting at
// offset.
func (b *ByteBuffer) PackAt(offset int, format string, vals ...any) error {
	if offset < 0 || offset > len(b.buffer) {
		return errors.Errorf("offset %d out of range [0, %d]", offset, len(b.buffer))
	}
	_, err := bytepack.PackInto(b.buffer[offset:], format, vals...)
	return err
}

// UnpackAt decodes the buffer according to format starting at offset.
func (b *ByteBuffer) UnpackAt(offset int, format string) ([]any, error) {
	if offset < 0 || offset > len(b.buffer) {
		return nil, errors.Errorf("offset %d out of range [0, %d]", offset, len(b.buffer))
	}
	return bytepack.Unpack(b.buffer[offset:], format)
}
