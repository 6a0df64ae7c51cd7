package bytebuffer

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
)

// Fill sets every byte in [start, end) to v.
func (b *ByteBuffer) Fill(v byte, start, end int) error {
	if start < 0 || end > len(b.buffer) || start > end {
		return errors.Errorf("fill range [%d, %d) out of range [0, %d)", start, end, len(b.buffer))
	}
	for i := start; i < end; i++ {
		b.buffer[i] = v
	}
	return nil
}

// CopyInto copies [srcStart, srcEnd) of b into dst starting at destOffset
// and returns the number of bytes copied.
func (b *ByteBuffer) CopyInto(dst *ByteBuffer, destOffset, srcStart, srcEnd int) (int, error) {
	if srcStart < 0 || srcEnd > len(b.buffer) || srcStart > srcEnd {
		return 0, errors.Errorf("source range [%d, %d) out of range [0, %d)", srcStart, srcEnd, len(b.buffer))
	}
	if destOffset < 0 || destOffset > dst.Len() {
		return 0, errors.Errorf("destination offset %d out of range [0, %d]", destOffset, dst.Len())
	}
	return copy(dst.buffer[destOffset:], b.buffer[srcStart:srcEnd]), nil
}

// Compare returns -1, 0 or 1 ordering b against other lexicographically.
func (b *ByteBuffer) Compare(other *ByteBuffer) int {
	return bytes.Compare(b.buffer, other.buffer)
}

// Equal reports whether b and other hold the same bytes.
func (b *ByteBuffer) Equal(other *ByteBuffer) bool {
	return bytes.Equal(b.buffer, other.buffer)
}

// Index returns the offset of the first occurrence of needle, or -1.
func (b *ByteBuffer) Index(needle []byte) int {
	return bytes.Index(b.buffer, needle)
}

// And combines b with other in place, byte by byte. Lengths must match.
func (b *ByteBuffer) And(other *ByteBuffer) error {
	return b.combine(other, func(x, y byte) byte { return x & y })
}

// Or combines b with other in place, byte by byte. Lengths must match.
func (b *ByteBuffer) Or(other *ByteBuffer) error {
	return b.combine(other, func(x, y byte) byte { return x | y })
}

// Xor combines b with other in place, byte by byte. Lengths must match.
func (b *ByteBuffer) Xor(other *ByteBuffer) error {
	return b.combine(other, func(x, y byte) byte { return x ^ y })
}

func (b *ByteBuffer) combine(other *ByteBuffer, op func(byte, byte) byte) error {
	if len(b.buffer) != len(other.buffer) {
		return errors.Errorf("length mismatch: %d and %d", len(b.buffer), len(other.buffer))
	}
	for i := range b.buffer {
		b.buffer[i] = op(b.buffer[i], other.buffer[i])
	}
	return nil
}

// Not inverts every byte of b in place.
func (b *ByteBuffer) Not() {
	for i := range b.buffer {
		b.buffer[i] = ^b.buffer[i]
	}
}

// Sort orders the buffer's bytes ascending in place.
func (b *ByteBuffer) Sort() {
	sort.Slice(b.buffer, func(i, j int) bool { return b.buffer[i] < b.buffer[j] })
}

// Bit returns bit i, counting from the least significant bit of byte 0.
func (b *ByteBuffer) Bit(i int) (bool, error) {
	if i < 0 || i/8 >= len(b.buffer) {
		return false, errors.Errorf("bit %d out of range [0, %d)", i, len(b.buffer)*8)
	}
	return b.buffer[i/8]&(1<<(uint(i)%8)) != 0, nil
}

// SetBit sets or clears bit i, counting from the least significant bit
// of byte 0.
func (b *ByteBuffer) SetBit(i int, on bool) error {
	if i < 0 || i/8 >= len(b.buffer) {
		return errors.Errorf("bit %d out of range [0, %d)", i, len(b.buffer)*8)
	}
	mask := byte(1) << (uint(i) % 8)
	if on {
		b.buffer[i/8] |= mask
	} else {
		b.buffer[i/8] &^= mask
	}
	return nil
}
