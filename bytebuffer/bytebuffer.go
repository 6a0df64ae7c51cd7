package bytebuffer

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// ByteBuffer is a simple wrapper over a fixed-length byte slice that
// supports writing anywhere, through a cursor or at explicit offsets
type ByteBuffer struct {
	pos    int
	buffer []byte
}

// NewByteBuffer creates a new ByteBuffer of the specified size
func NewByteBuffer(n int) *ByteBuffer {
	return &ByteBuffer{
		pos:    0,
		buffer: make([]byte, n),
	}
}

// NewByteBufferSlice creates a new ByteBuffer using the passed slice
func NewByteBufferSlice(buffer []byte) *ByteBuffer {
	return &ByteBuffer{
		pos:    0,
		buffer: buffer,
	}
}

// Pos returns the current write position of the ByteBuffer
func (b *ByteBuffer) Pos() int { return b.pos }

// SetPos sets the write position of the ByteBuffer to the specified position
func (b *ByteBuffer) SetPos(position int) error {
	if position < 0 || position >= len(b.buffer) {
		return errors.Errorf("position %d out of range [0, %d)", position, len(b.buffer))
	}

	b.pos = position
	return nil
}

// MustSetPos will try to set the position inside the buffer and panic on error
func (b *ByteBuffer) MustSetPos(position int) {
	if err := b.SetPos(position); err != nil {
		panic(err)
	}
}

// Len returns the maximum size of the ByteBuffer
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Bytes returns the internal byte array of the ByteBuffer
func (b *ByteBuffer) Bytes() []byte { return b.buffer }

// Slice returns a view (not a copy) of the buffer between start and end.
func (b *ByteBuffer) Slice(start, end int) (*ByteBuffer, error) {
	if start < 0 || end > len(b.buffer) || start > end {
		return nil, errors.Errorf("slice [%d, %d) out of range [0, %d)", start, end, len(b.buffer))
	}
	return NewByteBufferSlice(b.buffer[start:end]), nil
}

func (b *ByteBuffer) Write(data []byte) (int, error) {
	l := len(data)

	if b.pos+l > len(b.buffer) {
		return 0, errors.Errorf("cannot write %d bytes at position %d in a buffer of length %d", l, b.pos, len(b.buffer))
	}

	copy(b.buffer[b.pos:], data)
	b.pos += l

	return l, nil
}

// MustWrite is a write that will panic if Write returns an error
func (b *ByteBuffer) MustWrite(data []byte) {
	if _, err := b.Write(data); err != nil {
		panic(err)
	}
}

// WriteString writes a string to the buffer at the cursor
func (b *ByteBuffer) WriteString(val string) error {
	_, err := b.Write([]byte(val))
	return err
}

// check validates that [offset, offset+width) lies inside the buffer
func (b *ByteBuffer) check(offset, width int) error {
	if offset < 0 || offset+width > len(b.buffer) {
		return errors.Errorf("%d bytes at offset %d out of range [0, %d)", width, offset, len(b.buffer))
	}
	return nil
}

// At returns the byte at index i
func (b *ByteBuffer) At(i int) (byte, error) {
	if err := b.check(i, 1); err != nil {
		return 0, err
	}
	return b.buffer[i], nil
}

// SetAt sets the byte at index i
func (b *ByteBuffer) SetAt(i int, v byte) error {
	if err := b.check(i, 1); err != nil {
		return err
	}
	b.buffer[i] = v
	return nil
}

func (b *ByteBuffer) writeUint(v uint64, offset, width int, order binary.ByteOrder) (int, error) {
	if err := b.check(offset, width); err != nil {
		return offset, err
	}
	switch width {
	case 2:
		order.PutUint16(b.buffer[offset:], uint16(v))
	case 4:
		order.PutUint32(b.buffer[offset:], uint32(v))
	case 8:
		order.PutUint64(b.buffer[offset:], v)
	}
	return offset + width, nil
}

func (b *ByteBuffer) readUint(offset, width int, order binary.ByteOrder) (uint64, error) {
	if err := b.check(offset, width); err != nil {
		return 0, err
	}
	switch width {
	case 2:
		return uint64(order.Uint16(b.buffer[offset:])), nil
	case 4:
		return uint64(order.Uint32(b.buffer[offset:])), nil
	default:
		return order.Uint64(b.buffer[offset:]), nil
	}
}

// WriteUint16LE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint16LE(v uint16, offset int) (int, error) {
	return b.writeUint(uint64(v), offset, 2, binary.LittleEndian)
}

// WriteUint16BE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint16BE(v uint16, offset int) (int, error) {
	return b.writeUint(uint64(v), offset, 2, binary.BigEndian)
}

// WriteUint32LE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint32LE(v uint32, offset int) (int, error) {
	return b.writeUint(uint64(v), offset, 4, binary.LittleEndian)
}

// WriteUint32BE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint32BE(v uint32, offset int) (int, error) {
	return b.writeUint(uint64(v), offset, 4, binary.BigEndian)
}

// WriteUint64LE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint64LE(v uint64, offset int) (int, error) {
	return b.writeUint(v, offset, 8, binary.LittleEndian)
}

// WriteUint64BE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteUint64BE(v uint64, offset int) (int, error) {
	return b.writeUint(v, offset, 8, binary.BigEndian)
}

// WriteFloat32LE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteFloat32LE(v float32, offset int) (int, error) {
	return b.writeUint(uint64(math.Float32bits(v)), offset, 4, binary.LittleEndian)
}

// WriteFloat32BE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteFloat32BE(v float32, offset int) (int, error) {
	return b.writeUint(uint64(math.Float32bits(v)), offset, 4, binary.BigEndian)
}

// WriteFloat64LE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteFloat64LE(v float64, offset int) (int, error) {
	return b.writeUint(math.Float64bits(v), offset, 8, binary.LittleEndian)
}

// WriteFloat64BE writes v at offset and returns the next offset
func (b *ByteBuffer) WriteFloat64BE(v float64, offset int) (int, error) {
	return b.writeUint(math.Float64bits(v), offset, 8, binary.BigEndian)
}

// ReadUint16LE reads the value at offset
func (b *ByteBuffer) ReadUint16LE(offset int) (uint16, error) {
	v, err := b.readUint(offset, 2, binary.LittleEndian)
	return uint16(v), err
}

// ReadUint16BE reads the value at offset
func (b *ByteBuffer) ReadUint16BE(offset int) (uint16, error) {
	v, err := b.readUint(offset, 2, binary.BigEndian)
	return uint16(v), err
}

// ReadUint32LE reads the value at offset
func (b *ByteBuffer) ReadUint32LE(offset int) (uint32, error) {
	v, err := b.readUint(offset, 4, binary.LittleEndian)
	return uint32(v), err
}

// ReadUint32BE reads the value at offset
func (b *ByteBuffer) ReadUint32BE(offset int) (uint32, error) {
	v, err := b.readUint(offset, 4, binary.BigEndian)
	return uint32(v), err
}

// ReadUint64LE reads the value at offset
func (b *ByteBuffer) ReadUint64LE(offset int) (uint64, error) {
	return b.readUint(offset, 8, binary.LittleEndian)
}

// ReadUint64BE reads the value at offset
func (b *ByteBuffer) ReadUint64BE(offset int) (uint64, error) {
	return b.readUint(offset, 8, binary.BigEndian)
}

// ReadInt16LE reads the value at offset
func (b *ByteBuffer) ReadInt16LE(offset int) (int16, error) {
	v, err := b.readUint(offset, 2, binary.LittleEndian)
	return int16(v), err
}

// ReadInt16BE reads the value at offset
func (b *ByteBuffer) ReadInt16BE(offset int) (int16, error) {
	v, err := b.readUint(offset, 2, binary.BigEndian)
	return int16(v), err
}

// ReadInt32LE reads the value at offset
func (b *ByteBuffer) ReadInt32LE(offset int) (int32, error) {
	v, err := b.readUint(offset, 4, binary.LittleEndian)
	return int32(v), err
}

// ReadInt32BE reads the value at offset
func (b *ByteBuffer) ReadInt32BE(offset int) (int32, error) {
	v, err := b.readUint(offset, 4, binary.BigEndian)
	return int32(v), err
}

// ReadInt64LE reads the value at offset
func (b *ByteBuffer) ReadInt64LE(offset int) (int64, error) {
	v, err := b.readUint(offset, 8, binary.LittleEndian)
	return int64(v), err
}

// ReadInt64BE reads the value at offset
func (b *ByteBuffer) ReadInt64BE(offset int) (int64, error) {
	v, err := b.readUint(offset, 8, binary.BigEndian)
	return int64(v), err
}

// ReadFloat32LE reads the value at offset
func (b *ByteBuffer) ReadFloat32LE(offset int) (float32, error) {
	v, err := b.readUint(offset, 4, binary.LittleEndian)
	return math.Float32frombits(uint32(v)), err
}

// ReadFloat32BE reads the value at offset
func (b *ByteBuffer) ReadFloat32BE(offset int) (float32, error) {
	v, err := b.readUint(offset, 4, binary.BigEndian)
	return math.Float32frombits(uint32(v)), err
}

// ReadFloat64LE reads the value at offset
func (b *ByteBuffer) ReadFloat64LE(offset int) (float64, error) {
	v, err := b.readUint(offset, 8, binary.LittleEndian)
	return math.Float64frombits(v), err
}

// ReadFloat64BE reads the value at offset
func (b *ByteBuffer) ReadFloat64BE(offset int) (float64, error) {
	v, err := b.readUint(offset, 8, binary.BigEndian)
	return math.Float64frombits(v), err
}
