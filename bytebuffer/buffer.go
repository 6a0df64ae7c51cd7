// Package bytebuffer implements a fixed-length byte buffer that supports
// writing anywhere within its range
//
// initially tried to use bytes.Buffer but the main restriction with that is that
// it does not allow the freedom to move around in the buffer. Further, it always
// writes at the end of the buffer
//
// this implements a minimal buffer wrapper that gives the freedom to move
// around and write anywhere you want, with endian-explicit accessors at
// arbitrary offsets, bit-level access, and bridges to the pack engine and
// the string codecs
package bytebuffer

import "io"

// Buffer defines an abstraction for an object that allows writing of binary
// values anywhere within a fixed range
type Buffer interface {
	io.Writer
	Bytes() []byte
	Pos() int
	SetPos(int) error
	Len() int

	At(int) (byte, error)
	SetAt(int, byte) error

	WriteUint16LE(uint16, int) (int, error)
	WriteUint16BE(uint16, int) (int, error)
	WriteUint32LE(uint32, int) (int, error)
	WriteUint32BE(uint32, int) (int, error)
	WriteUint64LE(uint64, int) (int, error)
	WriteUint64BE(uint64, int) (int, error)
	WriteFloat32LE(float32, int) (int, error)
	WriteFloat32BE(float32, int) (int, error)
	WriteFloat64LE(float64, int) (int, error)
	WriteFloat64BE(float64, int) (int, error)

	ReadUint16LE(int) (uint16, error)
	ReadUint16BE(int) (uint16, error)
	ReadUint32LE(int) (uint32, error)
	ReadUint32BE(int) (uint32, error)
	ReadUint64LE(int) (uint64, error)
	ReadUint64BE(int) (uint64, error)
	ReadInt16LE(int) (int16, error)
	ReadInt16BE(int) (int16, error)
	ReadInt32LE(int) (int32, error)
	ReadInt32BE(int) (int32, error)
	ReadInt64LE(int) (int64, error)
	ReadInt64BE(int) (int64, error)
	ReadFloat32LE(int) (float32, error)
	ReadFloat32BE(int) (float32, error)
	ReadFloat64LE(int) (float64, error)
	ReadFloat64BE(int) (float64, error)
}
