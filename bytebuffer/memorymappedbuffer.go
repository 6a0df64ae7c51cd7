package bytebuffer

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// MemoryMappedBuffer is a ByteBuffer that is also mapped into memory
type MemoryMappedBuffer struct {
	*ByteBuffer
	mapping mmap.MMap
	file    *os.File
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// NewMemoryMappedBuffer will create and return a new instance of a MemoryMappedBuffer
func NewMemoryMappedBuffer(loc string, size int) (*MemoryMappedBuffer, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Create(loc)
	if err != nil {
		return nil, err
	}

	if _, err = f.Write(make([]byte, size)); err != nil {
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &MemoryMappedBuffer{
		ByteBuffer: NewByteBufferSlice(m),
		mapping:    m,
		file:       f,
		loc:        loc,
		size:       size,
	}, nil
}

// Flush writes any cached modifications back to the underlying file
func (b *MemoryMappedBuffer) Flush() error {
	return b.mapping.Flush()
}

// Unmap will manually delete the memory mapping of a mapped buffer
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := b.mapping.Unmap(); err != nil {
		return err
	}

	if err := b.file.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return err
		}
	}

	return nil
}
