package bytebuffer

import (
	"os"
	"path"
	"testing"
)

func TestMemoryMappedBuffer(t *testing.T) {
	loc := path.Join(t.TempDir(), "bytebuffer_memorymappedbuffer_test.tmp")

	b, err := NewMemoryMappedBuffer(loc, 10)
	if err != nil {
		t.Error("Cannot proceed with test as cannot create buffer\n", err)
		return
	}

	if _, err = os.Stat(loc); err != nil {
		t.Errorf("No file created at %v despite the buffer being initialized", loc)
		return
	}

	b.MustSetPos(5)
	if err := b.WriteString("x"); err != nil {
		t.Error("Cannot write to MemoryMappedBuffer")
		return
	}

	if err := b.Flush(); err != nil {
		t.Error("Cannot flush MemoryMappedBuffer")
		return
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Error("Cannot read file backing MemoryMappedBuffer")
		return
	}
	if len(data) != 10 {
		t.Errorf("expected backing file length 10, got %v", len(data))
		return
	}
	if data[5] != 'x' {
		t.Error("expected the write to be visible in the backing file")
	}

	if err := b.Unmap(true); err != nil {
		t.Error("Cannot unmap MemoryMappedBuffer")
		return
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("expected the backing file to be removed on unmap")
	}
}

func TestMemoryMappedBufferPackAt(t *testing.T) {
	loc := path.Join(t.TempDir(), "bytebuffer_mmap_pack_test.tmp")

	b, err := NewMemoryMappedBuffer(loc, 4)
	if err != nil {
		t.Error("Cannot proceed with test as cannot create buffer\n", err)
		return
	}
	defer func() {
		if err := b.Unmap(true); err != nil {
			t.Error("Cannot unmap MemoryMappedBuffer")
		}
	}()

	if err := b.PackAt(0, "<I", 0x01020304); err != nil {
		t.Error(err)
		return
	}
	if err := b.Flush(); err != nil {
		t.Error(err)
		return
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Error(err)
		return
	}
	for i, e := range []byte{4, 3, 2, 1} {
		if data[i] != e {
			t.Errorf("pos: %v, expected: %v, got %v", i, e, data[i])
		}
	}
}
