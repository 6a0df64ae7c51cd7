package bytebuffer

import (
	"bytes"
	"testing"

	"github.com/bytepack/bytepack/strcodec"
)

func TestPackAt(t *testing.T) {
	b := NewByteBuffer(8)

	if err := b.PackAt(2, ">Hi", 0xBEEF, 1); err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(b.Bytes(), []byte{0, 0, 0xBE, 0xEF, 0, 0, 0, 1}) {
		t.Errorf("unexpected contents %v", b.Bytes())
	}

	if err := b.PackAt(6, ">i", 1); err == nil {
		t.Error("expected packing past the end to fail")
	}
	if err := b.PackAt(-1, "b", 1); err == nil {
		t.Error("expected a negative offset to fail")
	}
}

func TestUnpackAt(t *testing.T) {
	b := NewByteBufferSlice([]byte{9, 9, 0xBE, 0xEF})

	vals, err := b.UnpackAt(2, ">H")
	if err != nil {
		t.Error(err)
		return
	}
	if len(vals) != 1 || vals[0] != uint16(0xBEEF) {
		t.Errorf("unexpected values %v", vals)
	}

	if _, err := b.UnpackAt(3, ">H"); err == nil {
		t.Error("expected unpacking past the end to fail")
	}
}

func TestWriteStringAtAndStringAt(t *testing.T) {
	b := NewByteBuffer(8)

	next, err := b.WriteStringAt("hi", 1, strcodec.UTF16LE)
	if err != nil {
		t.Error(err)
		return
	}
	if next != 5 {
		t.Errorf("expected next offset 5, got %v", next)
	}
	if !bytes.Equal(b.Bytes()[1:5], []byte{'h', 0, 'i', 0}) {
		t.Errorf("unexpected contents %v", b.Bytes())
	}

	s, err := b.StringAt(1, 5, strcodec.UTF16LE)
	if err != nil {
		t.Error(err)
		return
	}
	if s != "hi" {
		t.Errorf("expected %q, got %q", "hi", s)
	}

	if _, err := b.WriteStringAt("too long to fit", 0, strcodec.UTF8); err == nil {
		t.Error("expected an oversized write to fail")
	}
	if _, err := b.StringAt(5, 2, strcodec.UTF8); err == nil {
		t.Error("expected an inverted range to fail")
	}
}
