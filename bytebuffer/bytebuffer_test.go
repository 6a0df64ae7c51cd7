package bytebuffer

import "testing"

func TestWriteUint32LE(t *testing.T) {
	cases := []uint32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 4294967295}

	for _, val := range cases {
		b := NewByteBuffer(4)

		next, err := b.WriteUint32LE(val, 0)
		if err != nil {
			t.Error(err)
			return
		}

		if next != 4 {
			t.Error("expected next offset to be 4")
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		for i := 0; i < 4; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}
	}
}

func TestWriteUint32BE(t *testing.T) {
	cases := []uint32{0, 10, 1000, 10000000, 4294967295}

	for _, val := range cases {
		b := NewByteBuffer(4)

		if _, err := b.WriteUint32BE(val, 0); err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val >> 24),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		for i := 0; i < 4; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}
	}
}

func TestWriteUint64LE(t *testing.T) {
	cases := []uint64{0, 10, 4294967295, 10000000000000, 18446744073709551615}

	for _, val := range cases {
		b := NewByteBuffer(8)

		next, err := b.WriteUint64LE(val, 0)
		if err != nil {
			t.Error(err)
			return
		}

		if next != 8 {
			t.Error("expected next offset to be 8")
			return
		}

		for i := 0; i < 8; i++ {
			e := byte((val >> (8 * uint(i))) & 0xFF)
			if b.buffer[i] != e {
				t.Errorf("pos: %v, expected: %v, got %v", i, e, b.buffer[i])
			}
		}
	}
}

func TestReadBackWrites(t *testing.T) {
	b := NewByteBuffer(32)

	if _, err := b.WriteUint16BE(0xBEEF, 0); err != nil {
		t.Error(err)
	}
	if v, err := b.ReadUint16BE(0); err != nil || v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got %v (err %v)", v, err)
	}
	if v, err := b.ReadInt16BE(0); err != nil || v != -16657 {
		t.Errorf("expected -16657, got %v (err %v)", v, err)
	}

	if _, err := b.WriteUint64LE(0xDEADBEEFCAFEBABE, 8); err != nil {
		t.Error(err)
	}
	if v, err := b.ReadUint64LE(8); err != nil || v != 0xDEADBEEFCAFEBABE {
		t.Errorf("expected 0xDEADBEEFCAFEBABE, got %x (err %v)", v, err)
	}

	if _, err := b.WriteFloat64LE(3.25, 16); err != nil {
		t.Error(err)
	}
	if v, err := b.ReadFloat64LE(16); err != nil || v != 3.25 {
		t.Errorf("expected 3.25, got %v (err %v)", v, err)
	}

	if _, err := b.WriteFloat32BE(-1.5, 24); err != nil {
		t.Error(err)
	}
	if v, err := b.ReadFloat32BE(24); err != nil || v != -1.5 {
		t.Errorf("expected -1.5, got %v (err %v)", v, err)
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	b := NewByteBuffer(4)

	if _, err := b.WriteUint32LE(1, 1); err == nil {
		t.Error("expected a write past the end to fail")
	}
	if _, err := b.ReadUint64LE(0); err == nil {
		t.Error("expected a read past the end to fail")
	}
	if _, err := b.ReadUint16LE(-1); err == nil {
		t.Error("expected a read at a negative offset to fail")
	}
	if _, err := b.At(4); err == nil {
		t.Error("expected an indexed read past the end to fail")
	}
}

func TestWriteString(t *testing.T) {
	cases := []string{"MMV", "bytepack", "a somewhat longer string"}
	for _, val := range cases {
		b := NewByteBuffer(len(val))

		err := b.WriteString(val)
		if err != nil {
			t.Error(err)
			return
		}

		if b.Pos() != len(val) {
			t.Errorf("Expected to write %v bytes, writing %v bytes", len(val), b.Pos())
			return
		}

		e := []byte(val)
		for i := 0; i < len(val); i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}
	}
}

func TestSetPos(t *testing.T) {
	b := NewByteBuffer(4)

	if err := b.SetPos(2); err != nil {
		t.Error(err)
	}
	if b.Pos() != 2 {
		t.Errorf("expected pos 2, got %v", b.Pos())
	}

	if err := b.SetPos(4); err == nil {
		t.Error("expected setting pos past the end to fail")
	}
	if err := b.SetPos(-1); err == nil {
		t.Error("expected setting a negative pos to fail")
	}
}

func TestSlice(t *testing.T) {
	b := NewByteBufferSlice([]byte{1, 2, 3, 4, 5})

	s, err := b.Slice(1, 4)
	if err != nil {
		t.Error(err)
		return
	}
	if s.Len() != 3 {
		t.Errorf("expected slice length 3, got %v", s.Len())
	}

	// a slice is a view, not a copy
	if err := s.SetAt(0, 9); err != nil {
		t.Error(err)
	}
	if b.buffer[1] != 9 {
		t.Error("expected writes through the slice to be visible in the parent")
	}

	if _, err := b.Slice(3, 1); err == nil {
		t.Error("expected an inverted slice range to fail")
	}
}
