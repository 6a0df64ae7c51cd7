package bytepack

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPackMixedFields(t *testing.T) {
	data, err := Pack("!bbbx5sbbb", 1, 2, 3, "test", 5, 6, 7)
	require.NoError(t, err)
	assert.Equal(t, "010203007465737400050607", hex.EncodeToString(data))
}

func TestPackByteOrder(t *testing.T) {
	data, err := Pack("<i", 0x01020304)
	require.NoError(t, err)
	assert.Equal(t, "04030201", hex.EncodeToString(data))

	data, err = Pack(">i", 0x01020304)
	require.NoError(t, err)
	assert.Equal(t, "01020304", hex.EncodeToString(data))

	data, err = Pack("!i", 0x01020304)
	require.NoError(t, err)
	assert.Equal(t, "01020304", hex.EncodeToString(data))
}

func TestPackSizeAgreement(t *testing.T) {
	cases := []struct {
		format string
		vals   []any
	}{
		{"b", []any{1}},
		{"!bhl", []any{1, 2, 3}},
		{"<4H", []any{1, 2, 3, 4}},
		{"10s", []any{"hi"}},
		{"3p", []any{"hi"}},
		{"2x3fx", []any{1.0, 2.0, 3.0}},
		{"?c", []any{true, "a"}},
	}

	for _, c := range cases {
		data, err := Pack(c.format, c.vals...)
		require.NoError(t, err, "format %q", c.format)
		size, err := CalcSize(c.format)
		require.NoError(t, err)
		assert.Equal(t, size, len(data), "format %q", c.format)
	}
}

func TestPackStringPadding(t *testing.T) {
	data, err := Pack("5s", "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 0, 0, 0}, data)

	// longer values truncate to the field width
	data, err = Pack("2s", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b'}, data)

	// byte slices work the same as strings
	data, err = Pack("3s", []byte{9, 8})
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 0}, data)
}

func TestPackPascalString(t *testing.T) {
	data, err := Pack("5p", "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 'a', 'b', 0, 0}, data)

	// the length prefix clamps to the field body width
	data, err = Pack("3p", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 'a', 'b'}, data)
}

func TestPackPadWritesZeros(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	_, err := PackInto(buf, "4x")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestPackChar(t *testing.T) {
	data, err := Pack("3c", "a", []byte{'b'}, "")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 0}, data)
}

func TestPackBoolTruthiness(t *testing.T) {
	cases := []struct {
		val  any
		want byte
	}{
		{true, 1},
		{false, 0},
		{1, 1},
		{0, 0},
		{-1, 1},
		{3.14, 1},
		{0.0, 0},
		{"x", 1},
		{"", 0},
		{[]byte{0}, 1},
		{[]byte{}, 0},
		{nil, 0},
		{struct{}{}, 1},
	}

	for _, c := range cases {
		data, err := Pack("?", c.val)
		require.NoError(t, err, "value %#v", c.val)
		assert.Equal(t, []byte{c.want}, data, "value %#v", c.val)
	}
}

func TestPackIntoTooSmall(t *testing.T) {
	buf := make([]byte, 3)
	_, err := PackInto(buf, "!bhl", 1, 2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBufferTooSmall))
	assert.Contains(t, err.Error(), "need 7 bytes, have 3")

	// nothing was written
	assert.Equal(t, []byte{0, 0, 0}, buf)
}

func TestPackNotEnoughValues(t *testing.T) {
	_, err := Pack("!c")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughValues))

	_, err = Pack("5b", 1, 2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughValues))
}

func TestPackNotEnoughValuesPartialWrite(t *testing.T) {
	// running out of values fails mid-loop: fields packed before the
	// failure stay written
	buf := make([]byte, 5)
	_, err := PackInto(buf, "5b", 1, 2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughValues))
	assert.Equal(t, []byte{1, 2, 3, 0, 0}, buf)
}

func TestPackBadValueType(t *testing.T) {
	_, err := Pack("i", "not a number")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadValue))

	_, err = Pack("s", 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadValue))

	// floats do not silently coerce to integer fields
	_, err = Pack("h", 1.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadValue))
}

func TestPackUnknownCodeViaHandBuiltFormat(t *testing.T) {
	f := Format{Items: []Item{{2, 'z'}}}
	err := f.PackInto(make([]byte, 8), 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Contains(t, err.Error(), "2z")
}

func TestPackMalformedFormat(t *testing.T) {
	_, err := Pack("<", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFormat))
}

func TestPackIntegerKinds(t *testing.T) {
	// every Go integer kind packs into an integer field
	vals := []any{int(1), int8(2), int16(3), int32(4), int64(5), uint(6), uint8(7), uint16(8), uint32(9), uint64(10)}
	data, err := Pack("10B", vals...)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, data)
}

func TestPackSigned64(t *testing.T) {
	data, err := Pack(">q", int64(-2))
	require.NoError(t, err)
	assert.Equal(t, "fffffffffffffffe", hex.EncodeToString(data))

	data, err = Pack(">Q", uint64(0xDEADBEEFCAFEBABE))
	require.NoError(t, err)
	assert.Equal(t, "deadbeefcafebabe", hex.EncodeToString(data))
}
