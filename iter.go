package bytepack

import "github.com/pkg/errors"

// Iter walks successive fixed-size windows of a buffer, unpacking each
// one on demand. A fresh Iter from IterUnpack always starts at the
// beginning of the buffer.
type Iter struct {
	buf  []byte
	f    Format
	need int
}

// IterUnpack returns an iterator that unpacks format from successive
// windows of buf. Preconditions are checked eagerly: the format must be
// valid, must describe at least one byte, and buf must hold at least one
// full window. Iteration stops as soon as the remaining bytes are fewer
// than one window; any remainder is dropped silently.
func IterUnpack(buf []byte, format string) (*Iter, error) {
	f, err := Parse(format)
	if err != nil {
		return nil, err
	}
	need := f.Size()
	if need == 0 {
		return nil, errors.Wrapf(ErrMalformedFormat, "cannot iterate zero-length format %q", format)
	}
	if len(buf) < need {
		return nil, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}
	return &Iter{buf: buf, f: f, need: need}, nil
}

// Next unpacks and returns the next window, or (nil, false) when fewer
// than one full window remains.
func (it *Iter) Next() ([]any, bool) {
	if len(it.buf) < it.need {
		return nil, false
	}
	vals, err := it.f.Unpack(it.buf[:it.need])
	if err != nil {
		// unreachable: the window size and format codes were validated
		// when the iterator was built
		return nil, false
	}
	it.buf = it.buf[it.need:]
	return vals, true
}

// Remaining returns how many full windows are left to consume.
func (it *Iter) Remaining() int {
	return len(it.buf) / it.need
}
