package bytepack

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"
)

// Pack packs vals according to format into a freshly allocated byte
// slice of exactly the required size.
func Pack(format string, vals ...any) ([]byte, error) {
	f, err := Parse(format)
	if err != nil {
		return nil, err
	}
	if logging {
		logger.Debug("packing into new buffer",
			zap.String("format", format),
			zap.Int("size", f.Size()),
		)
	}
	buf := make([]byte, f.Size())
	if err := f.PackInto(buf, vals...); err != nil {
		return nil, err
	}
	return buf, nil
}

// PackInto packs vals according to format into buf, starting at offset 0,
// and returns buf. It returns ErrBufferTooSmall before writing anything
// if buf is shorter than the format requires. If the values run out
// partway through, the fields before the failing one have already been
// written into buf.
func PackInto(buf []byte, format string, vals ...any) ([]byte, error) {
	f, err := Parse(format)
	if err != nil {
		return nil, err
	}
	if logging {
		logger.Debug("packing into supplied buffer",
			zap.String("format", format),
			zap.Int("size", f.Size()),
			zap.Int("buflen", len(buf)),
		)
	}
	if err := f.PackInto(buf, vals...); err != nil {
		return nil, err
	}
	return buf, nil
}

// PackInto packs vals into buf using the already-parsed format. Callers
// that pack the same layout repeatedly can parse once and reuse f.
func (f Format) PackInto(buf []byte, vals ...any) error {
	if need := f.Size(); len(buf) < need {
		return errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}

	order := f.order()
	q := &valueQueue{vals: vals}
	off := 0
	for _, it := range f.Items {
		c := codecs[it.Code]
		if c.pack == nil {
			return errors.Wrapf(ErrUnknownFormat, "%d%c", it.Repeat, it.Code)
		}
		var err error
		off, err = c.pack(buf, off, it.Repeat, order, q)
		if err != nil {
			return err
		}
	}
	return nil
}
