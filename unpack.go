package bytepack

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"
)

// Unpack decodes buf according to format and returns the decoded values
// in field order. The result is always a slice, even for a single field.
//
// Integer codes decode to the Go type of matching width and signedness,
// '?' to bool, 'e' and 'f' to float32, 'd' to float64, and 'c', 's' and
// 'p' to sub-views of buf (not copies).
func Unpack(buf []byte, format string) ([]any, error) {
	f, err := Parse(format)
	if err != nil {
		return nil, err
	}
	if logging {
		logger.Debug("unpacking",
			zap.String("format", format),
			zap.Int("buflen", len(buf)),
		)
	}
	return f.Unpack(buf)
}

// Unpack decodes buf using the already-parsed format.
func (f Format) Unpack(buf []byte) ([]any, error) {
	if need := f.Size(); len(buf) < need {
		return nil, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}

	order := f.order()
	out := make([]any, 0, len(f.Items))
	off := 0
	for _, it := range f.Items {
		c := codecs[it.Code]
		if c.unpack == nil {
			return nil, errors.Wrapf(ErrUnknownFormat, "%d%c", it.Repeat, it.Code)
		}
		var err error
		off, err = c.unpack(buf, off, it.Repeat, order, &out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
