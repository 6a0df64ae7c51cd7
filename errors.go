package bytepack

import "github.com/pkg/errors"

// sentinel errors returned (wrapped with context) by the pack engine,
// comparable with errors.Is
var (
	// ErrMalformedFormat means the format string does not match the
	// format grammar.
	ErrMalformedFormat = errors.New("malformed format string")

	// ErrBufferTooSmall means the supplied buffer is shorter than the
	// byte length the format requires.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNotEnoughValues means packing ran out of values partway
	// through the format. Fields before the failing one have already
	// been written.
	ErrNotEnoughValues = errors.New("not enough values")

	// ErrUnknownFormat means a format code reached the codec table that
	// the parser does not emit, which can only happen through a
	// hand-built Format.
	ErrUnknownFormat = errors.New("unknown format code")

	// ErrBadValue means a value could not be coerced to the type its
	// format code requires.
	ErrBadValue = errors.New("value not packable")
)
