// Package strcodec converts between strings and byte slices under a
// named encoding. It covers the encodings a buffer abstraction is
// expected to speak: utf8, ascii, latin1, hex, base64, base64url and
// utf16le.
package strcodec

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding names a string codec
type Encoding string

// supported encodings
const (
	UTF8      Encoding = "utf8"
	ASCII     Encoding = "ascii"
	Latin1    Encoding = "latin1"
	Hex       Encoding = "hex"
	Base64    Encoding = "base64"
	Base64URL Encoding = "base64url"
	UTF16LE   Encoding = "utf16le"
)

// ErrUnknownEncoding is returned for an encoding name outside the
// supported set.
var ErrUnknownEncoding = errors.New("unknown encoding")

// latin1 replaces runes outside ISO 8859-1 instead of failing, matching
// the lossy behavior buffer users expect
var latin1Encoder = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
var latin1Decoder = charmap.ISO8859_1.NewDecoder()

// Encode converts s to bytes under the named encoding.
func Encode(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case UTF8:
		return []byte(s), nil
	case ASCII:
		b := []byte(s)
		for i := range b {
			b[i] &= 0x7F
		}
		return b, nil
	case Latin1:
		return latin1Encoder.Bytes([]byte(s))
	case Hex:
		return hex.DecodeString(s)
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	case Base64URL:
		return base64.RawURLEncoding.DecodeString(s)
	case UTF16LE:
		u := utf16.Encode([]rune(s))
		b := make([]byte, 2*len(u))
		for i, v := range u {
			b[2*i] = byte(v)
			b[2*i+1] = byte(v >> 8)
		}
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", string(enc))
	}
}

// Decode converts b to a string under the named encoding.
func Decode(enc Encoding, b []byte) (string, error) {
	switch enc {
	case UTF8:
		return string(b), nil
	case ASCII:
		r := make([]byte, len(b))
		for i := range b {
			r[i] = b[i] & 0x7F
		}
		return string(r), nil
	case Latin1:
		r, err := latin1Decoder.Bytes(b)
		if err != nil {
			return "", err
		}
		return string(r), nil
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(b), nil
	case UTF16LE:
		u := make([]uint16, len(b)/2)
		for i := range u {
			u[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
		}
		return string(utf16.Decode(u)), nil
	default:
		return "", errors.Wrapf(ErrUnknownEncoding, "%q", string(enc))
	}
}

// Valid reports whether b decodes cleanly under the named encoding. For
// utf8 this checks well-formedness; binary-to-text encodings are always
// valid on the decode side.
func Valid(enc Encoding, b []byte) bool {
	switch enc {
	case UTF8:
		return utf8.Valid(b)
	case UTF16LE:
		return len(b)%2 == 0
	default:
		return true
	}
}
