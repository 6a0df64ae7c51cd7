// Package float16 converts between IEEE 754 binary16 bit patterns and the
// native float types. Encoding rounds to nearest, ties to even, and
// handles subnormals, infinities and NaN.
package float16

import "math"

const (
	signMask16 = 0x8000
	expMask16  = 0x7C00
	coefMask16 = 0x03FF
)

// FromFloat32 returns the binary16 bit pattern nearest to f.
func FromFloat32(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & signMask16
	exp := int32(bits>>23) & 0xFF
	coef := bits & 0x7FFFFF

	if exp == 0xFF {
		if coef != 0 {
			// NaN, keep the top payload bits and force one set so the
			// result stays a NaN
			return sign | expMask16 | 0x0200 | uint16(coef>>13)
		}
		return sign | expMask16
	}

	halfExp := exp - 127 + 15

	if halfExp >= 0x1F {
		return sign | expMask16
	}

	if halfExp <= 0 {
		if 14-halfExp > 24 {
			return sign
		}
		c := coef | 0x800000
		shift := uint32(14 - halfExp)
		halfCoef := uint16(c >> shift)
		roundBit := uint32(1) << (shift - 1)
		if c&roundBit != 0 && c&(3*roundBit-1) != 0 {
			halfCoef++
		}
		return sign | halfCoef
	}

	halfCoef := uint16(coef >> 13)
	roundBit := uint32(0x1000)
	if coef&roundBit != 0 && coef&(3*roundBit-1) != 0 {
		// the carry may overflow into the exponent, which yields the
		// correct next binade (or infinity) by construction
		return (sign | uint16(halfExp)<<10 | halfCoef) + 1
	}
	return sign | uint16(halfExp)<<10 | halfCoef
}

// FromFloat64 returns the binary16 bit pattern nearest to f.
func FromFloat64(f float64) uint16 {
	return FromFloat32(float32(f))
}

// ToFloat32 expands a binary16 bit pattern to float32. The conversion is
// exact; every binary16 value is representable as a float32.
func ToFloat32(h uint16) float32 {
	sign := uint32(h&signMask16) << 16
	exp := uint32(h&expMask16) >> 10
	coef := uint32(h & coefMask16)

	switch exp {
	case 0x1F:
		// Inf or NaN
		return math.Float32frombits(sign | 0x7F800000 | coef<<13)
	case 0:
		if coef == 0 {
			return math.Float32frombits(sign)
		}
		// subnormal, normalize into float32's larger exponent range
		exp32 := uint32(113)
		for coef&0x400 == 0 {
			coef <<= 1
			exp32--
		}
		coef &= coefMask16
		return math.Float32frombits(sign | exp32<<23 | coef<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | coef<<13)
	}
}

// ToFloat64 expands a binary16 bit pattern to float64.
func ToFloat64(h uint16) float64 {
	return float64(ToFloat32(h))
}
