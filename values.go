package bytepack

import "github.com/pkg/errors"

// asInt64 coerces any Go integer kind to int64 for the signed integer
// codes. Out of range values truncate the way a C cast would; floats and
// other kinds are rejected.
func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case uintptr:
		return int64(n), nil
	default:
		return 0, errors.Wrapf(ErrBadValue, "cannot pack %T as integer", v)
	}
}

// asUint64 coerces any Go integer kind to uint64 for the unsigned
// integer codes. Negative inputs wrap the way a C cast would.
func asUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		return uint64(n), nil
	case int8:
		return uint64(n), nil
	case int16:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case uintptr:
		return uint64(n), nil
	default:
		return 0, errors.Wrapf(ErrBadValue, "cannot pack %T as integer", v)
	}
}

// asFloat64 coerces floats and integers to float64 for the float codes.
func asFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, errors.Wrapf(ErrBadValue, "cannot pack %T as float", v)
	}
}

// asBytes coerces the byte-sequence kinds accepted by the 'c', 's' and
// 'p' codes. A nil value counts as empty.
func asBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, errors.Wrapf(ErrBadValue, "cannot pack %T as bytes", v)
	}
}

// truthy reports whether a value packs as 1 under the '?' code. Booleans,
// numbers, strings and byte slices follow their natural truthiness; nil
// is false; any other non-nil value is true.
func truthy(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case bool:
		return n
	case string:
		return len(n) > 0
	case []byte:
		return len(n) > 0
	case float32:
		return n != 0
	case float64:
		return n != 0
	default:
		if u, err := asUint64(v); err == nil {
			return u != 0
		}
		return true
	}
}
