package ndarray

import (
	"encoding/binary"
	"math"

	"github.com/coralang/interp-runtime/errors"
)

func putUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func putFloat64(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) }

// byteOffset resolves an index tuple to a buffer offset using the byte
// strides, bounds-checking each dimension.
func (a *Array) byteOffset(idx []int64) (int64, error) {
	if len(idx) != len(a.shape) {
		return 0, errors.InvalidInput(errors.PhaseArray,
			"index rank does not match array rank")
	}
	var off int64
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			return 0, errors.OutOfBounds(errors.PhaseArray, nil, int(j), int(a.shape[i]))
		}
		off += j * a.strides[i]
	}
	return off, nil
}

// Float64At reads the element at idx. The array must be Float64.
func (a *Array) Float64At(idx ...int64) (float64, error) {
	if a.dtype != Float64 {
		return 0, errors.InvalidDType(errors.PhaseArray, a.dtype.String(), Float64.String())
	}
	off, err := a.byteOffset(idx)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(a.data[off:])), nil
}

// SetFloat64 writes the element at idx. The array must be Float64.
func (a *Array) SetFloat64(v float64, idx ...int64) error {
	if a.dtype != Float64 {
		return errors.InvalidDType(errors.PhaseArray, a.dtype.String(), Float64.String())
	}
	off, err := a.byteOffset(idx)
	if err != nil {
		return err
	}
	putFloat64(a.data[off:], v)
	return nil
}

// Int64At reads the element at idx. The array must be Int64.
func (a *Array) Int64At(idx ...int64) (int64, error) {
	if a.dtype != Int64 {
		return 0, errors.InvalidDType(errors.PhaseArray, a.dtype.String(), Int64.String())
	}
	off, err := a.byteOffset(idx)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(a.data[off:])), nil
}

// SetInt64 writes the element at idx. The array must be Int64.
func (a *Array) SetInt64(v int64, idx ...int64) error {
	if a.dtype != Int64 {
		return errors.InvalidDType(errors.PhaseArray, a.dtype.String(), Int64.String())
	}
	off, err := a.byteOffset(idx)
	if err != nil {
		return err
	}
	putUint64(a.data[off:], uint64(v))
	return nil
}
