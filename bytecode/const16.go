package bytecode

import (
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-regvm/errors"
)

// AnyConst16 is a 16-bit encoded integer constant without a type.
//
// Small integer immediates are stored in 16 bits and widened back to their
// actual integer type on use. Whether the widening sign- or zero-extends is
// decided by the consumer, see Const16 for the typed variant.
type AnyConst16 struct {
	v int16
}

// AnyConst16FromI16 creates an AnyConst16 from the given int16 value.
func AnyConst16FromI16(v int16) AnyConst16 {
	return AnyConst16{v: v}
}

// AnyConst16FromU16 creates an AnyConst16 from the bits of the given uint16 value.
func AnyConst16FromU16(v uint16) AnyConst16 {
	return AnyConst16{v: int16(v)}
}

// AnyConst16FromI32 creates an AnyConst16 if v fits into an int16.
func AnyConst16FromI32(v int32) (AnyConst16, bool) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return AnyConst16{}, false
	}
	return AnyConst16{v: int16(v)}, true
}

// AnyConst16FromU32 creates an AnyConst16 if v fits into a uint16.
func AnyConst16FromU32(v uint32) (AnyConst16, bool) {
	if v > math.MaxUint16 {
		return AnyConst16{}, false
	}
	return AnyConst16FromU16(uint16(v)), true
}

// AnyConst16FromI64 creates an AnyConst16 if v fits into an int16.
func AnyConst16FromI64(v int64) (AnyConst16, bool) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return AnyConst16{}, false
	}
	return AnyConst16{v: int16(v)}, true
}

// AnyConst16FromU64 creates an AnyConst16 if v fits into a uint16.
func AnyConst16FromU64(v uint64) (AnyConst16, bool) {
	if v > math.MaxUint16 {
		return AnyConst16{}, false
	}
	return AnyConst16FromU16(uint16(v)), true
}

// TryAnyConst16 is AnyConst16FromI64 for callers that propagate errors.
func TryAnyConst16(v int64) (AnyConst16, error) {
	c, ok := AnyConst16FromI64(v)
	if !ok {
		return AnyConst16{}, errors.Overflow(errors.PhaseEncode, nil, v, "const16")
	}
	return c, nil
}

// I16 returns the raw stored bits as int16.
func (c AnyConst16) I16() int16 {
	return c.v
}

// U16 returns the raw stored bits as uint16.
func (c AnyConst16) U16() uint16 {
	return uint16(c.v)
}

// I32 returns the sign-extended value.
func (c AnyConst16) I32() int32 {
	return int32(c.v)
}

// U32 returns the zero-extended value.
func (c AnyConst16) U32() uint32 {
	return uint32(uint16(c.v))
}

// I64 returns the sign-extended value.
func (c AnyConst16) I64() int64 {
	return int64(c.v)
}

// U64 returns the zero-extended value.
func (c AnyConst16) U64() uint64 {
	return uint64(uint16(c.v))
}

// Const16Type lists the integer types a Const16 can be decoded to.
type Const16Type interface {
	int32 | uint32 | int64 | uint64
}

// Const16 is a 16-bit encoded constant that decodes to T.
//
// T carries no data. It selects sign-extension for int32 and int64 and
// zero-extension for uint32 and uint64, and keeps constants meant for
// different operand types from being mixed up.
type Const16[T Const16Type] struct {
	inner AnyConst16
}

// NewConst16 encodes v if it can be decoded back to T without loss.
func NewConst16[T Const16Type](v T) (Const16[T], bool) {
	var (
		inner AnyConst16
		ok    bool
	)
	switch x := any(v).(type) {
	case int32:
		inner, ok = AnyConst16FromI32(x)
	case uint32:
		inner, ok = AnyConst16FromU32(x)
	case int64:
		inner, ok = AnyConst16FromI64(x)
	case uint64:
		inner, ok = AnyConst16FromU64(x)
	}
	return Const16[T]{inner: inner}, ok
}

// Const16As tags untyped 16-bit storage with T.
func Const16As[T Const16Type](inner AnyConst16) Const16[T] {
	return Const16[T]{inner: inner}
}

// Any returns the untyped storage of c.
func (c Const16[T]) Any() AnyConst16 {
	return c.inner
}

// Value decodes c into T.
func (c Const16[T]) Value() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return T(c.inner.I32())
	case uint32:
		return T(c.inner.U32())
	case int64:
		return T(c.inner.I64())
	default:
		return T(c.inner.U64())
	}
}

// Cell returns the decoded value as an untyped 64-bit value cell.
func (c Const16[T]) Cell() uint64 {
	switch v := any(c.Value()).(type) {
	case int32:
		return api.EncodeI32(v)
	case uint32:
		return api.EncodeU32(v)
	case int64:
		return api.EncodeI64(v)
	default:
		return v.(uint64)
	}
}
