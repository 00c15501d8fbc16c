package bytecode

import (
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"
)

// AnyConst32 is a 32-bit encoded constant value of any type.
//
// The value is kept as two 16-bit halves so that AnyConst32 is 4 bytes large
// but only 2-byte aligned. Instruction words are packed back to back and a
// 4-byte aligned field would pad them.
//
// Decoding is not type checked: a value must be decoded with the same type
// it was encoded from.
type AnyConst32 struct {
	lo uint16
	hi uint16
}

// AnyConst32FromU32 creates an AnyConst32 from the given uint32 value.
func AnyConst32FromU32(v uint32) AnyConst32 {
	return AnyConst32{lo: uint16(v), hi: uint16(v >> 16)}
}

// AnyConst32FromI32 creates an AnyConst32 from the given int32 value.
func AnyConst32FromI32(v int32) AnyConst32 {
	return AnyConst32FromU32(uint32(v))
}

// AnyConst32FromI16 creates an AnyConst32 from the sign-extended int16 value.
func AnyConst32FromI16(v int16) AnyConst32 {
	return AnyConst32FromI32(int32(v))
}

// AnyConst32FromI8 creates an AnyConst32 from the sign-extended int8 value.
func AnyConst32FromI8(v int8) AnyConst32 {
	return AnyConst32FromI32(int32(v))
}

// AnyConst32FromBool creates an AnyConst32 holding 1 for true and 0 for false.
func AnyConst32FromBool(v bool) AnyConst32 {
	if v {
		return AnyConst32FromU32(1)
	}
	return AnyConst32FromU32(0)
}

// AnyConst32FromF32 creates an AnyConst32 from the bits of the given float32.
func AnyConst32FromF32(v float32) AnyConst32 {
	return AnyConst32FromU32(math.Float32bits(v))
}

// AnyConst32FromI64 creates an AnyConst32 if v fits into an int32.
func AnyConst32FromI64(v int64) (AnyConst32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return AnyConst32{}, false
	}
	return AnyConst32FromI32(int32(v)), true
}

// U32 returns the stored bits as uint32.
func (c AnyConst32) U32() uint32 {
	return uint32(c.lo) | uint32(c.hi)<<16
}

// I32 returns the stored bits as int32.
func (c AnyConst32) I32() int32 {
	return int32(c.U32())
}

// F32 returns the stored bits as float32.
func (c AnyConst32) F32() float32 {
	return math.Float32frombits(c.U32())
}

// I64 returns the stored bits as a sign-extended int64.
func (c AnyConst32) I64() int64 {
	return int64(c.I32())
}

// Bool reports whether the stored bits are non-zero.
func (c AnyConst32) Bool() bool {
	return c.U32() != 0
}

// Cell returns c as an untyped 64-bit value cell of type t.
// Panics for value types that cannot be held by an AnyConst32.
func (c AnyConst32) Cell(t api.ValueType) uint64 {
	switch t {
	case api.ValueTypeI32:
		return api.EncodeI32(c.I32())
	case api.ValueTypeI64:
		return api.EncodeI64(c.I64())
	case api.ValueTypeF32:
		return api.EncodeF32(c.F32())
	default:
		panic(fmt.Sprintf("const32 cannot hold %s values", api.ValueTypeName(t)))
	}
}

// Const32Type lists the types a Const32 can be decoded to.
type Const32Type interface {
	int32 | uint32 | float32 | int64
}

// Const32 is a 32-bit encoded constant that decodes to T.
// Const32[int64] holds 64-bit values that fit into 32 bits.
type Const32[T Const32Type] struct {
	inner AnyConst32
}

// Const32Of encodes v. Encoding 32-bit types never fails.
func Const32Of[T int32 | uint32 | float32](v T) Const32[T] {
	switch x := any(v).(type) {
	case int32:
		return Const32[T]{inner: AnyConst32FromI32(x)}
	case uint32:
		return Const32[T]{inner: AnyConst32FromU32(x)}
	default:
		return Const32[T]{inner: AnyConst32FromF32(x.(float32))}
	}
}

// Const32FromI64 encodes v if it fits into an int32.
func Const32FromI64(v int64) (Const32[int64], bool) {
	inner, ok := AnyConst32FromI64(v)
	return Const32[int64]{inner: inner}, ok
}

// Const32As tags untyped 32-bit storage with T.
func Const32As[T Const32Type](inner AnyConst32) Const32[T] {
	return Const32[T]{inner: inner}
}

// Any returns the untyped storage of c.
func (c Const32[T]) Any() AnyConst32 {
	return c.inner
}

// Value decodes c into T.
func (c Const32[T]) Value() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return T(c.inner.I32())
	case uint32:
		return T(c.inner.U32())
	case float32:
		return T(c.inner.F32())
	default:
		return T(c.inner.I64())
	}
}
