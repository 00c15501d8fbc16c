package bytecode

import (
	"fmt"
	"iter"
	"math"
)

// Register is an index into the register file of the current call frame.
//
// Non-negative indices address mutable locals and temporaries. Negative
// indices address the immutable function-local constants, where -1 is the
// first constant, -2 the second and so on.
type Register int16

// RegisterFromI16 creates a Register from its raw index.
func RegisterFromI16(index int16) Register {
	return Register(index)
}

// I16 returns the raw index of r.
func (r Register) I16() int16 {
	return int16(r)
}

// IsConst reports whether r refers to a function-local constant value.
func (r Register) IsConst() bool {
	return r < 0
}

// ConstIndex returns the zero-based index of the function-local constant
// referred to by r. Only meaningful if r.IsConst().
func (r Register) ConstIndex() int {
	return -int(r) - 1
}

// RegisterForConst returns the Register referring to the function-local
// constant with the given zero-based index.
//
// Panics if index is negative or greater than math.MaxInt16, the number of
// constants a register can address.
func RegisterForConst(index int) Register {
	if index < 0 || index > math.MaxInt16 {
		panic(fmt.Sprintf("out of bounds constant index for register: %d", index))
	}
	return Register(-index - 1)
}

// Next returns the register with the next contiguous index.
// Wraps around on overflow.
func (r Register) Next() Register {
	return r + 1
}

// Prev returns the register with the previous contiguous index.
// Wraps around on underflow.
func (r Register) Prev() Register {
	return r - 1
}

// String renders frame registers as "r3" and constants as "c0".
func (r Register) String() string {
	if r.IsConst() {
		return fmt.Sprintf("c%d", r.ConstIndex())
	}
	return fmt.Sprintf("r%d", int16(r))
}

// RegisterSpan is a run of contiguous registers starting at a given register.
//
// The number of registers in the span is not stored. It is kept by whoever
// produced the span and handed to Iter; Wasm validation guarantees that the
// externally stored length matches.
type RegisterSpan struct {
	start Register
}

// NewRegisterSpan creates a RegisterSpan starting at start.
func NewRegisterSpan(start Register) RegisterSpan {
	return RegisterSpan{start: start}
}

// Head returns the first register of the span.
func (s RegisterSpan) Head() Register {
	return s.start
}

// Iter returns an iterator over the first n registers of the span.
//
// Panics if n is negative, does not fit into an int16 or if the span would
// overflow the register index space. Either indicates a translator bug.
func (s RegisterSpan) Iter(n int) RegisterSpanIter {
	if n < 0 || n > math.MaxInt16 {
		panic(fmt.Sprintf("out of bounds length for register span: %d", n))
	}
	end := int(s.start) + n
	if end > math.MaxInt16 {
		panic(fmt.Sprintf("overflowing register index for register span: %d + %d", s.start, n))
	}
	return RegisterSpanIterFromRaw(s.start, Register(end))
}

// All returns a sequence over the first n registers of the span.
// Panics under the same conditions as Iter.
func (s RegisterSpan) All(n int) iter.Seq[Register] {
	it := s.Iter(n)
	return func(yield func(Register) bool) {
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// RegisterSpanIter yields the registers of the half-open range [next, last).
// Registers may be taken from either end.
type RegisterSpanIter struct {
	next Register
	last Register
}

// RegisterSpanIterFromRaw creates an iterator over [start, end).
// Panics if start > end.
func RegisterSpanIterFromRaw(start, end Register) RegisterSpanIter {
	if start > end {
		panic(fmt.Sprintf("invalid register span bounds: %s > %s", start, end))
	}
	return RegisterSpanIter{next: start, last: end}
}

// Span returns the span of the registers that have not been consumed yet.
func (it RegisterSpanIter) Span() RegisterSpan {
	return RegisterSpan{start: it.next}
}

// Len returns the number of remaining registers.
func (it RegisterSpanIter) Len() int {
	return int(it.last) - int(it.next)
}

// Next takes the register at the front of the range.
func (it *RegisterSpanIter) Next() (Register, bool) {
	if it.next == it.last {
		return 0, false
	}
	r := it.next
	it.next = it.next.Next()
	return r, true
}

// NextBack takes the register at the back of the range.
func (it *RegisterSpanIter) NextBack() (Register, bool) {
	if it.next == it.last {
		return 0, false
	}
	it.last = it.last.Prev()
	return it.last, true
}
