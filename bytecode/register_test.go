package bytecode

import (
	"math"
	"slices"
	"strconv"
	"testing"
)

func TestRegister_IsConst(t *testing.T) {
	tests := []struct {
		r       Register
		isConst bool
		str     string
	}{
		{0, false, "r0"},
		{1, false, "r1"},
		{math.MaxInt16, false, "r32767"},
		{-1, true, "c0"},
		{-2, true, "c1"},
		{math.MinInt16, true, "c32767"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.r.IsConst(); got != tt.isConst {
				t.Errorf("IsConst() = %v, want %v", got, tt.isConst)
			}
			if got := tt.r.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestRegister_ConstIndex(t *testing.T) {
	for i := 0; i <= math.MaxInt16; i += 97 {
		r := RegisterForConst(i)
		if !r.IsConst() {
			t.Fatalf("RegisterForConst(%d) = %d is not a constant", i, r)
		}
		if got := r.ConstIndex(); got != i {
			t.Fatalf("ConstIndex() = %d, want %d", got, i)
		}
	}
}

func TestRegisterForConst_Bounds(t *testing.T) {
	if r := RegisterForConst(math.MaxInt16); r != math.MinInt16 || !r.IsConst() {
		t.Errorf("RegisterForConst(MaxInt16) = %d", r)
	}
	for _, index := range []int{-1, math.MaxInt16 + 1, 1 << 20} {
		t.Run(strconv.Itoa(index), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("RegisterForConst(%d) did not panic", index)
				}
			}()
			RegisterForConst(index)
		})
	}
}

func TestRegister_NextPrev(t *testing.T) {
	if got := Register(5).Next(); got != 6 {
		t.Errorf("Next() = %d, want 6", got)
	}
	if got := Register(5).Prev(); got != 4 {
		t.Errorf("Prev() = %d, want 4", got)
	}
	if got := Register(math.MaxInt16).Next(); got != math.MinInt16 {
		t.Errorf("Next() at max = %d, want wrap to min", got)
	}
	if got := RegisterFromI16(-3).I16(); got != -3 {
		t.Errorf("I16() = %d, want -3", got)
	}
}

func collectForward(it RegisterSpanIter) []Register {
	var out []Register
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func TestRegisterSpanIter_Forward(t *testing.T) {
	it := NewRegisterSpan(10).Iter(4)
	if it.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", it.Len())
	}
	got := collectForward(it)
	want := []Register{10, 11, 12, 13}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegisterSpanIter_Backward(t *testing.T) {
	it := NewRegisterSpan(3).Iter(3)
	var got []Register
	for {
		r, ok := it.NextBack()
		if !ok {
			break
		}
		got = append(got, r)
	}
	want := []Register{5, 4, 3}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegisterSpanIter_Interleaved(t *testing.T) {
	it := NewRegisterSpan(0).Iter(5)
	steps := []struct {
		back bool
		want Register
		len  int
	}{
		{false, 0, 4},
		{true, 4, 3},
		{false, 1, 2},
		{true, 3, 1},
		{false, 2, 0},
	}
	for i, s := range steps {
		var (
			r  Register
			ok bool
		)
		if s.back {
			r, ok = it.NextBack()
		} else {
			r, ok = it.Next()
		}
		if !ok || r != s.want {
			t.Fatalf("step %d: got %v, %v want %v", i, r, ok, s.want)
		}
		if it.Len() != s.len {
			t.Fatalf("step %d: Len() = %d, want %d", i, it.Len(), s.len)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() on exhausted iterator")
	}
	if _, ok := it.NextBack(); ok {
		t.Error("NextBack() on exhausted iterator")
	}
}

func TestRegisterSpanIter_Span(t *testing.T) {
	it := NewRegisterSpan(7).Iter(3)
	it.Next()
	if got := it.Span().Head(); got != 8 {
		t.Errorf("Span().Head() = %d, want 8", got)
	}
}

func TestRegisterSpan_Empty(t *testing.T) {
	it := NewRegisterSpan(math.MaxInt16).Iter(0)
	if it.Len() != 0 {
		t.Errorf("Len() = %d, want 0", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() on empty iterator")
	}
}

func TestRegisterSpan_All(t *testing.T) {
	got := slices.Collect(NewRegisterSpan(-2).All(4))
	want := []Register{-2, -1, 0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	var first []Register
	for r := range NewRegisterSpan(0).All(10) {
		if r == 2 {
			break
		}
		first = append(first, r)
	}
	if !slices.Equal(first, []Register{0, 1}) {
		t.Errorf("early break got %v", first)
	}
}

func TestRegisterSpan_Panics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"negative length", func() { NewRegisterSpan(0).Iter(-1) }},
		{"length too large", func() { NewRegisterSpan(0).Iter(math.MaxInt16 + 1) }},
		{"overflowing end", func() { NewRegisterSpan(math.MaxInt16).Iter(1) }},
		{"overflowing end from middle", func() { NewRegisterSpan(30000).Iter(3000) }},
		{"reversed raw bounds", func() { RegisterSpanIterFromRaw(5, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestRegisterSpan_MaxEnd(t *testing.T) {
	it := NewRegisterSpan(math.MaxInt16 - 2).Iter(2)
	got := collectForward(it)
	want := []Register{math.MaxInt16 - 2, math.MaxInt16 - 1}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
