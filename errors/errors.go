package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // building instruction words
	PhaseDecode   Phase = "decode"   // reading instruction words
	PhaseValidate Phase = "validate" // instruction stream validation
	PhaseRuntime  Phase = "runtime"  // execution traps
	PhaseGenerate Phase = "generate" // ISA table generation
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow       Kind = "overflow"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidData    Kind = "invalid_data"
	KindInvalidOpcode  Kind = "invalid_opcode"
	KindShapeMismatch  Kind = "shape_mismatch"
	KindMissingTrailer Kind = "missing_trailer"
	KindStrayData      Kind = "stray_data"
	KindTrap           Kind = "trap"
	KindUnsupported    Kind = "unsupported"
)

// NoPos marks an error that is not tied to an instruction index.
const NoPos = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string // opcode name
	Type   string // value or payload type
	Detail string
	Path   []string
	Pos    int // instruction index or NoPos
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos >= 0 {
		b.WriteString(" at word ")
		b.WriteString(strconv.Itoa(e.Pos))
	}

	if len(e.Path) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Op != "" || e.Type != "" {
		b.WriteString(": ")
		if e.Op != "" && e.Type != "" {
			b.WriteString(e.Op)
			b.WriteString(" (")
			b.WriteString(e.Type)
			b.WriteByte(')')
		} else if e.Op != "" {
			b.WriteString(e.Op)
		} else {
			b.WriteString(e.Type)
		}
	}

	if e.Detail != "" {
		if e.Op != "" || e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Is reports whether any error in err's chain matches target.
// Shorthand for the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Shorthand for the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Pos:   NoPos,
		},
	}
}

// Path sets the path of the offending item
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Op sets the opcode name
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// Type sets the value or payload type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// At sets the instruction index
func (b *Builder) At(pos int) *Builder {
	b.err.Pos = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return New(phase, KindOverflow).
		Path(path...).
		Type(targetType).
		Value(value).
		Detail("value %v overflows %s", value, targetType).
		Build()
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, pos, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
		Pos:    pos,
	}
}

// InvalidOpcode creates an error for an opcode outside the instruction set
func InvalidOpcode(phase Phase, pos int, opcode uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOpcode,
		Detail: fmt.Sprintf("unknown opcode %d", opcode),
		Value:  opcode,
		Pos:    pos,
	}
}

// ShapeMismatch creates an error for a payload decoded with the wrong layout
func ShapeMismatch(op, have, want string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindShapeMismatch,
		Op:     op,
		Type:   have,
		Detail: fmt.Sprintf("decoded as %s", want),
		Pos:    NoPos,
	}
}

// MissingTrailer creates an error for an instruction whose data word is
// absent or of the wrong kind
func MissingTrailer(phase Phase, pos int, op, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMissingTrailer,
		Op:     op,
		Detail: fmt.Sprintf("expected %s data word", want),
		Pos:    pos,
	}
}

// StrayData creates an error for a data word that does not follow an
// instruction expecting it
func StrayData(phase Phase, pos int, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStrayData,
		Op:     op,
		Detail: "data word without owning instruction",
		Pos:    pos,
	}
}

// Trap creates an execution trap error carrying code as its value
func Trap(code fmt.Stringer) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindTrap,
		Detail: code.String(),
		Value:  code,
		Pos:    NoPos,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
		Pos:    NoPos,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, pos int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Pos:    pos,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).
		Cause(cause).
		Detail("%s", detail).
		Build()
}
