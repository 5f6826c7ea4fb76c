// Package ctypes defines the small static type system of the front end:
// void, int, char, string, pointers and fixed-length arrays.
package ctypes

import "fmt"

// Type is the interface for all C types
type Type interface {
	implType()
	String() string
}

// IntSize distinguishes the integral types
type IntSize int

const (
	I8 IntSize = iota // char
	I32               // int
)

func (s IntSize) String() string {
	if s == I8 {
		return "i8"
	}
	return "i32"
}

// Tvoid represents the void type
type Tvoid struct{}

// Tint represents the integral types (char, int)
type Tint struct {
	Size IntSize
}

// Tstring is the built-in string reference type. It has no fixed size.
type Tstring struct{}

// Tpointer represents pointer types
type Tpointer struct {
	Elem Type
}

// Tarray represents array types
type Tarray struct {
	Elem Type
	Size int64
}

// Marker methods for Type interface
func (Tvoid) implType()    {}
func (Tint) implType()     {}
func (Tstring) implType()  {}
func (Tpointer) implType() {}
func (Tarray) implType()   {}

func (Tvoid) String() string { return "void" }

func (t Tint) String() string {
	if t.Size == I8 {
		return "char"
	}
	return "int"
}

func (Tstring) String() string { return "string" }

func (t Tpointer) String() string {
	return t.Elem.String() + "*"
}

func (t Tarray) String() string {
	return fmt.Sprintf("%s[%d]", t.Elem, t.Size)
}

// Void returns the void type
func Void() Type {
	return Tvoid{}
}

// Int returns the 32-bit int type
func Int() Type {
	return Tint{Size: I32}
}

// Char returns the char type
func Char() Type {
	return Tint{Size: I8}
}

// String returns the string type
func String() Type {
	return Tstring{}
}

// Pointer returns a pointer to the given type. The element is referenced,
// not copied.
func Pointer(elem Type) Type {
	if elem == nil {
		panic("ctypes: pointer to nil type")
	}
	return Tpointer{Elem: elem}
}

// Array returns an array of size elements of elem
func Array(elem Type, size int64) Type {
	if elem == nil {
		panic("ctypes: array of nil type")
	}
	if size < 0 {
		panic(fmt.Sprintf("ctypes: negative array length %d", size))
	}
	return Tarray{Elem: elem, Size: size}
}

// Sizes of the primitive types in bytes.
const (
	IntSizeBytes     = 4
	CharSizeBytes    = 1
	PointerSizeBytes = 8
)

// SizeOf returns the storage size of t in bytes. The string type is a
// reference type with no fixed size and reports -1; void reports 0.
func SizeOf(t Type) int64 {
	switch tt := t.(type) {
	case Tint:
		if tt.Size == I8 {
			return CharSizeBytes
		}
		return IntSizeBytes
	case Tpointer:
		return PointerSizeBytes
	case Tarray:
		elem := SizeOf(tt.Elem)
		if elem < 0 {
			return -1
		}
		return tt.Size * elem
	case Tstring:
		return -1
	}
	return 0
}

// IsIntegral reports whether t is int or char
func IsIntegral(t Type) bool {
	_, ok := t.(Tint)
	return ok
}

// IsInt reports whether t is the 32-bit int type
func IsInt(t Type) bool {
	ti, ok := t.(Tint)
	return ok && ti.Size == I32
}

// IsChar reports whether t is char
func IsChar(t Type) bool {
	ti, ok := t.(Tint)
	return ok && ti.Size == I8
}

// Elem returns the element type of a pointer or array, or nil.
func Elem(t Type) Type {
	switch tt := t.(type) {
	case Tpointer:
		return tt.Elem
	case Tarray:
		return tt.Elem
	}
	return nil
}

// Equal checks if two types are equal
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ta := a.(type) {
	case Tvoid:
		_, ok := b.(Tvoid)
		return ok
	case Tint:
		tb, ok := b.(Tint)
		return ok && ta.Size == tb.Size
	case Tstring:
		_, ok := b.(Tstring)
		return ok
	case Tpointer:
		tb, ok := b.(Tpointer)
		return ok && Equal(ta.Elem, tb.Elem)
	case Tarray:
		tb, ok := b.(Tarray)
		return ok && ta.Size == tb.Size && Equal(ta.Elem, tb.Elem)
	}
	return false
}

// Assignable reports whether a value of type src may be stored into a
// location of type dst. Integral types convert freely between each other;
// everything else must match exactly. Arrays and void are never assignable.
func Assignable(dst, src Type) bool {
	switch dst.(type) {
	case Tarray, Tvoid:
		return false
	}
	if IsIntegral(dst) && IsIntegral(src) {
		return true
	}
	return Equal(dst, src)
}
