package ctypes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeConstructors(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantStr string
	}{
		{"void", Void(), "void"},
		{"int", Int(), "int"},
		{"char", Char(), "char"},
		{"string", String(), "string"},
		{"pointer to int", Pointer(Int()), "int*"},
		{"pointer to pointer to char", Pointer(Pointer(Char())), "char**"},
		{"array of int", Array(Int(), 10), "int[10]"},
		{"array of pointers", Array(Pointer(Int()), 2), "int*[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPointerReferencesElem(t *testing.T) {
	inner := Array(Char(), 4)
	p := Pointer(inner).(Tpointer)
	if diff := cmp.Diff(inner, p.Elem); diff != "" {
		t.Errorf("pointer elem mismatch (-want +got):\n%s", diff)
	}
}

func TestNilElemPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for pointer to nil type")
		}
	}()
	Pointer(nil)
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want int64
	}{
		{"int", Int(), 4},
		{"char", Char(), 1},
		{"pointer", Pointer(Char()), 8},
		{"int array", Array(Int(), 3), 12},
		{"char array", Array(Char(), 5), 5},
		{"nested array", Array(Array(Int(), 2), 3), 24},
		{"pointer array", Array(Pointer(Int()), 2), 16},
		{"empty array", Array(Int(), 0), 0},
		{"string", String(), -1},
		{"string array", Array(String(), 2), -1},
		{"void", Void(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeOf(tt.typ); got != tt.want {
				t.Errorf("SizeOf(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestTypeEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"int == int", Int(), Int(), true},
		{"int != char", Int(), Char(), false},
		{"int != void", Int(), Void(), false},
		{"void == void", Void(), Void(), true},
		{"string == string", String(), String(), true},
		{"string != char*", String(), Pointer(Char()), false},
		{"pointer to int == pointer to int", Pointer(Int()), Pointer(Int()), true},
		{"pointer to int != pointer to char", Pointer(Int()), Pointer(Char()), false},
		{"array[3] of int == array[3] of int", Array(Int(), 3), Array(Int(), 3), true},
		{"array[3] of int != array[4] of int", Array(Int(), 3), Array(Int(), 4), false},
		{"nil == nil", nil, nil, true},
		{"nil != int", nil, Int(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Type
		want     bool
	}{
		{"int <- int", Int(), Int(), true},
		{"int <- char", Int(), Char(), true},
		{"char <- int", Char(), Int(), true},
		{"int* <- int*", Pointer(Int()), Pointer(Int()), true},
		{"int* <- char*", Pointer(Int()), Pointer(Char()), false},
		{"int <- int*", Int(), Pointer(Int()), false},
		{"string <- string", String(), String(), true},
		{"string <- int", String(), Int(), false},
		{"array <- array", Array(Int(), 2), Array(Int(), 2), false},
		{"void <- void", Void(), Void(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assignable(tt.dst, tt.src); got != tt.want {
				t.Errorf("Assignable(%s, %s) = %v, want %v", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestElem(t *testing.T) {
	if got := Elem(Pointer(Char())); !Equal(got, Char()) {
		t.Errorf("Elem(char*) = %v, want char", got)
	}
	if got := Elem(Array(Int(), 2)); !Equal(got, Int()) {
		t.Errorf("Elem(int[2]) = %v, want int", got)
	}
	if got := Elem(Int()); got != nil {
		t.Errorf("Elem(int) = %v, want nil", got)
	}
}
