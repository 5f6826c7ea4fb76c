// Package symtab holds the per-session symbol state of the parser: the
// ordered local and global variable lists, the string pool and the label
// counter shared by string literals and file-local globals.
package symtab

import (
	"fmt"

	"github.com/raymyers/minicc/pkg/ast"
	"github.com/raymyers/minicc/pkg/ctypes"
)

// frameAlign is the alignment of every local stack slot
const frameAlign = 8

// Table is the symbol state of one parse session. It is not safe for
// concurrent use; each session owns its own Table.
type Table struct {
	locals    []*ast.LocalVar
	globals   []*ast.GlobalVar
	strings   []*ast.StringLiteral
	labelSeq  int
	frameSize int64
}

// New creates an empty table with the label counter at zero
func New() *Table {
	return &Table{}
}

// NewLabel returns the next .L<seq> label
func (t *Table) NewLabel() string {
	label := fmt.Sprintf(".L%d", t.labelSeq)
	t.labelSeq++
	return label
}

// DeclareLocal appends a new local variable and assigns its frame offset.
// Every local gets its own slot, even a zero-length array.
func (t *Table) DeclareLocal(typ ctypes.Type, name string) *ast.LocalVar {
	t.frameSize = alignUp(t.frameSize+max(SlotSize(typ), 1), frameAlign)
	v := ast.NewLocalVar(typ, name, t.frameSize)
	t.locals = append(t.locals, v)
	return v
}

// DeclareGlobal appends a new global variable. A file-local global gets a
// generated label instead of its own name.
func (t *Table) DeclareGlobal(typ ctypes.Type, name string, fileLocal bool) *ast.GlobalVar {
	label := name
	if fileLocal {
		label = t.NewLabel()
	}
	v := ast.NewGlobalVar(typ, name, label)
	t.globals = append(t.globals, v)
	return v
}

// AddString appends a literal to the string pool under a fresh label
func (t *Table) AddString(text string) *ast.StringLiteral {
	s := ast.NewStringLiteral(text, t.NewLabel())
	t.strings = append(t.strings, s)
	return s
}

// Lookup finds name among the locals, then the globals, scanning each
// list in declaration order. The first match wins, so any local hides a
// global of the same name.
func (t *Table) Lookup(name string) (ast.Var, bool) {
	for _, v := range t.locals {
		if v.Name == name {
			return v, true
		}
	}
	for _, v := range t.globals {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Locals returns the local variables in declaration order
func (t *Table) Locals() []*ast.LocalVar {
	return t.locals
}

// Globals returns the global variables in declaration order
func (t *Table) Globals() []*ast.GlobalVar {
	return t.globals
}

// Strings returns the string pool in creation order
func (t *Table) Strings() []*ast.StringLiteral {
	return t.strings
}

// FrameSize returns the bytes of frame used by the locals so far
func (t *Table) FrameSize() int64 {
	return t.frameSize
}

// SlotSize is the storage a value of type typ occupies. A string
// variable holds a reference to pool storage.
func SlotSize(typ ctypes.Type) int64 {
	switch tt := typ.(type) {
	case ctypes.Tstring:
		return ctypes.PointerSizeBytes
	case ctypes.Tarray:
		return tt.Size * SlotSize(tt.Elem)
	}
	return ctypes.SizeOf(typ)
}

func alignUp(n, align int64) int64 {
	return (n + align - 1) / align * align
}
