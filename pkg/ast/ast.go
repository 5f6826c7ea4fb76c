// Package ast defines the typed abstract syntax tree built by the parser.
// Every expression node receives its type at construction and keeps it.
package ast

import (
	"github.com/raymyers/minicc/pkg/ctypes"
)

// Node is the base interface for all AST nodes
type Node interface {
	implNode()
}

// Expr is the interface for all typed expression nodes
type Expr interface {
	Node
	Type() ctypes.Type
}

// Var is a named storage location: a local or a global variable
type Var interface {
	Expr
	VarName() string
}

// BinaryOp represents binary operators
type BinaryOp int

const (
	OpAssign BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	names := []string{"=", "+", "-", "*", "/"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// UnaryKind represents the prefix operators
type UnaryKind int

const (
	Address UnaryKind = iota // &
	Deref                    // *
)

func (k UnaryKind) String() string {
	if k == Address {
		return "&"
	}
	return "*"
}

// IntLiteral represents an integer constant
type IntLiteral struct {
	Value int64
}

// CharLiteral represents a character constant
type CharLiteral struct {
	Value byte
}

// StringLiteral is an entry of the string pool
type StringLiteral struct {
	Text  string
	Label string
}

// LocalVar is a variable in the current frame. Offset is the distance in
// bytes below the frame base.
type LocalVar struct {
	Name   string
	Offset int64
	ctype  ctypes.Type
}

// GlobalVar is a variable with static storage. Label is the emitted symbol
// name: the variable name, or a generated label for file-local variables.
type GlobalVar struct {
	Name  string
	Label string
	ctype ctypes.Type
}

// LocalRef is a computed reference Offset bytes into a local array
type LocalRef struct {
	Target *LocalVar
	Offset int64
	ctype  ctypes.Type
}

// GlobalRef is a computed reference Offset bytes into a global array
type GlobalRef struct {
	Target *GlobalVar
	Offset int64
	ctype  ctypes.Type
}

// BinOp represents a binary expression
type BinOp struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	ctype ctypes.Type
}

// UnaryOp represents &operand or *operand
type UnaryOp struct {
	Kind    UnaryKind
	Operand Expr
	ctype   ctypes.Type
}

// FuncCall represents a call of a named function
type FuncCall struct {
	Name  string
	Args  []Expr
	ctype ctypes.Type
}

// ArrayInit is the brace initializer of an array declaration
type ArrayInit struct {
	Elems []Expr
	ctype ctypes.Type
}

// Decl declares Var with an optional initializer (an Expr or *ArrayInit)
type Decl struct {
	Var  Var
	Init Expr
}

// If represents if (Cond) { Then } else { Else }. Else is nil when absent.
type If struct {
	Cond Expr
	Then []Node
	Else []Node
}

// Program is the result of parsing a whole token stream: the top-level
// units in order plus the symbol lists needed for emission.
type Program struct {
	Units   []Node
	Globals []*GlobalVar
	Locals  []*LocalVar
	Strings []*StringLiteral
}

// NewIntLiteral creates an int constant
func NewIntLiteral(v int64) *IntLiteral {
	return &IntLiteral{Value: v}
}

// NewCharLiteral creates a char constant
func NewCharLiteral(c byte) *CharLiteral {
	return &CharLiteral{Value: c}
}

// NewStringLiteral creates a string pool entry with the given label
func NewStringLiteral(text, label string) *StringLiteral {
	return &StringLiteral{Text: text, Label: label}
}

// NewLocalVar creates a local variable of type t
func NewLocalVar(t ctypes.Type, name string, offset int64) *LocalVar {
	return &LocalVar{Name: name, Offset: offset, ctype: t}
}

// NewGlobalVar creates a global variable of type t
func NewGlobalVar(t ctypes.Type, name, label string) *GlobalVar {
	return &GlobalVar{Name: name, Label: label, ctype: t}
}

// NewLocalRef creates a reference of type t into a local
func NewLocalRef(t ctypes.Type, target *LocalVar, offset int64) *LocalRef {
	return &LocalRef{Target: target, Offset: offset, ctype: t}
}

// NewGlobalRef creates a reference of type t into a global
func NewGlobalRef(t ctypes.Type, target *GlobalVar, offset int64) *GlobalRef {
	return &GlobalRef{Target: target, Offset: offset, ctype: t}
}

// NewBinOp creates a binary expression whose result type is t
func NewBinOp(op BinaryOp, t ctypes.Type, left, right Expr) *BinOp {
	return &BinOp{Op: op, Left: left, Right: right, ctype: t}
}

// NewUnaryOp creates a prefix expression whose result type is t
func NewUnaryOp(kind UnaryKind, t ctypes.Type, operand Expr) *UnaryOp {
	return &UnaryOp{Kind: kind, Operand: operand, ctype: t}
}

// NewFuncCall creates a call returning t
func NewFuncCall(t ctypes.Type, name string, args []Expr) *FuncCall {
	return &FuncCall{Name: name, Args: args, ctype: t}
}

// NewArrayInit creates an initializer for an array of type t
func NewArrayInit(t ctypes.Type, elems []Expr) *ArrayInit {
	return &ArrayInit{Elems: elems, ctype: t}
}

// Zero returns the zero constant for an element of type t: a char
// literal for char, an int literal otherwise.
func Zero(t ctypes.Type) Expr {
	if ctypes.IsChar(t) {
		return NewCharLiteral(0)
	}
	return NewIntLiteral(0)
}

func (*IntLiteral) Type() ctypes.Type    { return ctypes.Int() }
func (*CharLiteral) Type() ctypes.Type   { return ctypes.Char() }
func (*StringLiteral) Type() ctypes.Type { return ctypes.String() }
func (v *LocalVar) Type() ctypes.Type    { return v.ctype }
func (v *GlobalVar) Type() ctypes.Type   { return v.ctype }
func (r *LocalRef) Type() ctypes.Type    { return r.ctype }
func (r *GlobalRef) Type() ctypes.Type   { return r.ctype }
func (b *BinOp) Type() ctypes.Type       { return b.ctype }
func (u *UnaryOp) Type() ctypes.Type     { return u.ctype }
func (f *FuncCall) Type() ctypes.Type    { return f.ctype }
func (a *ArrayInit) Type() ctypes.Type   { return a.ctype }

func (v *LocalVar) VarName() string  { return v.Name }
func (v *GlobalVar) VarName() string { return v.Name }

// Marker methods for interface implementation
func (*IntLiteral) implNode()    {}
func (*CharLiteral) implNode()   {}
func (*StringLiteral) implNode() {}
func (*LocalVar) implNode()      {}
func (*GlobalVar) implNode()     {}
func (*LocalRef) implNode()      {}
func (*GlobalRef) implNode()     {}
func (*BinOp) implNode()         {}
func (*UnaryOp) implNode()       {}
func (*FuncCall) implNode()      {}
func (*ArrayInit) implNode()     {}
func (*Decl) implNode()          {}
func (*If) implNode()            {}
