package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes the AST as S-expressions, one top-level unit per line
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram prints every unit of prog
func (p *Printer) PrintProgram(prog *Program) {
	for _, n := range prog.Units {
		fmt.Fprintln(p.w, Format(n))
	}
}

// PrintSymbols prints the global and local symbol lists and the string pool
func (p *Printer) PrintSymbols(prog *Program) {
	fmt.Fprintln(p.w, "globals:")
	for _, g := range prog.Globals {
		fmt.Fprintf(p.w, "  %s %s @%s\n", g.Type(), g.Name, g.Label)
	}
	fmt.Fprintln(p.w, "locals:")
	for _, l := range prog.Locals {
		fmt.Fprintf(p.w, "  %s %s -%d\n", l.Type(), l.Name, l.Offset)
	}
	fmt.Fprintln(p.w, "strings:")
	for _, s := range prog.Strings {
		fmt.Fprintf(p.w, "  %s %q\n", s.Label, s.Text)
	}
}

// Format renders a single node
func Format(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *IntLiteral:
		fmt.Fprintf(sb, "%d", n.Value)
	case *CharLiteral:
		fmt.Fprintf(sb, "%q", rune(n.Value))
	case *StringLiteral:
		fmt.Fprintf(sb, "%q", n.Text)
	case *LocalVar:
		sb.WriteString(n.Name)
	case *GlobalVar:
		sb.WriteString(n.Name)
	case *LocalRef:
		fmt.Fprintf(sb, "(ref %s %d)", n.Target.Name, n.Offset)
	case *GlobalRef:
		fmt.Fprintf(sb, "(ref %s %d)", n.Target.Name, n.Offset)
	case *BinOp:
		fmt.Fprintf(sb, "(%s ", n.Op)
		writeNode(sb, n.Left)
		sb.WriteByte(' ')
		writeNode(sb, n.Right)
		sb.WriteByte(')')
	case *UnaryOp:
		fmt.Fprintf(sb, "(%s ", n.Kind)
		writeNode(sb, n.Operand)
		sb.WriteByte(')')
	case *FuncCall:
		fmt.Fprintf(sb, "(call %s", n.Name)
		for _, arg := range n.Args {
			sb.WriteByte(' ')
			writeNode(sb, arg)
		}
		sb.WriteByte(')')
	case *ArrayInit:
		sb.WriteByte('{')
		for i, e := range n.Elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeNode(sb, e)
		}
		sb.WriteByte('}')
	case *Decl:
		fmt.Fprintf(sb, "(decl %s %s", n.Var.Type(), n.Var.VarName())
		if n.Init != nil {
			sb.WriteByte(' ')
			writeNode(sb, n.Init)
		}
		sb.WriteByte(')')
	case *If:
		sb.WriteString("(if ")
		writeNode(sb, n.Cond)
		writeBlock(sb, "then", n.Then)
		if n.Else != nil {
			writeBlock(sb, "else", n.Else)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<unknown %T>", n)
	}
}

func writeBlock(sb *strings.Builder, name string, stmts []Node) {
	fmt.Fprintf(sb, " (%s", name)
	for _, s := range stmts {
		sb.WriteByte(' ')
		writeNode(sb, s)
	}
	sb.WriteByte(')')
}
