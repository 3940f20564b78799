// Package stmt defines the closed set of statements emitted by the parser and
// executed by the vm. Statements are immutable values; each one renders as a
// single listing line of the form "mnemonic [operand]".
package stmt

import "strings"

type Statement interface {
	Mnemonic() string
	Operand() string
	String() string
	statement()
}

type Statements []Statement

func (stmts Statements) String() string {
	return Format(stmts)
}

// Format renders stmts as a listing, one statement per line.
func Format(stmts Statements) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func render(s Statement) string {
	if op := s.Operand(); op != "" {
		return s.Mnemonic() + " " + op
	}
	return s.Mnemonic()
}

// ScopeMarker switches the active naming scope.
type ScopeMarker struct{ Name string }

func (s ScopeMarker) Mnemonic() string { return "scope" }
func (s ScopeMarker) Operand() string  { return s.Name }
func (s ScopeMarker) String() string   { return render(s) }
func (ScopeMarker) statement()         {}

// TypeMarker switches the type given to subsequent declarations.
type TypeMarker struct{ Name string }

func (s TypeMarker) Mnemonic() string { return "type" }
func (s TypeMarker) Operand() string  { return s.Name }
func (s TypeMarker) String() string   { return render(s) }
func (TypeMarker) statement()         {}

// OperatorMarker switches the operator used to combine pushed values.
type OperatorMarker struct{ Op string }

func (s OperatorMarker) Mnemonic() string { return "op" }
func (s OperatorMarker) Operand() string  { return s.Op }
func (s OperatorMarker) String() string   { return render(s) }
func (OperatorMarker) statement()         {}

type DeclareVar struct{ Name string }

func (s DeclareVar) Mnemonic() string { return "var" }
func (s DeclareVar) Operand() string  { return s.Name }
func (s DeclareVar) String() string   { return render(s) }
func (DeclareVar) statement()         {}

// LoadRef pushes a writable reference to a variable onto the target stack.
type LoadRef struct{ Name string }

func (s LoadRef) Mnemonic() string { return "load" }
func (s LoadRef) Operand() string  { return s.Name }
func (s LoadRef) String() string   { return render(s) }
func (LoadRef) statement()         {}

// SetDefault overwrites the top target with its type's zero value.
type SetDefault struct{ Literal string }

func (s SetDefault) Mnemonic() string { return "set" }
func (s SetDefault) Operand() string  { return s.Literal }
func (s SetDefault) String() string   { return render(s) }
func (SetDefault) statement()         {}

// PushLiteral combines the top target with a literal under the active operator.
type PushLiteral struct{ Literal string }

func (s PushLiteral) Mnemonic() string { return "push" }
func (s PushLiteral) Operand() string  { return s.Literal }
func (s PushLiteral) String() string   { return render(s) }
func (PushLiteral) statement()         {}

// PushVarValue combines the top target with a variable's current value.
type PushVarValue struct{ Name string }

func (s PushVarValue) Mnemonic() string { return "get" }
func (s PushVarValue) Operand() string  { return s.Name }
func (s PushVarValue) String() string   { return render(s) }
func (PushVarValue) statement()         {}

// BlockEnd closes the innermost body block.
type BlockEnd struct{}

func (s BlockEnd) Mnemonic() string { return "end" }
func (s BlockEnd) Operand() string  { return "" }
func (s BlockEnd) String() string   { return render(s) }
func (BlockEnd) statement()         {}

// TestOperand pushes a literal or variable value onto the condition stack.
type TestOperand struct{ Value string }

func (s TestOperand) Mnemonic() string { return "test" }
func (s TestOperand) Operand() string  { return s.Value }
func (s TestOperand) String() string   { return render(s) }
func (TestOperand) statement()         {}

// Compare pops two condition values and pushes the result of comparing them.
type Compare struct{ Op string }

func (s Compare) Mnemonic() string { return "cmp" }
func (s Compare) Operand() string  { return s.Op }
func (s Compare) String() string   { return render(s) }
func (Compare) statement()         {}

// BranchUnless pops a condition value and skips to the matching BlockEnd when
// it is false.
type BranchUnless struct{}

func (s BranchUnless) Mnemonic() string { return "branch" }
func (s BranchUnless) Operand() string  { return "" }
func (s BranchUnless) String() string   { return render(s) }
func (BranchUnless) statement()         {}

// BlockBegin opens a body block whose keyword prefix did not open one itself.
type BlockBegin struct{}

func (s BlockBegin) Mnemonic() string { return "begin" }
func (s BlockBegin) Operand() string  { return "" }
func (s BlockBegin) String() string   { return render(s) }
func (BlockBegin) statement()         {}

// OpensBlock reports whether s starts a block that a later BlockEnd closes.
func OpensBlock(s Statement) bool {
	switch s.(type) {
	case BranchUnless, BlockBegin:
		return true
	}
	return false
}
