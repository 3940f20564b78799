// Package vm executes statement listings produced by package parser. The
// machine keeps the same mode state the parser delta-encodes (scope, type and
// operator) and applies each statement against it.
package vm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redneckbeard/stmtgen/stmt"
)

type Machine struct {
	scopes     map[string]*Scope
	scope      *Scope
	dataType   string
	operator   string
	targets    Stack[*Value]
	conditions Stack[Value]
}

func New() *Machine {
	m := &Machine{scopes: make(map[string]*Scope)}
	m.enter("global")
	m.dataType = IntType
	m.operator = "+"
	return m
}

func (m *Machine) enter(name string) {
	scope, ok := m.scopes[name]
	if !ok {
		scope = NewScope()
		m.scopes[name] = scope
	}
	m.scope = scope
}

// Run executes stmts in order, stopping at the first failing statement.
func (m *Machine) Run(stmts stmt.Statements) error {
	for pc := 0; pc < len(stmts); pc++ {
		next, err := m.exec(stmts, pc)
		if err != nil {
			return &RuntimeError{Index: pc, Statement: stmts[pc], Err: err}
		}
		pc = next
	}
	return nil
}

// exec applies the statement at pc and returns the index of the last
// statement it consumed.
func (m *Machine) exec(stmts stmt.Statements, pc int) (int, error) {
	switch s := stmts[pc].(type) {
	case stmt.ScopeMarker:
		m.enter(s.Name)
	case stmt.TypeMarker:
		if _, err := Zero(s.Name); err != nil {
			return pc, err
		}
		m.dataType = s.Name
	case stmt.OperatorMarker:
		m.operator = s.Op
	case stmt.DeclareVar:
		// redeclaring rebinds the name to a zero value of the current type
		zero, err := Zero(m.dataType)
		if err != nil {
			return pc, err
		}
		m.scope.Set(s.Name, zero)
	case stmt.LoadRef:
		local, ok := m.scope.Get(s.Name)
		if !ok {
			return pc, fmt.Errorf("%w: %s", ErrUndefinedVariable, s.Name)
		}
		m.targets.Push(local)
	case stmt.SetDefault:
		target, ok := m.targets.Peek()
		if !ok {
			return pc, ErrNoTarget
		}
		zero, err := Zero(target.Type)
		if err != nil {
			return pc, err
		}
		*target = zero
	case stmt.PushLiteral:
		target, ok := m.targets.Peek()
		if !ok {
			return pc, ErrNoTarget
		}
		operand, err := parseLiteral(target.Type, s.Literal)
		if err != nil {
			return pc, err
		}
		return pc, m.accumulate(target, operand)
	case stmt.PushVarValue:
		target, ok := m.targets.Peek()
		if !ok {
			return pc, ErrNoTarget
		}
		local, ok := m.scope.Get(s.Name)
		if !ok {
			return pc, fmt.Errorf("%w: %s", ErrUndefinedVariable, s.Name)
		}
		operand, err := convert(*local, target.Type)
		if err != nil {
			return pc, err
		}
		return pc, m.accumulate(target, operand)
	case stmt.TestOperand:
		v, ok := inferLiteral(s.Value)
		if !ok {
			local, found := m.scope.Get(s.Value)
			if !found {
				return pc, fmt.Errorf("%w: %s", ErrUndefinedVariable, s.Value)
			}
			v = *local
		}
		m.conditions.Push(v)
	case stmt.Compare:
		rhs, ok1 := m.conditions.Pop()
		lhs, ok2 := m.conditions.Pop()
		if !ok1 || !ok2 {
			return pc, ErrEmptyCondition
		}
		result, err := compare(s.Op, lhs, rhs)
		if err != nil {
			return pc, err
		}
		m.conditions.Push(Value{Type: BoolType, Bool: result})
	case stmt.BranchUnless:
		cond, ok := m.conditions.Pop()
		if !ok {
			return pc, ErrEmptyCondition
		}
		if !cond.truthy() {
			return skipBlock(stmts, pc)
		}
	case stmt.BlockBegin, stmt.BlockEnd:
	default:
		return pc, fmt.Errorf("unknown statement %T", s)
	}
	return pc, nil
}

func (m *Machine) accumulate(target *Value, operand Value) error {
	result, err := combine(m.operator, *target, operand)
	if err != nil {
		return err
	}
	*target = result
	return nil
}

// skipBlock returns the index of the BlockEnd closing the block opened after
// the branch at pc.
func skipBlock(stmts stmt.Statements, pc int) (int, error) {
	depth := 0
	for i := pc + 1; i < len(stmts); i++ {
		if stmt.OpensBlock(stmts[i]) {
			depth++
			continue
		}
		if _, ok := stmts[i].(stmt.BlockEnd); ok {
			if depth == 0 {
				return i, nil
			}
			depth--
		}
	}
	return pc, ErrUnbalancedBlock
}

func (m *Machine) Scopes() []string {
	names := make([]string, 0, len(m.scopes))
	for name := range m.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Vars returns a snapshot of the variables bound in scope.
func (m *Machine) Vars(scope string) map[string]Value {
	vars := map[string]Value{}
	if s, ok := m.scopes[scope]; ok {
		for name, local := range s.locals {
			vars[name] = *local
		}
	}
	return vars
}

// Dump renders every variable as "scope.name = value", one per line, with
// scopes and names in sorted order.
func (m *Machine) Dump() string {
	var b strings.Builder
	for _, scope := range m.Scopes() {
		vars := m.Vars(scope)
		for _, name := range m.Names(scope) {
			fmt.Fprintf(&b, "%s.%s = %s\n", scope, name, vars[name])
		}
	}
	return b.String()
}

func (m *Machine) Lookup(scope, name string) (Value, bool) {
	s, ok := m.scopes[scope]
	if !ok {
		return Value{}, false
	}
	local, ok := s.Get(name)
	if !ok {
		return Value{}, false
	}
	return *local, true
}

func (m *Machine) Names(scope string) []string {
	if s, ok := m.scopes[scope]; ok {
		return s.Names()
	}
	return nil
}
