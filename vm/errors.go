package vm

import (
	"errors"
	"fmt"

	"github.com/redneckbeard/stmtgen/stmt"
)

var (
	ErrUndefinedVariable   = errors.New("undefined variable")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrBadLiteral          = errors.New("bad literal")
	ErrUnknownType         = errors.New("unknown type")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrNoTarget            = errors.New("no target loaded")
	ErrEmptyCondition      = errors.New("condition stack is empty")
	ErrUnbalancedBlock     = errors.New("unbalanced block")
)

// RuntimeError wraps the failure of a single statement.
type RuntimeError struct {
	Index     int
	Statement stmt.Statement
	Err       error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("statement %d (%s): %s", e.Index, e.Statement, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
