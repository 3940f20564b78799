package parser

import (
	"errors"
	"fmt"

	"github.com/redneckbeard/stmtgen/lexer"
)

var (
	ErrInvalidSyntax     = errors.New("invalid syntax")
	ErrMissingTerminator = errors.New("missing terminator")
)

// ParseError reports the first token a translation could not accept. Err is
// always one of ErrInvalidSyntax or ErrMissingTerminator, so callers can
// classify failures with errors.Is.
type ParseError struct {
	Token lexer.Token
	Index int
	Err   error
	msg   string
}

func NewParseError(tok lexer.Token, index int, kind error, fmtString string, args ...interface{}) *ParseError {
	return &ParseError{
		Token: tok,
		Index: index,
		Err:   kind,
		msg:   fmt.Sprintf(fmtString, args...),
	}
}

func (p *ParseError) Error() string {
	if p.Token.LineNo > 0 {
		return fmt.Sprintf("line %d, col %d: %s: %s", p.Token.LineNo, p.Token.Col, p.Err, p.msg)
	}
	return fmt.Sprintf("token %d: %s: %s", p.Index, p.Err, p.msg)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}
