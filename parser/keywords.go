package parser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/redneckbeard/stmtgen/lexer"
	"github.com/redneckbeard/stmtgen/stmt"
)

// KeywordHandler turns the head run of a keyword (the tokens between the
// keyword and the opening delimiter of its body) into the statements that
// precede the body.
type KeywordHandler interface {
	Head(head []lexer.Token) (stmt.Statements, error)
}

type KeywordFunc func(head []lexer.Token) (stmt.Statements, error)

func (f KeywordFunc) Head(head []lexer.Token) (stmt.Statements, error) {
	return f(head)
}

type Keywords map[string]KeywordHandler

func DefaultKeywords() Keywords {
	return Keywords{
		"if": IfHandler{},
	}
}

func (kw Keywords) Names() []string {
	names := make([]string, 0, len(kw))
	for name := range kw {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var comparisons = map[string]bool{
	"==": true,
	"!=": true,
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
}

// IfHandler accepts a head of the form `operand` or `operand cmp operand`.
type IfHandler struct{}

func (IfHandler) Head(head []lexer.Token) (stmt.Statements, error) {
	switch len(head) {
	case 0:
		return nil, errors.New("missing condition")
	case 1:
		if err := checkOperand(head[0]); err != nil {
			return nil, err
		}
		return stmt.Statements{
			stmt.TestOperand{Value: head[0].Literal},
			stmt.BranchUnless{},
		}, nil
	case 3:
		lhs, cmp, rhs := head[0], head[1], head[2]
		if err := checkOperand(lhs); err != nil {
			return nil, err
		}
		if cmp.Kind != lexer.BINARY_OPERATOR || !comparisons[cmp.Literal] {
			return nil, fmt.Errorf("expected comparison but got %s", cmp)
		}
		if err := checkOperand(rhs); err != nil {
			return nil, err
		}
		return stmt.Statements{
			stmt.TestOperand{Value: lhs.Literal},
			stmt.TestOperand{Value: rhs.Literal},
			stmt.Compare{Op: cmp.Literal},
			stmt.BranchUnless{},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported condition of %d tokens", len(head))
	}
}

func checkOperand(tok lexer.Token) error {
	if tok.Kind != lexer.NUMBER && tok.Kind != lexer.IDENTIFIER {
		return fmt.Errorf("expected operand but got %s", tok)
	}
	return nil
}
