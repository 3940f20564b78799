package parser

import (
	"github.com/redneckbeard/stmtgen/lexer"
	"github.com/redneckbeard/stmtgen/stmt"
)

// translation is the state of a single Translate call.
type translation struct {
	tokens   []lexer.Token
	index    int
	scope    string
	dataType string
	operator string
	keywords Keywords
	strict   bool
	stmts    stmt.Statements
}

func (tr *translation) run() (stmt.Statements, error) {
	tr.emit(
		stmt.ScopeMarker{Name: tr.scope},
		stmt.TypeMarker{Name: tr.dataType},
		stmt.OperatorMarker{Op: tr.operator},
	)
	for ; tr.index < len(tr.tokens); tr.index++ {
		if err := tr.identifyToken(); err != nil {
			LogDebug(1, "translation failed: %s", err)
			return nil, err
		}
	}
	return tr.stmts, nil
}

func (tr *translation) emit(stmts ...stmt.Statement) {
	tr.stmts = append(tr.stmts, stmts...)
}

func (tr *translation) current() lexer.Token {
	return tr.tokens[tr.index]
}

// last returns the token at the cursor, or the final token once the cursor
// has run off the end of the stream.
func (tr *translation) last() lexer.Token {
	if tr.index < len(tr.tokens) {
		return tr.tokens[tr.index]
	}
	if len(tr.tokens) > 0 {
		return tr.tokens[len(tr.tokens)-1]
	}
	return lexer.Token{}
}

func (tr *translation) fail(kind error, fmtString string, args ...interface{}) error {
	return NewParseError(tr.last(), tr.index, kind, fmtString, args...)
}

func (tr *translation) identifyToken() error {
	tok := tr.current()
	LogDebug(2, "dispatch %d: %s", tr.index, tok)
	switch tok.Kind {
	case lexer.TYPE:
		tr.whenType(tok)
	case lexer.IDENTIFIER:
		tr.emit(stmt.DeclareVar{Name: tok.Literal})
	case lexer.EQUALS:
		return tr.whenEquals()
	case lexer.NUMBER, lexer.BINARY_OPERATOR, lexer.OPEN_DELIM, lexer.CLOSE_DELIM, lexer.TERMINATOR:
		return tr.fail(ErrInvalidSyntax, "illegal start of statement %s", tok)
	case lexer.KEYWORD:
		return tr.whenKeyword(tok)
	default:
		return tr.fail(ErrInvalidSyntax, "unknown token %s", tok)
	}
	return nil
}

func (tr *translation) whenType(tok lexer.Token) {
	if tok.Literal != tr.dataType {
		LogDebug(1, "type %s -> %s", tr.dataType, tok.Literal)
		tr.emit(stmt.TypeMarker{Name: tok.Literal})
		tr.dataType = tok.Literal
	}
}

func (tr *translation) whenEquals() error {
	if tr.index < 1 || tr.tokens[tr.index-1].Kind != lexer.IDENTIFIER {
		return tr.fail(ErrInvalidSyntax, "assignment without a variable")
	}
	tr.emit(stmt.LoadRef{Name: tr.tokens[tr.index-1].Literal})

	if tr.dataType == "int" || tr.dataType == "float" {
		tr.emit(stmt.SetDefault{Literal: "0"})
	} else {
		tr.emit(stmt.SetDefault{Literal: "false"})
	}

	if tr.operator != DefaultOperator && tr.dataType != "bool" {
		LogDebug(1, "operator %s -> %s", tr.operator, DefaultOperator)
		tr.emit(stmt.OperatorMarker{Op: DefaultOperator})
		tr.operator = DefaultOperator
	}

	tr.index++
	return tr.generateMathExpression()
}

// generateMathExpression consumes the right-hand side of an assignment,
// leaving the cursor on its terminator.
func (tr *translation) generateMathExpression() error {
	for {
		if tr.index >= len(tr.tokens) {
			return tr.fail(ErrMissingTerminator, "expression reached end of input")
		}
		tok := tr.current()
		if tok.Kind == lexer.TERMINATOR {
			return nil
		}

		switch tok.Kind {
		case lexer.NUMBER:
			tr.emit(stmt.PushLiteral{Literal: tok.Literal})
		case lexer.IDENTIFIER:
			tr.emit(stmt.PushVarValue{Name: tok.Literal})
		case lexer.BINARY_OPERATOR:
			if tok.Literal != tr.operator {
				LogDebug(1, "operator %s -> %s", tr.operator, tok.Literal)
				tr.emit(stmt.OperatorMarker{Op: tok.Literal})
				tr.operator = tok.Literal
			}
		}

		if tr.index == len(tr.tokens)-1 {
			return tr.fail(ErrMissingTerminator, "expression reached end of input")
		}
		tr.index++
	}
}

func (tr *translation) whenKeyword(tok lexer.Token) error {
	handler, ok := tr.keywords[tok.Literal]
	if !ok {
		if tr.strict {
			return tr.fail(ErrInvalidSyntax, "unsupported keyword %q", tok.Literal)
		}
		LogDebug(1, "ignoring keyword %q at %d", tok.Literal, tr.index)
		return nil
	}

	kwIndex := tr.index
	head := []lexer.Token{}
	for {
		tr.index++
		if tr.index >= len(tr.tokens) {
			return tr.fail(ErrInvalidSyntax, "missing opening delimiter after %q", tok.Literal)
		}
		if tr.current().Kind == lexer.OPEN_DELIM {
			break
		}
		head = append(head, tr.current())
	}

	prefix, err := handler.Head(head)
	if err != nil {
		return NewParseError(tok, kwIndex, ErrInvalidSyntax, "%s: %s", tok.Literal, err)
	}
	tr.emit(prefix...)
	if !opensBlock(prefix) {
		tr.emit(stmt.BlockBegin{})
	}

	tr.index++
	return tr.addBody(tok)
}

// addBody dispatches statements until the closing delimiter of the block
// opened by kw, leaving the cursor on that delimiter.
func (tr *translation) addBody(kw lexer.Token) error {
	for ; ; tr.index++ {
		if tr.index >= len(tr.tokens) {
			return tr.fail(ErrInvalidSyntax, "missing closing delimiter for %q", kw.Literal)
		}
		if tr.current().Kind == lexer.CLOSE_DELIM {
			break
		}
		if err := tr.identifyToken(); err != nil {
			return err
		}
	}
	tr.emit(stmt.BlockEnd{})
	return nil
}

// opensBlock reports whether a keyword prefix already opens the block that
// its body's BlockEnd will close.
func opensBlock(prefix stmt.Statements) bool {
	for _, s := range prefix {
		if stmt.OpensBlock(s) {
			return true
		}
	}
	return false
}
