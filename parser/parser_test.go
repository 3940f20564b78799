package parser

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/redneckbeard/stmtgen/lexer"
	"github.com/redneckbeard/stmtgen/stmt"
)

var tok = lexer.Tok

func seeded(stmts ...stmt.Statement) stmt.Statements {
	return append(stmt.Statements{
		stmt.ScopeMarker{Name: "global"},
		stmt.TypeMarker{Name: "int"},
		stmt.OperatorMarker{Op: "+"},
	}, stmts...)
}

func assertStatements(t *testing.T, expected, got stmt.Statements) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []lexer.Token
		expected stmt.Statements
	}{
		{
			name: "declaration with literal",
			tokens: []lexer.Token{
				tok(lexer.TYPE, "int"),
				tok(lexer.IDENTIFIER, "x"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "5"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.DeclareVar{Name: "x"},
				stmt.LoadRef{Name: "x"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushLiteral{Literal: "5"},
			),
		},
		{
			name: "variable plus literal",
			tokens: []lexer.Token{
				tok(lexer.IDENTIFIER, "y"),
				tok(lexer.EQUALS, "="),
				tok(lexer.IDENTIFIER, "x"),
				tok(lexer.BINARY_OPERATOR, "+"),
				tok(lexer.NUMBER, "2"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.DeclareVar{Name: "y"},
				stmt.LoadRef{Name: "y"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushVarValue{Name: "x"},
				stmt.PushLiteral{Literal: "2"},
			),
		},
		{
			name: "type change emits a marker",
			tokens: []lexer.Token{
				tok(lexer.TYPE, "float"),
				tok(lexer.IDENTIFIER, "f"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "1.5"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.TypeMarker{Name: "float"},
				stmt.DeclareVar{Name: "f"},
				stmt.LoadRef{Name: "f"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushLiteral{Literal: "1.5"},
			),
		},
		{
			name: "repeated type tokens",
			tokens: []lexer.Token{
				tok(lexer.TYPE, "int"),
				tok(lexer.TYPE, "int"),
				tok(lexer.TYPE, "int"),
			},
			expected: seeded(),
		},
		{
			name: "repeated changed type tokens",
			tokens: []lexer.Token{
				tok(lexer.TYPE, "bool"),
				tok(lexer.TYPE, "bool"),
				tok(lexer.TYPE, "bool"),
			},
			expected: seeded(stmt.TypeMarker{Name: "bool"}),
		},
		{
			name: "repeated operator",
			tokens: []lexer.Token{
				tok(lexer.IDENTIFIER, "x"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "1"),
				tok(lexer.BINARY_OPERATOR, "*"),
				tok(lexer.NUMBER, "2"),
				tok(lexer.BINARY_OPERATOR, "*"),
				tok(lexer.NUMBER, "3"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.DeclareVar{Name: "x"},
				stmt.LoadRef{Name: "x"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushLiteral{Literal: "1"},
				stmt.OperatorMarker{Op: "*"},
				stmt.PushLiteral{Literal: "2"},
				stmt.PushLiteral{Literal: "3"},
			),
		},
		{
			name: "arithmetic assignment resets operator",
			tokens: []lexer.Token{
				tok(lexer.IDENTIFIER, "a"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "2"),
				tok(lexer.BINARY_OPERATOR, "-"),
				tok(lexer.NUMBER, "3"),
				tok(lexer.TERMINATOR, ";"),
				tok(lexer.IDENTIFIER, "b"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "4"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.DeclareVar{Name: "a"},
				stmt.LoadRef{Name: "a"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushLiteral{Literal: "2"},
				stmt.OperatorMarker{Op: "-"},
				stmt.PushLiteral{Literal: "3"},
				stmt.DeclareVar{Name: "b"},
				stmt.LoadRef{Name: "b"},
				stmt.SetDefault{Literal: "0"},
				stmt.OperatorMarker{Op: "+"},
				stmt.PushLiteral{Literal: "4"},
			),
		},
		{
			name: "bool assignment keeps operator",
			tokens: []lexer.Token{
				tok(lexer.TYPE, "bool"),
				tok(lexer.IDENTIFIER, "p"),
				tok(lexer.EQUALS, "="),
				tok(lexer.NUMBER, "true"),
				tok(lexer.BINARY_OPERATOR, "&&"),
				tok(lexer.NUMBER, "false"),
				tok(lexer.TERMINATOR, ";"),
				tok(lexer.TYPE, "bool"),
				tok(lexer.IDENTIFIER, "q"),
				tok(lexer.EQUALS, "="),
				tok(lexer.IDENTIFIER, "p"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.TypeMarker{Name: "bool"},
				stmt.DeclareVar{Name: "p"},
				stmt.LoadRef{Name: "p"},
				stmt.SetDefault{Literal: "false"},
				stmt.PushLiteral{Literal: "true"},
				stmt.OperatorMarker{Op: "&&"},
				stmt.PushLiteral{Literal: "false"},
				stmt.DeclareVar{Name: "q"},
				stmt.LoadRef{Name: "q"},
				stmt.SetDefault{Literal: "false"},
				stmt.PushVarValue{Name: "p"},
			),
		},
		{
			name: "delimiters and keywords inside expressions are skipped",
			tokens: []lexer.Token{
				tok(lexer.IDENTIFIER, "x"),
				tok(lexer.EQUALS, "="),
				tok(lexer.OPEN_DELIM, "{"),
				tok(lexer.NUMBER, "1"),
				tok(lexer.KEYWORD, "if"),
				tok(lexer.CLOSE_DELIM, "}"),
				tok(lexer.TERMINATOR, ";"),
			},
			expected: seeded(
				stmt.DeclareVar{Name: "x"},
				stmt.LoadRef{Name: "x"},
				stmt.SetDefault{Literal: "0"},
				stmt.PushLiteral{Literal: "1"},
			),
		},
		{
			name:     "empty input",
			tokens:   nil,
			expected: seeded(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.tokens)
			if err != nil {
				t.Fatal(err)
			}
			assertStatements(t, tt.expected, got)
		})
	}
}

func TestIllegalStatementStart(t *testing.T) {
	for _, kind := range []lexer.Kind{lexer.NUMBER, lexer.BINARY_OPERATOR, lexer.OPEN_DELIM, lexer.CLOSE_DELIM, lexer.TERMINATOR} {
		tokens := []lexer.Token{
			tok(kind, "?"),
			tok(lexer.IDENTIFIER, "x"),
			tok(lexer.EQUALS, "="),
			tok(lexer.NUMBER, "1"),
			tok(lexer.TERMINATOR, ";"),
		}
		stmts, err := Translate(tokens)
		if !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("%s: expected ErrInvalidSyntax, got %v", kind, err)
		}
		if stmts != nil {
			t.Errorf("%s: expected no statements on failure, got %s", kind, stmts)
		}
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.Index != 0 {
			t.Errorf("%s: expected failure at index 0, got %d", kind, parseErr.Index)
		}
	}
}

func TestAssignmentWithoutVariable(t *testing.T) {
	tests := [][]lexer.Token{
		{tok(lexer.EQUALS, "="), tok(lexer.NUMBER, "1"), tok(lexer.TERMINATOR, ";")},
		{tok(lexer.TYPE, "int"), tok(lexer.EQUALS, "="), tok(lexer.NUMBER, "1"), tok(lexer.TERMINATOR, ";")},
	}
	for i, tokens := range tests {
		if _, err := Translate(tokens); !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("case %d: expected ErrInvalidSyntax, got %v", i, err)
		}
	}
}

func TestMissingTerminator(t *testing.T) {
	tokens := []lexer.Token{
		tok(lexer.IDENTIFIER, "x"),
		tok(lexer.EQUALS, "="),
		tok(lexer.NUMBER, "1"),
		tok(lexer.BINARY_OPERATOR, "+"),
		tok(lexer.NUMBER, "2"),
	}
	if _, err := Translate(tokens); !errors.Is(err, ErrMissingTerminator) {
		t.Errorf("expected ErrMissingTerminator, got %v", err)
	}
	if _, err := Translate(append(tokens, tok(lexer.TERMINATOR, ";"))); err != nil {
		t.Errorf("expected terminated expression to translate, got %v", err)
	}
	if _, err := Translate(tokens[:2]); !errors.Is(err, ErrMissingTerminator) {
		t.Errorf("expected ErrMissingTerminator for trailing '=', got %v", err)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("int x = 5;\n  + 2;")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if parseErr.Token.LineNo != 2 || parseErr.Token.Col != 3 {
		t.Errorf("expected failure at 2:3, got %d:%d", parseErr.Token.LineNo, parseErr.Token.Col)
	}
	if parseErr.Index != 5 {
		t.Errorf("expected failure at token 5, got %d", parseErr.Index)
	}
	expected := `line 2, col 3: invalid syntax: illegal start of statement BINARY_OPERATOR["+"]`
	if err.Error() != expected {
		t.Errorf("expected message %q, got %q", expected, err.Error())
	}
}

func TestTranslateConcurrently(t *testing.T) {
	p := New()
	tokens := []lexer.Token{
		tok(lexer.TYPE, "float"),
		tok(lexer.IDENTIFIER, "x"),
		tok(lexer.EQUALS, "="),
		tok(lexer.NUMBER, "2"),
		tok(lexer.BINARY_OPERATOR, "*"),
		tok(lexer.NUMBER, "4"),
		tok(lexer.TERMINATOR, ";"),
	}
	expected, err := p.Translate(tokens)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]stmt.Statements, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Translate(tokens)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assertStatements(t, expected, got)
	}
}
