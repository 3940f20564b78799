package lexer

import "fmt"

type Kind int

const (
	TYPE Kind = iota
	IDENTIFIER
	EQUALS
	NUMBER
	BINARY_OPERATOR
	OPEN_DELIM
	CLOSE_DELIM
	TERMINATOR
	KEYWORD
)

var kindNames = map[Kind]string{
	TYPE:            "TYPE",
	IDENTIFIER:      "IDENTIFIER",
	EQUALS:          "EQUALS",
	NUMBER:          "NUMBER",
	BINARY_OPERATOR: "BINARY_OPERATOR",
	OPEN_DELIM:      "OPEN_DELIM",
	CLOSE_DELIM:     "CLOSE_DELIM",
	TERMINATOR:      "TERMINATOR",
	KEYWORD:         "KEYWORD",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. LineNo and Col are 1-based and only used for
// diagnostics; tokens built by hand may leave them zero.
type Token struct {
	Kind    Kind
	Literal string
	LineNo  int
	Col     int
}

// Tok builds a position-less token, mostly useful in tests.
func Tok(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%q]", t.Kind, t.Literal)
}

var types = map[string]bool{
	"int":   true,
	"float": true,
	"bool":  true,
}

var keywords = map[string]bool{
	"if":    true,
	"else":  true,
	"while": true,
}

var literals = map[string]bool{
	"true":  true,
	"false": true,
}

var validPuncts = map[string]Kind{
	"=":  EQUALS,
	"==": BINARY_OPERATOR,
	"!=": BINARY_OPERATOR,
	"<":  BINARY_OPERATOR,
	"<=": BINARY_OPERATOR,
	">":  BINARY_OPERATOR,
	">=": BINARY_OPERATOR,
	"+":  BINARY_OPERATOR,
	"-":  BINARY_OPERATOR,
	"*":  BINARY_OPERATOR,
	"/":  BINARY_OPERATOR,
	"%":  BINARY_OPERATOR,
	"&&": BINARY_OPERATOR,
	"||": BINARY_OPERATOR,
	"{":  OPEN_DELIM,
	"}":  CLOSE_DELIM,
	";":  TERMINATOR,
}

