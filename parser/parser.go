// package parser contains the statement generator: a single-pass translator
// that walks a flat token sequence from package lexer and emits the
// statement listing defined in package stmt. The translator carries a small
// amount of mode state (scope, declaration type, arithmetic operator) and
// emits a marker statement only when that mode changes. Keywords are handled
// by pluggable KeywordHandlers registered on a Parser.
package parser

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/redneckbeard/stmtgen/lexer"
	"github.com/redneckbeard/stmtgen/stmt"
)

const (
	DefaultScope    = "global"
	DefaultType     = "int"
	DefaultOperator = "+"
)

// Parser holds translation configuration. It is never mutated by Translate,
// so a single Parser may be shared between goroutines.
type Parser struct {
	keywords Keywords
	strict   bool
}

type Option func(*Parser)

// WithKeyword registers handler for word, replacing any existing handler.
func WithKeyword(word string, handler KeywordHandler) Option {
	return func(p *Parser) {
		p.keywords[word] = handler
	}
}

// Strict makes keywords without a registered handler a syntax error instead
// of a no-op.
func Strict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{keywords: DefaultKeywords()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Keywords() []string {
	return p.keywords.Names()
}

// Translate emits the statement listing for tokens. On failure the returned
// statements are nil and the error is a *ParseError.
func (p *Parser) Translate(tokens []lexer.Token) (stmt.Statements, error) {
	tr := &translation{
		tokens:   tokens,
		scope:    DefaultScope,
		dataType: DefaultType,
		operator: DefaultOperator,
		keywords: p.keywords,
		strict:   p.strict,
	}
	return tr.run()
}

var defaultParser = New()

func Translate(tokens []lexer.Token) (stmt.Statements, error) {
	return defaultParser.Translate(tokens)
}

func (p *Parser) ParseFile(filename string) (stmt.Statements, error) {
	var r io.Reader
	if filename == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseBytes(b)
}

func (p *Parser) ParseString(s string) (stmt.Statements, error) {
	return p.ParseBytes([]byte(s))
}

func (p *Parser) ParseBytes(b []byte) (stmt.Statements, error) {
	tokens, err := lexer.Scan(b)
	if err != nil {
		return nil, fmt.Errorf("scanning source: %w", err)
	}
	return p.Translate(tokens)
}

func ParseFile(filename string) (stmt.Statements, error) {
	return defaultParser.ParseFile(filename)
}

func ParseString(s string) (stmt.Statements, error) {
	return defaultParser.ParseString(s)
}

func DebugLevel() int {
	if val, found := os.LookupEnv("DEBUG"); found {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return 0
}

func LogDebug(verbosity int, format string, v ...interface{}) {
	if DebugLevel() >= verbosity {
		log.Printf(format, v...)
	}
}
