// Package highlight renders source programs and statement listings with
// chroma, using lexers for both formats defined here.
package highlight

import (
	"io"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/styles"
)

const (
	DefaultFormatter = "terminal"
	DefaultStyle     = "monokai"
)

var Source = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "stmtgen",
		Aliases:   []string{"sg"},
		Filenames: []string{"*.sg"},
	},
	chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
			{Pattern: `//[^\n]*`, Type: chroma.CommentSingle, Mutator: nil},
			{Pattern: `\b(int|float|bool)\b`, Type: chroma.KeywordType, Mutator: nil},
			{Pattern: `\b(if|else|while)\b`, Type: chroma.Keyword, Mutator: nil},
			{Pattern: `\b(true|false)\b`, Type: chroma.KeywordConstant, Mutator: nil},
			{Pattern: `[0-9]+(\.[0-9]+)?`, Type: chroma.LiteralNumber, Mutator: nil},
			{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Type: chroma.NameVariable, Mutator: nil},
			{Pattern: `==|!=|<=|>=|&&|\|\||[-+*/%<>=]`, Type: chroma.Operator, Mutator: nil},
			{Pattern: `[{};]`, Type: chroma.Punctuation, Mutator: nil},
			{Pattern: `.`, Type: chroma.Error, Mutator: nil},
		},
	},
)

var Listing = chroma.MustNewLexer(
	&chroma.Config{
		Name:    "stmtgen listing",
		Aliases: []string{"sgl"},
	},
	chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
			{Pattern: `\b(scope|type|op|var|load|set|push|get|test|cmp|branch|begin|end)\b`, Type: chroma.Keyword, Mutator: nil},
			{Pattern: `\b(int|float|bool)\b`, Type: chroma.KeywordType, Mutator: nil},
			{Pattern: `\b(true|false)\b`, Type: chroma.KeywordConstant, Mutator: nil},
			{Pattern: `[0-9]+(\.[0-9]+)?`, Type: chroma.LiteralNumber, Mutator: nil},
			{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Type: chroma.NameVariable, Mutator: nil},
			{Pattern: `\S+`, Type: chroma.Operator, Mutator: nil},
		},
	},
)

// Highlight writes text tokenised by lexer to w using the named chroma
// formatter and style. Unknown names fall back to chroma's defaults.
func Highlight(w io.Writer, lexer chroma.Lexer, text, formatter, style string) error {
	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return err
	}
	return formatters.Get(formatter).Format(w, styles.Get(style), it)
}

// WriteSource writes src for a terminal in the given style.
func WriteSource(w io.Writer, src, style string) error {
	return Highlight(w, Source, src, DefaultFormatter, style)
}

func WriteListing(w io.Writer, listing, style string) error {
	return Highlight(w, Listing, listing, DefaultFormatter, style)
}
