// Package lexer turns source text into the flat token sequence consumed by
// the statement generator in package parser.
package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
)

type ScanError struct {
	LineNo, Col int
	Rune        rune
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d, col %d: unexpected character %q", e.LineNo, e.Col, e.Rune)
}

type Scanner struct {
	*bytes.Buffer
	lineNo, col int
	startCol    int
	read        []rune
	tokens      []Token
}

func NewScanner(buf []byte) *Scanner {
	return &Scanner{
		Buffer: bytes.NewBuffer(buf),
		lineNo: 1,
		col:    1,
	}
}

// Scan tokenizes src in one pass.
func Scan(src []byte) ([]Token, error) {
	return NewScanner(src).Tokenize()
}

func ScanString(src string) ([]Token, error) {
	return Scan([]byte(src))
}

func (s *Scanner) Peek() (rune, error) {
	r, _, err := s.ReadRune()
	if err != nil {
		return r, err
	}
	s.UnreadRune()
	return r, nil
}

func (s *Scanner) Advance() (rune, error) {
	r, _, err := s.ReadRune()
	if err != nil {
		return r, err
	}
	s.read = append(s.read, r)
	if r == '\n' {
		s.lineNo++
		s.col = 1
	} else {
		s.col++
	}
	return r, nil
}

func (s *Scanner) ResetBuffer() {
	s.read = s.read[:0]
	s.startCol = s.col
}

func (s *Scanner) Emit(kind Kind) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Literal: string(s.read),
		LineNo:  s.lineNo,
		Col:     s.startCol,
	})
	s.ResetBuffer()
}

func (s *Scanner) Tokenize() ([]Token, error) {
	s.ResetBuffer()
	for {
		chr, err := s.Peek()
		if errors.Is(err, io.EOF) {
			return s.tokens, nil
		}
		switch {
		case unicode.IsSpace(chr):
			s.Advance()
			s.ResetBuffer()
		case chr == '/' && s.commentAhead():
			s.skipComment()
		case unicode.IsLetter(chr) || chr == '_':
			s.lexWord()
		case unicode.IsDigit(chr):
			if err := s.lexNumber(); err != nil {
				return nil, err
			}
		default:
			if err := s.lexPunct(); err != nil {
				return nil, err
			}
		}
	}
}

func (s *Scanner) commentAhead() bool {
	b := s.Bytes()
	return len(b) > 1 && b[0] == '/' && b[1] == '/'
}

func (s *Scanner) skipComment() {
	for {
		chr, err := s.Peek()
		if err != nil || chr == '\n' {
			break
		}
		s.Advance()
	}
	s.ResetBuffer()
}

func (s *Scanner) lexWord() {
	for {
		chr, err := s.Peek()
		if err != nil || !(unicode.IsLetter(chr) || unicode.IsDigit(chr) || chr == '_') {
			break
		}
		s.Advance()
	}
	switch word := string(s.read); {
	case types[word]:
		s.Emit(TYPE)
	case keywords[word]:
		s.Emit(KEYWORD)
	case literals[word]:
		s.Emit(NUMBER)
	default:
		s.Emit(IDENTIFIER)
	}
}

func (s *Scanner) lexNumber() error {
	seenDot := false
	for {
		chr, err := s.Peek()
		if err != nil {
			break
		}
		if chr == '.' && !seenDot {
			seenDot = true
			s.Advance()
			next, err := s.Peek()
			if err != nil || !unicode.IsDigit(next) {
				return &ScanError{LineNo: s.lineNo, Col: s.col - 1, Rune: '.'}
			}
			continue
		}
		if !unicode.IsDigit(chr) {
			break
		}
		s.Advance()
	}
	s.Emit(NUMBER)
	return nil
}

func (s *Scanner) lexPunct() error {
	line, col := s.lineNo, s.col
	chr, _ := s.Advance()
	if next, err := s.Peek(); err == nil {
		if kind, ok := validPuncts[string([]rune{chr, next})]; ok {
			s.Advance()
			s.Emit(kind)
			return nil
		}
	}
	if kind, ok := validPuncts[string(chr)]; ok {
		s.Emit(kind)
		return nil
	}
	return &ScanError{LineNo: line, Col: col, Rune: chr}
}
