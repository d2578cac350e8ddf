package extract

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenSpace tokenKind = iota
	tokenComment
	tokenPunct
	tokenString
	tokenWord
)

// token is one lexical unit of a script literal. For strings, value holds the
// decoded contents and text the raw source including quotes.
type token struct {
	kind  tokenKind
	text  string
	value string
}

// scanner splits script source into tokens, keeping string literals and
// comments intact so that nothing inside them is mistaken for code.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// next returns the next token, or io.EOF at the end of the input.
func (s *scanner) next() (token, error) {
	if s.pos >= len(s.src) {
		return token{}, io.EOF
	}
	start := s.pos
	c := s.src[s.pos]

	switch {
	case strings.HasPrefix(s.src[s.pos:], "//"):
		end := strings.IndexByte(s.src[s.pos:], '\n')
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos += end
		}
		return token{kind: tokenComment, text: s.src[start:s.pos]}, nil
	case strings.HasPrefix(s.src[s.pos:], "/*"):
		end := strings.Index(s.src[s.pos+2:], "*/")
		if end < 0 {
			return token{}, fmt.Errorf("unterminated block comment at offset %d", start)
		}
		s.pos += 2 + end + 2
		return token{kind: tokenComment, text: s.src[start:s.pos]}, nil
	case c == '\'' || c == '"' || c == '`':
		value, err := s.readString(c)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokenString, text: s.src[start:s.pos], value: value}, nil
	case isPunct(c):
		s.pos++
		return token{kind: tokenPunct, text: s.src[start:s.pos]}, nil
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	if unicode.IsSpace(r) {
		for s.pos < len(s.src) {
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if !unicode.IsSpace(r) {
				break
			}
			s.pos += size
		}
		return token{kind: tokenSpace, text: s.src[start:s.pos]}, nil
	}

	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		c := s.src[s.pos]
		if unicode.IsSpace(r) || isPunct(c) || c == '\'' || c == '"' || c == '`' ||
			strings.HasPrefix(s.src[s.pos:], "//") || strings.HasPrefix(s.src[s.pos:], "/*") {
			break
		}
		s.pos += size
	}
	return token{kind: tokenWord, text: s.src[start:s.pos]}, nil
}

// readString consumes a quoted string starting at s.pos and returns its decoded value.
func (s *scanner) readString(quote byte) (string, error) {
	start := s.pos
	s.pos++

	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == quote:
			s.pos++
			return b.String(), nil
		case c == '\\':
			if err := s.readEscape(&b); err != nil {
				return "", err
			}
		case (c == '\n' || c == '\r') && quote != '`':
			return "", fmt.Errorf("newline in string starting at offset %d", start)
		default:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			b.WriteRune(r)
			s.pos += size
		}
	}
	return "", fmt.Errorf("unterminated string starting at offset %d", start)
}

// readEscape decodes the escape sequence at s.pos (which points at the backslash).
func (s *scanner) readEscape(b *strings.Builder) error {
	start := s.pos
	s.pos++
	if s.pos >= len(s.src) {
		return fmt.Errorf("unterminated escape at offset %d", start)
	}

	c := s.src[s.pos]
	s.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\r':
		// line continuation, \r\n counts as one line break
		if s.pos < len(s.src) && s.src[s.pos] == '\n' {
			s.pos++
		}
	case '\n':
	case 'x':
		r, err := s.readHex(2)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case 'u':
		r, err := s.readUnicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		// \' \" \\ \/ and any unknown escape stand for the character itself.
		s.pos--
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		b.WriteRune(r)
		s.pos += size
	}
	return nil
}

// readUnicodeEscape reads the part of a \u escape after the "u",
// joining UTF-16 surrogate pairs written as two escapes.
func (s *scanner) readUnicodeEscape() (rune, error) {
	if s.pos < len(s.src) && s.src[s.pos] == '{' {
		end := strings.IndexByte(s.src[s.pos:], '}')
		if end < 0 {
			return 0, fmt.Errorf("unterminated unicode escape at offset %d", s.pos)
		}
		n, err := strconv.ParseUint(s.src[s.pos+1:s.pos+end], 16, 32)
		if err != nil || n > unicode.MaxRune {
			return 0, fmt.Errorf("invalid unicode escape at offset %d", s.pos)
		}
		s.pos += end + 1
		return rune(n), nil
	}

	r, err := s.readHex(4)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if strings.HasPrefix(s.src[s.pos:], `\u`) {
		save := s.pos
		s.pos += 2
		low, err := s.readHex(4)
		if err == nil {
			if pair := utf16.DecodeRune(r, low); pair != unicode.ReplacementChar {
				return pair, nil
			}
		}
		s.pos = save
	}
	return unicode.ReplacementChar, nil
}

func (s *scanner) readHex(digits int) (rune, error) {
	if s.pos+digits > len(s.src) {
		return 0, fmt.Errorf("short hex escape at offset %d", s.pos)
	}
	n, err := strconv.ParseUint(s.src[s.pos:s.pos+digits], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex escape at offset %d", s.pos)
	}
	s.pos += digits
	return rune(n), nil
}

func isPunct(c byte) bool {
	switch c {
	case '[', ']', '{', '}', ',', ':':
		return true
	}
	return false
}
