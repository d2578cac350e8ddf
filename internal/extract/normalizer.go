package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Normalize rewrites a script array literal into strict JSON:
// comments are dropped, bare keys are quoted, every string is re-encoded as a
// JSON string, and commas directly before a closing bracket or brace are removed.
// String contents are never rewritten. Normalize(Normalize(s)) == Normalize(s).
func Normalize(span string) (string, error) {
	tokens, err := tokenize(span)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(span))
	for i, tok := range tokens {
		switch tok.kind {
		case tokenComment:
		case tokenString:
			b.WriteString(quoteJSON(tok.value))
		case tokenWord:
			if isIdentifier(tok.text) && nextIs(tokens, i, ":") {
				b.WriteString(quoteJSON(tok.text))
			} else {
				b.WriteString(tok.text)
			}
		case tokenPunct:
			if tok.text == "," && (nextIs(tokens, i, "}") || nextIs(tokens, i, "]")) {
				continue
			}
			b.WriteString(tok.text)
		default:
			b.WriteString(tok.text)
		}
	}
	return b.String(), nil
}

func tokenize(src string) ([]token, error) {
	s := newScanner(src)
	var tokens []token
	for {
		tok, err := s.next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		tokens = append(tokens, tok)
	}
}

// nextIs reports whether the first token after i that is not whitespace or a
// comment is the punctuation p.
func nextIs(tokens []token, i int, p string) bool {
	for _, tok := range tokens[i+1:] {
		if tok.kind == tokenSpace || tok.kind == tokenComment {
			continue
		}
		return tok.kind == tokenPunct && tok.text == p
	}
	return false
}

func isIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
