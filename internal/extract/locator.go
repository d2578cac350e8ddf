package extract

import (
	"errors"
	"fmt"
	"io"
	"regexp"
)

// Locate finds the first `name = [` assignment in document and returns the
// array literal from its opening bracket through the matching closing bracket.
// Brackets inside strings and comments do not count towards the depth.
func Locate(document, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty literal name", ErrNotFound)
	}

	// Built per call since the pattern embeds name.
	pattern := regexp.MustCompile(`(?:^|[^\w$.])` + regexp.QuoteMeta(name) + `\s*=\s*\[`)
	loc := pattern.FindStringIndex(document)
	if loc == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	start := loc[1] - 1

	s := newScanner(document[start:])
	depth := 0
	for {
		tok, err := s.next()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s is never closed", ErrUnbalanced, name)
		}
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrUnbalanced, name, err)
		}
		if tok.kind != tokenPunct {
			continue
		}
		switch tok.text {
		case "[":
			depth++
		case "]":
			depth--
			if depth == 0 {
				return document[start : start+s.pos], nil
			}
		}
	}
}
