package extract

import "errors"

var (
	// ErrNotFound is returned when the named literal does not appear in the document.
	ErrNotFound = errors.New("literal not found")
	// ErrUnbalanced is returned when the literal's opening bracket is never closed.
	ErrUnbalanced = errors.New("unbalanced brackets")
	// ErrMalformedDocument is returned when the literal cannot be turned into question records.
	ErrMalformedDocument = errors.New("malformed document")
)
