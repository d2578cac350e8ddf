// Package extract pulls question records out of an array literal embedded in
// an HTML or script document.
//
// The pipeline runs in three stages, each only consuming the previous one's output:
// Locate isolates the literal, Normalize turns it into strict JSON and
// ParseRecords builds the records.
package extract

import (
	"fmt"
	"log/slog"

	"github.com/demureom-ctrl/Game/internal/question"
)

// Extract runs the whole pipeline over document for the literal bound to name.
func Extract(document, name string) ([]question.Record, error) {
	span, err := Locate(document, name)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", name, err)
	}
	slog.Debug("located literal", "name", name, "bytes", len(span))

	normalized, err := Normalize(span)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", name, err)
	}

	records, err := ParseRecords(normalized)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	slog.Debug("parsed records", "name", name, "count", len(records))
	return records, nil
}
