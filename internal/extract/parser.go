package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/demureom-ctrl/Game/internal/question"
)

const defaultDifficulty = 1

// ParseRecords parses normalized JSON whose root is an array of question objects.
func ParseRecords(normalized string) ([]question.Record, error) {
	dec := json.NewDecoder(strings.NewReader(normalized))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the root value", ErrMalformedDocument)
	}

	items, ok := root.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: root is %s, not an array", ErrMalformedDocument, jsonType(root))
	}

	records := make([]question.Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, not an object", ErrMalformedDocument, i, jsonType(item))
		}
		record, err := recordFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// recordFromObject builds a Record, applying the defaults for difficulty and options.
func recordFromObject(obj map[string]interface{}) (question.Record, error) {
	var record question.Record
	var err error

	if record.Category, err = requiredString(obj, "category"); err != nil {
		return record, err
	}
	if record.Question, err = requiredString(obj, "question"); err != nil {
		return record, err
	}
	if record.Answer, err = requiredString(obj, "answer"); err != nil {
		return record, err
	}
	record.Difficulty = difficulty(obj["difficulty"])
	if record.Options, err = options(obj["options"]); err != nil {
		return record, err
	}
	return record, nil
}

func requiredString(obj map[string]interface{}, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedDocument, key)
	}
	s, ok := scalarText(v)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, not a string", ErrMalformedDocument, key, jsonType(v))
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: empty %s", ErrMalformedDocument, key)
	}
	return s, nil
}

// difficulty reads a number or numeric string, truncating fractions.
// Anything else yields the default.
func difficulty(v interface{}) int {
	var text string
	switch d := v.(type) {
	case json.Number:
		text = d.String()
	case string:
		text = strings.TrimSpace(d)
	default:
		return defaultDifficulty
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return defaultDifficulty
	}
	return int(f)
}

func options(v interface{}) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: options is %s, not an array", ErrMalformedDocument, jsonType(v))
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := scalarText(item)
		if !ok {
			return nil, fmt.Errorf("%w: option %d is %s, not a string", ErrMalformedDocument, i, jsonType(item))
		}
		out = append(out, s)
	}
	return out, nil
}

// scalarText returns strings as is and numbers or booleans in their literal form.
func scalarText(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case string:
		return "a string"
	case []interface{}:
		return "an array"
	case map[string]interface{}:
		return "an object"
	}
	return fmt.Sprintf("%T", v)
}
