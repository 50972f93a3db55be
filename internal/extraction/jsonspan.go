package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject locates the first '{' in raw and the first '}' after it,
// and parses the inclusive span as a JSON object.
// Nested objects are captured incompletely and fail as malformed.
func ExtractJSONObject(raw string) (map[string]any, string, error) {
	return ScanJSONObject(raw, ScanFirstBrace)
}

// ScanJSONObject is ExtractJSONObject with a selectable scanning strategy.
func ScanJSONObject(raw string, mode ScanMode) (map[string]any, string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return nil, "", ErrNoJSONFound
	}

	var end int
	switch mode {
	case ScanBalanced:
		end = matchingBrace(raw, start)
	default:
		end = strings.IndexByte(raw[start:], '}')
		if end >= 0 {
			end += start
		}
	}
	if end < 0 {
		return nil, raw[start:], fmt.Errorf("%w: unterminated object", ErrMalformedJSON)
	}

	span := raw[start : end+1]
	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, span, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return obj, span, nil
}

// matchingBrace returns the index of the '}' closing the object opened at
// start, ignoring braces inside string literals, or -1.
func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stringField reads key from obj. A missing key, or a value that is not a
// string, fails with ErrMissingKey.
func stringField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrMissingKey, key, v)
	}
	return s, nil
}

// ParseTaskName extracts the {"task": ...} object from a completion.
func ParseTaskName(completion string, mode ScanMode) (TaskNameResult, error) {
	obj, _, err := ScanJSONObject(completion, mode)
	if err != nil {
		return TaskNameResult{}, err
	}
	task, err := stringField(obj, KeyTask)
	if err != nil {
		return TaskNameResult{}, err
	}
	return TaskNameResult{Task: task}, nil
}

// ParseTimestamp extracts the {"date": ...} object from a completion.
func ParseTimestamp(completion string, mode ScanMode) (TimestampResult, error) {
	obj, _, err := ScanJSONObject(completion, mode)
	if err != nil {
		return TimestampResult{}, err
	}
	date, err := stringField(obj, KeyDate)
	if err != nil {
		return TimestampResult{}, err
	}
	return TimestampResult{Date: date}, nil
}
