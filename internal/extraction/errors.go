package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJSONFound means the completion contains no '{' at all.
	ErrNoJSONFound = errors.New("no json object found in completion")
	// ErrMalformedJSON means a '{' exists but is never closed or the captured span does not parse.
	ErrMalformedJSON = errors.New("malformed json object in completion")
	// ErrMissingKey means the object parsed but lacks the required string key.
	ErrMissingKey = errors.New("required key missing from json object")
	// ErrExtraction covers text generation failures: transport, timeout, upstream errors.
	ErrExtraction = errors.New("text generation failed")
)

// Operation names used in Error.Op.
const (
	OpTaskName  = "task_name"
	OpTimestamp = "timestamp"
)

// Error describes a failed sub-extraction. errors.Is matches both Kind and the cause.
type Error struct {
	Op         string
	Kind       error
	Completion string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("extraction %s: %v", e.Op, e.Kind)
	case errors.Is(e.Err, e.Kind):
		return fmt.Sprintf("extraction %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("extraction %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel describing err, or nil if err did not come from the pipeline.
func KindOf(err error) error {
	for _, kind := range []error{ErrNoJSONFound, ErrMalformedJSON, ErrMissingKey, ErrExtraction} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// KindName is the stable snake_case name of err's kind, or "" if err did not come from the pipeline.
func KindName(err error) string {
	switch KindOf(err) {
	case ErrNoJSONFound:
		return "no_json_found"
	case ErrMalformedJSON:
		return "malformed_json"
	case ErrMissingKey:
		return "missing_key"
	case ErrExtraction:
		return "extraction"
	}
	return ""
}
