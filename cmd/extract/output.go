package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"atrova/internal/extraction"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type failure struct {
	Error      string `json:"error" yaml:"error"`
	Op         string `json:"op,omitempty" yaml:"op,omitempty"`
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Completion string `json:"completion,omitempty" yaml:"completion,omitempty"`
}

func newFailure(err error) failure {
	f := failure{Error: err.Error(), Kind: extraction.KindName(err)}
	var extErr *extraction.Error
	if errors.As(err, &extErr) {
		f.Op = extErr.Op
		f.Completion = extErr.Completion
	}
	return f
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", format)
	}
}
