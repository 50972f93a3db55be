package extraction

import "time"

const (
	// TimestampLayout is the fixed textual format of ExtractedTask.Timestamp.
	TimestampLayout = "2006-01-02 15:04:05"

	KeyTask = "task"
	KeyDate = "date"

	DefaultMaxTokens   = 256
	DefaultTemperature = 0.001
	DefaultTimeout     = 30 * time.Second
)

// ScanMode selects how the JSON object is located inside a completion.
type ScanMode string

const (
	// ScanFirstBrace pairs the first '{' with the first '}' after it.
	ScanFirstBrace ScanMode = "first_brace"
	// ScanBalanced pairs the first '{' with its matching '}' by depth, skipping braces inside strings.
	ScanBalanced ScanMode = "balanced"
)

// TaskRequest is one incoming chat message.
type TaskRequest struct {
	Text       string
	ReceivedAt time.Time
}

// ExtractedTask is the merged result of both sub-extractions.
type ExtractedTask struct {
	Task      string `json:"task" yaml:"task"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// TaskNameResult is the parsed {"task": ...} completion.
type TaskNameResult struct {
	Task string `json:"task"`
}

// TimestampResult is the parsed {"date": ...} completion.
type TimestampResult struct {
	Date string `json:"date"`
}

// Options tunes the pipeline. Zero values take the defaults above.
type Options struct {
	MaxTokens int
	// Temperature is the sampling temperature. Nil takes DefaultTemperature; 0 is greedy decoding.
	Temperature *float64
	Timeout     time.Duration
	Scanner     ScanMode
	// Concurrent issues both model calls in parallel in Extract.
	Concurrent bool
	// Location is the zone used for the wall-clock anchor. Defaults to time.Local.
	Location *time.Location
}

// Temperature returns v as an Options.Temperature value.
func Temperature(v float64) *float64 {
	return &v
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Temperature == nil || *o.Temperature < 0 {
		o.Temperature = Temperature(DefaultTemperature)
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Scanner == "" {
		o.Scanner = ScanFirstBrace
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}
