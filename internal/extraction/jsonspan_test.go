package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantSpan string
		wantObj  map[string]any
		wantErr  error
	}{
		{
			name:     "prefix and suffix around object",
			raw:      `Sure! {"task": "buy milk"} Hope this helps.`,
			wantSpan: `{"task": "buy milk"}`,
			wantObj:  map[string]any{"task": "buy milk"},
		},
		{
			name:     "bare object",
			raw:      `{"date": "2024-01-02 17:00:00"}`,
			wantSpan: `{"date": "2024-01-02 17:00:00"}`,
			wantObj:  map[string]any{"date": "2024-01-02 17:00:00"},
		},
		{
			name:     "first object wins",
			raw:      `{"task": "a"} {"task": "b"}`,
			wantSpan: `{"task": "a"}`,
			wantObj:  map[string]any{"task": "a"},
		},
		{
			name:    "no brace at all",
			raw:     "I could not find a task in that message.",
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "empty completion",
			raw:     "",
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "closing brace only",
			raw:     `task: "x" }`,
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "unterminated object",
			raw:     `{ "task": "call mom", extra broken`,
			wantErr: ErrMalformedJSON,
		},
		{
			name:     "unterminated object with a later unrelated brace",
			raw:      `{ "task": "call mom", extra broken } trailing`,
			wantSpan: `{ "task": "call mom", extra broken }`,
			wantErr:  ErrMalformedJSON,
		},
		{
			name:     "nested object captured incompletely",
			raw:      `{"task": {"name": "x"}}`,
			wantSpan: `{"task": {"name": "x"}`,
			wantErr:  ErrMalformedJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, span, err := ExtractJSONObject(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, obj)
				if tt.wantSpan != "" {
					assert.Equal(t, tt.wantSpan, span)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSpan, span)
			assert.Equal(t, tt.wantObj, obj)
		})
	}
}

func TestScanJSONObject_Balanced(t *testing.T) {
	t.Run("nested object", func(t *testing.T) {
		obj, span, err := ScanJSONObject(`ok: {"date": "2024-01-02 17:00:00", "meta": {"tz": "UTC"}} done`, ScanBalanced)
		require.NoError(t, err)
		assert.Equal(t, `{"date": "2024-01-02 17:00:00", "meta": {"tz": "UTC"}}`, span)
		assert.Equal(t, "2024-01-02 17:00:00", obj["date"])
	})

	t.Run("braces inside strings are ignored", func(t *testing.T) {
		obj, _, err := ScanJSONObject(`{"task": "fix } and \" {"}`, ScanBalanced)
		require.NoError(t, err)
		assert.Equal(t, `fix } and " {`, obj["task"])
	})

	t.Run("unterminated fails", func(t *testing.T) {
		_, _, err := ScanJSONObject(`{ "task": "call mom", extra broken`, ScanBalanced)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("balanced but invalid fails", func(t *testing.T) {
		_, _, err := ScanJSONObject(`{ "task": "call mom", extra broken } trailing`, ScanBalanced)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("no brace", func(t *testing.T) {
		_, _, err := ScanJSONObject("nothing here", ScanBalanced)
		assert.ErrorIs(t, err, ErrNoJSONFound)
	})
}

func TestParseTaskName(t *testing.T) {
	res, err := ParseTaskName(`{"task": "buy milk"}`, ScanFirstBrace)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", res.Task)

	res, err = ParseTaskName(`{"task": ""}`, ScanFirstBrace)
	require.NoError(t, err)
	assert.Empty(t, res.Task)

	_, err = ParseTaskName(`{"name": "buy milk"}`, ScanFirstBrace)
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = ParseTaskName(`{"task": 42}`, ScanFirstBrace)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestParseTimestamp(t *testing.T) {
	res, err := ParseTimestamp(`Answer: {"date": "2024-01-02 17:00:00"}`, ScanFirstBrace)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 17:00:00", res.Date)

	_, err = ParseTimestamp(`{"task": "buy milk"}`, ScanFirstBrace)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestErrorMatchesSentinels(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := error(&Error{Op: OpTaskName, Kind: ErrExtraction, Err: cause})

	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMalformedJSON)
	assert.Equal(t, "extraction task_name: text generation failed: dial tcp: connection refused", err.Error())

	var extErr *Error
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, OpTaskName, extErr.Op)
	assert.Equal(t, ErrExtraction, KindOf(err))
	assert.Nil(t, KindOf(cause))
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "no_json_found", KindName(&Error{Op: OpTimestamp, Kind: ErrNoJSONFound}))
	assert.Equal(t, "malformed_json", KindName(&Error{Op: OpTimestamp, Kind: ErrMalformedJSON}))
	assert.Equal(t, "missing_key", KindName(&Error{Op: OpTaskName, Kind: ErrMissingKey}))
	assert.Equal(t, "extraction", KindName(&Error{Op: OpTaskName, Kind: ErrExtraction}))
	assert.Equal(t, "", KindName(errors.New("other")))
}
