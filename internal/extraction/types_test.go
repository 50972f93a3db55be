package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsWithDefaults(t *testing.T) {
	got := Options{}.WithDefaults()
	assert.Equal(t, DefaultMaxTokens, got.MaxTokens)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, DefaultTemperature, *got.Temperature)
	assert.Equal(t, DefaultTimeout, got.Timeout)
	assert.Equal(t, ScanFirstBrace, got.Scanner)
	assert.Equal(t, time.Local, got.Location)
}

func TestOptionsWithDefaults_Temperature(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want float64
	}{
		{"unset", nil, DefaultTemperature},
		{"greedy", Temperature(0), 0},
		{"explicit", Temperature(0.7), 0.7},
		{"negative", Temperature(-1), DefaultTemperature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Options{Temperature: tt.in}.WithDefaults()
			assert.Equal(t, tt.want, *got.Temperature)
		})
	}
}
