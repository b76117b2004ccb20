package cli

import (
	"reflect"
	"testing"
	"time"

	"codeberg.org/snonux/jsontrans/internal/translation"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Endpoint", flags.Endpoint, translation.DefaultEndpoint},
		{"Delay", flags.Delay, 50 * time.Millisecond},
		{"Concurrency", flags.Concurrency, 1},
		{"RateLimit", flags.RateLimit, 0.0},
		{"Timeout", flags.Timeout, time.Duration(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Compact", flags.Compact},
		{"DryRun", flags.DryRun},
		{"Verbose", flags.Verbose},
		{"Quiet", flags.Quiet},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputFile", flags.OutputFile},
		{"SourceLang", flags.SourceLang},
		{"Format", flags.Format},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %q, want empty", tt.name, tt.value)
			}
		})
	}
}
