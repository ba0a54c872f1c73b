package main

import (
	"bytes"
	"testing"
)

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"none", []string{"build"}, false},
		{"short", []string{"build", "-v"}, true},
		{"long", []string{"convert", "a.md", "--verbose"}, true},
		{"after terminator", []string{"convert", "--", "-v"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestConfigureMaxProcs_Quiet(t *testing.T) {
	var buf bytes.Buffer
	configureMaxProcs(false, &buf)

	if buf.Len() != 0 {
		t.Errorf("non-verbose configureMaxProcs wrote %q", buf.String())
	}
}
