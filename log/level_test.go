package log

import (
	"errors"
	"slices"
	"testing"
)

func TestLevels_DeclarationOrder(t *testing.T) {
	got := slices.Collect(Levels())

	expected := []Level{LevelError, LevelWarning, LevelInfo, LevelDebug}
	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestLevel_Symbols(t *testing.T) {
	tests := []struct {
		level Level
		str   string
		upper string
	}{
		{LevelError, "error", "ERROR"},
		{LevelWarning, "warning", "WARNING"},
		{LevelInfo, "info", "INFO"},
		{LevelDebug, "debug", "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.level.String(); got != tt.str {
				t.Errorf("expected String() %q, got %q", tt.str, got)
			}

			if got := tt.level.Upper(); got != tt.upper {
				t.Errorf("expected Upper() %q, got %q", tt.upper, got)
			}

			if !tt.level.Valid() {
				t.Errorf("expected %q to be valid", tt.level)
			}
		})
	}

	if Level("warn").Valid() {
		t.Error(`expected "warn" not to be a level symbol`)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{" warning ", LevelWarning, false},
		{"warn", LevelWarning, false},
		{"Info", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"trace", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Errorf("expected ErrUnknownLevel, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
