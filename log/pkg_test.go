package log

import (
	"bytes"
	"reflect"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	// Save original logger and restore after test
	original := defaultLog
	defer func() { defaultLog = original }()

	rec := &recorder{}
	defaultLog = New(rec.factory, nil)

	tests := []struct {
		name  string
		fn    func(string, ...Meta) error
		level Level
		msg   string
	}{
		{"Error", Error, LevelError, "error message"},
		{"Warn", Warn, LevelWarning, "warn message"},
		{"Info", Info, LevelInfo, "info message"},
		{"Debug", Debug, LevelDebug, "debug message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.calls = nil
			meta := Meta{"key": "value"}

			if err := tt.fn(tt.msg, meta); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expected := []call{{tt.level, tt.msg, meta}}
			if !reflect.DeepEqual(rec.calls, expected) {
				t.Errorf("expected %v, got %v", expected, rec.calls)
			}
		})
	}
}

func TestPackage_Default_HasEmptyScope(t *testing.T) {
	got := Default().CurrentScope()

	if got == nil || len(got) != 0 {
		t.Errorf("expected empty scope, got %v", got)
	}

	if got := CurrentScope(); len(got) != 0 {
		t.Errorf("expected empty package scope, got %v", got)
	}
}

func TestPackage_Scoped_RoundTrip(t *testing.T) {
	s := Scope{"workerId": "w1", "attempt": 3}

	if got := Scoped(s).CurrentScope(); !reflect.DeepEqual(got, s) {
		t.Errorf("expected %v, got %v", s, got)
	}

	if got := Default().CurrentScope(); len(got) != 0 {
		t.Errorf("expected default scope to stay empty, got %v", got)
	}
}

func TestPackage_Default_WritesConsoleFormat(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var stdout bytes.Buffer
	defaultLog = New(
		ConsoleFactory(WithConsole(NewConsole(&stdout, nil))),
		nil,
	)

	_ = Info("Starting worker cluster...")

	expected := "INFO: Starting worker cluster... ({})\n"
	if got := stdout.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
