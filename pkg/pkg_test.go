package pkg

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "scopelog" {
		t.Errorf("expected Name to be %q, got %q", "scopelog", Name)
	}

	if Description == "" {
		t.Error("expected a non-empty Description")
	}
}

func TestVersion(t *testing.T) {
	// Tests run in the package directory.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthorStruct(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("expected Author to have at least one entry")
	}

	for i, a := range Author {
		if a.Name == "" && a.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestError_Chain(t *testing.T) {
	err := ErrConfigFile.Wrap(io.ErrUnexpectedEOF)

	if got, want := err.Error(), "invalid configuration file: unexpected EOF"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if !errors.Is(err, ErrConfigFile) {
		t.Error("expected wrapped error to match its sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected wrapped error to match its cause")
	}

	if errors.Is(err, ErrConfigValue) {
		t.Error("expected unrelated sentinel not to match")
	}

	if len(ErrConfigFile) != 1 {
		t.Error("expected Wrap to leave the sentinel unchanged")
	}
}

func TestError_Wrapf(t *testing.T) {
	err := ErrConfigValue.Wrapf("key %q", "log-level")

	if got, want := err.Error(), `unsupported configuration value: key "log-level"`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMakeError_Flattens(t *testing.T) {
	inner := errors.New("inner")
	outer := errors.Join(inner, errors.New("sibling"))

	chain := MakeError(nil, outer)

	if len(chain) != 3 {
		t.Fatalf("expected flattened chain of 3, got %d: %v", len(chain), chain)
	}

	if chain[0] != inner {
		t.Errorf("expected innermost error first, got %v", chain[0])
	}

	if MakeError() != nil {
		t.Error("expected nil for no errors")
	}
}
