package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/scopelog/pkg"
)

func flag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve_Flatten(t *testing.T) {
	r, err := resolve(strings.NewReader(`
log:
  level: debug
  time-layout: none
  pretty: false
backend: zap
retries: 42
ratio: 1.5
log_caller: true
`))
	require.NoError(t, err)

	tests := []struct {
		name     string
		expected any
	}{
		{"log-level", "debug"},
		{"log-time-layout", "none"},
		{"log-pretty", false},
		{"backend", "zap"},
		{"retries", "42"},
		{"ratio", "1.5"},
		{"log-caller", true},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := r.Resolve(nil, nil, flag(tt.name))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}

	assert.NoError(t, r.Validate(nil))
}

func TestResolve_Empty(t *testing.T) {
	r, err := resolve(strings.NewReader(""))
	require.NoError(t, err)

	value, err := r.Resolve(nil, nil, flag("log-level"))
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestResolve_Invalid(t *testing.T) {
	_, err := resolve(strings.NewReader("log: [\n"))
	assert.ErrorIs(t, err, pkg.ErrConfigFile)

	_, err = resolve(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, pkg.ErrConfigValue)
}
