package zaplog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ardnew/scopelog/backend/zaplog"
	"github.com/ardnew/scopelog/log"
)

func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return zap.New(core, zap.AddCaller()), logs
}

func TestFactory_ScopeAndMeta(t *testing.T) {
	z, logs := observed(zapcore.DebugLevel)

	logger := log.New(zaplog.Factory(z), log.Scope{"workerId": "w1"}).
		Scope(log.Scope{"jobId": 84})

	require.NoError(t, logger.Info("Starting job...", log.Meta{"attempt": 2}))

	entries := logs.All()
	require.Len(t, entries, 1)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Starting job...", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "w1", ctx["workerId"])
	assert.EqualValues(t, 84, ctx["jobId"])
	assert.EqualValues(t, 2, ctx["attempt"])
}

func TestFactory_LevelMapping(t *testing.T) {
	z, logs := observed(zapcore.DebugLevel)
	logger := log.New(zaplog.Factory(z), nil)

	_ = logger.Error("e")
	_ = logger.Warn("w")
	_ = logger.Info("i")
	_ = logger.Debug("d")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}

	assert.Equal(t, []zapcore.Level{
		zapcore.ErrorLevel,
		zapcore.WarnLevel,
		zapcore.InfoLevel,
		zapcore.DebugLevel,
	}, levels)
}

func TestFactory_RespectsCoreLevel(t *testing.T) {
	z, logs := observed(zapcore.WarnLevel)
	logger := log.New(zaplog.Factory(z), nil)

	_ = logger.Info("dropped")
	_ = logger.Warn("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestFactory_ParentScopeUnchanged(t *testing.T) {
	z, logs := observed(zapcore.DebugLevel)

	parent := log.New(zaplog.Factory(z), log.Scope{"a": 1})
	_ = parent.Scope(log.Scope{"b": 2}).Info("child")
	_ = parent.Info("parent")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].ContextMap(), "b")
	assert.NotContains(t, entries[1].ContextMap(), "b")
}

func TestFactory_CallerPointsAtLogSite(t *testing.T) {
	z, logs := observed(zapcore.DebugLevel)

	_ = log.New(zaplog.Factory(z), nil).Warn("where")

	require.Equal(t, 1, logs.Len())

	caller := logs.All()[0].Caller
	require.True(t, caller.Defined)
	assert.True(t, strings.HasSuffix(caller.File, "zaplog_test.go"), caller.File)
}

func TestFactory_NilLogger(t *testing.T) {
	assert.NoError(t, log.New(zaplog.Factory(nil), log.Scope{"a": 1}).Error("x"))
}

func TestFields_SortedByKey(t *testing.T) {
	fields := zaplog.Fields(log.Meta{"b": 1, "a": "x", "c": true})

	var keys []string
	for _, f := range fields {
		keys = append(keys, f.Key)
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Empty(t, zaplog.Fields(log.Meta(nil)))
}
