package logruslog_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/scopelog/backend/logruslog"
	"github.com/ardnew/scopelog/log"
)

func TestFactory_ScopeAndMeta(t *testing.T) {
	l, hook := test.NewNullLogger()

	logger := log.New(logruslog.Factory(l), log.Scope{"workerId": "w1"}).
		Scope(log.Scope{"jobId": 84})

	require.NoError(t, logger.Warn("slow", log.Meta{"elapsed": "3s"}))

	entry := hook.LastEntry()
	require.NotNil(t, entry)

	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "slow", entry.Message)
	assert.Equal(t, logrus.Fields{
		"workerId": "w1",
		"jobId":    84,
		"elapsed":  "3s",
	}, entry.Data)
}

func TestFactory_LevelMapping(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	logger := log.New(logruslog.Factory(l), nil)

	_ = logger.Error("e")
	_ = logger.Warn("w")
	_ = logger.Info("i")
	_ = logger.Debug("d")

	var levels []logrus.Level
	for _, e := range hook.AllEntries() {
		levels = append(levels, e.Level)
	}

	assert.Equal(t, []logrus.Level{
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
	}, levels)
}

func TestFactory_RespectsLoggerLevel(t *testing.T) {
	l, hook := test.NewNullLogger()

	_ = log.New(logruslog.Factory(l), nil).Debug("dropped")

	assert.Empty(t, hook.AllEntries())
}

func TestFactory_MetaDoesNotLeakIntoScope(t *testing.T) {
	l, hook := test.NewNullLogger()
	logger := log.New(logruslog.Factory(l), log.Scope{"a": 1})

	_ = logger.Info("first", log.Meta{"m": true})
	_ = logger.Info("second")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Data, "m")
	assert.Equal(t, logrus.Fields{"a": 1}, entries[1].Data)
}

func TestFactory_AcceptsEntry(t *testing.T) {
	l, hook := test.NewNullLogger()

	_ = log.New(logruslog.Factory(l.WithField("component", "queue")), nil).
		Info("through entry")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "queue", entry.Data["component"])
}

func TestFactory_NilLogger(t *testing.T) {
	assert.NoError(t, log.New(logruslog.Factory(nil), nil).Error("x"))
}
