package logsink_test

import (
	"testing"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/Adirelle/fuzzlog/pkg/logsink"
	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*log.Logger, *memory.Handler) {
	handler := memory.New()
	return &log.Logger{Handler: handler, Level: log.DebugLevel}, handler
}

func TestLevels(t *testing.T) {
	t.Parallel()
	logger, handler := newLogger()
	s := logsink.New(logger)

	require.NoError(t, s.OpenTestCase("TC1"))
	require.NoError(t, s.OpenTestStep("step"))
	require.NoError(t, s.LogInfo("info"))
	require.NoError(t, s.LogCheck("check"))
	require.NoError(t, s.LogPass("pass"))
	require.NoError(t, s.LogFail("fail"))
	require.NoError(t, s.LogError("error"))
	require.NoError(t, s.LogRecv([]byte("AB")))
	require.NoError(t, s.LogSend([]byte{0x00}))

	expected := []struct {
		level   log.Level
		message string
	}{
		{log.InfoLevel, "test_case.open"},
		{log.InfoLevel, "test_step.open"},
		{log.InfoLevel, "info"},
		{log.DebugLevel, "check"},
		{log.InfoLevel, "check.pass"},
		{log.WarnLevel, "check.fail"},
		{log.ErrorLevel, "error"},
		{log.DebugLevel, "recv"},
		{log.DebugLevel, "send"},
	}
	require.Len(t, handler.Entries, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.level, handler.Entries[i].Level, e.message)
		assert.Equal(t, e.message, handler.Entries[i].Message)
		assert.Equal(t, fuzzlog.TestCaseID("TC1"), handler.Entries[i].Fields["test_case"])
	}
}

func TestFields(t *testing.T) {
	t.Parallel()
	logger, handler := newLogger()
	s := logsink.New(logger)

	require.NoError(t, s.LogFail("bad"))
	require.NoError(t, s.LogRecv([]byte("AB")))

	require.Len(t, handler.Entries, 2)
	assert.Equal(t, fuzzlog.DefaultTestCase, handler.Entries[0].Fields["test_case"])
	assert.Equal(t, "bad", handler.Entries[0].Fields["description"])
	assert.Equal(t, 2, handler.Entries[1].Fields["bytes"])
	assert.Equal(t, "4142", handler.Entries[1].Fields["data"])
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	logger, handler := newLogger()
	logger.Level = log.WarnLevel
	m := fuzzlog.NewMultiplexer(logsink.New(logger))

	require.NoError(t, m.OpenTestCase("TC1"))
	require.NoError(t, m.LogPass("ok"))
	require.NoError(t, m.LogError("crash"))

	require.Len(t, handler.Entries, 1)
	assert.Equal(t, "error", handler.Entries[0].Message)
	assert.Equal(t, "crash", handler.Entries[0].Fields["description"])
}
