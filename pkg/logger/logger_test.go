package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, tc := range []struct {
		name      string
		format    string
		level     string
		expectErr string
	}{
		{name: "text_info", format: "text", level: "info"},
		{name: "json_debug", format: "json", level: "debug"},
		{name: "json_fatal", format: "json", level: "fatal"},
		{name: "none_ignores_format", format: "yaml", level: "none"},
		{name: "unknown_level", format: "text", level: "verbose", expectErr: "unknown log level: verbose"},
		{name: "unknown_format", format: "yaml", level: "info", expectErr: "unknown log format: yaml"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.format, tc.level)
			if tc.expectErr != "" {
				require.EqualError(t, err, tc.expectErr)
				require.Nil(t, log)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestMustNewLogger(t *testing.T) {
	require.Panics(t, func() { MustNewLogger("text", "loud") })
	require.NotPanics(t, func() { MustNewLogger("json", "warn") })
}

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(Logger, string)
		expectedLevel zapcore.Level
	}{
		{name: "Debug", log: func(l Logger, m string) { l.Debug(m) }, expectedLevel: zapcore.DebugLevel},
		{name: "Info", log: func(l Logger, m string) { l.Info(m) }, expectedLevel: zapcore.InfoLevel},
		{name: "Warn", log: func(l Logger, m string) { l.Warn(m) }, expectedLevel: zapcore.WarnLevel},
		{name: "Error", log: func(l Logger, m string) { l.Error(m) }, expectedLevel: zapcore.ErrorLevel},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dut, logs := NewObserverLogger("debug")

			const testMessage = "ABC"
			tc.log(dut, testMessage)
			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			require.Equal(t, testMessage, entry.Message)
			require.Equal(t, tc.expectedLevel, entry.Level)
			require.Empty(t, entry.ContextMap())
		})
	}
}

func TestObserverLevel(t *testing.T) {
	dut, logs := NewObserverLogger("warn")
	dut.Info("dropped")
	dut.Warn("kept")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestWith(t *testing.T) {
	dut, logs := NewObserverLogger("info")
	dut.With(zap.String("list", "int32"))
	dut.Info("pushed", zap.Int("value", 3))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, map[string]interface{}{
		"list":  "int32",
		"value": int64(3),
	}, logs.All()[0].ContextMap())
}
