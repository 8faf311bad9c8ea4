// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZap(t *testing.T) {
	t.Run("With Debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		require.Equal(t, DebugLevel, logger.LogLevel())

		logger.Debugf("actor %s started", "/user/a")
		require.NoError(t, logger.Flush())

		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "actor /user/a started", entry["msg"])
		assert.Equal(t, DebugLevel.String(), entry["level"])
	})
	t.Run("With Info level drops Debug", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		require.Equal(t, InfoLevel, logger.LogLevel())
		require.False(t, logger.Enabled(DebugLevel))
		require.True(t, logger.Enabled(ErrorLevel))

		logger.Debug("hidden")
		require.Empty(t, buffer.String())

		logger.Info("visible")
		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "visible", entry["msg"])
		assert.Equal(t, InfoLevel.String(), entry["level"])
	})
	t.Run("With Warning level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		require.Equal(t, WarningLevel, logger.LogLevel())

		logger.Info("hidden")
		require.Empty(t, buffer.String())

		logger.Warnf("backlog %d", 1001)
		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "backlog 1001", entry["msg"])
		assert.Equal(t, WarningLevel.String(), entry["level"])
	})
	t.Run("With Error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		require.Equal(t, ErrorLevel, logger.LogLevel())

		logger.Error("failed")
		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "failed", entry["msg"])
		assert.Equal(t, ErrorLevel.String(), entry["level"])
	})
	t.Run("With Panic level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(PanicLevel, buffer)
		require.Equal(t, PanicLevel, logger.LogLevel())
		assert.Panics(t, func() { logger.Panic("boom") })
		assert.Panics(t, func() { logger.Panicf("boom %d", 1) })
	})
	t.Run("With structured fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("actor", "/user/a", "scope", "user").Info("started")

		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "started", entry["msg"])
		assert.Equal(t, "/user/a", entry["actor"])
		assert.Equal(t, "user", entry["scope"])
	})
	t.Run("With returns the same logger when no fields are given", func(t *testing.T) {
		logger := NewZap(InfoLevel, new(bytes.Buffer))
		assert.Same(t, logger, logger.With())
		assert.Same(t, logger, logger.With(1, 2))
	})
	t.Run("With odd number of fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("actor", "/user/a", "dangling").Info("started")

		entry := decodeEntry(t, buffer.Bytes())
		assert.Equal(t, "dangling", entry["_"])
	})
	t.Run("LogOutput and StdLogger", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		require.Len(t, logger.LogOutput(), 1)
		require.NotNil(t, logger.StdLogger())
	})
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.LogLevel())
	assert.False(t, logger.Enabled(InfoLevel))
	assert.True(t, logger.Enabled(PanicLevel))
	assert.Equal(t, DiscardLogger, logger.With("key", "value"))
	assert.NoError(t, logger.Flush())
	assert.NotEmpty(t, logger.LogOutput())
	assert.NotNil(t, logger.StdLogger())

	logger.Info("nothing")
	logger.Infof("nothing %d", 1)
	logger.Warn("nothing")
	logger.Debugf("nothing %d", 1)
	logger.Errorf("nothing %d", 1)

	assert.Panics(t, func() { logger.Panic("boom") })
	assert.Panics(t, func() { logger.Panicf("boom %s", "now") })
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", InfoLevel.String())
	assert.Equal(t, "warn", WarningLevel.String())
	assert.Equal(t, "error", ErrorLevel.String())
	assert.Equal(t, "fatal", FatalLevel.String())
	assert.Equal(t, "panic", PanicLevel.String())
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "invalid", InvalidLevel.String())
}

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	return entry
}
