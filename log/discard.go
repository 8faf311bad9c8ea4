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
	"io"
	golog "log"

	"go.uber.org/zap"
)

var discardStdLogger = golog.New(io.Discard, "", 0)

// discardLogger is a Zap over a no-op core. Entries are dropped while
// Fatal still exits and Panic still panics.
type discardLogger struct {
	*Zap
}

func newDiscardLogger() discardLogger {
	nop := zap.NewNop()
	return discardLogger{Zap: &Zap{
		logger:  nop,
		sugar:   nop.Sugar(),
		outputs: []io.Writer{io.Discard},
	}}
}

func (discardLogger) LogLevel() Level {
	return InfoLevel
}

func (discardLogger) Enabled(level Level) bool {
	return level == FatalLevel || level == PanicLevel
}

func (d discardLogger) With(...any) Logger {
	return d
}

func (discardLogger) StdLogger() *golog.Logger {
	return discardStdLogger
}
