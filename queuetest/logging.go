// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queuetest

import (
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// leveled is a [logging.Logger] that forwards every entry at or above its
// level, with accumulated [zap.Field]s prepended, to `emit`.
type leveled struct {
	min    logging.Level
	emit   func(logging.Level, string, []zap.Field)
	fields []zap.Field
	// Methods not overridden below panic via the nil interface.
	logging.Logger
}

var _ logging.Logger = (*leveled)(nil)

func (l *leveled) With(fields ...zap.Field) logging.Logger {
	return &leveled{
		min:    l.min,
		emit:   l.emit,
		fields: slices.Concat(l.fields, fields),
	}
}

func (l *leveled) write(lvl logging.Level, msg string, fields []zap.Field) {
	if lvl >= l.min {
		l.emit(lvl, msg, slices.Concat(l.fields, fields))
	}
}

func (l *leveled) Verbo(msg string, fs ...zap.Field) { l.write(logging.Verbo, msg, fs) }
func (l *leveled) Debug(msg string, fs ...zap.Field) { l.write(logging.Debug, msg, fs) }
func (l *leveled) Trace(msg string, fs ...zap.Field) { l.write(logging.Trace, msg, fs) }
func (l *leveled) Info(msg string, fs ...zap.Field)  { l.write(logging.Info, msg, fs) }
func (l *leveled) Warn(msg string, fs ...zap.Field)  { l.write(logging.Warn, msg, fs) }
func (l *leveled) Error(msg string, fs ...zap.Field) { l.write(logging.Error, msg, fs) }
func (l *leveled) Fatal(msg string, fs ...zap.Field) { l.write(logging.Fatal, msg, fs) }

// A LogRecorder is a [logging.Logger] that keeps every entry at or above its
// level for later assertions.
type LogRecorder struct {
	*leveled
	Records []*LogRecord
}

// A LogRecord is a single entry kept by a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// NewLogRecorder returns an empty [LogRecorder] that drops entries below
// `level`.
func NewLogRecorder(level logging.Level) *LogRecorder {
	r := new(LogRecorder)
	r.leveled = &leveled{
		min: level,
		emit: func(lvl logging.Level, msg string, fields []zap.Field) {
			r.Records = append(r.Records, &LogRecord{Level: lvl, Msg: msg, Fields: fields})
		},
	}
	return r
}

// At returns the recorded entries at exactly `lvl`.
func (r *LogRecorder) At(lvl logging.Level) []*LogRecord {
	var out []*LogRecord
	for _, rec := range r.Records {
		if rec.Level == lvl {
			out = append(out, rec)
		}
	}
	return out
}

// FieldMap returns the record's fields keyed by name, with values as encoded
// by a [zapcore.MapObjectEncoder]; e.g. [zap.Int] values are int64.
func (r *LogRecord) FieldMap() map[string]any {
	return fieldMap(r.Fields)
}

func fieldMap(fields []zap.Field) map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

// A TBLogger is a [logging.Logger] that writes to a [testing.TB]. Warnings and
// errors fail the test via [testing.TB.Errorf], fatal entries stop it via
// [testing.TB.Fatalf], and anything lower goes to [testing.TB.Logf].
type TBLogger struct {
	*leveled
	tb testing.TB
}

// NewTBLogger returns a [TBLogger] that drops entries below `level`, which is
// capped at [logging.Warn] so failures are never silenced.
//
//nolint:thelper // The logging call site is more useful than this one
func NewTBLogger(tb testing.TB, level logging.Level) *TBLogger {
	l := &TBLogger{tb: tb}
	l.leveled = &leveled{
		min:  min(level, logging.Warn),
		emit: l.emit,
	}
	return l
}

func (l *TBLogger) emit(lvl logging.Level, msg string, fields []zap.Field) {
	to := l.tb.Logf
	switch {
	case lvl >= logging.Fatal:
		to = l.tb.Fatalf
	case lvl >= logging.Warn:
		to = l.tb.Errorf
	}
	file, line := loggingSite()
	to("[Log@%s] %s %v - %s:%d", lvl, msg, fieldMap(fields), file, line)
}

// loggingSite returns the location of the first caller outside of the loggers
// in this file.
func loggingSite() (string, int) {
	pcs := make([]uintptr, 16)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])
	for {
		f, more := frames.Next()
		internal := strings.Contains(f.Function, "queuetest.(*leveled)") || strings.Contains(f.Function, "queuetest.(*TBLogger)")
		if !internal || !more {
			return f.File, f.Line
		}
	}
}
