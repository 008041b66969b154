package log

import "go.uber.org/zap"

// NewNopLogger returns a logger that discards all output. Intended for tests.
func NewNopLogger() Logger {
	return &zapLogger{
		sugarLogger: zap.NewNop().Sugar(),
		cfg:         &ZapConfig{},
	}
}
