package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap SugaredLogger to Interface. It emits one JSON object
// per line, for callers that parse diagnostics.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap builds a JSON logger writing to out at the given level
func NewZap(out io.Writer, level LogLevel) *ZapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(out),
		zapLevel(level),
	)
	return &ZapLogger{sugar: zap.New(core).Sugar()}
}

func zapLevel(level LogLevel) zapcore.LevelEnabler {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zap.LevelEnablerFunc(func(zapcore.Level) bool { return false })
	}
}

func (z *ZapLogger) Debug(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Info(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warn(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Error(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered entries
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}
