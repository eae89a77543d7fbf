package logger

import (
	"context"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ServiceEnv tags every log line with the deploy identity.
type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path     string
	LogLevel string
	ServiceEnv
}

var lg = otelzap.New(zap.NewNop())

// Init builds the process logger: JSON to a rotated file plus console output,
// wrapped in otelzap so ctx-aware calls attach trace context when present.
func Init(conf *LogConfig) {
	level := parseLevel(conf.LogLevel)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level),
	)

	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(
		zap.String("platform", conf.Platform),
		zap.String("service", conf.Service),
		zap.String("env", conf.Env),
	)

	lg = otelzap.New(z, otelzap.WithMinLevel(level))
}

// Close flushes buffered entries; errors from Sync on stdout are ignorable.
func Close() {
	_ = lg.Sync()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debugf(ctx context.Context, format string, args ...any) {
	lg.Sugar().Ctx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	lg.Sugar().Ctx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	lg.Sugar().Ctx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	lg.Sugar().Ctx(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	lg.Sugar().Ctx(ctx).Fatalf(format, args...)
}
