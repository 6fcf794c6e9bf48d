package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ILogger interface {
	Debug(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
	Sync() error
}

type ZapLogger struct {
	logger *zap.Logger
}

func newFileCore(logFilePath string) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10,   // Megabytes
		MaxBackups: 5,    // Files
		MaxAge:     30,   // Days
		Compress:   true, // gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
}

// NewZapLogger writes JSON lines to a rotated file and mirrors everything
// to stdout (JSON in production, human readable otherwise).
func NewZapLogger(logFilePath string, isProd bool) *ZapLogger {
	fileCore := newFileCore(logFilePath)

	var consoleEncoder zapcore.Encoder
	if isProd {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		consoleEncoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	consoleCore := zapcore.NewCore(
		consoleEncoder,
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	return &ZapLogger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), // Skip 1 to point to caller of wrapper
	}
}

// NewFromZap wraps an existing zap logger, e.g. zaptest or zap.NewNop in tests.
func NewFromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func fields(module string, details map[string]interface{}) []zap.Field {
	if details == nil {
		details = make(map[string]interface{})
	}
	return []zap.Field{zap.String("module", module), zap.Any("details", details)}
}

func (l *ZapLogger) Debug(module, message string, details map[string]interface{}) {
	l.logger.Debug(message, fields(module, details)...)
}

func (l *ZapLogger) Info(module, message string, details map[string]interface{}) {
	l.logger.Info(message, fields(module, details)...)
}

func (l *ZapLogger) Warn(module, message string, details map[string]interface{}) {
	l.logger.Warn(message, fields(module, details)...)
}

func (l *ZapLogger) Error(module, message string, details map[string]interface{}) {
	f := fields(module, details)
	if err, ok := details["error"].(error); ok {
		f = append(f, zap.Error(err))
	}
	l.logger.Error(message, f...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
