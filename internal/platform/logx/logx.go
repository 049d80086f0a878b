// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger es el canal de diagnóstico de uuidhunt. Nunca escribe en el
// stream de resultados.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type zapLogger struct {
	level *zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// New crea un logger de consola sobre stderr con el nivel de UUIDHUNT_LOG_LEVEL.
func New() Logger {
	return NewWithLevel(ParseLevel(os.Getenv("UUIDHUNT_LOG_LEVEL")))
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	atom := zap.NewAtomicLevelAt(toZap(lvl))

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = nil
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		atom,
	)

	return FromCore(core, &atom)
}

// NewSilent creates a logger that only outputs errors (for quiet pipelines)
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// NewNop descarta todo. Usado en tests.
func NewNop() Logger {
	atom := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return &zapLogger{level: &atom, sugar: zap.NewNop().Sugar()}
}

// FromCore envuelve un zapcore.Core arbitrario (p.ej. zaptest/observer).
// level puede ser nil si el core gestiona su propio nivel.
func FromCore(core zapcore.Core, level *zap.AtomicLevel) Logger {
	if level == nil {
		atom := zap.NewAtomicLevelAt(zapcore.DebugLevel)
		level = &atom
	}
	return &zapLogger{
		level: level,
		sugar: zap.New(core).Sugar(),
	}
}

func (z *zapLogger) With(kv ...any) Logger {
	return &zapLogger{
		level: z.level,
		sugar: z.sugar.With(normalizeKV(kv)...),
	}
}

func (z *zapLogger) SetLevel(lvl Level) {
	z.level.SetLevel(toZap(lvl))
}

func (z *zapLogger) Debug(msg string, kv ...any) { z.sugar.Debugw(msg, normalizeKV(kv)...) }
func (z *zapLogger) Info(msg string, kv ...any)  { z.sugar.Infow(msg, normalizeKV(kv)...) }
func (z *zapLogger) Warn(msg string, kv ...any)  { z.sugar.Warnw(msg, normalizeKV(kv)...) }
func (z *zapLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	z.sugar.Errorw("", normalizeKV(kv)...)
}

// normalizeKV garantiza claves string y pares completos; zap descarta
// silenciosamente los pares impares.
func normalizeKV(kv []any) []any {
	out := make([]any, 0, len(kv)+1)
	for i := 0; i < len(kv); i += 2 {
		var key string
		switch k := kv[i].(type) {
		case string:
			key = k
		default:
			key = strings.TrimSpace(fmt.Sprint(k))
		}
		var v any = "(missing)"
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, key, v)
	}
	return out
}

func toZap(lvl Level) zapcore.Level {
	switch lvl {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel convierte un nombre de nivel; valores desconocidos caen en info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
