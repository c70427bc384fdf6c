package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "warn"

// New builds a console logger writing to w. An empty or unknown level falls
// back to warn so normal CLI output stays quiet.
func New(level string, w io.Writer) *zap.Logger {
	atom := zap.NewAtomicLevel()
	if err := atom.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || strings.TrimSpace(level) == "" {
		_ = atom.UnmarshalText([]byte(defaultLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		NameKey:     "logger",
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		atom,
	)
	return zap.New(core).Named("vitrine")
}
