// Package logging configura o logger estruturado (zap) usado pela API e
// pelo front-end de terminal.
//
// Inicialize uma vez no startup:
//
//	if err := logging.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Antes de Initialize, L() devolve um logger nop.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Build monta um logger sem alterar o global.
// format: "json" para produção, qualquer outro valor = console.
func Build(level, format string) (*zap.Logger, error) {
	return BuildTo(level, format, "stdout")
}

// BuildTo é Build com destino explícito (ex.: arquivo, quando stdout é a TUI).
func BuildTo(level, format string, outputs ...string) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		cfg.Encoding = "json"
		cfg.EncoderConfig = zap.NewProductionEncoderConfig()
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// Initialize substitui o logger global.
func Initialize(level, format string) error {
	l, err := Build(level, format)
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

// Set troca o logger global (útil em testes).
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() {
	_ = L().Sync()
}
