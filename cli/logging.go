package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newLogger(file string) *zap.Logger {
	console := zap.NewDevelopmentEncoderConfig()
	console.TimeKey = ""

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.Lock(os.Stderr), zapcore.DebugLevel),
	}

	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}

/* Level 1 is progress, higher levels are details */
func (c *Context) logFunc(maxLevel int) func(level int, format string, param ...interface{}) {
	return func(level int, format string, param ...interface{}) {
		if level > maxLevel {
			return
		}

		msg := fmt.Sprintf(format, param...)
		if level <= 1 {
			c.logger.Infow(msg, "verbosity", level)
		} else {
			c.logger.Debugw(msg, "verbosity", level)
		}
	}
}
