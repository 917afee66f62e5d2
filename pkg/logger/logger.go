package logger

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the JSON logger writing to fileSyncer and stderr. Unknown levels fall back to info.
func NewLogger(logLevel string, fileSyncer zapcore.WriteSyncer, serviceName string) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), zapcore.NewMultiWriteSyncer(
		fileSyncer, zapcore.Lock(os.Stderr)), level)
	return zap.New(core, zap.AddCaller()).With(zap.String("service.name", serviceName))
}

// ReloadOnSIGHUP reopens the log file each time the process receives SIGHUP, until ctx is done.
func ReloadOnSIGHUP(ctx context.Context, ws *ReopenableWriteSyncer, logger *zap.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		defer signal.Stop(c)
		for {
			select {
			case <-ctx.Done():
				return
			case <-c:
				logger.Info("receive logrotate SIGHUP, reloading log file")
				if err := ws.Reload(); err != nil {
					logger.Error("failed to reload log file", zap.Error(err))
				} else {
					logger.Info("successfully reloaded log file")
				}
			}
		}
	}()
}
