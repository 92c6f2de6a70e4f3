package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wildlife-report-api/internal/watcher"
)

func main() {
	paths := flag.String("paths", ".", "comma-separated files or directories to watch")
	command := flag.String("command", "go test ./...", "command to run when a watched path changes")
	debounce := flag.Duration("debounce", 200*time.Millisecond, "time to wait for event bursts to settle")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := initLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runner, err := watcher.NewCommandRunner(*command, logger)
	if err != nil {
		logger.Fatal("Invalid command", zap.String("command", *command), zap.Error(err))
	}

	watchPaths := strings.Split(*paths, ",")
	for i := range watchPaths {
		watchPaths[i] = strings.TrimSpace(watchPaths[i])
	}

	w, err := watcher.New(watchPaths, runner, logger)
	if err != nil {
		logger.Fatal("Failed to create watcher", zap.Error(err))
	}
	w.SetDebounceTime(*debounce)

	if err := w.Start(); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer w.Stop()

	logger.Info("Watching for changes",
		zap.Strings("paths", watchPaths),
		zap.String("command", *command),
		zap.Duration("debounce", *debounce),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")
}

func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
