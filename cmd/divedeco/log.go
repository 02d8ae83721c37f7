package main

import (
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// initLogger sets up the command's logger. Debug mode logs human readable
// development output; otherwise only warnings and errors are logged.
func initLogger(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		zapLogger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}
	logger = zapLogger.Sugar()
	return nil
}

func syncLogger() {
	_ = logger.Sync()
}
