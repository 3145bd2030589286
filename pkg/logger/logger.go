package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log is a no-op until Initialize is called.
var Log = zap.NewNop()

func Initialize() error {
	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("error building logger: %w", err)
	}

	Log = l

	return nil
}

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) zap.Field {
	return zap.Int64(key, value)
}

func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}
