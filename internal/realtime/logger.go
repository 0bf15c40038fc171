package realtime

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/logger"
)

// StructuredLogger adapts zap to the key/value logger the hub server expects
type StructuredLogger struct {
	log *zap.Logger
}

// NewStructuredLogger creates a hub logger writing to the application logger
func NewStructuredLogger() *StructuredLogger {
	return &StructuredLogger{log: logger.Default().Named("signalr")}
}

// Log writes one key/value record, the "level" key picks the zap level
func (l *StructuredLogger) Log(keyVals ...interface{}) error {
	level := "debug"
	message := "signalr"
	fields := make([]zap.Field, 0, len(keyVals)/2)

	for i := 0; i+1 < len(keyVals); i += 2 {
		key := fmt.Sprint(keyVals[i])
		value := keyVals[i+1]
		switch key {
		case "level":
			level = fmt.Sprint(value)
		case "message", "msg":
			message = fmt.Sprint(value)
		default:
			if err, ok := value.(error); ok {
				fields = append(fields, zap.NamedError(key, err))
				continue
			}
			fields = append(fields, zap.Any(key, value))
		}
	}

	switch level {
	case "error":
		l.log.Error(message, fields...)
	case "warn":
		l.log.Warn(message, fields...)
	case "info":
		l.log.Info(message, fields...)
	default:
		l.log.Debug(message, fields...)
	}
	return nil
}
