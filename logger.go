package sqlbuilder

import (
	"fmt"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

// Logger receives debug output for rendered statements. Statements carry no
// logger by default; attach one with WithLogger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLogger builds a zap-backed Logger for the given environment.
func NewLogger(env LogLevel) (Logger, error) {
	switch env {
	case LogLevelDev:
		l, err := zap.NewDevelopmentConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	case LogLevelProd:
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	default:
		return nil, fmt.Errorf("log level should be either LogLevelDev or LogLevelProd")
	}
}

type zapLogger struct {
	l *zap.SugaredLogger
}

func (z *zapLogger) Debugf(format string, args ...interface{}) {
	z.l.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...interface{}) {
	z.l.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...interface{}) {
	z.l.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...interface{}) {
	z.l.Errorf(format, args...)
}
