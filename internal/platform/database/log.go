package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	xormlog "xorm.io/xorm/log"
)

// XORMLogBridge forwards xorm's logging to slog.
type XORMLogBridge struct {
	logger  *slog.Logger
	showSQL atomic.Bool
}

var _ xormlog.Logger = (*XORMLogBridge)(nil)

// NewXORMLogger returns a bridge that writes xorm output to logger under
// the "xorm" component.
func NewXORMLogger(logger *slog.Logger, showSQL bool) *XORMLogBridge {
	b := &XORMLogBridge{logger: logger.With(slog.String("component", "xorm"))}
	b.showSQL.Store(showSQL)
	return b
}

func (l *XORMLogBridge) log(level slog.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}

// Debug show debug log
func (l *XORMLogBridge) Debug(v ...any) { l.log(slog.LevelDebug, fmt.Sprint(v...)) }

// Debugf show debug log
func (l *XORMLogBridge) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, fmt.Sprintf(format, v...))
}

// Error show error log
func (l *XORMLogBridge) Error(v ...any) { l.log(slog.LevelError, fmt.Sprint(v...)) }

// Errorf show error log
func (l *XORMLogBridge) Errorf(format string, v ...any) {
	l.log(slog.LevelError, fmt.Sprintf(format, v...))
}

// Info show information level log
func (l *XORMLogBridge) Info(v ...any) { l.log(slog.LevelInfo, fmt.Sprint(v...)) }

// Infof show information level log
func (l *XORMLogBridge) Infof(format string, v ...any) {
	l.log(slog.LevelInfo, fmt.Sprintf(format, v...))
}

// Warn show warning log
func (l *XORMLogBridge) Warn(v ...any) { l.log(slog.LevelWarn, fmt.Sprint(v...)) }

// Warnf show warning log
func (l *XORMLogBridge) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, v...))
}

// Level maps the slog handler's enabled level onto xorm's levels.
func (l *XORMLogBridge) Level() xormlog.LogLevel {
	ctx := context.Background()
	switch {
	case l.logger.Enabled(ctx, slog.LevelDebug):
		return xormlog.LOG_DEBUG
	case l.logger.Enabled(ctx, slog.LevelInfo):
		return xormlog.LOG_INFO
	case l.logger.Enabled(ctx, slog.LevelWarn):
		return xormlog.LOG_WARNING
	case l.logger.Enabled(ctx, slog.LevelError):
		return xormlog.LOG_ERR
	default:
		return xormlog.LOG_OFF
	}
}

// SetLevel is a no-op; the slog handler owns the level.
func (l *XORMLogBridge) SetLevel(xormlog.LogLevel) {}

// ShowSQL set if record SQL
func (l *XORMLogBridge) ShowSQL(show ...bool) {
	l.showSQL.Store(len(show) == 0 || show[0])
}

// IsShowSQL if record SQL
func (l *XORMLogBridge) IsShowSQL() bool {
	return l.showSQL.Load()
}
