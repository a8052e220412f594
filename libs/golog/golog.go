// Package golog implements a leveled logger with support for contextual
// key/value pairs and pluggable output handlers.
package golog

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents a log level (CRIT, ERR, ...)
type Level int32

// Log levels
const (
	CRIT  Level = iota // For panics (code bugs)
	ERR                // General errors (e.g. failed draft save, bad template)
	WARN               // Correctable but inconsistent state
	INFO               // Lifecycle events, analytics
	DEBUG              // Normally turned off but can help to track down issues
)

// Levels maps log level to a string
var Levels = map[Level]string{
	CRIT:  "CRIT",
	ERR:   "ERR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
}

func (l Level) String() string {
	if s := Levels[l]; s != "" {
		return s
	}
	return strconv.Itoa(int(l))
}

// Entry is a single log event handed to a Handler.
type Entry struct {
	Time time.Time
	Lvl  Level
	Msg  string
	Ctx  []interface{}
	Src  string
}

// Handler receives log entries for output.
type Handler interface {
	Log(e *Entry) error
}

// Logger is a leveled logger. Context returns a child logger that carries
// additional key/value pairs with every entry it emits.
type Logger interface {
	Context(ctx ...interface{}) Logger

	SetLevel(l Level) Level
	Level() Level
	// L returns true if the current level is greater than or equal to 'l'
	L(l Level) bool

	SetHandler(h Handler)

	Logf(calldepth int, l Level, format string, args ...interface{})
	Criticalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	mu  sync.Mutex
	ctx []interface{}
	hnd Handler
	lvl int32
}

// New returns a logger writing to the provided handler at the provided level.
func New(h Handler, l Level) Logger {
	lg := &logger{hnd: h}
	lg.SetLevel(l)
	return lg
}

func (l *logger) Context(ctx ...interface{}) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	merged := make([]interface{}, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	child := &logger{ctx: merged, hnd: l.hnd}
	child.SetLevel(l.Level())
	return child
}

func (l *logger) SetLevel(lv Level) Level {
	return Level(atomic.SwapInt32(&l.lvl, int32(lv)))
}

func (l *logger) Level() Level {
	return Level(atomic.LoadInt32(&l.lvl))
}

func (l *logger) L(lv Level) bool {
	return l.Level() >= lv
}

func (l *logger) SetHandler(h Handler) {
	l.mu.Lock()
	l.hnd = h
	l.mu.Unlock()
}

func (l *logger) Logf(calldepth int, lv Level, format string, args ...interface{}) {
	if !l.L(lv) {
		return
	}
	e := &Entry{
		Time: time.Now(),
		Lvl:  lv,
		Msg:  fmt.Sprintf(format, args...),
		Ctx:  l.ctx,
		Src:  caller(calldepth + 1),
	}
	l.mu.Lock()
	h := l.hnd
	l.mu.Unlock()
	if h != nil {
		_ = h.Log(e)
	}
	if lv == CRIT {
		os.Exit(1)
	}
}

func (l *logger) Criticalf(format string, args ...interface{}) {
	l.Logf(1, CRIT, format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.Logf(1, ERR, format, args...)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	l.Logf(1, WARN, format, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.Logf(1, INFO, format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.Logf(1, DEBUG, format, args...)
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	short := file
	depth := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			depth++
			if depth == 2 {
				break
			}
		}
	}
	return fmt.Sprintf("%s:%d", short, line)
}

var defaultLogger = New(WriterHandler(os.Stderr), INFO)

// Default returns the process-wide logger.
func Default() Logger {
	return defaultLogger
}

// Context returns a child of the default logger carrying the provided pairs.
func Context(ctx ...interface{}) Logger {
	return defaultLogger.Context(ctx...)
}

// Errorf logs at ERR level on the default logger.
func Errorf(format string, args ...interface{}) {
	defaultLogger.Logf(1, ERR, format, args...)
}

// Warningf logs at WARN level on the default logger.
func Warningf(format string, args ...interface{}) {
	defaultLogger.Logf(1, WARN, format, args...)
}

// Infof logs at INFO level on the default logger.
func Infof(format string, args ...interface{}) {
	defaultLogger.Logf(1, INFO, format, args...)
}

// Debugf logs at DEBUG level on the default logger.
func Debugf(format string, args ...interface{}) {
	defaultLogger.Logf(1, DEBUG, format, args...)
}
