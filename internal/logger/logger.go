package logger

import (
	"io"
	"log"
)

const (
	DebugLevel = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	levelCount // not a real level, simplifies array sizing below
)

type Logger struct {
	loggers [levelCount]*log.Logger
}

func levelString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "?????"
	}
}

func levelPrefix(level int) string {
	switch level {
	case DebugLevel:
		return "[DBG] "
	case InfoLevel:
		return "[INF] "
	case WarningLevel:
		return "[WRN] "
	case ErrorLevel:
		return "[ERR] "
	default:
		return "[???] "
	}
}

// New builds a leveled logger. Levels below `level` are sent to a null
// writer. A *ControllerWriter in writers is treated specially: every level
// gets its own wrapper so the mirrored message carries its severity.
func New(level int, writers ...io.Writer) *Logger {
	var controller *ControllerWriter
	plain := []io.Writer{}
	for _, w := range writers {
		switch wr := w.(type) {
		case *ControllerWriter:
			controller = wr
		default:
			plain = append(plain, wr)
		}
	}

	null := &nullWriter{}
	combine := func(wrs ...io.Writer) io.Writer {
		switch len(wrs) {
		case 0:
			return null
		case 1:
			return wrs[0]
		default:
			return io.MultiWriter(wrs...)
		}
	}

	lgr := Logger{}
	for i := 0; i < levelCount; i++ {
		if i < level {
			lgr.loggers[i] = log.New(null, "", log.Ldate|log.Ltime)
			continue
		}
		out := plain
		if controller != nil {
			out = append(out, &leveledMirror{cw: controller, level: levelString(i)})
		}
		lgr.loggers[i] = log.New(combine(out...), levelPrefix(i), log.Ldate|log.Ltime)
	}
	return &lgr
}

func (lgr *Logger) Debug() *log.Logger {
	return lgr.loggers[DebugLevel]
}

func (lgr *Logger) Info() *log.Logger {
	return lgr.loggers[InfoLevel]
}

func (lgr *Logger) Warning() *log.Logger {
	return lgr.loggers[WarningLevel]
}

func (lgr *Logger) Error() *log.Logger {
	return lgr.loggers[ErrorLevel]
}

type nullWriter struct{}

func (nw *nullWriter) Write(b []byte) (int, error) {
	return len(b), nil
}
