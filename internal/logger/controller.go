package logger

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/dockwatch/inventory-agent/internal/env"
)

const cmd = "LOGGER"

// The management platform receives log lines wrapped into its common
// JSON message envelope, with the severity as a separate field.
type loggerMessage struct {
	ID        string `json:"id"`
	MsgType   string `json:"type"`
	Timestamp string `json:"executed_at,omitempty"`
	Data      struct {
		Level   string `json:"severity"`
		Message string `json:"message"`
	} `json:"data"`
}

// ControllerWriter mirrors log records to the management platform connection.
type ControllerWriter struct {
	wr io.Writer
}

func NewControllerWriter(w io.Writer) *ControllerWriter {
	return &ControllerWriter{wr: w}
}

// Write without a known severity. Used only if somebody writes to the
// ControllerWriter directly, the leveled loggers go through leveledMirror.
func (cw *ControllerWriter) Write(b []byte) (int, error) {
	return cw.send("INFO", b)
}

func (cw *ControllerWriter) send(level string, b []byte) (int, error) {
	msg := loggerMessage{
		ID:        env.MessageDefaultID,
		MsgType:   cmd,
		Timestamp: time.Now().Format(env.TimeFormat),
	}
	msg.Data.Level = level
	msg.Data.Message = strings.TrimRight(string(b), "\n")

	raw, err := json.Marshal(msg)
	if err != nil {
		return 0, err
	}

	return cw.wr.Write(raw)
}

// leveledMirror binds one log level to the shared controller writer
type leveledMirror struct {
	cw    *ControllerWriter
	level string
}

func (lm *leveledMirror) Write(b []byte) (int, error) {
	return lm.cw.send(lm.level, b)
}
