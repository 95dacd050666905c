package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestControllerWriterEnvelope(t *testing.T) {
	var buf bytes.Buffer
	cw := NewControllerWriter(&buf)

	l := New(DebugLevel, &nullWriter{}, cw)
	l.Warning().Println("Test. ", "disk is full")

	var msg loggerMessage
	if err := json.Unmarshal(buf.Bytes(), &msg); err != nil {
		t.Fatalf("envelope unmarshal: %v", err)
	}

	if msg.MsgType != "LOGGER" {
		t.Errorf("message type %q", msg.MsgType)
	}
	if msg.Data.Level != "WARNING" {
		t.Errorf("severity %q", msg.Data.Level)
	}
	if !strings.Contains(msg.Data.Message, "disk is full") {
		t.Errorf("message %q", msg.Data.Message)
	}
	if strings.HasSuffix(msg.Data.Message, "\n") {
		t.Errorf("trailing newline kept: %q", msg.Data.Message)
	}
}

func TestLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer

	l := New(WarningLevel, &buf)
	l.Debug().Println("should be dropped")
	l.Info().Println("should be dropped")

	if buf.Len() != 0 {
		t.Errorf("below-threshold output: %s", buf.String())
	}

	l.Error().Println("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error output missing: %s", buf.String())
	}
}
