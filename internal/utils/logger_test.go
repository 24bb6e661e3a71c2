package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogEventJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerOutput("json", &buf)
	t.Cleanup(func() { SetupLoggerOutput("console", &bytes.Buffer{}) })

	LogEvent(" req-1 ", "TICKET", "create", "ticket_id=7")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if entry["module"] != "ticket" || entry["action"] != "create" || entry["request_id"] != "req-1" {
		t.Fatalf("unexpected fields: %v", entry)
	}
	if entry["message"] != "ticket_id=7" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
}

func TestLogErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerOutput("json", &buf)
	t.Cleanup(func() { SetupLoggerOutput("console", &bytes.Buffer{}) })

	LogError("", "itinerary", "ordered", errors.New("no start"))

	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), `"error":"no start"`) {
		t.Fatalf("unexpected log output %s", buf.String())
	}
}
