package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logg := newWithOutput("debug", "json", &buf)
		logg.WithField("order_id", 1).Debug("[order][usecase] place success")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("expected json output, got %q", buf.String())
		}
		if entry["msg"] != "[order][usecase] place success" || entry["order_id"] != float64(1) {
			t.Fatalf("unexpected entry: %v", entry)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logg := newWithOutput("info", "TEXT", &buf)
		logg.Info("hello")
		if !strings.Contains(buf.String(), "msg=hello") {
			t.Fatalf("expected text output, got %q", buf.String())
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if New("loud", "json").GetLevel() != logrus.InfoLevel {
			t.Fatalf("expected info fallback")
		}
	})
}
