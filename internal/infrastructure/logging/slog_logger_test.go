package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	t.Run("respeita o nível configurado", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter("warn", &buf)

		logger.Info("ignorada")
		logger.Warn("registrada", "lead_id", 7)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		if len(lines) != 1 {
			t.Fatalf("esperava 1 linha, obteve %d: %s", len(lines), buf.String())
		}

		var entry map[string]any
		if err := json.Unmarshal(lines[0], &entry); err != nil {
			t.Fatalf("linha não é JSON: %v", err)
		}
		if entry["msg"] != "registrada" {
			t.Errorf("esperava msg 'registrada', obteve '%v'", entry["msg"])
		}
		if entry["lead_id"] != float64(7) {
			t.Errorf("esperava lead_id 7, obteve '%v'", entry["lead_id"])
		}
	})

	t.Run("With adiciona atributos fixos", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter("debug", &buf).With("request_id", "abc")

		logger.Debug("mensagem")

		var entry map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
			t.Fatalf("linha não é JSON: %v", err)
		}
		if entry["request_id"] != "abc" {
			t.Errorf("esperava request_id 'abc', obteve '%v'", entry["request_id"])
		}
	})

	t.Run("nível desconhecido usa info", func(t *testing.T) {
		if parseLevel("verbose").String() != "INFO" {
			t.Error("esperava nível INFO como padrão")
		}
	})
}
