package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCoreFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{SugaredLogger: zap.New(newCore(zapcore.AddSync(&buf), zapcore.WarnLevel)).Sugar()}

	log.Infow("session_created", "session_id", "s1")
	log.Warnw("session_evicted", "session_id", "s2")

	out := buf.String()
	if strings.Contains(out, "session_created") {
		t.Fatalf("info entry should be filtered: %q", out)
	}
	if !strings.Contains(out, "session_evicted") || !strings.Contains(out, "WARN") {
		t.Fatalf("missing warn entry: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Errorw("ignored", "k", "v")
	if log.SugaredLogger == nil {
		t.Fatal("nop logger must wrap a sugared logger")
	}
}
