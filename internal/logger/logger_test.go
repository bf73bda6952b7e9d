package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug %d", 1)
			log.Info("info %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "[DBG] debug 1"); got != tt.wantDebug {
				t.Fatalf("expected debug=%v, got output %q", tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF] info 2"); got != tt.wantInfo {
				t.Fatalf("expected info=%v, got output %q", tt.wantInfo, out)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	log.Warn("hidden")
	log.SetLevel(LevelNormal)
	log.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected nothing logged while off")
	}
	if !strings.Contains(buf.String(), "[WRN] shown") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected normal, got %s", log.GetLevel())
	}
}

func TestLevelFromFlags(t *testing.T) {
	if LevelFromFlags(true, true) != LevelOff {
		t.Fatalf("expected quiet to win")
	}
	if LevelFromFlags(true, false) != LevelVerbose {
		t.Fatalf("expected verbose")
	}
	if LevelFromFlags(false, false) != LevelNormal {
		t.Fatalf("expected normal")
	}
}
