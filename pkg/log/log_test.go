package log

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, name string) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	return ForService(name), buf
}

func TestPrefixInfo(t *testing.T) {
	SetGlobalDebug(false)

	const name = "prefix_service_test"
	l, buf := newTestLogger(t, name)

	l.Infof("loaded %d categories", 3)
	out := buf.String()

	if !strings.Contains(out, "["+name+">] loaded 3 categories") {
		t.Fatalf("expected prefixed message, got: %q", out)
	}
	if strings.Contains(out, LevelWarn) || strings.Contains(out, LevelError) {
		t.Fatalf("info line should not carry a level, got: %q", out)
	}
}

func TestLevels(t *testing.T) {
	l, buf := newTestLogger(t, "levels_service_test")

	l.Warnf("upstream slow")
	l.Errorf("upstream down")
	out := buf.String()

	if !strings.Contains(out, "WARN [levels_service_test>] upstream slow") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "ERROR [levels_service_test>] upstream down") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestForServiceMemoizes(t *testing.T) {
	if ForService("memo_test") != ForService("memo_test") {
		t.Fatal("expected the same logger for the same name")
	}

	l, buf := newTestLogger(t, "")
	l.Infof("started")
	if !strings.Contains(buf.String(), "[folio>] started") {
		t.Errorf("expected empty name to fall back to folio, got %q", buf.String())
	}
}

func TestDebugPerService(t *testing.T) {
	SetGlobalDebug(false)

	const name = "debug_service_specific"
	DisableDebugFor(name)
	l, buf := newTestLogger(t, name)

	l.Debugf("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Fatalf("debug message appeared while debug disabled")
	}

	EnableDebugFor(name)
	l.Debugf("visible now")
	if !strings.Contains(buf.String(), "DEBUG ["+name+">] visible now") {
		t.Fatalf("expected debug message after enabling per-service debug; got: %q", buf.String())
	}
}

func TestDebugGlobal(t *testing.T) {
	SetGlobalDebug(false)

	const name = "debug_service_global"
	DisableDebugFor(name)
	l, buf := newTestLogger(t, name)

	l.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug message appeared while global debug disabled")
	}

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)

	l.Debugf("global visible")
	if !strings.Contains(buf.String(), "global visible") {
		t.Fatalf("expected debug message after enabling global debug; got: %q", buf.String())
	}
}

func TestConfigureDebug(t *testing.T) {
	SetGlobalDebug(false)
	EnableDebugFor("configure_old")

	ConfigureDebug([]string{"configure_new", " configure_spaced "})

	if DebugEnabledFor("configure_old") {
		t.Error("expected previous per-service debug to be cleared")
	}
	if !DebugEnabledFor("configure_new") {
		t.Error("expected configure_new to have debug enabled")
	}
	if !DebugEnabledFor("configure_spaced") {
		t.Error("expected names to be trimmed")
	}

	ConfigureDebug(nil)
}
