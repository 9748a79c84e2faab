package logger_test

import (
	"strings"
	"testing"

	"github.com/retrocores/retrocores/logger"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	if logger.Write(w) {
		t.Errorf("expected no entries in a freshly cleared logger")
	}

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	if w.String() != "test: this is a test\n" {
		t.Errorf("unexpected log output: %q", w.String())
	}

	w.Reset()
	logger.Logf(logger.Allow, "test", "value is %d", 42)
	logger.Write(w)
	if w.String() != "test: value is 42\n" {
		t.Errorf("unexpected formatted log output: %q", w.String())
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	for i := 0; i < 5; i++ {
		logger.Logf(logger.Allow, "tag", "entry %d", i)
	}

	w := &strings.Builder{}
	logger.Tail(w, 2)
	want := "tag: entry 3\ntag: entry 4\n"
	if w.String() != want {
		t.Errorf("unexpected tail output: got %q want %q", w.String(), want)
	}
}
