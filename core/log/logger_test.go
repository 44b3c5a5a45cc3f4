// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger construction, level filtering, contextual
//              fields, named loggers, and request-ID correlation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial logger tests

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelWarn)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("filtered levels leaked into output: %q", out)
	}
	if !strings.Contains(out, "warning message") {
		t.Errorf("warn message missing from output: %q", out)
	}
	if !strings.Contains(out, "error message") {
		t.Errorf("error message missing from output: %q", out)
	}
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New().
		WithOutput(&buf).
		WithName("pattern-parser").
		WithField("component", "lexer")

	logger.Info("tokenizing", Fields{"tokens": 12})

	out := buf.String()
	for _, want := range []string{"[pattern-parser]", "component=lexer", "tokens=12", "tokenizing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithRequestID("req-42")

	logger.Info("checking pattern")

	if !strings.Contains(buf.String(), "request_id=req-42") {
		t.Errorf("request ID missing from output: %q", buf.String())
	}
}

func TestLoggerCloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := New().WithOutput(&buf)
	derived := base.WithField("component", "lint")

	base.Info("base entry")
	if strings.Contains(buf.String(), "component=lint") {
		t.Errorf("field added to derived logger leaked into base: %q", buf.String())
	}

	buf.Reset()
	derived.Info("derived entry")
	if !strings.Contains(buf.String(), "component=lint") {
		t.Errorf("derived logger lost its field: %q", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.ErrorWithErr("parse failed", errTest)

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("attached error missing from output: %q", buf.String())
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
