// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level string representation, parsing,
//              and filtering logic.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial level tests

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{Level(999), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"fatal", LevelFatal, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"debug below info", LevelDebug, LevelInfo, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"error above warn", LevelError, LevelWarn, true},
		{"trace below fatal", LevelTrace, LevelFatal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("ShouldLog() = %v, want %v", got, tt.want)
			}
		})
	}
}
