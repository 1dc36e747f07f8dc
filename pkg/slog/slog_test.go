package slog

import "testing"

func TestSetLevel(t *testing.T) {
	testCases := []struct {
		name      string
		verbosity string
		wantLevel int
		wantErr   bool
	}{
		{name: "debug", verbosity: "debug", wantLevel: levelDebug},
		{name: "info", verbosity: "info", wantLevel: levelInfo},
		{name: "warn", verbosity: "warn", wantLevel: levelWarn},
		{name: "error", verbosity: "error", wantLevel: levelError},
		{name: "uppercase", verbosity: "DEBUG", wantLevel: levelDebug},
		{name: "mixed case", verbosity: "Info", wantLevel: levelInfo},
		{name: "unknown", verbosity: "trace", wantErr: true},
		{name: "empty", verbosity: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger("test ")
			err := logger.SetLevel(tc.verbosity)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("SetLevel(%q) accepted an unknown level", tc.verbosity)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetLevel(%q) failed: %v", tc.verbosity, err)
			}
			if logger.logLevel != tc.wantLevel {
				t.Errorf("logLevel = %d, want %d", logger.logLevel, tc.wantLevel)
			}
		})
	}
}
