package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const passingSuite = `version: "1"
cases:
  terminated-ascii:
    source:
      kind: terminated
      encoding: ascii
      bytes: [65, 66, 67, 68, 69, 0]
    expect:
      - op: text
        want: ABCDE
      - op: hash
  goosfraba:
    source:
      kind: literal
      literal: goosfraba
    expect:
      - op: length
        want: 9
      - op: at
        arg: 100
        want: "!range"
`

const failingSuite = `version: "1"
cases:
  wrong-length:
    source:
      kind: literal
      literal: abc
    expect:
      - op: length
        want: 4
`

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		suite        string
		args         []string
		expectedExit int
	}{
		{
			name:         "Passing suite",
			suite:        passingSuite,
			args:         []string{"utext", "check"},
			expectedExit: 0,
		},
		{
			name:         "Failing suite",
			suite:        failingSuite,
			args:         []string{"utext", "check"},
			expectedExit: 1,
		},
		{
			name:         "Missing suite",
			args:         []string{"utext", "check", "nonexistent.yaml"},
			expectedExit: 1,
		},
		{
			name:         "Hash",
			args:         []string{"utext", "hash", "ABCDE"},
			expectedExit: 0,
		},
		{
			name:         "Unknown mode",
			args:         []string{"utext", "compare", "a", "b", "--mode", "fuzzy"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.suite != "" {
				err := os.WriteFile(filepath.Join(tmpDir, "utext.yaml"), []byte(tt.suite), 0o600)
				if err != nil {
					t.Fatalf("failed to write suite: %v", err)
				}
			}

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
