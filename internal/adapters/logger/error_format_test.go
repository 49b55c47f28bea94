package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/utext/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("disk full"),
			want: []logger.ErrorEntry{{Message: "disk full"}},
		},
		{
			name: "sentinel",
			err:  zerr.New("index out of range"),
			want: []logger.ErrorEntry{{Message: "index out of range", Metadata: map[string]any{}}},
		},
		{
			name: "wrapped sentinel keeps metadata per link",
			err:  zerr.With(zerr.With(zerr.Wrap(zerr.New("index out of range"), "unit index"), "index", 9), "length", 3),
			want: []logger.ErrorEntry{
				{Message: "unit index", Metadata: map[string]any{"index": 9, "length": 3}},
				{Message: "index out of range", Metadata: map[string]any{}},
			},
		},
		{
			name: "metadata on a standard error moves to its message",
			err:  zerr.Wrap(zerr.With(errors.New("permission denied"), "path", ".utext/hashes.json"), "failed to read hash store"),
			want: []logger.ErrorEntry{
				{Message: "failed to read hash store", Metadata: map[string]any{}},
				{Message: "permission denied", Metadata: map[string]any{"path": ".utext/hashes.json"}},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "check failed"}},
			want:    "Error: check failed",
		},
		{
			name: "metadata sorted by key",
			entries: []logger.ErrorEntry{
				{Message: "window overruns buffer", Metadata: map[string]any{"offset": 2, "length": 9, "buffer_units": 5}},
			},
			want: "Error: window overruns buffer\n       buffer_units: 5\n       length: 9\n       offset: 2",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "case failed", Metadata: map[string]any{"case": "goosfraba"}},
				{Message: "mismatch", Metadata: map[string]any{"want": "9", "got": "8"}},
				{Message: "expectation not met"},
			},
			want: "Error: case failed\n       case: goosfraba\n\n  Caused by:\n    → mismatch\n      got: 8\n      want: 9\n    → expectation not met",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
