package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// chainError is the part of zerr.Error the formatter reads: the error's own
// message and metadata, without its causes.
type chainError interface {
	error
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err and returns one entry per message. Metadata
// attached to a link without a message of its own moves to the next link.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		ce, ok := current.(chainError)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carried})
			break
		}

		meta := ce.Metadata()
		maps.Copy(meta, carried)
		carried = nil

		if ce.Message() == "" {
			carried = meta
			continue
		}
		entries = append(entries, ErrorEntry{Message: ce.Message(), Metadata: meta})
	}
	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by an
// indented list of causes. Metadata keys are sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
