//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vito/progrock"
)

func TestModel_View(t *testing.T) {
	m := NewModel(nil, nil)
	m.width = 80
	m.height = 20

	m.vertices = []VertexState{
		{ID: "1", Name: "upper-cd", Status: statusPassed},
		{ID: "2", Name: "golden", Status: statusCached},
		{ID: "3", Name: "broken", Status: statusFailed, Err: "mismatch: expectation not met\n  want: 4"},
		{ID: "4", Name: "slow", Status: statusRunning},
	}

	output := m.View()

	assert.Contains(t, output, "✓ upper-cd")
	assert.Contains(t, output, "~ golden (cached)")
	assert.Contains(t, output, "✗ broken: mismatch: expectation not met")
	assert.NotContains(t, output, "want: 4")
	assert.Contains(t, output, "slow")
	assert.NotContains(t, output, "cases,")
}

func TestModel_View_ScrollsToLatest(t *testing.T) {
	m := NewModel(nil, nil)
	m.height = 3

	for _, name := range []string{"a-case", "b-case", "c-case", "d-case"} {
		m.vertices = append(m.vertices, VertexState{ID: name, Name: name, Status: statusPassed})
	}

	output := m.View()

	assert.NotContains(t, output, "a-case")
	assert.NotContains(t, output, "b-case")
	assert.Contains(t, output, "c-case")
	assert.Contains(t, output, "d-case")
}

func TestModel_View_SummaryWhenEnded(t *testing.T) {
	tape := progrock.NewTape()
	rec := progrock.NewRecorder(tape)
	rec.Vertex("a", "upper-cd").Done(nil)
	rec.Vertex("b", "golden").Cached()

	m := NewModel(nil, tape)
	m.Update(MsgTapeEnded{})

	lines := strings.Split(strings.TrimSpace(m.View()), "\n")
	assert.Equal(t, "2 cases, 1 cached, 0 errored", lines[len(lines)-1])
}
