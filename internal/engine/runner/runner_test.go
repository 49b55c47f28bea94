package runner_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/utext/internal/core/ports/mocks"
	"go.trai.ch/utext/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type runnerTestMocks struct {
	store    *mocks.MockHashStore
	collator *mocks.MockCollator
}

// setupRunnerTest creates a runner and its mocks.
func setupRunnerTest(t *testing.T) (*runner.Runner, runnerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerTestMocks{
		store:    mocks.NewMockHashStore(ctrl),
		collator: mocks.NewMockCollator(ctrl),
	}
	return runner.NewRunner(m.store, m.collator), m
}

func literalCase(name, literal string, expect ...domain.Expectation) domain.Case {
	return domain.Case{
		Name:   name,
		Source: domain.Source{Kind: domain.SourceLiteral, Literal: literal},
		Expect: expect,
	}
}

func caseNames(results []domain.Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Case
	}
	return names
}

func TestRunner_PureExpectations(t *testing.T) {
	r, _ := setupRunnerTest(t)

	suite := &domain.Suite{Cases: []domain.Case{
		literalCase("goosfraba", "goosfraba",
			domain.Expectation{Op: domain.OpAt, Arg: "6", Want: "a"},
			domain.Expectation{Op: domain.OpContains, Arg: "oosfr", Want: "true"},
			domain.Expectation{Op: domain.OpIndexOf, Arg: "o", Want: "1"},
		),
		{
			Name: "ascii-terminated",
			Source: domain.Source{
				Kind:     domain.SourceTerminated,
				Bytes:    []byte{65, 66, 67, 68, 69, 0},
				Encoding: domain.ASCII,
			},
			Expect: []domain.Expectation{{Op: domain.OpText, Want: "ABCDE"}},
		},
		literalCase("broken", "abc", domain.Expectation{Op: domain.OpLength, Want: "4"}),
	}}

	results, err := r.Run(context.Background(), suite, 2)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"ascii-terminated", "broken", "goosfraba"}, caseNames(results)); diff != "" {
		t.Errorf("result order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.True(t, errors.Is(results[1].Failures[0], domain.ErrExpectation))
	assert.True(t, results[2].Passed())
}

func TestRunner_ExpectedConstructionError(t *testing.T) {
	r, _ := setupRunnerTest(t)

	suite := &domain.Suite{Cases: []domain.Case{
		{
			Name:   "range",
			Source: domain.Source{Kind: domain.SourceUnitsRange, Units: []uint16{'a'}, Start: 1, Count: 1},
			Expect: []domain.Expectation{{Op: domain.OpError, Want: domain.WantRange}},
		},
		{
			Name:   "unexpected",
			Source: domain.Source{Kind: domain.SourceTerminated, Bytes: []byte{'a'}, Encoding: domain.ASCII},
			Expect: []domain.Expectation{{Op: domain.OpLength, Want: "1"}},
		},
	}}

	results, err := r.Run(context.Background(), suite, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Passed())
	require.False(t, results[1].Passed())
	assert.True(t, errors.Is(results[1].Failures[0], domain.ErrDecode))
}

func TestRunner_GoldenHash(t *testing.T) {
	text := domain.FromString("ABCDE")
	golden := domain.FormatHash(text.Hash())
	fixed := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("records on first run", func(t *testing.T) {
		r, m := setupRunnerTest(t)
		r.SetClock(func() time.Time { return fixed })

		m.store.EXPECT().Get("abcde").Return(nil, nil).Times(1)
		m.store.EXPECT().Put(domain.HashRecord{
			CaseName:  "abcde",
			Units:     5,
			Hash:      golden,
			Timestamp: fixed,
		}).Return(nil).Times(1)

		suite := &domain.Suite{Cases: []domain.Case{literalCase("abcde", "ABCDE", domain.Expectation{Op: domain.OpHash})}}
		results, err := r.Run(context.Background(), suite, 1)
		require.NoError(t, err)
		assert.True(t, results[0].Passed())
	})

	t.Run("verifies on later runs", func(t *testing.T) {
		r, m := setupRunnerTest(t)

		m.store.EXPECT().Get("abcde").Return(&domain.HashRecord{CaseName: "abcde", Hash: golden}, nil).Times(1)

		suite := &domain.Suite{Cases: []domain.Case{literalCase("abcde", "ABCDE", domain.Expectation{Op: domain.OpHash})}}
		results, err := r.Run(context.Background(), suite, 1)
		require.NoError(t, err)
		assert.True(t, results[0].Passed())
	})

	t.Run("reports drift", func(t *testing.T) {
		r, m := setupRunnerTest(t)

		m.store.EXPECT().Get("abcde").Return(&domain.HashRecord{CaseName: "abcde", Hash: "deadbeef"}, nil).Times(1)

		suite := &domain.Suite{Cases: []domain.Case{literalCase("abcde", "ABCDE", domain.Expectation{Op: domain.OpHash})}}
		results, err := r.Run(context.Background(), suite, 1)
		require.NoError(t, err)
		require.False(t, results[0].Passed())
		assert.True(t, errors.Is(results[0].Failures[0], domain.ErrExpectation))
	})

	t.Run("store failure aborts", func(t *testing.T) {
		r, m := setupRunnerTest(t)
		storeErr := errors.New("disk full")

		m.store.EXPECT().Get("abcde").Return(nil, nil).Times(1)
		m.store.EXPECT().Put(gomock.Any()).Return(storeErr).Times(1)

		suite := &domain.Suite{Cases: []domain.Case{literalCase("abcde", "ABCDE", domain.Expectation{Op: domain.OpHash})}}
		_, err := r.Run(context.Background(), suite, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, storeErr))
	})
}

func TestRunner_CulturalEquals(t *testing.T) {
	r, m := setupRunnerTest(t)
	r.WithLocale("de-DE")
	assert.Equal(t, "de-DE", r.Locale())

	gomock.InOrder(
		m.collator.EXPECT().Compare(gomock.Any(), gomock.Any(), "de-DE", false).Return(0, nil),
		m.collator.EXPECT().Compare(gomock.Any(), gomock.Any(), runner.InvariantLocale, true).Return(1, nil),
	)

	suite := &domain.Suite{Cases: []domain.Case{
		literalCase("culture", "goosfrab",
			domain.Expectation{Op: domain.OpEquals, Arg: "goosfrab", Mode: domain.CurrentCulture, Want: "true"},
			domain.Expectation{Op: domain.OpEquals, Arg: "other", Mode: domain.InvariantCultureIgnoreCase, Want: "false"},
		),
	}}

	results, err := r.Run(context.Background(), suite, 1)
	require.NoError(t, err)
	assert.True(t, results[0].Passed(), "failures: %v", results[0].Failures)
}

func TestRunner_Cancelled(t *testing.T) {
	r, _ := setupRunnerTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite := &domain.Suite{Cases: []domain.Case{literalCase("a", "a")}}
	_, err := r.Run(ctx, suite, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunner_NilSuite(t *testing.T) {
	r, _ := setupRunnerTest(t)
	_, err := r.Run(context.Background(), nil, 1)
	assert.True(t, errors.Is(err, domain.ErrSuiteInvalid))
}

type recordedVertex struct {
	name   string
	logs   []string
	cached bool
	done   bool
	err    error
}

func (v *recordedVertex) Log(msg string)     { v.logs = append(v.logs, msg) }
func (v *recordedVertex) Cached()            { v.cached = true }
func (v *recordedVertex) Complete(err error) { v.done, v.err = true, err }

type recordingTelemetry struct {
	mu       sync.Mutex
	vertices map[string]*recordedVertex
	closed   int
}

func (r *recordingTelemetry) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := &recordedVertex{name: name}
	r.vertices[name] = v
	return ports.ContextWithVertex(ctx, v), v
}

func (r *recordingTelemetry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed++
	return nil
}

func TestRunner_Telemetry(t *testing.T) {
	r, m := setupRunnerTest(t)
	tel := &recordingTelemetry{vertices: make(map[string]*recordedVertex)}
	r.WithTelemetry(tel)

	text := domain.FromString("ABCDE")
	m.store.EXPECT().Get("golden").Return(&domain.HashRecord{Hash: domain.FormatHash(text.Hash())}, nil)
	m.store.EXPECT().Get("fresh").Return(nil, nil)
	m.store.EXPECT().Put(gomock.Any()).Return(nil)

	suite := &domain.Suite{Cases: []domain.Case{
		literalCase("golden", "ABCDE", domain.Expectation{Op: domain.OpHash}),
		literalCase("fresh", "ABCDE", domain.Expectation{Op: domain.OpHash}),
		literalCase("broken", "abc", domain.Expectation{Op: domain.OpLength, Want: "4"}),
	}}

	_, err := r.Run(context.Background(), suite, 3)
	require.NoError(t, err)
	require.Len(t, tel.vertices, 3)

	golden := tel.vertices["golden"]
	assert.True(t, golden.done)
	assert.True(t, golden.cached)
	assert.NoError(t, golden.err)

	fresh := tel.vertices["fresh"]
	assert.False(t, fresh.cached)
	assert.Len(t, fresh.logs, 1)

	broken := tel.vertices["broken"]
	assert.True(t, broken.done)
	assert.True(t, errors.Is(broken.err, domain.ErrExpectation))

	assert.Equal(t, 1, tel.closed, "session is closed once per run")
}

func TestRunner_TelemetryVertexPerCase(t *testing.T) {
	r, _ := setupRunnerTest(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	r.WithTelemetry(tel)

	tel.EXPECT().Record(gomock.Any(), "abc").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		}).Times(1)
	vertex.EXPECT().Complete(nil).Times(1)
	tel.EXPECT().Close().Return(nil).Times(1)

	suite := &domain.Suite{Cases: []domain.Case{
		literalCase("abc", "abc", domain.Expectation{Op: domain.OpLength, Want: "3"}),
	}}
	_, err := r.Run(context.Background(), suite, 1)
	require.NoError(t, err)
}

func TestRunner_TelemetryCloseFailure(t *testing.T) {
	r, _ := setupRunnerTest(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	r.WithTelemetry(tel)

	closeErr := errors.New("renderer exited")
	tel.EXPECT().Record(gomock.Any(), "abc").Return(context.Background(), vertex).Times(1)
	vertex.EXPECT().Complete(nil).Times(1)
	tel.EXPECT().Close().Return(closeErr).Times(1)

	suite := &domain.Suite{Cases: []domain.Case{
		literalCase("abc", "abc", domain.Expectation{Op: domain.OpLength, Want: "3"}),
	}}
	_, err := r.Run(context.Background(), suite, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, closeErr))
}
