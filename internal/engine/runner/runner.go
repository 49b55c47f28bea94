// Package runner evaluates check suites against the text core.
package runner

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// InvariantLocale is the locale used for the invariant culture modes.
const InvariantLocale = "und"

// Runner evaluates suite cases. Pure expectations are answered by the domain;
// golden hashes go through the HashStore and culture modes through the Collator.
type Runner struct {
	store     ports.HashStore
	collator  ports.Collator
	telemetry ports.Telemetry
	locale    string

	// storeMu serializes the read-then-record sequence for golden hashes.
	storeMu sync.Mutex
	now     func() time.Time
}

// NewRunner creates a new Runner.
func NewRunner(store ports.HashStore, collator ports.Collator) *Runner {
	return &Runner{
		store:    store,
		collator: collator,
		locale:   InvariantLocale,
		now:      time.Now,
	}
}

// WithLocale sets the locale used for the current culture modes.
func (r *Runner) WithLocale(locale string) *Runner {
	r.locale = locale
	return r
}

// WithStore replaces the store used for golden hashes.
func (r *Runner) WithStore(store ports.HashStore) *Runner {
	r.storeMu.Lock()
	defer r.storeMu.Unlock()
	r.store = store
	return r
}

// WithTelemetry records one vertex per evaluated case on t.
func (r *Runner) WithTelemetry(t ports.Telemetry) *Runner {
	r.telemetry = t
	return r
}

// Locale returns the locale used for the current culture modes.
func (r *Runner) Locale() string {
	return r.locale
}

// Run evaluates every case of suite with at most parallelism cases in flight.
// Case failures are reported in the results; the returned error is reserved
// for infrastructure failures and cancellation. The telemetry session is
// closed once every case has finished.
func (r *Runner) Run(ctx context.Context, suite *domain.Suite, parallelism int) ([]domain.Result, error) {
	if suite == nil {
		return nil, zerr.Wrap(domain.ErrSuiteInvalid, "suite is nil")
	}

	results := make([]domain.Result, len(suite.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))

	for i, c := range suite.Cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.record(gctx, c)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "case execution failed"), "case", c.Name)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	if r.telemetry != nil {
		if cerr := r.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close telemetry")
		}
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b domain.Result) int {
		return strings.Compare(a.Case, b.Case)
	})
	return results, nil
}

// record evaluates c inside a telemetry vertex when telemetry is configured.
func (r *Runner) record(ctx context.Context, c domain.Case) (domain.Result, error) {
	if r.telemetry == nil {
		return r.evaluate(ctx, c)
	}

	ctx, vertex := r.telemetry.Record(ctx, c.Name)
	res, err := r.evaluate(ctx, c)
	switch {
	case err != nil:
		vertex.Complete(err)
	case !res.Passed():
		vertex.Complete(errors.Join(res.Failures...))
	default:
		vertex.Complete(nil)
	}
	return res, err
}

// evaluate builds the case text and checks each expectation against it.
func (r *Runner) evaluate(ctx context.Context, c domain.Case) (domain.Result, error) {
	res := domain.Result{Case: c.Name}

	var wantErr *domain.Expectation
	for i := range c.Expect {
		if c.Expect[i].Op == domain.OpError {
			wantErr = &c.Expect[i]
			break
		}
	}

	text, buildErr := c.Source.Build()
	if err := domain.CheckBuildError(wantErr, buildErr); err != nil {
		res.Failures = append(res.Failures, err)
		return res, nil
	}
	if buildErr != nil {
		return res, nil
	}

	for _, exp := range c.Expect {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		err := r.check(ctx, c.Name, exp, text)
		if err == nil {
			continue
		}
		if isInfrastructure(err) {
			return res, err
		}
		res.Failures = append(res.Failures, zerr.With(zerr.Wrap(err, "expectation failed"), "expectation", exp.String()))
	}
	return res, nil
}

func (r *Runner) check(ctx context.Context, caseName string, exp domain.Expectation, text domain.Text) error {
	switch {
	case exp.Op == domain.OpHash && exp.Want == "":
		return r.checkGolden(ctx, caseName, text)
	case exp.Op == domain.OpEquals && exp.Mode.IsCultural():
		return r.checkCultural(exp, text)
	default:
		return exp.Check(text)
	}
}

// checkGolden records the hash on first sight and verifies it afterwards.
func (r *Runner) checkGolden(ctx context.Context, caseName string, text domain.Text) error {
	got := domain.FormatHash(text.Hash())

	r.storeMu.Lock()
	defer r.storeMu.Unlock()

	record, err := r.store.Get(caseName)
	if err != nil {
		return &infraError{zerr.Wrap(err, "failed to read golden hash")}
	}
	if record == nil {
		err := r.store.Put(domain.HashRecord{
			CaseName:  caseName,
			Units:     text.Len(),
			Hash:      got,
			Timestamp: r.now(),
		})
		if err != nil {
			return &infraError{zerr.Wrap(err, "failed to record golden hash")}
		}
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Log("recorded golden hash " + got)
		}
		return nil
	}
	if record.Hash != got {
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrExpectation, "golden hash drifted"),
			"op", string(domain.OpHash)),
			"want", record.Hash),
			"got", got)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Cached()
	}
	return nil
}

func (r *Runner) checkCultural(exp domain.Expectation, text domain.Text) error {
	locale := r.locale
	if exp.Mode == domain.InvariantCulture || exp.Mode == domain.InvariantCultureIgnoreCase {
		locale = InvariantLocale
	}

	order, err := r.collator.Compare(text, domain.FromString(exp.Arg), locale, exp.Mode.IgnoresCase())
	if err != nil {
		return &infraError{zerr.With(zerr.Wrap(err, "failed to collate"), "locale", locale)}
	}
	return exp.CheckEqual(order == 0)
}

// infraError marks failures of the store or collator rather than of the case.
type infraError struct {
	err error
}

func (e *infraError) Error() string { return e.err.Error() }
func (e *infraError) Unwrap() error { return e.err }

func isInfrastructure(err error) bool {
	var infra *infraError
	return errors.As(err, &infra)
}
