// Package app implements the application layer for utext.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/utext/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.SuiteLoader
	runner   *runner.Runner
	collator ports.Collator
	logger   ports.Logger
}

// New creates a new App instance.
func New(loader ports.SuiteLoader, r *runner.Runner, collator ports.Collator, log ports.Logger) *App {
	return &App{
		loader:   loader,
		runner:   r,
		collator: collator,
		logger:   log,
	}
}

// WithLocale sets the locale used by the current culture modes.
func (a *App) WithLocale(locale string) *App {
	a.runner.WithLocale(locale)
	return a
}

// Locale returns the locale used by the current culture modes.
func (a *App) Locale() string {
	return a.runner.Locale()
}

// WithStore replaces the golden hash store.
func (a *App) WithStore(store ports.HashStore) *App {
	a.runner.WithStore(store)
	return a
}

// WithJSONLogs switches the logger between JSON and pretty output.
func (a *App) WithJSONLogs(enable bool) *App {
	a.logger.SetJSON(enable)
	return a
}

// Check loads the suite at path and evaluates it.
// It returns ErrCheckFailed when at least one case fails.
func (a *App) Check(ctx context.Context, path string) error {
	suite, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load suite")
	}

	results, err := a.runner.Run(ctx, suite, runtime.NumCPU())
	if err != nil {
		return zerr.Wrap(err, "suite execution failed")
	}

	failed := 0
	for _, res := range results {
		if res.Passed() {
			continue
		}
		failed++
		a.logger.Warn(fmt.Sprintf("case %s failed", res.Case))
		for _, f := range res.Failures {
			a.logger.Error(zerr.With(zerr.Wrap(f, "case failed"), "case", res.Case))
		}
	}

	a.logger.Info(fmt.Sprintf("%d cases, %d passed, %d failed", len(results), len(results)-failed, failed))
	if failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrCheckFailed, "suite has failing cases"), "failed", failed)
	}
	return nil
}

// Compare orders x against y under mode and reports whether they are equal.
func (a *App) Compare(ctx context.Context, x, y domain.Text, mode domain.ComparisonMode) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	if !mode.IsCultural() {
		var order int
		switch mode {
		case domain.Ordinal:
			order = domain.Compare(x, y)
		case domain.OrdinalIgnoreCase:
			order = domain.CompareFold(x, y)
		default:
			return 0, false, zerr.With(zerr.Wrap(domain.ErrUnknownComparison, "compare"), "mode", int(mode))
		}
		return order, order == 0, nil
	}

	locale := a.Locale()
	if mode == domain.InvariantCulture || mode == domain.InvariantCultureIgnoreCase {
		locale = runner.InvariantLocale
	}
	order, err := a.collator.Compare(x, y, locale, mode.IgnoresCase())
	if err != nil {
		return 0, false, zerr.With(zerr.Wrap(err, "cultural comparison failed"), "locale", locale)
	}
	return order, order == 0, nil
}
