package ports

import "go.trai.ch/utext/internal/core/domain"

// SuiteLoader defines the interface for loading check suites.
//
//go:generate go run go.uber.org/mock/mockgen -source=suite_loader.go -destination=mocks/mock_suite_loader.go -package=mocks
type SuiteLoader interface {
	// Load reads the suite at path.
	Load(path string) (*domain.Suite, error)
}
