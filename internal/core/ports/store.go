package ports

import "go.trai.ch/utext/internal/core/domain"

// HashStore defines the interface for storing and retrieving golden hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HashStore interface {
	// Get retrieves the hash record for a given case name.
	// Returns nil, nil if not found.
	Get(caseName string) (*domain.HashRecord, error)

	// Put stores the hash record.
	Put(record domain.HashRecord) error
}
