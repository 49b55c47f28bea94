package ports

import "go.trai.ch/utext/internal/core/domain"

// Collator answers culture-sensitive comparisons the domain does not define.
// The locale is always passed explicitly; there is no ambient culture.
//
//go:generate go run go.uber.org/mock/mockgen -source=collator.go -destination=mocks/mock_collator.go -package=mocks
type Collator interface {
	// Compare orders a and b under the collation rules of locale (a BCP 47 tag).
	// It returns -1, 0 or +1.
	Compare(a, b domain.Text, locale string, ignoreCase bool) (int, error)
}
