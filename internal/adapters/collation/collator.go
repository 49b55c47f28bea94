// Package collation implements culture-sensitive comparison using golang.org/x/text/collate.
package collation

import (
	"sync"

	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ ports.Collator = (*Collator)(nil)

// InvariantLocale is the root locale used for invariant-culture comparisons.
const InvariantLocale = "und"

// Collator implements ports.Collator.
// A collate.Collator is not safe for concurrent use, so each cached instance
// carries its own lock.
type Collator struct {
	cache sync.Map // cacheKey -> *entry
}

type cacheKey struct {
	tag        language.Tag
	ignoreCase bool
}

type entry struct {
	mu sync.Mutex
	c  *collate.Collator
}

// New creates a new Collator.
func New() *Collator {
	return &Collator{}
}

// Compare orders a and b under the rules of locale.
func (c *Collator) Compare(a, b domain.Text, locale string, ignoreCase bool) (int, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrUnknownComparison, err.Error()), "locale", locale)
	}

	e := c.collator(cacheKey{tag: tag, ignoreCase: ignoreCase})

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.c.CompareString(a.String(), b.String()), nil
}

func (c *Collator) collator(key cacheKey) *entry {
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*entry)
	}

	var opts []collate.Option
	if key.ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	actual, _ := c.cache.LoadOrStore(key, &entry{c: collate.New(key.tag, opts...)})
	return actual.(*entry)
}
