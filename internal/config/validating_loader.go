package config

import (
	"fmt"

	"github.com/mozilla-ai/gnuusage/internal/errors"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

// ValidationPredicate evaluates a loaded Document and returns an error if invalid.
type ValidationPredicate func(*Document) error

// validatingLoader wraps a Loader to run additional validation predicates at load time.
// Uses decorator pattern to preserve custom loader implementations while adding validation.
type validatingLoader struct {
	Loader
	predicates []ValidationPredicate
}

// NewValidatingLoader creates a loader that runs validation predicates after Load().
func NewValidatingLoader(inner Loader, predicates ...ValidationPredicate) *validatingLoader {
	return &validatingLoader{
		Loader:     inner,
		predicates: predicates,
	}
}

// Load delegates to inner loader, then runs validation predicates.
func (l *validatingLoader) Load(path string) (*Document, error) {
	doc, err := l.Loader.Load(path)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: loader returned no document (%s)", errors.ErrInvalidDocument, path)
	}

	for _, predicate := range l.predicates {
		if predicate == nil {
			continue
		}
		if err := predicate(doc); err != nil {
			return nil, fmt.Errorf("%w (%s): %w", errors.ErrInvalidDocument, path, err)
		}
	}

	return doc, nil
}

// UniqueKeys rejects documents where two options resolve to the same key.
func UniqueKeys(doc *Document) error {
	seen := make(map[string]int, len(doc.Options))
	for i, o := range doc.Options {
		k := o.OptionKey()
		if first, ok := seen[k]; ok {
			return fmt.Errorf("duplicate option key '%s' (options[%d] and options[%d])", k, first, i)
		}
		seen[k] = i
	}
	return nil
}

// MaxColumnWidth returns a predicate rejecting documents whose documentation column exceeds limit.
// A limit of zero or less disables the check.
func MaxColumnWidth(limit int) ValidationPredicate {
	return func(doc *Document) error {
		if limit <= 0 || len(doc.Options) == 0 {
			return nil
		}
		cfg := doc.DisplayConfig()
		if width := usage.ColumnWidth(cfg.Options); width > limit {
			return fmt.Errorf("column width %d exceeds maximum of %d", width, limit)
		}
		return nil
	}
}
