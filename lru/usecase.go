// Package lru provides bounded in-memory caching backed by
// hashicorp/golang-lru.
package lru

import (
	"github.com/fwojciec/docuri"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of cached use case lookups.
const DefaultSize = 4096

// Ensure UsecaseFinder implements docuri.UsecaseFinder at compile time.
var _ docuri.UsecaseFinder = (*UsecaseFinder)(nil)

type usecaseKey struct {
	archive string
	sig     docuri.Signature
}

type usecaseResult struct {
	sig docuri.Signature
	ok  bool
}

// UsecaseFinder caches the results of a wrapped UsecaseFinder, including
// negative results. It is safe for concurrent use.
type UsecaseFinder struct {
	next  docuri.UsecaseFinder
	cache *lru.Cache[usecaseKey, usecaseResult]
}

// NewUsecaseFinder wraps next with a cache holding up to size results.
// A non-positive size uses DefaultSize.
func NewUsecaseFinder(next docuri.UsecaseFinder, size int) (*UsecaseFinder, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[usecaseKey, usecaseResult](size)
	if err != nil {
		return nil, err
	}
	return &UsecaseFinder{next: next, cache: cache}, nil
}

// FindUsecase returns the cached result for archive and sig, consulting the
// wrapped finder on a miss.
func (f *UsecaseFinder) FindUsecase(archive *docuri.Archive, sig docuri.Signature) (docuri.Signature, bool) {
	key := usecaseKey{archive: archive.Path, sig: sig}
	if res, ok := f.cache.Get(key); ok {
		return res.sig, res.ok
	}

	found, ok := f.next.FindUsecase(archive, sig)
	f.cache.Add(key, usecaseResult{sig: found, ok: ok})
	return found, ok
}

// Len returns the number of cached results.
func (f *UsecaseFinder) Len() int {
	return f.cache.Len()
}
