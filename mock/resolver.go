package mock

import "github.com/fwojciec/docuri"

var _ docuri.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of docuri.Resolver.
type Resolver struct {
	ResolveFn func(pair docuri.SignaturePair) (string, bool)
}

func (r *Resolver) Resolve(pair docuri.SignaturePair) (string, bool) {
	return r.ResolveFn(pair)
}

var _ docuri.UsecaseFinder = (*UsecaseFinder)(nil)

// UsecaseFinder is a mock implementation of docuri.UsecaseFinder.
type UsecaseFinder struct {
	FindUsecaseFn func(archive *docuri.Archive, sig docuri.Signature) (docuri.Signature, bool)
}

func (f *UsecaseFinder) FindUsecase(archive *docuri.Archive, sig docuri.Signature) (docuri.Signature, bool) {
	return f.FindUsecaseFn(archive, sig)
}

var _ docuri.JavaRuntime = (*JavaRuntime)(nil)

// JavaRuntime is a mock implementation of docuri.JavaRuntime.
type JavaRuntime struct {
	JavaVersionFn func() string
}

func (r *JavaRuntime) JavaVersion() string {
	return r.JavaVersionFn()
}
