package docuri

// Resolver resolves symbols to documentation URIs.
// Implementations must be safe for concurrent use.
type Resolver interface {
	// Resolve returns the documentation URI for pair.
	// Returns false if no local or well-known documentation exists.
	Resolve(pair SignaturePair) (uri string, ok bool)
}

// ResolveSignature resolves a symbol that is named identically under the
// scaladoc and javadoc conventions.
func ResolveSignature(r Resolver, sig Signature) (string, bool) {
	return r.Resolve(SymmetricPair(sig))
}

// UsecaseFinder looks up scaladoc "use case" signatures. Scaladoc documents
// some members under a simplified use case signature instead of their full
// signature; the anchor of the use case is the one present in the page.
type UsecaseFinder interface {
	// FindUsecase returns the use case signature documenting sig within
	// archive. Returns false if sig is documented under its own name.
	FindUsecase(archive *Archive, sig Signature) (Signature, bool)
}

// JavaRuntime reports the version of the local Java installation.
type JavaRuntime interface {
	// JavaVersion returns a version string such as "1.8.0_392" or "17.0.2".
	// Returns an empty string if no installation can be found.
	JavaVersion() string
}
