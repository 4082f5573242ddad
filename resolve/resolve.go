// Package resolve turns symbol signatures into documentation URIs using a
// catalog of local archives and well-known documentation hosts.
package resolve

import (
	"strings"

	"github.com/fwojciec/docuri"
)

// Well-known documentation hosts.
const (
	OracleBaseURL  = "http://docs.oracle.com/javase/"
	AndroidBaseURL = "http://developer.android.com/reference/"
)

// DefaultPrefix is the URI path prefix of local documentation.
const DefaultPrefix = "docs"

// Ensure Resolver implements docuri.Resolver at compile time.
var _ docuri.Resolver = (*Resolver)(nil)

// Resolver resolves signatures against a catalog, falling back to
// well-known hosts for standard library symbols. Fields must not be changed
// once the resolver is in use; it is then safe for concurrent use.
type Resolver struct {
	// Catalog holds the indexed archives. May be nil.
	Catalog *docuri.Catalog

	// Prefix is prepended to local URIs. Defaults to DefaultPrefix.
	Prefix string

	// JavaVersion overrides the runtime version when choosing the
	// javadoc release on docs.oracle.com.
	JavaVersion string

	// Runtime reports the local Java version when JavaVersion is empty.
	Runtime docuri.JavaRuntime

	// Usecases substitutes scaladoc use case signatures. Optional.
	Usecases docuri.UsecaseFinder
}

// Resolve returns the documentation URI for pair, trying local archives
// before well-known hosts.
func (r *Resolver) Resolve(pair docuri.SignaturePair) (string, bool) {
	if uri, ok := r.resolveLocal(pair); ok {
		return uri, true
	}
	return r.resolveWellKnown(pair)
}

func (r *Resolver) resolveLocal(pair docuri.SignaturePair) (string, bool) {
	if r.Catalog == nil {
		return "", false
	}
	archive, _, ok := r.Catalog.Lookup(pair)
	if !ok {
		return "", false
	}

	flavor, _ := r.Catalog.Flavor(archive.Name)
	base := r.URIPrefix() + "/" + archive.Name + "/"

	if flavor.IsJavadoc() {
		return base + pair.Java.JavadocPath() + anchor(flavor, pair.Java.Member), true
	}

	sig := pair.Scala
	if r.Usecases != nil {
		if usecase, ok := r.Usecases.FindUsecase(archive, sig); ok {
			sig = usecase
		}
	}
	fragment := sig.FQN()
	if sig.HasMember() {
		fragment += "@" + sig.Member
	}
	return base + docuri.IndexDocument + "#" + fragment, true
}

func (r *Resolver) resolveWellKnown(pair docuri.SignaturePair) (string, bool) {
	switch {
	case pair.Scala.IsJavaStdLib():
		version := r.javaVersion()
		flavor := docuri.FlavorJavadoc
		if version == "8" {
			flavor = docuri.FlavorJavadoc8
		}
		return OracleBaseURL + version + "/docs/api/" + pair.Java.JavadocPath() + anchor(flavor, pair.Java.Member), true

	case pair.Scala.IsAndroidStdLib():
		return AndroidBaseURL + pair.Java.JavadocPath() + anchor(docuri.FlavorJavadoc, docuri.AndroidAnchor(pair.Java.Member)), true
	}
	return "", false
}

// javaVersion returns the major javadoc release to link to: "8", "7" or "6".
func (r *Resolver) javaVersion() string {
	v := r.JavaVersion
	if v == "" && r.Runtime != nil {
		v = r.Runtime.JavaVersion()
	}
	return NormalizeJavaVersion(v)
}

// URIPrefix returns the prefix of local URIs without a trailing slash.
func (r *Resolver) URIPrefix() string {
	if r.Prefix == "" {
		return DefaultPrefix
	}
	return strings.TrimSuffix(r.Prefix, "/")
}

// NormalizeJavaVersion maps a Java version string to the javadoc release
// hosted on docs.oracle.com. Versions other than 1.8 and 1.7 map to "6".
func NormalizeJavaVersion(v string) string {
	switch {
	case strings.HasPrefix(v, "1.8"):
		return "8"
	case strings.HasPrefix(v, "1.7"):
		return "7"
	}
	return "6"
}

func anchor(flavor docuri.Flavor, member string) string {
	if member == "" {
		return ""
	}
	return "#" + flavor.Anchor(member)
}
