package docuri

import "strings"

// PackageType is the type name denoting a package's own documentation page.
const PackageType = "package"

// Signature identifies a documented symbol: a type within a package and an
// optional member of that type.
type Signature struct {
	// Package is the dot-separated package name, e.g. "java.util".
	Package string `json:"package"`

	// Type is the simple type name, or PackageType for the package itself.
	Type string `json:"type"`

	// Member is the member signature, e.g. "add(E)". Empty if none.
	Member string `json:"member,omitempty"`
}

// HasMember reports whether the signature refers to a member.
func (s Signature) HasMember() bool {
	return s.Member != ""
}

// IsPackage reports whether the signature refers to a package page.
func (s Signature) IsPackage() bool {
	return s.Type == PackageType
}

// FQN returns the fully-qualified name of the type, or of the package
// when the signature refers to the package page.
func (s Signature) FQN() string {
	switch {
	case s.IsPackage():
		return s.Package
	case s.Package == "":
		return s.Type
	}
	return s.Package + "." + s.Type
}

// ScaladocPath returns the archive-relative path of the document for s
// using scaladoc file naming.
func (s Signature) ScaladocPath() string {
	if s.IsPackage() {
		return s.dir() + "package.html"
	}
	return s.dir() + s.Type + ".html"
}

// JavadocPath returns the archive-relative path of the document for s
// using javadoc file naming.
func (s Signature) JavadocPath() string {
	if s.IsPackage() {
		return s.dir() + "package-summary.html"
	}
	return s.dir() + s.Type + ".html"
}

func (s Signature) dir() string {
	if s.Package == "" {
		return ""
	}
	return strings.ReplaceAll(s.Package, ".", "/") + "/"
}

// IsJavaStdLib reports whether s lives in the Java standard library.
func (s Signature) IsJavaStdLib() bool {
	return strings.HasPrefix(s.Package, "java.") || strings.HasPrefix(s.Package, "javax.") ||
		s.Package == "java" || s.Package == "javax"
}

// IsAndroidStdLib reports whether s lives in the Android platform library.
func (s Signature) IsAndroidStdLib() bool {
	return strings.HasPrefix(s.Package, "android.") || s.Package == "android"
}

// SignaturePair names one symbol twice: under scaladoc naming conventions
// and under javadoc naming conventions. The names differ for symbols such
// as Scala objects, whose JVM class carries a trailing '$'.
type SignaturePair struct {
	Scala Signature `json:"scala"`
	Java  Signature `json:"java"`
}

// SymmetricPair returns a pair using sig for both conventions.
func SymmetricPair(sig Signature) SignaturePair {
	return SignaturePair{Scala: sig, Java: sig}
}

// ParseSignature parses a symbol reference of the form "pkg.Type",
// "pkg.Type#member" or "pkg.package".
// Returns EINVALID if the reference is empty or has no type name.
func ParseSignature(s string) (Signature, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Signature{}, Errorf(EINVALID, "symbol required")
	}

	var sig Signature
	fqn := s
	if i := strings.Index(s, "#"); i >= 0 {
		fqn, sig.Member = s[:i], s[i+1:]
		if sig.Member == "" {
			return Signature{}, Errorf(EINVALID, "symbol %q has an empty member", s)
		}
	}

	if i := strings.LastIndex(fqn, "."); i >= 0 {
		sig.Package, sig.Type = fqn[:i], fqn[i+1:]
	} else {
		sig.Type = fqn
	}
	if sig.Type == "" {
		return Signature{}, Errorf(EINVALID, "symbol %q has no type name", s)
	}
	if sig.IsPackage() && sig.HasMember() {
		return Signature{}, Errorf(EINVALID, "package symbol %q cannot have a member", s)
	}

	return sig, nil
}

// String formats s in the form accepted by ParseSignature.
func (s Signature) String() string {
	name := s.FQN()
	if s.IsPackage() {
		name += "." + PackageType
	}
	if s.HasMember() {
		name += "#" + s.Member
	}
	return name
}
