// Package docuri resolves symbol references to documentation URIs.
// It indexes packaged documentation archives (javadoc and scaladoc jars)
// and predicts URLs on well-known documentation hosts for standard
// library symbols that are not available locally.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zip/, goquery/, sqlite/).
package docuri
