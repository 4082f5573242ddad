// Package godotenv reads Java installation metadata from the JDK "release"
// file using joho/godotenv.
package godotenv

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/docuri"
	"github.com/joho/godotenv"
)

// Ensure Runtime implements docuri.JavaRuntime at compile time.
var _ docuri.JavaRuntime = (*Runtime)(nil)

// Runtime reports the version of a JDK installation from $JAVA_HOME/release.
type Runtime struct {
	javaHome string
}

// NewRuntime creates a Runtime for the installation at javaHome.
// An empty javaHome falls back to the JAVA_HOME environment variable.
func NewRuntime(javaHome string) *Runtime {
	if javaHome == "" {
		javaHome = os.Getenv("JAVA_HOME")
	}
	return &Runtime{javaHome: javaHome}
}

// JavaVersion returns the JAVA_VERSION recorded in the release file.
// Returns an empty string when the file or key is missing.
func (r *Runtime) JavaVersion() string {
	if r.javaHome == "" {
		return ""
	}
	env, err := godotenv.Read(filepath.Join(r.javaHome, "release"))
	if err != nil {
		return ""
	}
	return env["JAVA_VERSION"]
}
