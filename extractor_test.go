package docuri_test

import (
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/stretchr/testify/assert"
)

func TestTrimTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "List", docuri.TrimTitle("List (Java Platform SE 8 )"))
	assert.Equal(t, "java.util", docuri.TrimTitle(" java.util (Java Platform SE 7 ) "))
	assert.Equal(t, "Scala Standard Library", docuri.TrimTitle("Scala Standard Library"))
	assert.Equal(t, "(untitled)", docuri.TrimTitle("(untitled)"))
}
