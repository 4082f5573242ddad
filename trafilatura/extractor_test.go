package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classPage = `<!DOCTYPE html>
<html>
<head><title>ArrayList (Java Platform SE 8 )</title></head>
<body>
<nav><ul><li><a href="../../overview-summary.html">Overview</a></li><li><a href="package-summary.html">Package</a></li></ul></nav>
<article>
<h1>Class ArrayList</h1>
<p>Resizable-array implementation of the List interface. Implements all optional list operations, and permits all elements, including null.</p>
<p>Each ArrayList instance has a capacity. The capacity is the size of the array used to store the elements in the list.</p>
<pre><code>List list = Collections.synchronizedList(new ArrayList(...));</code></pre>
</article>
<footer>Copyright 1993, 2015, Oracle and/or its affiliates.</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(classPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.NotContains(t, result.Title, "Java Platform SE 8")
	})

	t.Run("keeps main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(classPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Resizable-array implementation")
		assert.Contains(t, result.ContentHTML, "synchronizedList")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, docuri.EINVALID, docuri.ErrorCode(err))
	})
}
