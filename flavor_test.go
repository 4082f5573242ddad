package docuri_test

import (
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavadoc8Anchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		member string
		want   string
	}{
		{"replaces parentheses", "add(E)", "add-E-"},
		{"replaces comma separators", "add(int, E)", "add-int-E-"},
		{"replaces array brackets", "toArray(T[])", "toArray-T:A-"},
		{"keeps empty parameter list", "size()", "size--"},
		{"keeps plain names", "MAX_VALUE", "MAX_VALUE"},
		{"keeps commas without spaces", "put(K,V)", "put-K,V-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docuri.Javadoc8Anchor(tt.member))
		})
	}
}

func TestJavadoc8Anchor_IsIdempotentOnCleanInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "baz", "add-E-", "toArray-T:A-", "MAX_VALUE", "put-K,V-"} {
		once := docuri.Javadoc8Anchor(s)
		assert.Equal(t, s, once)
		assert.Equal(t, once, docuri.Javadoc8Anchor(once))
	}
}

func TestAndroidAnchor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "setText(java.lang.CharSequence, android.widget.TextView.BufferType)",
		docuri.AndroidAnchor("setText(java.lang.CharSequence,android.widget.TextView.BufferType)"))
	assert.Equal(t, "getText()", docuri.AndroidAnchor("getText()"))
}

func TestFlavor_Anchor(t *testing.T) {
	t.Parallel()

	t.Run("javadoc8 transliterates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "add-E-", docuri.FlavorJavadoc8.Anchor("add(E)"))
	})

	t.Run("javadoc passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "add(E)", docuri.FlavorJavadoc.Anchor("add(E)"))
	})

	t.Run("scaladoc passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "map[B](f:A=>B):List[B]", docuri.FlavorScaladoc.Anchor("map[B](f:A=>B):List[B]"))
	})
}

func TestFlavor_IsJavadoc(t *testing.T) {
	t.Parallel()

	assert.True(t, docuri.FlavorJavadoc.IsJavadoc())
	assert.True(t, docuri.FlavorJavadoc8.IsJavadoc())
	assert.False(t, docuri.FlavorScaladoc.IsJavadoc())
}

func TestParseFlavor(t *testing.T) {
	t.Parallel()

	t.Run("parses known flavors", func(t *testing.T) {
		t.Parallel()

		for _, f := range []docuri.Flavor{docuri.FlavorScaladoc, docuri.FlavorJavadoc, docuri.FlavorJavadoc8} {
			got, err := docuri.ParseFlavor(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, got)
		}
	})

	t.Run("rejects unknown flavor", func(t *testing.T) {
		t.Parallel()

		_, err := docuri.ParseFlavor("doxygen")
		require.Error(t, err)
		assert.Equal(t, docuri.EINVALID, docuri.ErrorCode(err))
	})
}
