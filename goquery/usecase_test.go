package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/goquery"
	"github.com/fwojciec/docuri/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPage = `<!DOCTYPE html>
<html>
<body>
<ol>
<li name="scala.collection.immutable.List#map" visbl="pub" data-isabs="false" fullComment="yes">
<a id="map[B](f:A=>B):List[B]"></a><a id="map[B](f:A=&gt;B):List[B]"></a>
<h4 class="signature"><span class="name">map</span></h4>
<div class="fullcomment"><span class="badge">[use case]</span><p>Builds a new collection.</p></div>
</li>
<li name="scala.collection.immutable.List#head" visbl="pub" data-isabs="false" fullComment="yes">
<a id="head:A"></a>
<h4 class="signature"><span class="name">head</span></h4>
<div class="fullcomment"><p>Selects the first element.</p></div>
</li>
</ol>
</body>
</html>`

func TestUsecaseFinder_FindUsecase(t *testing.T) {
	t.Parallel()

	archive := &docuri.Archive{Name: "scala-library-docs.jar", Path: "/lib/scala-library-docs.jar"}

	newFinder := func(page string, err error) (*goquery.UsecaseFinder, *string) {
		var requested string
		reader := &mock.ArchiveReader{
			ReadEntryFn: func(_ context.Context, a *docuri.Archive, path string) ([]byte, error) {
				requested = path
				return []byte(page), err
			},
		}
		return goquery.NewUsecaseFinder(reader), &requested
	}

	t.Run("substitutes the use case anchor", func(t *testing.T) {
		t.Parallel()

		finder, requested := newFinder(listPage, nil)
		sig := docuri.Signature{
			Package: "scala.collection.immutable",
			Type:    "List",
			Member:  "map[B,That](f:A=>B)(implicitbf:scala.collection.generic.CanBuildFrom[List[A],B,That]):That",
		}

		got, ok := finder.FindUsecase(archive, sig)

		require.True(t, ok)
		assert.Equal(t, "map[B](f:A=>B):List[B]", got.Member)
		assert.Equal(t, sig.Package, got.Package)
		assert.Equal(t, sig.Type, got.Type)
		assert.Equal(t, "scala/collection/immutable/List.html", *requested)
	})

	t.Run("keeps members documented under their own signature", func(t *testing.T) {
		t.Parallel()

		finder, _ := newFinder(listPage, nil)
		sig := docuri.Signature{Package: "scala.collection.immutable", Type: "List", Member: "head:A"}

		_, ok := finder.FindUsecase(archive, sig)

		assert.False(t, ok)
	})

	t.Run("keeps exact use case anchors", func(t *testing.T) {
		t.Parallel()

		finder, _ := newFinder(listPage, nil)
		sig := docuri.Signature{Package: "scala.collection.immutable", Type: "List", Member: "map[B](f:A=>B):List[B]"}

		_, ok := finder.FindUsecase(archive, sig)

		assert.False(t, ok)
	})

	t.Run("ignores signatures without member", func(t *testing.T) {
		t.Parallel()

		reader := &mock.ArchiveReader{
			ReadEntryFn: func(context.Context, *docuri.Archive, string) ([]byte, error) {
				t.Fatal("page must not be read")
				return nil, nil
			},
		}

		_, ok := goquery.NewUsecaseFinder(reader).FindUsecase(archive, docuri.Signature{Package: "scala", Type: "Option"})

		assert.False(t, ok)
	})

	t.Run("ignores unreadable pages", func(t *testing.T) {
		t.Parallel()

		finder, _ := newFinder("", errors.New("boom"))
		sig := docuri.Signature{Package: "scala.collection.immutable", Type: "List", Member: "map[B](f:A=>B):List[B]"}

		_, ok := finder.FindUsecase(archive, sig)

		assert.False(t, ok)
	})
}
