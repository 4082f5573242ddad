package goquery

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docuri"
)

// Ensure UsecaseFinder implements docuri.UsecaseFinder at compile time.
var _ docuri.UsecaseFinder = (*UsecaseFinder)(nil)

// usecaseBadge marks members scaladoc documents under a use case signature.
const usecaseBadge = "[use case]"

// UsecaseFinder finds scaladoc use case signatures by reading the type's
// page from its archive.
type UsecaseFinder struct {
	reader docuri.ArchiveReader
}

// NewUsecaseFinder creates a new UsecaseFinder reading pages with reader.
func NewUsecaseFinder(reader docuri.ArchiveReader) *UsecaseFinder {
	return &UsecaseFinder{reader: reader}
}

// FindUsecase returns sig with its member replaced by the anchor of the use
// case documenting it. Pages that cannot be read or parsed yield no
// substitution.
func (f *UsecaseFinder) FindUsecase(archive *docuri.Archive, sig docuri.Signature) (docuri.Signature, bool) {
	if !sig.HasMember() || sig.IsPackage() {
		return docuri.Signature{}, false
	}

	page, err := f.reader.ReadEntry(context.Background(), archive, sig.ScaladocPath())
	if err != nil {
		return docuri.Signature{}, false
	}

	anchor, ok := findUsecaseAnchor(page, sig)
	if !ok {
		return docuri.Signature{}, false
	}

	sig.Member = anchor
	return sig, true
}

// findUsecaseAnchor locates the member entries named after sig's member and
// returns the anchor of the first use case among them. An entry whose anchor
// equals the requested member exactly means there is nothing to substitute.
func findUsecaseAnchor(page []byte, sig docuri.Signature) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	name := sig.FQN() + "#" + memberName(sig.Member)
	var usecase string
	exact := false

	doc.Find("li[name]").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if n, _ := li.Attr("name"); n != name {
			return true
		}
		ids := li.ChildrenFiltered("a[id]").Map(func(_ int, a *goquery.Selection) string {
			id, _ := a.Attr("id")
			return id
		})
		for _, id := range ids {
			if id == sig.Member {
				exact = true
				return false
			}
		}
		if usecase == "" && len(ids) > 0 && strings.Contains(li.Find(".fullcomment").Text(), usecaseBadge) {
			usecase = ids[0]
		}
		return true
	})

	if exact || usecase == "" {
		return "", false
	}
	return usecase, true
}

// memberName strips type parameters, parameter lists and result types from
// a scaladoc member signature: "map[B](f:A=>B):List[B]" becomes "map".
func memberName(member string) string {
	if i := strings.IndexAny(member, "[("); i > 0 {
		return member[:i]
	}
	if i := strings.LastIndex(member, ":"); i > 0 {
		return member[:i]
	}
	return member
}
