package docuri

import (
	"context"
	"path"
	"sort"
	"strings"
)

// Archive is a packaged documentation bundle on disk.
type Archive struct {
	// Name is the archive's file name, used as the URI segment.
	Name string `json:"name"`

	// Path is the archive's location on disk.
	Path string `json:"path"`
}

// ArchiveIndex is the result of scanning a single archive.
type ArchiveIndex struct {
	Archive *Archive `json:"archive"`
	Flavor  Flavor   `json:"flavor"`

	// Entries lists every non-directory entry path in the archive.
	Entries []string `json:"entries"`
}

// ArchiveScanner reads a single archive and classifies its flavor.
type ArchiveScanner interface {
	// ScanArchive opens the archive at path, enumerates its entries and
	// classifies its flavor. The archive is closed before returning.
	ScanArchive(ctx context.Context, path string) (*ArchiveIndex, error)
}

// ArchiveReader reads individual documents out of archives.
type ArchiveReader interface {
	// ReadEntry returns the contents of the entry at path in archive.
	// Returns ENOTFOUND if the archive has no such entry.
	ReadEntry(ctx context.Context, archive *Archive, path string) ([]byte, error)
}

// FlavorDetector classifies an archive from its top-level index document.
type FlavorDetector interface {
	// DetectFlavor inspects index document contents and returns the flavor.
	// Returns FlavorScaladoc when no javadoc marker is present.
	DetectFlavor(indexHTML []byte) Flavor
}

// IndexDocument is the top-level document every archive is expected to carry.
const IndexDocument = "index.html"

// Catalog is the immutable lookup index built from a set of archives.
// It is safe for concurrent use by multiple goroutines.
type Catalog struct {
	paths    map[string]*Archive
	archives map[string]*Archive
	flavors  map[string]Flavor
}

// ArchiveForPath returns the archive containing the document at path.
func (c *Catalog) ArchiveForPath(path string) (*Archive, bool) {
	a, ok := c.paths[path]
	return a, ok
}

// Archive returns the archive with the given file name.
func (c *Catalog) Archive(name string) (*Archive, bool) {
	a, ok := c.archives[name]
	return a, ok
}

// Flavor returns the flavor of the named archive.
func (c *Catalog) Flavor(name string) (Flavor, bool) {
	f, ok := c.flavors[name]
	return f, ok
}

// Archives returns all archives in the catalog sorted by name.
func (c *Catalog) Archives() []*Archive {
	archives := make([]*Archive, 0, len(c.archives))
	for _, a := range c.archives {
		archives = append(archives, a)
	}
	sort.Slice(archives, func(i, j int) bool { return archives[i].Name < archives[j].Name })
	return archives
}

// Len returns the number of indexed document paths.
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Lookup finds the archive documenting pair. The scaladoc path of
// pair.Scala is tried before the javadoc path of pair.Java. Returns the
// archive and the path that matched.
func (c *Catalog) Lookup(pair SignaturePair) (*Archive, string, bool) {
	for _, p := range []string{pair.Scala.ScaladocPath(), pair.Java.JavadocPath()} {
		if a, ok := c.paths[p]; ok {
			return a, p, true
		}
	}
	return nil, "", false
}

// CatalogBuilder assembles a Catalog one archive at a time.
// The zero value is not usable; use NewCatalogBuilder.
type CatalogBuilder struct {
	c *Catalog
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	b := &CatalogBuilder{}
	b.reset()
	return b
}

func (b *CatalogBuilder) reset() {
	b.c = &Catalog{
		paths:    make(map[string]*Archive),
		archives: make(map[string]*Archive),
		flavors:  make(map[string]Flavor),
	}
}

// Add records a scanned archive. Entries at the top level of the archive
// are not indexed. When several archives share an entry path, the archive
// added last wins.
func (b *CatalogBuilder) Add(idx *ArchiveIndex) {
	a := idx.Archive
	flavor := idx.Flavor
	if flavor == "" {
		flavor = FlavorScaladoc
	}

	b.c.archives[a.Name] = a
	b.c.flavors[a.Name] = flavor
	for _, entry := range idx.Entries {
		if strings.HasSuffix(entry, "/") || path.Dir(entry) == "." {
			continue
		}
		b.c.paths[entry] = a
	}
}

// Build returns the catalog assembled so far and resets the builder.
func (b *CatalogBuilder) Build() *Catalog {
	c := b.c
	b.reset()
	return c
}

// SplitLocalURI splits a local documentation URI of the form
// "<prefix>/<archive>/<path>[#<anchor>]" into its parts.
func SplitLocalURI(prefix, uri string) (archive, path, anchor string, ok bool) {
	rest, found := strings.CutPrefix(uri, prefix+"/")
	if !found {
		return "", "", "", false
	}
	rest, anchor, _ = strings.Cut(rest, "#")
	archive, path, found = strings.Cut(rest, "/")
	if !found || archive == "" || path == "" {
		return "", "", "", false
	}
	return archive, path, anchor, true
}
