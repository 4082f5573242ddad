package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docuri.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *ShowCmd) run(deps *Dependencies) error {
	extractor, ok := deps.Extractors[c.Extractor]
	if !ok {
		return docuri.Errorf(docuri.EINVALID, "unknown extractor %q", c.Extractor)
	}

	var (
		page    *docuri.Page
		content []byte
		err     error
	)
	if name, entry, anchor, ok := docuri.SplitLocalURI(deps.Prefix, c.Symbol); ok {
		page, content, err = c.readLocalURI(deps, name, entry, anchor)
	} else {
		page, content, err = c.readSymbol(deps)
	}
	if err != nil || page == nil {
		return err
	}

	result, err := extractor.Extract(string(content))
	if err != nil {
		return err
	}
	md, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		return err
	}
	page.Title, page.Content = result.Title, md

	if c.Output != "" {
		path, err := fs.NewWriter(c.Output).WritePage(deps.Ctx, page)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
		return nil
	}

	if page.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", page.Title)
	}
	fmt.Fprintln(deps.Stdout, page.Content)
	return nil
}

// readSymbol reads the page documenting the symbol. Symbols documented only
// on a well-known host have their URI printed instead and return no page.
func (c *ShowCmd) readSymbol(deps *Dependencies) (*docuri.Page, []byte, error) {
	pair, err := parsePair(c.Symbol, c.Java)
	if err != nil {
		return nil, nil, err
	}

	archive, entry, ok := deps.Catalog.Lookup(pair)
	if !ok {
		uri, ok := deps.Resolver.Resolve(pair)
		if !ok {
			return nil, nil, docuri.Errorf(docuri.ENOTFOUND, "no documentation found for %s", pair.Scala)
		}
		fmt.Fprintf(deps.Stderr, "%s is not available locally, see:\n", pair.Scala)
		fmt.Fprintln(deps.Stdout, uri)
		return nil, nil, nil
	}

	content, err := deps.Reader.ReadEntry(deps.Ctx, archive, entry)
	if err != nil {
		return nil, nil, err
	}
	return newPage(deps, archive, entry), content, nil
}

// readLocalURI reads the page behind a local URI. Scaladoc URIs point at
// index.html with the symbol in the anchor; the symbol's own page is read
// in that case.
func (c *ShowCmd) readLocalURI(deps *Dependencies, name, entry, anchor string) (*docuri.Page, []byte, error) {
	archive, ok := deps.Catalog.Archive(name)
	if !ok {
		return nil, nil, docuri.Errorf(docuri.ENOTFOUND, "archive %q is not indexed", name)
	}

	candidates := []string{entry}
	if entry == docuri.IndexDocument && anchor != "" {
		fqn, _, _ := strings.Cut(anchor, "@")
		candidates = []string{docuri.Signature{Package: fqn, Type: docuri.PackageType}.ScaladocPath()}
		if sig, err := docuri.ParseSignature(fqn); err == nil {
			candidates = append([]string{sig.ScaladocPath()}, candidates...)
		}
	}

	for _, p := range candidates {
		content, err := deps.Reader.ReadEntry(deps.Ctx, archive, p)
		if docuri.ErrorCode(err) == docuri.ENOTFOUND {
			continue
		} else if err != nil {
			return nil, nil, err
		}
		return newPage(deps, archive, p), content, nil
	}
	return nil, nil, docuri.Errorf(docuri.ENOTFOUND, "no page for %s in %s", anchorOr(anchor, entry), name)
}

func newPage(deps *Dependencies, archive *docuri.Archive, entry string) *docuri.Page {
	return &docuri.Page{
		Archive: archive.Name,
		Path:    entry,
		URI:     deps.Prefix + "/" + archive.Name + "/" + entry,
	}
}

func anchorOr(anchor, entry string) string {
	if anchor != "" {
		return anchor
	}
	return entry
}
