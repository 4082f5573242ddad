package main

import (
	"fmt"

	"github.com/fwojciec/docuri"
	"golang.org/x/sync/errgroup"
)

// Run executes the resolve command. URIs are printed in argument order;
// symbols without documentation are reported and fail the command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	if c.Java != "" && len(c.Symbols) != 1 {
		err := docuri.Errorf(docuri.EINVALID, "--java requires exactly one symbol")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docuri.ErrorMessage(err))
		return err
	}

	pairs := make([]docuri.SignaturePair, len(c.Symbols))
	for i, s := range c.Symbols {
		pair, err := parsePair(s, c.Java)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docuri.ErrorMessage(err))
			return err
		}
		pairs[i] = pair
	}

	uris := make([]string, len(pairs))
	found := make([]bool, len(pairs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			uris[i], found[i] = deps.Resolver.Resolve(pair)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var missing int
	for i, s := range c.Symbols {
		if !found[i] {
			missing++
			fmt.Fprintf(deps.Stderr, "%s: no documentation found\n", s)
			continue
		}
		if len(c.Symbols) == 1 {
			fmt.Fprintln(deps.Stdout, uris[i])
		} else {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", s, uris[i])
		}
	}

	if missing > 0 {
		return docuri.Errorf(docuri.ENOTFOUND, "%d of %d symbols not found", missing, len(c.Symbols))
	}
	return nil
}

// parsePair parses symbol and, when set, its javadoc name.
func parsePair(symbol, java string) (docuri.SignaturePair, error) {
	sig, err := docuri.ParseSignature(symbol)
	if err != nil {
		return docuri.SignaturePair{}, err
	}
	pair := docuri.SymmetricPair(sig)
	if java != "" {
		if pair.Java, err = docuri.ParseSignature(java); err != nil {
			return docuri.SignaturePair{}, err
		}
	}
	return pair, nil
}
