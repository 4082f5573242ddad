package main

import (
	"context"
	"fmt"
	"time"

	docurihttp "github.com/fwojciec/docuri/http"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := docurihttp.NewHandler(deps.Catalog, deps.Resolver, deps.Reader, deps.Prefix, deps.Logger)
	srv := docurihttp.NewServer(c.Addr, handler)

	fmt.Fprintf(deps.Stdout, "Serving %d archives on http://%s/%s/\n", len(deps.Catalog.Archives()), srv.Addr(), deps.Prefix)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
