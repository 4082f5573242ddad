package main

import "fmt"

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	archives := deps.Catalog.Archives()
	if len(archives) == 0 {
		fmt.Fprintln(deps.Stdout, "No archives indexed. Use '--archive' or the config file to add one.")
		return nil
	}

	for _, a := range archives {
		flavor, _ := deps.Catalog.Flavor(a.Name)
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.Name, flavor, a.Path)
	}
	return nil
}
