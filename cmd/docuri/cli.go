package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docuri"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Catalog    *docuri.Catalog
	Resolver   docuri.Resolver
	Reader     docuri.ArchiveReader
	Prefix     string
	Extractors map[string]docuri.Extractor
	Converter  docuri.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Archives    []string `short:"a" name:"archive" help:"Documentation archive to index (repeatable, later archives shadow earlier ones)" type:"path"`
	Config      string   `short:"c" help:"YAML configuration file" type:"path"`
	Prefix      string   `env:"DOCURI_PREFIX" help:"Prefix of local documentation URIs (default: docs)"`
	JavaVersion string   `name:"java-version" env:"DOCURI_JAVA_VERSION" help:"Java version used for docs.oracle.com links"`
	JavaHome    string   `name:"java-home" env:"JAVA_HOME" help:"JDK whose release file reports the Java version"`
	Cache       string   `env:"DOCURI_DB" help:"SQLite scan cache path (disabled when empty)"`
	Verbose     bool     `short:"v" help:"Log debug output"`

	Index   IndexCmd   `cmd:"" help:"List indexed archives and their flavors"`
	Resolve ResolveCmd `cmd:"" help:"Resolve symbols to documentation URIs"`
	Show    ShowCmd    `cmd:"" help:"Print the documentation page for a symbol as Markdown"`
	Serve   ServeCmd   `cmd:"" help:"Serve archives and the resolve endpoint over HTTP"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Symbols     []string `arg:"" help:"Symbols such as java.util.List#add(E) or scala.Option"`
	Java        string   `help:"Javadoc name of the symbol when it differs (single symbol only)"`
	Concurrency int      `default:"8" help:"Concurrent resolve limit"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Symbol    string `arg:"" help:"Symbol or local documentation URI"`
	Java      string `help:"Javadoc name of the symbol when it differs"`
	Extractor string `short:"e" default:"trafilatura" enum:"clean,trafilatura,readability" help:"Content extractor (clean, trafilatura, readability)"`
	Output    string `short:"o" help:"Write the page as a Markdown file below this directory" type:"path"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"localhost:8080" help:"Listen address"`
}
