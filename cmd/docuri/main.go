package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/goquery"
	"github.com/fwojciec/docuri/godotenv"
	"github.com/fwojciec/docuri/htmltomarkdown"
	"github.com/fwojciec/docuri/index"
	"github.com/fwojciec/docuri/lru"
	"github.com/fwojciec/docuri/readability"
	"github.com/fwojciec/docuri/resolve"
	docurislog "github.com/fwojciec/docuri/slog"
	"github.com/fwojciec/docuri/sqlite"
	"github.com/fwojciec/docuri/trafilatura"
	"github.com/fwojciec/docuri/zip"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite scan cache. Nil unless a cache path is configured.
	DB *sqlite.DB

	// Scanner overrides the archive scanner for end-to-end testing.
	Scanner docuri.ArchiveScanner
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docuri"),
		kong.Description("Resolve Java and Scala symbols to documentation URIs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docuri --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		cfg, err := LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", docuri.ErrorMessage(err))
			return err
		}
		cli.Apply(cfg)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	scanner, err := m.scanner(cli, deps.Logger)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DOCURI_DB to use a different cache path")
		return err
	}
	defer m.Close()

	indexer := &index.Indexer{
		Scanner: docurislog.NewLoggingScanner(scanner, deps.Logger),
		Logger:  deps.Logger,
	}
	catalog, err := indexer.Index(ctx, cli.Archives)
	if err != nil {
		return fmt.Errorf("failed to index archives: %w", err)
	}

	reader := zip.NewReader()
	usecases, err := lru.NewUsecaseFinder(goquery.NewUsecaseFinder(reader), lru.DefaultSize)
	if err != nil {
		return fmt.Errorf("failed to create usecase cache: %w", err)
	}

	resolver := &resolve.Resolver{
		Catalog:     catalog,
		Prefix:      cli.Prefix,
		JavaVersion: cli.JavaVersion,
		Runtime:     godotenv.NewRuntime(cli.JavaHome),
		Usecases:    usecases,
	}

	deps.Catalog = catalog
	deps.Resolver = docurislog.NewLoggingResolver(resolver, deps.Logger)
	deps.Reader = reader
	deps.Prefix = resolver.URIPrefix()
	deps.Extractors = map[string]docuri.Extractor{
		"clean":       goquery.NewCleaner(),
		"trafilatura": trafilatura.NewExtractor(),
		"readability": readability.NewExtractor(),
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// scanner returns the archive scanner, wrapped in the SQLite scan cache when
// a cache path is configured.
func (m *Main) scanner(cli *CLI, logger *slog.Logger) (docuri.ArchiveScanner, error) {
	var scanner docuri.ArchiveScanner = zip.NewScanner(goquery.NewFlavorDetector())
	if m.Scanner != nil {
		scanner = m.Scanner
	}
	if cli.Cache == "" {
		return scanner, nil
	}

	m.DB = sqlite.NewDB(cli.Cache)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, fmt.Errorf("failed to open scan cache at %q: %w", cli.Cache, err)
	}
	return sqlite.NewScanCache(m.DB, scanner, logger), nil
}
