// roadcost CLI - road safety intervention cost estimator
//
// Usage:
//   roadcost estimate --input report.txt --source cpwd [options]
//   roadcost serve --port 8080
//   roadcost catalog show --source gem
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"roadcost/api"
	"roadcost/costing"
	"roadcost/db/clickhouse"
	"roadcost/db/postgres"
	"roadcost/pkg/catalog"
	"roadcost/pkg/platform"
	"roadcost/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "roadcost",
		Usage:   "Material cost estimator for road safety interventions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ROADCOST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "rates-dsn",
				Usage:   "Postgres DSN for live rate tables (built-in samples when unset)",
				EnvVars: []string{"ROADCOST_RATES_DSN"},
			},
			&cli.StringFlag{
				Name:    "archive-host",
				Value:   "localhost",
				Usage:   "ClickHouse host for the estimate archive",
				EnvVars: []string{"ROADCOST_ARCHIVE_HOST"},
			},
			&cli.IntFlag{
				Name:    "archive-port",
				Value:   9000,
				Usage:   "ClickHouse native port",
				EnvVars: []string{"ROADCOST_ARCHIVE_PORT"},
			},
			&cli.StringFlag{
				Name:    "archive-database",
				Value:   "roadcost",
				Usage:   "ClickHouse database",
				EnvVars: []string{"ROADCOST_ARCHIVE_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "archive-user",
				Value:   "default",
				Usage:   "ClickHouse user",
				EnvVars: []string{"ROADCOST_ARCHIVE_USER"},
			},
			&cli.StringFlag{
				Name:    "archive-password",
				Value:   "",
				Usage:   "ClickHouse password",
				EnvVars: []string{"ROADCOST_ARCHIVE_PASSWORD"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			serveCommand(),
			catalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEstimator wires the estimator with built-in or Postgres-backed
// rate tables.
func buildEstimator(c *cli.Context) (*costing.Estimator, error) {
	dsn := c.String("rates-dsn")
	if dsn == "" {
		return costing.DefaultEstimator(), nil
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	sources, err := postgres.LoadSources(context.Background(), db)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate tables: %w", err)
	}
	return costing.NewEstimator(catalog.Patterns(), sources), nil
}

func openArchive(c *cli.Context) (*clickhouse.Store, error) {
	store, err := clickhouse.NewStore(&clickhouse.Config{
		Host:     c.String("archive-host"),
		Port:     c.Int("archive-port"),
		Database: c.String("archive-database"),
		Username: c.String("archive-user"),
		Password: c.String("archive-password"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to estimate archive: %w", err)
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate material costs from an intervention report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to report text file ('-' for stdin)",
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Report text given inline",
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Value:   "cpwd",
				Usage:   "Rate source (cpwd, gem)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
			&cli.StringFlag{
				Name:  "excel",
				Usage: "Write a detailed Excel workbook to this path",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Write the summary as CSV to this path",
			},
			&cli.BoolFlag{
				Name:  "compare",
				Usage: "Estimate under both rate sources",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "Archive the run in ClickHouse",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	logger := platform.InitLogger(c.String("log-level"))

	text, err := readReport(c)
	if err != nil {
		return err
	}

	estimator, err := buildEstimator(c)
	if err != nil {
		return err
	}

	sources := []catalog.RateSource{}
	if c.Bool("compare") {
		sources = append(sources, catalog.SourceCPWD, catalog.SourceGeM)
	} else {
		source, err := catalog.ParseSource(c.String("source"))
		if err != nil {
			return err
		}
		sources = append(sources, source)
	}

	var archive *clickhouse.Store
	if c.Bool("archive") {
		archive, err = openArchive(c)
		if err != nil {
			return err
		}
		defer archive.Close()
	}

	for _, source := range sources {
		result, err := estimator.Estimate(text, source)
		if err != nil {
			return fmt.Errorf("estimation failed: %w", err)
		}

		if len(result.Estimates) == 0 {
			fmt.Fprintf(os.Stderr, "No interventions found in the input text (source: %s)\n", source)
			continue
		}

		if archive != nil {
			if err := archive.InsertRun(context.Background(), result); err != nil {
				logger.Warn("failed to archive run", "run_id", result.RunID, "error", err)
			}
		}

		if err := renderResult(c, result); err != nil {
			return err
		}
		if err := writeArtifacts(c, result); err != nil {
			return err
		}
	}

	return nil
}

func readReport(c *cli.Context) (string, error) {
	if text := c.String("text"); text != "" {
		return text, nil
	}

	path := c.String("input")
	if path == "" {
		return "", fmt.Errorf("either --input or --text is required")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read report: %w", err)
	}
	return string(data), nil
}

func renderResult(c *cli.Context, result *costing.Result) error {
	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "markdown":
		report.RenderMarkdown(os.Stdout, result)
		return nil
	default:
		report.RenderTable(os.Stdout, result)
		return nil
	}
}

func writeArtifacts(c *cli.Context, result *costing.Result) error {
	if path := c.String("csv"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := report.WriteSummaryCSV(f, result.Estimates); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Summary CSV written to %s\n", path)
	}

	if path := c.String("excel"); path != "" {
		data, err := report.GenerateWorkbook(result, catalog.Standards())
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Detailed workbook written to %s\n", path)
	}

	return nil
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the estimation API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "API server port",
				EnvVars: []string{"ROADCOST_PORT"},
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "Archive runs in ClickHouse",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := platform.InitLogger(c.String("log-level"))

	estimator, err := buildEstimator(c)
	if err != nil {
		return err
	}

	var archive *clickhouse.Store
	if c.Bool("archive") {
		archive, err = openArchive(c)
		if err != nil {
			return err
		}
		defer archive.Close()
	}

	cfg := api.DefaultConfig()
	cfg.Port = c.Int("port")

	server := api.NewServer(estimator, archive, logger, cfg)
	return server.StartWithGracefulShutdown()
}

// =============================================================================
// CATALOG COMMAND
// =============================================================================

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect reference data",
		Subcommands: []*cli.Command{
			{
				Name:  "sources",
				Usage: "List rate sources and their entry counts",
				Action: func(c *cli.Context) error {
					estimator, err := buildEstimator(c)
					if err != nil {
						return err
					}
					for _, source := range []catalog.RateSource{catalog.SourceCPWD, catalog.SourceGeM} {
						cat, err := estimator.Sources().Catalog(source)
						if err != nil {
							return err
						}
						fmt.Printf("%-6s %d entries\n", source, len(cat))
					}
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print every entry of one rate source",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Rate source (cpwd, gem)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					source, err := catalog.ParseSource(c.String("source"))
					if err != nil {
						return err
					}
					estimator, err := buildEstimator(c)
					if err != nil {
						return err
					}
					cat, err := estimator.Sources().Catalog(source)
					if err != nil {
						return err
					}

					codes := make([]string, 0, len(cat))
					for code := range cat {
						codes = append(codes, code)
					}
					sort.Strings(codes)

					for _, code := range codes {
						entry := cat[code]
						fmt.Printf("%-22s %-8s ₹%-12s %s\n",
							entry.Code, entry.Unit, entry.Rate.StringFixed(2), entry.Description)
					}
					return nil
				},
			},
			{
				Name:  "standards",
				Usage: "List the IRC standards knowledge base",
				Action: func(c *cli.Context) error {
					standards := catalog.Standards()
					codes := make([]string, 0, len(standards))
					for code := range standards {
						codes = append(codes, code)
					}
					sort.Strings(codes)

					for _, code := range codes {
						fmt.Printf("%-16s %s\n", code, standards[code].Title)
					}
					return nil
				},
			},
			{
				Name:  "patterns",
				Usage: "List intervention patterns in dispatch order",
				Action: func(c *cli.Context) error {
					for _, p := range catalog.Patterns() {
						fmt.Printf("%-14s %-16s default %g %s, %d materials\n",
							p.ID, p.Standard, p.DefaultQuantity, p.Policy.DefaultUnit(), len(p.Materials))
					}
					return nil
				},
			},
		},
	}
}
