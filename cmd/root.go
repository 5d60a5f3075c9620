package cmd

import (
	"fmt"
	"os"

	"github.com/okoval/gitgraph/config"
	"github.com/okoval/gitgraph/internal/graph"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitgraph",
		Usage:   "Render the commit graph of a file from a Git object database",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GraphCmd(),
			ShowCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (XML or YAML)",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
		},
	}
}

// getFormat parses the output format flag.
func getFormat(s string) graph.Format {
	switch s {
	case "mermaid", "mmd":
		return graph.FormatMermaid
	case "json":
		return graph.FormatJSON
	default:
		return graph.FormatDOT
	}
}

// loadConfig loads configuration from file or defaults, then applies CLI
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if repo := c.String("repo"); repo != "" {
		cfg.RepositoryPath = repo
	}
	if file := c.String("file"); file != "" {
		cfg.TargetFile = file
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if output := c.String("output"); output != "" {
		cfg.Output.Path = output
	}
	if c.Bool("strict") {
		cfg.StrictMatch = true
	}

	return cfg, nil
}

// legacyAction handles the default command behavior: a single positional
// argument naming the configuration file, as in the original CLI surface.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}

	cfg, err := config.Load(c.Args().Get(0))
	if err != nil {
		return err
	}
	// The original always produced a file and opened the viewer on it.
	if cfg.Output.Path == "" {
		cfg.Output.Path = "dependency_graph" + getFormat(cfg.Output.Format).Ext()
	}
	return runGraph(c.Context, cfg, cfg.ViewerPath != "")
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
