package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/okoval/gitgraph/config"
	"github.com/okoval/gitgraph/internal/graph"
	"github.com/okoval/gitgraph/internal/history"
	"github.com/okoval/gitgraph/internal/odb"
	"github.com/okoval/gitgraph/internal/viewer"
	"github.com/urfave/cli/v2"
)

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "file",
			Usage: "Target file to filter commits by",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (dot, mermaid, json)",
			Value:   "dot",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Match tree entry names exactly instead of by raw containment",
		},
		&cli.BoolFlag{
			Name:  "view",
			Usage: "Open the rendered artifact with the configured viewer",
		},
	)

	return &cli.Command{
		Name:    "graph",
		Aliases: []string{"g"},
		Usage:   "Walk the commit history and render the graph of a file",
		Flags:   flags,
		Action:  graphAction,
	}
}

func graphAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("view") && cfg.Output.Path == "" {
		cfg.Output.Path = "dependency_graph" + getFormat(cfg.Output.Format).Ext()
	}
	return runGraph(c.Context, cfg, c.Bool("view"))
}

// runGraph executes the whole pipeline: resolve HEAD, walk the commit DAG,
// filter by the target file, render, and optionally hand the artifact to
// the viewer.
func runGraph(ctx context.Context, cfg *config.Config, view bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := odb.Open(cfg.RepositoryPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := store.ResolveHead()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commits, skips, err := history.NewWalker(store).Walk(ctx, head)
	if err != nil {
		return err
	}
	warnSkips("skipped during walk", skips)

	mode := odb.MatchLenient
	if cfg.StrictMatch {
		mode = odb.MatchStrict
	}
	g, filterSkips := graph.Build(commits, func(treeID string) (bool, error) {
		return store.TreeContains(treeID, cfg.TargetFile, mode)
	})
	warnSkips("skipped during filtering", filterSkips)

	if err := graph.Render(g, getFormat(cfg.Output.Format), cfg.Output.Path); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	if cfg.Output.Path != "" {
		color.Green("Rendered %d commits touching %s to %s", len(g.Nodes), cfg.TargetFile, cfg.Output.Path)
	}

	if view {
		if err := viewer.Run(ctx, cfg.ViewerPath, cfg.Output.Path); err != nil {
			return err
		}
	}
	return nil
}

func warnSkips(stage string, skips []history.Skip) {
	for _, s := range skips {
		color.Yellow("warning: %s: %s: %v", stage, s.ID, s.Err)
	}
}
