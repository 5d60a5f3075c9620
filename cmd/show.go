package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/okoval/gitgraph/internal/odb"
	"github.com/urfave/cli/v2"
)

// ShowCmd returns the show command.
func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Decode a single commit object and print its fields",
		ArgsUsage: "<identifier>",
		Flags:     commonFlags(),
		Action:    showAction,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one object identifier")
	}

	repoPath := c.String("repo")
	if repoPath == "" {
		repoPath = "."
	}

	store, err := odb.Open(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	commit, err := store.ReadCommit(c.Args().Get(0))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "commit\t%s\n", commit.ID)
	fmt.Fprintf(tw, "tree\t%s\n", commit.TreeID)
	if len(commit.Parents) > 0 {
		fmt.Fprintf(tw, "parents\t%s\n", strings.Join(commit.Parents, " "))
	}
	fmt.Fprintf(tw, "author\t%s\n", commit.Identity)
	fmt.Fprintf(tw, "date\t%s\n", commit.When.Format("2006-01-02 15:04:05"))
	return tw.Flush()
}
