// Package graph filters a walked commit set by file membership and renders
// the survivors, with their parent edges, as a graph description.
package graph

import (
	"sort"

	"github.com/okoval/gitgraph/internal/history"
	"github.com/okoval/gitgraph/internal/odb"
)

const nodeDateLayout = "2006-01-02 15:04:05"

// Node is a single retained commit in the rendered graph.
type Node struct {
	ID      string `json:"id"`
	ShortID string `json:"short_id"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// Edge points from a commit to one of its parents. The direction is always
// commit -> parent: a child derives from its ancestor.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the filtered commit graph, ready for rendering. Nodes and edges
// are sorted by identifier so output is deterministic.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ContainsFunc decides whether the tree named by treeID references the
// target file.
type ContainsFunc func(treeID string) (bool, error)

// Build keeps every commit whose tree passes the membership check and
// reconstructs the parent edges between the survivors. Edges to parents
// outside the retained set are still emitted; such a parent then appears in
// the output without a label declaration of its own. A membership check
// failure excludes the commit and is recorded as a skip.
func Build(commits map[string]*odb.Commit, contains ContainsFunc) (*Graph, []history.Skip) {
	ids := make([]string, 0, len(commits))
	for id := range commits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := &Graph{}
	var skips []history.Skip

	for _, id := range ids {
		c := commits[id]

		ok, err := contains(c.TreeID)
		if err != nil {
			skips = append(skips, history.Skip{ID: id, Err: err})
			continue
		}
		if !ok {
			continue
		}

		g.Nodes = append(g.Nodes, Node{
			ID:      c.ID,
			ShortID: c.ShortID(),
			Author:  c.Author,
			Date:    c.When.Format(nodeDateLayout),
		})
		for _, parent := range c.Parents {
			g.Edges = append(g.Edges, Edge{From: c.ID, To: parent})
		}
	}

	sort.Slice(g.Edges, func(i, j int) bool {
		if g.Edges[i].From != g.Edges[j].From {
			return g.Edges[i].From < g.Edges[j].From
		}
		return g.Edges[i].To < g.Edges[j].To
	})

	return g, skips
}

// shortID abbreviates a full identifier the same way nodes do.
func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
