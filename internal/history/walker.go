// Package history reconstructs the commit DAG reachable from a branch head
// by following parent links through the raw object database.
package history

import (
	"context"

	"github.com/okoval/gitgraph/internal/odb"
)

// Skip records a single identifier that could not be decoded during a walk,
// together with the cause. Skipped nodes are reported, not silently dropped.
type Skip struct {
	ID  string
	Err error
}

// Walker traverses the parent relation of commits.
type Walker struct {
	reader CommitReader
}

// NewWalker creates a walker reading commits through the given reader.
func NewWalker(reader CommitReader) *Walker {
	return &Walker{reader: reader}
}

// Walk visits every commit reachable from head, decoding each identifier at
// most once, and returns the mapping of successfully decoded commits keyed
// by identifier. A failure to decode a single identifier is recorded as a
// Skip and the traversal continues; only context cancellation aborts the
// walk. The visited set guarantees termination on any DAG, including ones
// with shared ancestors reachable via multiple paths.
func (w *Walker) Walk(ctx context.Context, head string) (map[string]*odb.Commit, []Skip, error) {
	commits := make(map[string]*odb.Commit)
	visited := make(map[string]struct{})
	var skips []Skip

	worklist := []string{head}
	for len(worklist) > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		commit, err := w.reader.ReadCommit(id)
		if err != nil {
			skips = append(skips, Skip{ID: id, Err: err})
			continue
		}

		commits[id] = commit
		worklist = append(worklist, commit.Parents...)
	}

	return commits, skips, nil
}
