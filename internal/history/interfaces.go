package history

import "github.com/okoval/gitgraph/internal/odb"

// CommitReader defines the interface the walker needs from an object
// database. This abstraction allows for easier testing and potential
// alternative implementations.
type CommitReader interface {
	// ReadCommit reads and decodes the commit named by id.
	ReadCommit(id string) (*odb.Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ CommitReader = (*odb.Store)(nil)
	_ CommitReader = (*MockCommitReader)(nil)
)
