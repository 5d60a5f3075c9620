package history

import (
	"fmt"

	"github.com/okoval/gitgraph/internal/odb"
)

// MockCommitReader is a test double for the object database. It allows
// tests to provide predefined commits without needing a real repository.
type MockCommitReader struct {
	Commits map[string]*odb.Commit
	Errs    map[string]error

	// Reads counts ReadCommit calls per identifier, for asserting the
	// at-most-once visitation guarantee.
	Reads map[string]int
}

// NewMockCommitReader creates a mock over the given commits.
func NewMockCommitReader(commits ...*odb.Commit) *MockCommitReader {
	m := &MockCommitReader{
		Commits: make(map[string]*odb.Commit),
		Errs:    make(map[string]error),
		Reads:   make(map[string]int),
	}
	for _, c := range commits {
		m.Commits[c.ID] = c
	}
	return m
}

// ReadCommit returns the predefined commit or error for id.
func (m *MockCommitReader) ReadCommit(id string) (*odb.Commit, error) {
	m.Reads[id]++
	if err, ok := m.Errs[id]; ok {
		return nil, err
	}
	if c, ok := m.Commits[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", odb.ErrObjectNotFound, id)
}
