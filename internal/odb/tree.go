package odb

import (
	"bytes"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchMode selects how tree membership is decided.
type MatchMode int

const (
	// MatchLenient checks for the target as a raw byte sequence anywhere in
	// the tree payload. Cheap, but a target like "a.txt" also matches an
	// entry named "ab.txt" or a name embedded in another entry's bytes.
	MatchLenient MatchMode = iota

	// MatchStrict parses the tree entries ("<mode> <name>\x00<20-byte id>")
	// and matches entry names exactly, or as a doublestar glob pattern when
	// the target contains metacharacters.
	MatchStrict
)

// TreeContains reports whether the tree named by treeID references target.
// Only the top-level listing is inspected; entries inside subdirectories
// are not expanded.
func (s *Store) TreeContains(treeID, target string, mode MatchMode) (bool, error) {
	typ, payload, err := s.Read(treeID)
	if err != nil {
		return false, err
	}
	if typ != TypeTree {
		return false, fmt.Errorf("%w: %s is a %s", ErrMalformedTree, treeID, typ)
	}

	if mode == MatchLenient {
		return bytes.Contains(payload, []byte(target)), nil
	}

	names, err := treeEntryNames(treeID, payload)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if name == target {
			return true, nil
		}
		if matched, err := doublestar.Match(target, name); err == nil && matched {
			return true, nil
		}
	}
	return false, nil
}

// treeEntryNames decodes the entry names out of a raw tree payload.
func treeEntryNames(treeID string, payload []byte) ([]string, error) {
	const idLen = 20

	var names []string
	rest := payload
	for len(rest) > 0 {
		sp := bytes.IndexByte(rest, ' ')
		if sp == -1 {
			return nil, fmt.Errorf("%w: %s: entry without mode separator", ErrMalformedTree, treeID)
		}
		nul := bytes.IndexByte(rest[sp+1:], 0)
		if nul == -1 {
			return nil, fmt.Errorf("%w: %s: entry without name terminator", ErrMalformedTree, treeID)
		}
		names = append(names, string(rest[sp+1:sp+1+nul]))

		next := sp + 1 + nul + 1 + idLen
		if next > len(rest) {
			return nil, fmt.Errorf("%w: %s: truncated entry identifier", ErrMalformedTree, treeID)
		}
		rest = rest[next:]
	}
	return names, nil
}
