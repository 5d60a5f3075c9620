// Package odb reads loose objects out of a Git object database directly,
// without going through a history API. Only individually stored (loose)
// objects are supported; packfiles are out of scope.
package odb

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Store reads loose objects from a repository's object database.
type Store struct {
	gitDir string
}

// Open validates the object database layout under repoPath and returns a
// store rooted there. Both work trees (repoPath/.git) and bare layouts
// (repoPath itself holding HEAD and objects/) are accepted.
func Open(repoPath string) (*Store, error) {
	for _, dir := range []string{filepath.Join(repoPath, ".git"), repoPath} {
		if hasObjectDatabase(dir) {
			return &Store{gitDir: dir}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
}

func hasObjectDatabase(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, "objects")); err != nil || !info.IsDir() {
		return false
	}
	if _, err := os.Stat(filepath.Join(dir, "HEAD")); err != nil {
		return false
	}
	return true
}

// GitDir returns the resolved repository metadata directory.
func (s *Store) GitDir() string {
	return s.gitDir
}

// Read locates the loose object named by the given hex identifier, inflates
// it and returns its declared type and payload.
func (s *Store) Read(id string) (ObjectType, []byte, error) {
	if !validID(id) {
		return "", nil, fmt.Errorf("%w: invalid identifier %q", ErrObjectNotFound, id)
	}

	path := filepath.Join(s.gitDir, "objects", id[:2], id[2:])
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
		}
		return "", nil, err
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: inflate: %v", ErrCorruptObject, id, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: inflate: %v", ErrCorruptObject, id, err)
	}

	typ, payload, err := parseObject(data)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", id, err)
	}
	return typ, payload, nil
}

// ReadCommit reads the object named by id and decodes it as a commit.
func (s *Store) ReadCommit(id string) (*Commit, error) {
	typ, payload, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	if typ != TypeCommit {
		return nil, fmt.Errorf("%w: %s is a %s", ErrMalformedCommit, id, typ)
	}
	return DecodeCommit(id, payload)
}

// ResolveHead reads HEAD and follows "ref: <path>" indirections until a
// concrete object identifier is found. Failure here is fatal for a
// traversal: without a start point there is nothing to walk.
func (s *Store) ResolveHead() (string, error) {
	const maxDepth = 10

	ref := "HEAD"
	for i := 0; i < maxDepth; i++ {
		data, err := os.ReadFile(filepath.Join(s.gitDir, filepath.FromSlash(ref)))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", ref, err)
		}

		line := strings.TrimSpace(string(data))
		if target, ok := strings.CutPrefix(line, "ref: "); ok {
			ref = strings.TrimSpace(target)
			continue
		}
		if !validID(line) {
			return "", fmt.Errorf("%s does not contain a valid object identifier: %q", ref, line)
		}
		return line, nil
	}
	return "", fmt.Errorf("too many levels of ref indirection resolving HEAD")
}

// validID reports whether id is a 40-character hex object identifier.
func validID(id string) bool {
	if len(id) != 40 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
