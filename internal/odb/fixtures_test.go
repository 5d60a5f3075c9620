package odb

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// initRepo lays out a minimal repository metadata directory with an empty
// object database and HEAD pointing at refs/heads/main.
func initRepo(t *testing.T) (repoDir, gitDir string) {
	t.Helper()

	repoDir = t.TempDir()
	gitDir = filepath.Join(repoDir, ".git")

	if err := os.MkdirAll(filepath.Join(gitDir, "objects"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(HEAD): %v", err)
	}
	return repoDir, gitDir
}

// writeLooseObject deflates "<typ> <len>\x00<payload>" into the object
// database and returns the object's hex identifier.
func writeLooseObject(t *testing.T, gitDir string, typ string, payload []byte) string {
	t.Helper()

	record := append([]byte(fmt.Sprintf("%s %d\x00", typ, len(payload))), payload...)
	sum := sha1.Sum(record)
	id := hex.EncodeToString(sum[:])

	writeRawObject(t, gitDir, id, record)
	return id
}

// writeRawObject deflates arbitrary bytes under the given identifier,
// bypassing header construction so tests can plant corrupt records.
func writeRawObject(t *testing.T, gitDir, id string, record []byte) {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(record); err != nil {
		t.Fatalf("deflate: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("deflate close: %v", err)
	}

	dir := filepath.Join(gitDir, "objects", id[:2])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id[2:]), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// writeTree stores a tree object whose entries reference blobs with the
// given names and returns the tree identifier.
func writeTree(t *testing.T, gitDir string, names ...string) string {
	t.Helper()

	var payload bytes.Buffer
	for _, name := range names {
		blobID := writeLooseObject(t, gitDir, "blob", []byte("content of "+name+"\n"))
		raw, err := hex.DecodeString(blobID)
		if err != nil {
			t.Fatalf("DecodeString: %v", err)
		}
		payload.WriteString("100644 " + name + "\x00")
		payload.Write(raw)
	}
	return writeLooseObject(t, gitDir, "tree", payload.Bytes())
}

// writeCommit stores a commit object and returns its identifier. Author
// timestamps are fixed so decoded dates are deterministic.
func writeCommit(t *testing.T, gitDir, treeID string, parents []string, author string, unix int64) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "tree %s\n", treeID)
	for _, p := range parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "author %s %d +0000\n", author, unix)
	fmt.Fprintf(&b, "committer %s %d +0000\n", author, unix)
	b.WriteString("\ntest commit\n")

	return writeLooseObject(t, gitDir, "commit", []byte(b.String()))
}

// setBranch points refs/heads/main at the given identifier.
func setBranch(t *testing.T, gitDir, id string) {
	t.Helper()

	path := filepath.Join(gitDir, "refs", "heads", "main")
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}
