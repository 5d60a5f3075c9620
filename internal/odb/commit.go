package odb

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Commit holds the decoded header fields of a commit object. The commit
// message is not retained. Commits are immutable after decoding.
type Commit struct {
	ID       string
	TreeID   string
	Parents  []string
	Author   string    // author name only
	Identity string    // raw "name <email>" for display
	When     time.Time // author timestamp, resolved to UTC
}

// IsMerge reports whether the commit has more than one parent.
func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// ShortID returns the abbreviated identifier used for graph node names.
func (c *Commit) ShortID() string {
	return c.ID[:7]
}

// DecodeCommit parses a commit payload: newline-separated header lines up to
// the first blank line, followed by the free-text message. Recognized
// headers are "tree" (required, exactly one), "parent" (zero or more) and
// "author" (required, exactly one); anything else is ignored.
func DecodeCommit(id string, payload []byte) (*Commit, error) {
	c := &Commit{ID: id}

	for _, line := range strings.Split(string(payload), "\n") {
		if line == "" {
			break
		}
		switch {
		case strings.HasPrefix(line, "tree "):
			if c.TreeID != "" {
				return nil, fmt.Errorf("%w: %s: duplicate tree header", ErrMalformedCommit, id)
			}
			c.TreeID = strings.TrimPrefix(line, "tree ")

		case strings.HasPrefix(line, "parent "):
			c.Parents = append(c.Parents, strings.TrimPrefix(line, "parent "))

		case strings.HasPrefix(line, "author "):
			if c.Author != "" {
				return nil, fmt.Errorf("%w: %s: duplicate author header", ErrMalformedCommit, id)
			}
			identity, when, err := parseAuthor(strings.TrimPrefix(line, "author "))
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformedCommit, id, err)
			}
			c.Identity = identity
			c.Author = authorName(identity)
			c.When = when
		}
	}

	if c.TreeID == "" {
		return nil, fmt.Errorf("%w: %s: missing tree header", ErrMalformedCommit, id)
	}
	if c.Author == "" {
		return nil, fmt.Errorf("%w: %s: missing author header", ErrMalformedCommit, id)
	}
	return c, nil
}

// parseAuthor splits an author value of the shape
// "name <email> <unix-timestamp> <timezone-offset>" into the identity part
// and the timestamp resolved to UTC. The trailing two tokens are split off
// from the right; a value that does not match the shape is rejected rather
// than guessed at.
func parseAuthor(value string) (string, time.Time, error) {
	tzIdx := strings.LastIndexByte(value, ' ')
	if tzIdx == -1 {
		return "", time.Time{}, fmt.Errorf("author line %q has no timestamp fields", value)
	}
	tsIdx := strings.LastIndexByte(value[:tzIdx], ' ')
	if tsIdx == -1 {
		return "", time.Time{}, fmt.Errorf("author line %q has no timestamp fields", value)
	}

	identity := value[:tsIdx]
	ts := value[tsIdx+1 : tzIdx]
	tz := value[tzIdx+1:]

	if !strings.HasSuffix(identity, ">") || !strings.Contains(identity, "<") {
		return "", time.Time{}, fmt.Errorf("author identity %q is not of the form name <email>", identity)
	}
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return "", time.Time{}, fmt.Errorf("author timezone %q is not of the form +hhmm", tz)
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("author timestamp %q is not an integer", ts)
	}

	return identity, time.Unix(unix, 0).UTC(), nil
}

// authorName strips the "<email>" part off an identity string.
func authorName(identity string) string {
	if idx := strings.Index(identity, " <"); idx != -1 {
		return identity[:idx]
	}
	return identity
}
