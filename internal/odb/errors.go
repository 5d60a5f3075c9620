package odb

import "errors"

// Sentinel errors for object database failures. Callers distinguish fatal
// conditions (ErrNotARepository) from per-object ones with errors.Is; the
// per-object kinds are recoverable during a history walk.
var (
	ErrNotARepository    = errors.New("not a git repository")
	ErrObjectNotFound    = errors.New("object not found")
	ErrCorruptObject     = errors.New("corrupt object")
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrMalformedCommit   = errors.New("malformed commit")
	ErrMalformedTree     = errors.New("malformed tree")
)
