package odb

import (
	"bytes"
	"fmt"
	"strconv"
)

// ObjectType is the tag declared in a loose object header.
type ObjectType string

const (
	TypeCommit ObjectType = "commit"
	TypeTree   ObjectType = "tree"
	TypeBlob   ObjectType = "blob"
)

// parseObject splits an inflated loose-object record into its declared type
// and payload. Records have the shape "<type> <length>\x00<payload>" where
// length is the payload size in bytes. The declared length must match the
// actual payload length.
func parseObject(data []byte) (ObjectType, []byte, error) {
	nul := bytes.IndexByte(data, 0)
	if nul == -1 {
		return "", nil, fmt.Errorf("%w: missing header terminator", ErrCorruptObject)
	}

	header := data[:nul]
	payload := data[nul+1:]

	sp := bytes.IndexByte(header, ' ')
	if sp == -1 {
		return "", nil, fmt.Errorf("%w: malformed header %q", ErrCorruptObject, header)
	}

	size, err := strconv.Atoi(string(header[sp+1:]))
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid length in header %q", ErrCorruptObject, header)
	}
	if size != len(payload) {
		return "", nil, fmt.Errorf("%w: declared length %d, payload length %d", ErrCorruptObject, size, len(payload))
	}

	typ := ObjectType(header[:sp])
	switch typ {
	case TypeCommit, TypeTree, TypeBlob:
		return typ, payload, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, typ)
	}
}
