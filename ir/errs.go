package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is wrapped by every DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrPositionOutOfRange is wrapped by every PositionError.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrCompareState is wrapped by every CompareStateError.
	ErrCompareState = errors.New("missing comparison key")
)

// DuplicateNameError reports a rejected AddChild or AddQualifier whose name
// collides with an existing sibling.
type DuplicateNameError struct {
	Name      string
	Qualifier bool // collision among qualifiers rather than children
}

func (e *DuplicateNameError) Error() string {
	if e.Qualifier {
		return fmt.Sprintf("duplicate qualifier name %q", e.Name)
	}
	return fmt.Sprintf("duplicate child name %q", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// PositionError reports a 1-based position outside the valid range of a
// child or qualifier sequence.
type PositionError struct {
	Pos       int
	Count     int
	Qualifier bool
}

func (e *PositionError) Error() string {
	coll := "children"
	if e.Qualifier {
		coll = "qualifiers"
	}
	return fmt.Sprintf("position %d out of range for %d %s", e.Pos, e.Count, coll)
}

func (e *PositionError) Unwrap() error { return ErrPositionOutOfRange }

// CompareStateError reports a node subject to sorting that lacks the key
// field its kind requires: a schema node without a value, or any other node
// without a name. It signals a malformed tree rather than a usage bug.
type CompareStateError struct {
	Schema bool
}

func (e *CompareStateError) Error() string {
	if e.Schema {
		return "cannot sort schema node with no value"
	}
	return "cannot sort node with no name"
}

func (e *CompareStateError) Unwrap() error { return ErrCompareState }
