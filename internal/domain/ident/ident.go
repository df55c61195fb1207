// Package ident models storage-assigned identifiers. An entity starts life
// without one; the repository assigns it on first save. "Unpersisted" is a
// first-class state, not a magic zero.
package ident

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("identifier must be positive")

type ID struct {
	value int64
	valid bool
}

func New(v int64) (ID, error) {
	if v <= 0 {
		return ID{}, ErrInvalidID
	}
	return ID{value: v, valid: true}, nil
}

// None is the unpersisted state.
func None() ID {
	return ID{}
}

func (id ID) IsSet() bool {
	return id.valid
}

// Int64 returns the raw identifier. Only meaningful when IsSet.
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) Equal(other ID) bool {
	return id.valid && other.valid && id.value == other.value
}

func (id ID) String() string {
	if !id.valid {
		return "unpersisted"
	}
	return strconv.FormatInt(id.value, 10)
}
