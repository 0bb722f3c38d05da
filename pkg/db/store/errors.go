package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a unique name constraint
	ErrConflict = errors.New("name already exists")

	// ErrInUse is returned when deleting an entity that products still reference
	ErrInUse = errors.New("still referenced by products")
)

// FilterError reports an invalid filter combination. It is detected
// before any storage access and maps to a client usage error.
type FilterError struct {
	Detail string
}

func (e *FilterError) Error() string {
	return e.Detail
}

// MissingIDsError reports association candidate ids that do not exist
// in the referenced entity table. IDs are sorted for stable messages.
type MissingIDsError struct {
	Kind string
	IDs  []uint
}

func (e *MissingIDsError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("some %s not found: [%s]", e.Kind, strings.Join(parts, ", "))
}

// MissingRefError reports a brand or category reference that does not
// exist.
type MissingRefError struct {
	Kind string
	ID   uint
}

func (e *MissingRefError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func newMissingIDsError(kind string, ids []uint) *MissingIDsError {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return &MissingIDsError{Kind: kind, IDs: ids}
}

// translate maps GORM errors onto the store's error taxonomy. The
// sqlite driver translates UNIQUE violations to gorm.ErrDuplicatedKey,
// so concurrent creates with the same name conflict on the constraint
// itself rather than on a prior read.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
