package store

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arangodb/go-driver/v2/arangodb/shared"
)

// ArangoDB error number for a unique-index violation.
const errNumUniqueConstraintViolated = 1210

// translateArangoError maps driver errors to the store's typed errors so
// nothing above this layer dispatches on storage-engine error codes.
func translateArangoError(err error) error {
	var aerr shared.ArangoError
	if errors.As(err, &aerr) {
		if aerr.ErrorNum == errNumUniqueConstraintViolated {
			return ErrConflict
		}
		if aerr.Code == http.StatusNotFound {
			return ErrNotFound
		}
	}
	return err
}

// docKey renders an entity id as an ArangoDB document key.
func docKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
