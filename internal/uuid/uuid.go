// Package uuid makes google/uuid bindable from URI and query parameters.
package uuid

import (
	"errors"
	"fmt"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

// UUID is a google/uuid UUID that gin can bind path and query parameters to.
type UUID struct {
	google_uuid.UUID
}

// UnmarshalParam parses a path or query parameter. An empty parameter is the
// nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = UUID{}
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalid, p)
	}

	*u = UUID{parsed}
	return nil
}
