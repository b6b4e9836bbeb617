package importer

import (
	"errors"
	"fmt"
)

var ErrNoIDsConfigured = errors.New("no recipe id source configured")

// ExternalFetchError reports that the record with the given id could not be
// retrieved from the provider.
type ExternalFetchError struct {
	ID  string
	Err error
}

func (e *ExternalFetchError) Error() string {
	return fmt.Sprintf("fetching external recipe %q: %v", e.ID, e.Err)
}

func (e *ExternalFetchError) Unwrap() error {
	return e.Err
}
