package manga1000

import (
	"errors"
	"fmt"
)

var (
	// ErrStructureUnrecognized means a selector the parser depends on matched
	// nothing, so the page layout is not the one this source understands.
	ErrStructureUnrecognized = errors.New("page structure unrecognized")

	// ErrMarkerNotFound means an embedded data island was missing from the page.
	ErrMarkerNotFound = errors.New("data marker not found")
)

type HTTPStatusError struct {
	URL    string
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Status)
}

func structureError(what string) error {
	return fmt.Errorf("%w: %s", ErrStructureUnrecognized, what)
}
