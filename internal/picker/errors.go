package picker

import "fmt"

// MissingContainerError reports that the configured container element was
// absent at construction. Fatal: the widget cannot be built without it.
type MissingContainerError struct {
	ContainerID string
}

func (e MissingContainerError) Error() string {
	return fmt.Sprintf("font picker container %q not found in document", e.ContainerID)
}

// DuplicateFontError reports an addFont precondition violation: the family
// is already present in the catalog.
type DuplicateFontError struct {
	Family string
}

func (e DuplicateFontError) Error() string {
	return fmt.Sprintf("font %q is already in the catalog", e.Family)
}

// EntryNotFoundError reports that no rendered entry exists for the family.
// After initial load this signals caller/model desynchronization.
type EntryNotFoundError struct {
	Family string
}

func (e EntryNotFoundError) Error() string {
	return fmt.Sprintf("no rendered entry for font %q", e.Family)
}

// CatalogFetchError wraps a failed catalog fetch. It is absorbed during
// bootstrap and surfaces only through the status icon and the log.
type CatalogFetchError struct {
	Err error
}

func (e CatalogFetchError) Error() string {
	return fmt.Sprintf("catalog fetch failed: %v", e.Err)
}

func (e CatalogFetchError) Unwrap() error {
	return e.Err
}
