package gen

import (
	"errors"
)

// ErrEmptyCatalog means a required reference catalog (customers, vendors or
// products) has no entries. Order generation cannot proceed and the whole
// run aborts; there is no partial-generation recovery.
var ErrEmptyCatalog = errors.New("reference catalog is empty")
