package overlook

import "errors"

// ErrInvalidDeclaration is returned for declarations that are neither a
// name string nor a recognized name/synonyms pair.
var ErrInvalidDeclaration = errors.New("invalid declaration")
