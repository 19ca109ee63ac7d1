package deploytime

import "errors"

var (
	// ErrUnsupportedKind is returned by a Repository asked for a kind it cannot list.
	ErrUnsupportedKind = errors.New("unsupported object kind")

	ErrListObjects        = errors.New("list objects")
	ErrDiscoverNamespaces = errors.New("discover namespaces")
	ErrNoGenerationPass   = errors.New("no successful generation pass yet")
	ErrStaleSnapshot      = errors.New("generation pass overdue")
)
