package deploytime

import (
	"context"
	"time"
)

// Repository is the port interface for listing cluster objects.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Pod, error)

	// ListReplicatorsQuery lists controllers of the given replica-family kind.
	// Any other kind fails with ErrUnsupportedKind.
	ListReplicatorsQuery(
		ctx context.Context,
		kind,
		namespace string,
	) ([]Replicator, error)

	ListRevisionsQuery(
		ctx context.Context,
		namespace string,
	) ([]Revision, error)

	// ListPodNamespacesQuery returns the distinct namespaces of pods matching the selector.
	ListPodNamespacesQuery(
		ctx context.Context,
		labelSelector string,
	) ([]string, error)
}

type schedule interface {
	Next(after time.Time) time.Time
}
