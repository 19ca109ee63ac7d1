package deploytime

import (
	"maps"
	"time"
)

// ownerVariant is the closed set of owner kinds the resolver understands.
type ownerVariant int

const (
	ownerUnmodeled ownerVariant = iota
	ownerReplicationController
	ownerReplicaSet
	ownerConfiguration
)

// ownerVariants maps owner reference kinds to variants. Kinds missing here are unmodeled.
var ownerVariants = map[string]ownerVariant{
	KindReplicationController: ownerReplicationController,
	KindReplicaSet:            ownerReplicaSet,
	KindConfiguration:         ownerConfiguration,
}

func variantOf(kind string) ownerVariant {
	return ownerVariants[kind]
}

// ownerKey identifies a deploying owner. Kind is part of the key so that
// controllers of different kinds sharing a name never shadow each other.
type ownerKey struct {
	kind      string
	namespace string
	name      string
}

type owner struct {
	key       ownerKey
	app       string
	labels    map[string]string
	createdAt time.Time
}

func (o owner) metric(namespace, imageSHA string) DeployTimeMetric {
	return DeployTimeMetric{
		Name:       o.app,
		Namespace:  namespace,
		Labels:     maps.Clone(o.labels),
		DeployTime: o.createdAt,
		ImageSHA:   imageSHA,
	}
}

// ownerIndex resolves owner references of one namespace. It is built once per
// namespace per generation pass.
type ownerIndex struct {
	labels      LabelKeys
	namespace   string
	replicators map[ownerKey]*Replicator
}

func newOwnerIndex(
	labels LabelKeys,
	namespace string,
	replicators []Replicator,
) *ownerIndex {
	idx := &ownerIndex{
		labels:      labels,
		namespace:   namespace,
		replicators: make(map[ownerKey]*Replicator, len(replicators)),
	}

	for i := range replicators {
		r := &replicators[i]
		if r.Namespace != namespace {
			continue
		}

		if variantOf(r.Kind) == ownerUnmodeled {
			continue
		}

		key := ownerKey{kind: r.Kind, namespace: r.Namespace, name: r.Name}
		if _, exists := idx.replicators[key]; exists {
			continue
		}

		idx.replicators[key] = r
	}

	return idx
}

// resolvePod returns the replica-family controller owning the pod.
// Owner references are tried in order and the first one that resolves wins;
// unmodeled kinds and dangling references are skipped.
func (idx *ownerIndex) resolvePod(pod *Pod) (owner, bool) {
	for _, ref := range pod.OwnerReferences {
		switch variantOf(ref.Kind) {
		case ownerReplicationController, ownerReplicaSet:
			r, ok := idx.replicators[ownerKey{kind: ref.Kind, namespace: pod.Namespace, name: ref.Name}]
			if !ok {
				continue
			}

			return idx.replicatorOwner(r), true
		case ownerConfiguration, ownerUnmodeled:
			// serverless workloads are reported from their revisions
			continue
		}
	}

	return owner{}, false
}

func (idx *ownerIndex) replicatorOwner(r *Replicator) owner {
	app, ok := r.Labels[idx.labels.App]
	if !ok || app == "" {
		app = r.Name
	}

	return owner{
		key:       ownerKey{kind: r.Kind, namespace: r.Namespace, name: r.Name},
		app:       app,
		labels:    r.Labels,
		createdAt: r.CreationTimestamp,
	}
}

// resolveRevision returns the deploying identity of a revision. A revision
// carries everything needed, so its Configuration owner only serves as the
// application name fallback when the serverless label is absent.
func (idx *ownerIndex) resolveRevision(rev *Revision) owner {
	app := rev.Labels[idx.labels.Serverless]

	if app == "" {
		for _, ref := range rev.OwnerReferences {
			if variantOf(ref.Kind) == ownerConfiguration {
				app = ref.Name

				break
			}
		}
	}

	if app == "" {
		app = rev.Name
	}

	return owner{
		key:       ownerKey{kind: KindRevision, namespace: rev.Namespace, name: rev.Name},
		app:       app,
		labels:    rev.Labels,
		createdAt: rev.CreationTimestamp,
	}
}
