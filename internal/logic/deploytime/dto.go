package deploytime

import "time"

// LabelKeys holds the label keys used to name emitted metrics.
type LabelKeys struct {
	App        string
	Serverless string
}

// OwnerReference points from an object to the object controlling it.
type OwnerReference struct {
	Kind string
	Name string
}

// Pod represents a running pod in the domain layer.
type Pod struct {
	Name            string
	Namespace       string
	OwnerReferences []OwnerReference
	// Images holds container image references in declared order.
	Images []string
}

// Replicator is a replica-family controller: a ReplicationController or a ReplicaSet.
type Replicator struct {
	Kind              string
	Name              string
	Namespace         string
	Labels            map[string]string
	CreationTimestamp time.Time
}

// Revision is one immutable deployed version of a Knative service.
type Revision struct {
	Name              string
	Namespace         string
	Labels            map[string]string
	CreationTimestamp time.Time
	OwnerReferences   []OwnerReference
	// ImageDigest is the digest the serverless layer resolved for the revision image.
	ImageDigest string
}

// DeployTimeMetric records when the live revision of an application was created
// and which image digest it runs.
type DeployTimeMetric struct {
	Name       string            `json:"name"`
	Namespace  string            `json:"namespace"`
	Labels     map[string]string `json:"labels,omitempty"`
	DeployTime time.Time         `json:"deployTime"`
	ImageSHA   string            `json:"imageSha"`
}
