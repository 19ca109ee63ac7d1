package deploytime

const (
	// DefaultAppLabel names the application a replica-family controller deploys.
	DefaultAppLabel = "app.kubernetes.io/name"

	// DefaultServerlessLabel names the application a Knative revision belongs to.
	DefaultServerlessLabel = "serving.knative.dev/service"
)

// Object kinds as they appear in owner references and lister calls.
const (
	KindPod                   = "Pod"
	KindReplicationController = "ReplicationController"
	KindReplicaSet            = "ReplicaSet"
	KindConfiguration         = "Configuration"
	KindRevision              = "Revision"
)

// replicatorKinds are listed for every namespace, in this order.
var replicatorKinds = []string{
	KindReplicationController,
	KindReplicaSet,
}

// Generation pass results reported to self metrics.
const (
	passResultSuccess = "success"
	passResultFailure = "failure"
)
