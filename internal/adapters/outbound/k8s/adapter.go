package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

// RevisionGVR is the Knative Serving revision resource.
var RevisionGVR = schema.GroupVersionResource{
	Group:    "serving.knative.dev",
	Version:  "v1",
	Resource: "revisions",
}

type adapter struct {
	logger        *slog.Logger
	clientset     kubernetes.Interface
	dynamicClient dynamic.Interface
}

// New creates a new K8s adapter. An empty namespace lists across all namespaces.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
) deploytime.Repository {
	return &adapter{
		logger:        logger,
		clientset:     clientset,
		dynamicClient: dynamicClient,
	}
}

var _ deploytime.Repository = (*adapter)(nil)

func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]deploytime.Pod, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	pods := make([]deploytime.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) ListReplicatorsQuery(
	ctx context.Context,
	kind,
	namespace string,
) ([]deploytime.Replicator, error) {
	switch kind {
	case deploytime.KindReplicationController:
		list, err := a.clientset.CoreV1().ReplicationControllers(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("list replication controllers: %w", err)
		}

		replicators := make([]deploytime.Replicator, 0, len(list.Items))
		for i := range list.Items {
			replicators = append(replicators, toDomainReplicator(kind, &list.Items[i].ObjectMeta))
		}

		return replicators, nil
	case deploytime.KindReplicaSet:
		list, err := a.clientset.AppsV1().ReplicaSets(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("list replica sets: %w", err)
		}

		replicators := make([]deploytime.Replicator, 0, len(list.Items))
		for i := range list.Items {
			replicators = append(replicators, toDomainReplicator(kind, &list.Items[i].ObjectMeta))
		}

		return replicators, nil
	default:
		return nil, fmt.Errorf("list %q: %w", kind, deploytime.ErrUnsupportedKind)
	}
}

// ListRevisionsQuery lists Knative revisions. A cluster without Knative
// Serving has no revisions rather than failing every pass.
func (a *adapter) ListRevisionsQuery(
	ctx context.Context,
	namespace string,
) ([]deploytime.Revision, error) {
	list, err := a.dynamicClient.Resource(RevisionGVR).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			a.logger.DebugContext(ctx, "revision resource not found, serverless layer not installed",
				"namespace", namespace,
			)

			return nil, nil
		}

		return nil, fmt.Errorf("list revisions: %w", err)
	}

	revisions := make([]deploytime.Revision, 0, len(list.Items))
	for i := range list.Items {
		revisions = append(revisions, toDomainRevision(ctx, a.logger, &list.Items[i]))
	}

	return revisions, nil
}

func (a *adapter) ListPodNamespacesQuery(
	ctx context.Context,
	labelSelector string,
) ([]string, error) {
	podList, err := a.clientset.CoreV1().Pods("").List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	namespaces := make(map[string]struct{})
	for i := range podList.Items {
		namespaces[podList.Items[i].Namespace] = struct{}{}
	}

	return slices.Sorted(maps.Keys(namespaces)), nil
}
