package k8s

import (
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

func toDomainPod(pod *corev1.Pod) deploytime.Pod {
	images := make([]string, 0, len(pod.Spec.Containers))
	for i := range pod.Spec.Containers {
		images = append(images, pod.Spec.Containers[i].Image)
	}

	return deploytime.Pod{
		Name:            pod.Name,
		Namespace:       pod.Namespace,
		OwnerReferences: toDomainOwnerReferences(pod.OwnerReferences),
		Images:          images,
	}
}

func toDomainOwnerReferences(refs []metav1.OwnerReference) []deploytime.OwnerReference {
	if len(refs) == 0 {
		return nil
	}

	out := make([]deploytime.OwnerReference, 0, len(refs))
	for i := range refs {
		out = append(out, deploytime.OwnerReference{
			Kind: refs[i].Kind,
			Name: refs[i].Name,
		})
	}

	return out
}

func toDomainReplicator(kind string, meta *metav1.ObjectMeta) deploytime.Replicator {
	return deploytime.Replicator{
		Kind:              kind,
		Name:              meta.Name,
		Namespace:         meta.Namespace,
		Labels:            meta.Labels,
		CreationTimestamp: meta.CreationTimestamp.Time,
	}
}

func toDomainRevision(
	ctx context.Context,
	logger *slog.Logger,
	item *unstructured.Unstructured,
) deploytime.Revision {
	return deploytime.Revision{
		Name:              item.GetName(),
		Namespace:         item.GetNamespace(),
		Labels:            item.GetLabels(),
		CreationTimestamp: item.GetCreationTimestamp().Time,
		OwnerReferences:   toDomainOwnerReferences(item.GetOwnerReferences()),
		ImageDigest:       revisionImageDigest(ctx, logger, item),
	}
}

// revisionImageDigest reads status.imageDigest, falling back to the first
// status.containerStatuses entry that carries one.
func revisionImageDigest(
	ctx context.Context,
	logger *slog.Logger,
	item *unstructured.Unstructured,
) string {
	imageDigest, found, err := unstructured.NestedString(item.Object, "status", "imageDigest")
	if err != nil {
		logger.DebugContext(ctx, "malformed revision image digest",
			"revision", item.GetName(),
			"namespace", item.GetNamespace(),
			"reason", err,
		)
	}

	if found && imageDigest != "" {
		return imageDigest
	}

	statuses, found, err := unstructured.NestedSlice(item.Object, "status", "containerStatuses")
	if err != nil || !found {
		return ""
	}

	for _, status := range statuses {
		fields, ok := status.(map[string]any)
		if !ok {
			continue
		}

		if d, ok := fields["imageDigest"].(string); ok && d != "" {
			return d
		}
	}

	return ""
}
