package deploytime

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Generator correlates pods, replica-family controllers and revisions into
// deploy time metrics. It holds no state between passes.
type Generator struct {
	logger           *slog.Logger
	repo             Repository
	labels           LabelKeys
	podLabelSelector string
}

// NewGenerator creates a new metric generator. podLabelSelector optionally
// restricts the pods considered, e.g. to production workloads.
func NewGenerator(
	logger *slog.Logger,
	repo Repository,
	labels LabelKeys,
	podLabelSelector string,
) *Generator {
	return &Generator{
		logger:           logger,
		repo:             repo,
		labels:           labels,
		podLabelSelector: podLabelSelector,
	}
}

// namespaceSnapshot is everything listed for one namespace in one pass.
type namespaceSnapshot struct {
	namespace   string
	pods        []Pod
	replicators []Replicator
	revisions   []Revision
}

// GenerateMetricsQuery runs one generation pass over the given namespaces.
// Namespaces are processed in order; within a namespace, controller metrics
// come first in the order their pods were listed, followed by revision metrics.
// Any lister failure aborts the pass.
func (g *Generator) GenerateMetricsQuery(
	ctx context.Context,
	namespaces []string,
) ([]DeployTimeMetric, error) {
	logger := g.logger.With("controller", "GenerateMetricsQuery")

	var result []DeployTimeMetric

	seen := make(map[string]struct{}, len(namespaces))

	for _, namespace := range namespaces {
		if namespace == "" {
			logger.DebugContext(ctx, "empty namespace name, skipping")

			continue
		}

		if _, ok := seen[namespace]; ok {
			continue
		}

		seen[namespace] = struct{}{}

		snapshot, err := g.listNamespace(ctx, namespace)
		if err != nil {
			return nil, fmt.Errorf("namespace %s: %w", namespace, err)
		}

		result = append(result, g.correlate(ctx, logger, snapshot)...)
	}

	return result, nil
}

// listNamespace fetches all object kinds of a namespace concurrently and
// returns only once every list has completed.
func (g *Generator) listNamespace(
	ctx context.Context,
	namespace string,
) (*namespaceSnapshot, error) {
	snapshot := &namespaceSnapshot{namespace: namespace}
	replicators := make([][]Replicator, len(replicatorKinds))

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		pods, err := g.repo.ListPodsQuery(egCtx, namespace, g.podLabelSelector)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrListObjects, KindPod, err)
		}

		snapshot.pods = pods

		return nil
	})

	for i, kind := range replicatorKinds {
		eg.Go(func() error {
			items, err := g.repo.ListReplicatorsQuery(egCtx, kind, namespace)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrListObjects, kind, err)
			}

			replicators[i] = items

			return nil
		})
	}

	eg.Go(func() error {
		revisions, err := g.repo.ListRevisionsQuery(egCtx, namespace)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrListObjects, KindRevision, err)
		}

		snapshot.revisions = revisions

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, items := range replicators {
		snapshot.replicators = append(snapshot.replicators, items...)
	}

	return snapshot, nil
}

func (g *Generator) correlate(
	ctx context.Context,
	logger *slog.Logger,
	snapshot *namespaceSnapshot,
) []DeployTimeMetric {
	logger = logger.With("namespace", snapshot.namespace)
	index := newOwnerIndex(g.labels, snapshot.namespace, snapshot.replicators)
	emitted := make(map[ownerKey]struct{})
	result := make([]DeployTimeMetric, 0)

	for i := range snapshot.pods {
		pod := &snapshot.pods[i]

		if pod.Namespace != snapshot.namespace {
			logger.DebugContext(ctx, "pod listed outside of namespace, skipping",
				"pod", pod.Name,
				"podNamespace", pod.Namespace,
			)

			continue
		}

		imageSHA, ok := firstDigest(pod.Images)
		if !ok {
			logger.DebugContext(ctx, "pod has no image digest, skipping", "pod", pod.Name)

			continue
		}

		podOwner, ok := index.resolvePod(pod)
		if !ok {
			logger.DebugContext(ctx, "pod owner not resolved, skipping", "pod", pod.Name)

			continue
		}

		if _, done := emitted[podOwner.key]; done {
			continue
		}

		emitted[podOwner.key] = struct{}{}
		result = append(result, podOwner.metric(pod.Namespace, imageSHA))
	}

	for i := range snapshot.revisions {
		rev := &snapshot.revisions[i]

		if rev.Namespace != snapshot.namespace {
			logger.DebugContext(ctx, "revision listed outside of namespace, skipping",
				"revision", rev.Name,
				"revisionNamespace", rev.Namespace,
			)

			continue
		}

		imageSHA, ok := ImageDigest(rev.ImageDigest)
		if !ok {
			logger.DebugContext(ctx, "revision has no valid image digest, skipping", "revision", rev.Name)

			continue
		}

		revOwner := index.resolveRevision(rev)
		if _, done := emitted[revOwner.key]; done {
			continue
		}

		emitted[revOwner.key] = struct{}{}
		result = append(result, revOwner.metric(rev.Namespace, imageSHA))
	}

	logger.DebugContext(ctx, "namespace correlated",
		"pods", len(snapshot.pods),
		"replicators", len(snapshot.replicators),
		"revisions", len(snapshot.revisions),
		"metrics", len(result),
	)

	return result
}
