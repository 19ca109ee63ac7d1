package deploytime_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime/mocks"
)

const (
	fooNS = "foo_ns"
	barNS = "bar_ns"
	bazNS = "baz_ns"

	fooApp = "foo_app"
	barApp = "bar_app"

	fooLabel      = "foo_label"
	fooLabelValue = "test"

	fooRC  = "foo_rc"
	barRS  = "bar_rs"
	fooRev = "foo_rev_1"
	barRev = "bar_rev_1"

	fooRevApp = "foo_serverless_app"
	barRevApp = "bar_serverless_app"

	unknownOwnerKind = "UnknownOwnerKind"
)

var testLabelKeys = deploytime.LabelKeys{
	App:        deploytime.DefaultAppLabel,
	Serverless: deploytime.DefaultServerlessLabel,
}

// fakeRepository returns every object it holds regardless of the namespace
// asked for, so the generator has to filter on its own.
type fakeRepository struct {
	pods        []deploytime.Pod
	replicators []deploytime.Replicator
	revisions   []deploytime.Revision
}

func (f *fakeRepository) ListPodsQuery(_ context.Context, _, _ string) ([]deploytime.Pod, error) {
	return f.pods, nil
}

func (f *fakeRepository) ListReplicatorsQuery(_ context.Context, kind, _ string) ([]deploytime.Replicator, error) {
	switch kind {
	case deploytime.KindReplicationController, deploytime.KindReplicaSet:
	default:
		return nil, fmt.Errorf("%w: %s", deploytime.ErrUnsupportedKind, kind)
	}

	var out []deploytime.Replicator

	for _, r := range f.replicators {
		if r.Kind == kind {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeRepository) ListRevisionsQuery(_ context.Context, _ string) ([]deploytime.Revision, error) {
	return f.revisions, nil
}

func (f *fakeRepository) ListPodNamespacesQuery(_ context.Context, _ string) ([]string, error) {
	seen := map[string]struct{}{}

	var out []string

	for _, p := range f.pods {
		if _, ok := seen[p.Namespace]; ok {
			continue
		}

		seen[p.Namespace] = struct{}{}
		out = append(out, p.Namespace)
	}

	return out, nil
}

func testTime(hour int) time.Time {
	return time.Date(2026, 4, 1, hour, 0, 0, 0, time.UTC)
}

func rc(kind, name, namespace, app string, createdAt time.Time, labels map[string]string) deploytime.Replicator {
	all := map[string]string{deploytime.DefaultAppLabel: app}
	for k, v := range labels {
		all[k] = v
	}

	return deploytime.Replicator{
		Kind:              kind,
		Name:              name,
		Namespace:         namespace,
		Labels:            all,
		CreationTimestamp: createdAt,
	}
}

func ref(kind, name string) deploytime.OwnerReference {
	return deploytime.OwnerReference{Kind: kind, Name: name}
}

func pod(namespace string, refs []deploytime.OwnerReference, images ...string) deploytime.Pod {
	return deploytime.Pod{
		Name:            "pod",
		Namespace:       namespace,
		OwnerReferences: refs,
		Images:          images,
	}
}

func revision(name, app, namespace, imageSHA string, createdAt time.Time) deploytime.Revision {
	return deploytime.Revision{
		Name:              name,
		Namespace:         namespace,
		Labels:            map[string]string{deploytime.DefaultServerlessLabel: app},
		CreationTimestamp: createdAt,
		OwnerReferences:   []deploytime.OwnerReference{ref(deploytime.KindConfiguration, app)},
		ImageDigest:       imageSHA,
	}
}

func newGenerator(repo deploytime.Repository) *deploytime.Generator {
	return deploytime.NewGenerator(slog.Default(), repo, testLabelKeys, "")
}

func TestGenerator_GenerateMetricsQuery_NormalCase(t *testing.T) {
	t.Parallel()

	fooRep := rc(deploytime.KindReplicationController, fooRC, fooNS, fooApp, testTime(1),
		map[string]string{fooLabel: fooLabelValue})
	barRep := rc(deploytime.KindReplicaSet, barRS, barNS, barApp, testTime(2), nil)

	fooRevision := revision(fooRev, fooRevApp, fooNS, testSHAFoo, testTime(3))
	barRevision := revision(barRev, barRevApp, barNS, testSHABar, testTime(4))

	repo := &fakeRepository{
		pods: []deploytime.Pod{
			pod(fooNS, []deploytime.OwnerReference{ref(fooRep.Kind, fooRep.Name)}, testSHAFoo),
			pod(barNS, []deploytime.OwnerReference{ref(barRep.Kind, barRep.Name)}, testSHABar, "I am not a valid sha!"),
			// unsupported owner kind
			pod(fooNS, []deploytime.OwnerReference{ref(unknownOwnerKind, "baz_unknown")}, testSHAFoo),
			// owner we have no entry for
			pod(fooNS, []deploytime.OwnerReference{ref(deploytime.KindReplicationController, "Unknown Rep")}, testSHAFoo),
			// namespace we don't care about
			pod(bazNS, []deploytime.OwnerReference{ref(unknownOwnerKind, "baz_unknown")}, "never matters"),
		},
		replicators: []deploytime.Replicator{fooRep, barRep},
		revisions:   []deploytime.Revision{fooRevision, barRevision},
	}

	got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS, barNS})
	require.NoError(t, err)

	want := []deploytime.DeployTimeMetric{
		{
			Name:       fooApp,
			Namespace:  fooNS,
			Labels:     map[string]string{fooLabel: fooLabelValue, deploytime.DefaultAppLabel: fooApp},
			DeployTime: fooRep.CreationTimestamp,
			ImageSHA:   testSHAFoo,
		},
		{
			Name:       fooRevApp,
			Namespace:  fooNS,
			Labels:     map[string]string{deploytime.DefaultServerlessLabel: fooRevApp},
			DeployTime: fooRevision.CreationTimestamp,
			ImageSHA:   testSHAFoo,
		},
		{
			Name:       barApp,
			Namespace:  barNS,
			Labels:     map[string]string{deploytime.DefaultAppLabel: barApp},
			DeployTime: barRep.CreationTimestamp,
			ImageSHA:   testSHABar,
		},
		{
			Name:       barRevApp,
			Namespace:  barNS,
			Labels:     map[string]string{deploytime.DefaultServerlessLabel: barRevApp},
			DeployTime: barRevision.CreationTimestamp,
			ImageSHA:   testSHABar,
		},
	}

	require.Equal(t, want, got)
}

func TestGenerator_GenerateMetricsQuery_ControllerAndRevision(t *testing.T) {
	t.Parallel()

	fooRep := rc(deploytime.KindReplicationController, fooRC, fooNS, fooApp, testTime(5), nil)
	fooRevision := revision(fooRev, fooRevApp, fooNS, testSHAFoo, testTime(6))

	repo := &fakeRepository{
		pods:        []deploytime.Pod{pod(fooNS, []deploytime.OwnerReference{ref(fooRep.Kind, fooRep.Name)}, testSHAFoo)},
		replicators: []deploytime.Replicator{fooRep},
		revisions:   []deploytime.Revision{fooRevision},
	}

	got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS})
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, fooApp, got[0].Name)
	require.Equal(t, testTime(5), got[0].DeployTime)
	require.Equal(t, fooRevApp, got[1].Name)
	require.Equal(t, testTime(6), got[1].DeployTime)
}

func TestGenerator_GenerateMetricsQuery_SameNameDifferentKinds(t *testing.T) {
	t.Parallel()

	fooRep := rc(deploytime.KindReplicationController, fooRC, fooNS, fooApp, testTime(1),
		map[string]string{fooLabel: fooLabelValue})
	barRep := rc(deploytime.KindReplicaSet, barRS, barNS, barApp, testTime(2), nil)
	quuxRep := rc(deploytime.KindReplicaSet, fooRC, fooNS, "N/A", testTime(3), nil)

	repo := &fakeRepository{
		pods: []deploytime.Pod{
			pod(fooNS, []deploytime.OwnerReference{ref(fooRep.Kind, fooRep.Name)}, testSHAFoo),
			pod(barNS, []deploytime.OwnerReference{ref(barRep.Kind, barRep.Name)}, testSHABar),
			pod(bazNS, nil, "never matters"),
		},
		replicators: []deploytime.Replicator{fooRep, barRep, quuxRep},
	}

	got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS, barNS})
	require.NoError(t, err)

	want := []deploytime.DeployTimeMetric{
		{
			Name:       fooApp,
			Namespace:  fooNS,
			Labels:     map[string]string{fooLabel: fooLabelValue, deploytime.DefaultAppLabel: fooApp},
			DeployTime: fooRep.CreationTimestamp,
			ImageSHA:   testSHAFoo,
		},
		{
			Name:       barApp,
			Namespace:  barNS,
			Labels:     map[string]string{deploytime.DefaultAppLabel: barApp},
			DeployTime: barRep.CreationTimestamp,
			ImageSHA:   testSHABar,
		},
	}

	require.Equal(t, want, got)
}

func TestGenerator_GenerateMetricsQuery_Dedup(t *testing.T) {
	t.Parallel()

	owner := rc(deploytime.KindReplicaSet, "web-5d9f", fooNS, "web", testTime(1), nil)
	other := rc(deploytime.KindReplicaSet, "api-7c4b", fooNS, "api", testTime(2), nil)
	refs := []deploytime.OwnerReference{ref(owner.Kind, owner.Name)}

	repo := &fakeRepository{
		pods: []deploytime.Pod{
			pod(fooNS, refs, "nginx:latest"),
			pod(fooNS, []deploytime.OwnerReference{ref(other.Kind, other.Name)}, testSHA),
			pod(fooNS, refs, "not a sha", "quay.io/org/web@"+testSHAFoo),
			pod(fooNS, refs, testSHABar),
		},
		replicators: []deploytime.Replicator{owner, other},
	}

	got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS})
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "api", got[0].Name)
	require.Equal(t, testSHA, got[0].ImageSHA)
	require.Equal(t, "web", got[1].Name)
	require.Equal(t, testSHAFoo, got[1].ImageSHA)
}

func TestGenerator_GenerateMetricsQuery_Revisions(t *testing.T) {
	t.Parallel()

	valid := revision(fooRev, fooRevApp, fooNS, testSHAFoo, testTime(1))
	pinned := revision("pinned_rev", "pinned_app", fooNS, "quay.io/org/fn@"+testSHABar, testTime(2))
	invalid := revision("invalid_rev", "invalid_app", fooNS, "quay.io/org/fn:latest", testTime(3))
	foreign := revision(barRev, barRevApp, barNS, testSHABar, testTime(4))

	repo := &fakeRepository{
		revisions: []deploytime.Revision{valid, invalid, valid, pinned, foreign},
	}

	got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS})
	require.NoError(t, err)

	want := []deploytime.DeployTimeMetric{
		{
			Name:       fooRevApp,
			Namespace:  fooNS,
			Labels:     valid.Labels,
			DeployTime: valid.CreationTimestamp,
			ImageSHA:   testSHAFoo,
		},
		{
			Name:       "pinned_app",
			Namespace:  fooNS,
			Labels:     pinned.Labels,
			DeployTime: pinned.CreationTimestamp,
			ImageSHA:   testSHABar,
		},
	}

	require.Equal(t, want, got)
}

func TestGenerator_GenerateMetricsQuery_EmptyAndDuplicateNamespaces(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)

	repo.EXPECT().ListPodsQuery(mock.Anything, fooNS, "app=prod").Return(nil, nil).Once()
	repo.EXPECT().ListReplicatorsQuery(mock.Anything, deploytime.KindReplicationController, fooNS).Return(nil, nil).Once()
	repo.EXPECT().ListReplicatorsQuery(mock.Anything, deploytime.KindReplicaSet, fooNS).Return(nil, nil).Once()
	repo.EXPECT().ListRevisionsQuery(mock.Anything, fooNS).Return(nil, nil).Once()

	gen := deploytime.NewGenerator(slog.Default(), repo, testLabelKeys, "app=prod")

	got, err := gen.GenerateMetricsQuery(t.Context(), []string{fooNS, "", fooNS})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGenerator_GenerateMetricsQuery_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported kind aborts the pass", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)

		repo.EXPECT().ListPodsQuery(mock.Anything, fooNS, "").Return(nil, nil).Maybe()
		repo.EXPECT().ListRevisionsQuery(mock.Anything, fooNS).Return(nil, nil).Maybe()
		repo.EXPECT().ListReplicatorsQuery(mock.Anything, deploytime.KindReplicationController, fooNS).
			Return(nil, fmt.Errorf("%w: %s", deploytime.ErrUnsupportedKind, deploytime.KindReplicationController)).
			Once()
		repo.EXPECT().ListReplicatorsQuery(mock.Anything, deploytime.KindReplicaSet, fooNS).Return(nil, nil).Maybe()

		got, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS, barNS})
		require.ErrorIs(t, err, deploytime.ErrUnsupportedKind)
		require.ErrorIs(t, err, deploytime.ErrListObjects)
		require.Nil(t, got)
	})

	t.Run("pod list error aborts the pass", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRepository(t)

		repo.EXPECT().ListPodsQuery(mock.Anything, fooNS, "").Return(nil, context.DeadlineExceeded).Once()
		repo.EXPECT().ListRevisionsQuery(mock.Anything, fooNS).Return(nil, nil).Maybe()
		repo.EXPECT().ListReplicatorsQuery(mock.Anything, mock.Anything, fooNS).Return(nil, nil).Maybe()

		_, err := newGenerator(repo).GenerateMetricsQuery(t.Context(), []string{fooNS})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
