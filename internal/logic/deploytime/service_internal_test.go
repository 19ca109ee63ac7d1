package deploytime

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedSchedule struct {
	every time.Duration
}

// Next returns the zero time when every is zero, like a cron spec that never fires.
func (f fixedSchedule) Next(after time.Time) time.Time {
	if f.every == 0 {
		return time.Time{}
	}

	return after.Add(f.every)
}

type countingRepository struct {
	listed atomic.Int32
}

func (c *countingRepository) ListPodsQuery(context.Context, string, string) ([]Pod, error) {
	c.listed.Add(1)

	return nil, nil
}

func (c *countingRepository) ListReplicatorsQuery(context.Context, string, string) ([]Replicator, error) {
	return nil, nil
}

func (c *countingRepository) ListRevisionsQuery(context.Context, string) ([]Revision, error) {
	return nil, nil
}

func (c *countingRepository) ListPodNamespacesQuery(context.Context, string) ([]string, error) {
	return nil, nil
}

func newTestService(repo Repository, sched schedule, staleAfter time.Duration) *Service {
	logger := slog.Default()

	return New(logger, repo, NewGenerator(logger, repo, testLabels, ""), sched, []string{"foo"}, staleAfter)
}

func TestService_checkStale(t *testing.T) {
	t.Parallel()

	lastPassEnd := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)

	tests := []struct {
		name         string
		giveSchedule schedule
		giveNow      time.Time
		wantStale    bool
	}{
		{
			name:         "hourly pass long after the last one is not stale",
			giveSchedule: fixedSchedule{every: time.Hour},
			giveNow:      lastPassEnd.Add(50 * time.Minute),
		},
		{
			name:         "hourly pass within grace is not stale",
			giveSchedule: fixedSchedule{every: time.Hour},
			giveNow:      lastPassEnd.Add(65 * time.Minute),
		},
		{
			name:         "hourly pass overdue beyond grace is stale",
			giveSchedule: fixedSchedule{every: time.Hour},
			giveNow:      lastPassEnd.Add(71 * time.Minute),
			wantStale:    true,
		},
		{
			name:         "short interval overdue beyond grace is stale",
			giveSchedule: fixedSchedule{every: time.Minute},
			giveNow:      lastPassEnd.Add(12 * time.Minute),
			wantStale:    true,
		},
		{
			name:         "no next pass counts from the last one",
			giveSchedule: fixedSchedule{},
			giveNow:      lastPassEnd.Add(11 * time.Minute),
			wantStale:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(&countingRepository{}, tt.giveSchedule, 10*time.Minute)

			err := svc.checkStale(lastPassEnd, tt.giveNow)
			if tt.wantStale {
				require.ErrorIs(t, err, ErrStaleSnapshot)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Ping_hourlySchedule(t *testing.T) {
	t.Parallel()

	svc := newTestService(&countingRepository{}, fixedSchedule{every: time.Hour}, 10*time.Minute)
	close(svc.ready)

	svc.mu.Lock()
	svc.lastPassEndTime = time.Now().Add(-30 * time.Minute)
	svc.mu.Unlock()

	require.NoError(t, svc.Ping(t.Context()))

	svc.mu.Lock()
	svc.lastPassEndTime = time.Now().Add(-75 * time.Minute)
	svc.mu.Unlock()

	require.ErrorIs(t, svc.Ping(t.Context()), ErrStaleSnapshot)
}

func TestService_RunCommand_noNextPass(t *testing.T) {
	t.Parallel()

	repo := &countingRepository{}
	svc := newTestService(repo, fixedSchedule{}, 10*time.Minute)

	ctx, cancel := context.WithCancel(t.Context())

	require.NoError(t, svc.Start(ctx))
	<-svc.Ready()

	require.Eventually(t, func() bool {
		return repo.listed.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int32(1), repo.listed.Load())

	cancel()

	select {
	case <-svc.doneCh:
	case <-time.After(time.Second):
		t.Fatal("exporter loop did not exit")
	}
}

func TestService_Snapshot_isolatesLabels(t *testing.T) {
	t.Parallel()

	svc := newTestService(&countingRepository{}, fixedSchedule{every: time.Minute}, 10*time.Minute)

	replicator := newTestReplicator(KindReplicaSet, "shop-abc", "foo", "shop", time.Unix(1_700_000_000, 0))
	idx := newOwnerIndex(testLabels, "foo", []Replicator{replicator})

	key := ownerKey{kind: KindReplicaSet, namespace: "foo", name: "shop-abc"}
	record := idx.replicatorOwner(idx.replicators[key]).metric("foo", "sha256:"+strings.Repeat("0", 64))
	record.Labels["injected"] = "x"
	require.NotContains(t, replicator.Labels, "injected")

	svc.setSnapshot([]DeployTimeMetric{{Name: "shop", Labels: map[string]string{"team": "a"}}})

	first := svc.Snapshot()
	first[0].Labels["team"] = "b"

	require.Equal(t, "a", svc.Snapshot()[0].Labels["team"])
}
