package pinger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/deploytime-exporter/internal/infra/pinger"
)

type mockPinger struct {
	name        string
	shouldError bool
	timeout     time.Duration
}

func (m *mockPinger) Name() string {
	return m.name
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.timeout > 0 {
		<-ctx.Done()

		return ctx.Err()
	}

	if m.shouldError {
		return errors.New("mock pinger error")
	}

	return nil
}

type nonCriticalPinger struct {
	mockPinger
}

func (nonCriticalPinger) PingerCritical() bool {
	return false
}

type timeoutPinger struct {
	mockPinger
}

func (p timeoutPinger) PingerTimeout() time.Duration {
	return p.timeout
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("register valid pinger", func(t *testing.T) {
		t.Parallel()

		service := pinger.New(slog.Default(), time.Second)
		require.NoError(t, service.Register(&mockPinger{name: "test"}))
	})

	t.Run("register nil pinger", func(t *testing.T) {
		t.Parallel()

		service := pinger.New(slog.Default(), time.Second)
		require.ErrorIs(t, service.Register(nil), pinger.ErrNilPinger)
	})

	t.Run("register duplicate pinger", func(t *testing.T) {
		t.Parallel()

		service := pinger.New(slog.Default(), time.Second)
		require.NoError(t, service.Register(&mockPinger{name: "dup"}))

		err := service.Register(&mockPinger{name: "dup"})
		require.ErrorIs(t, err, pinger.ErrPingerAlreadyRegistered)
	})
}

func TestService_GetStats(t *testing.T) {
	t.Parallel()

	service := pinger.New(slog.Default(), time.Second)
	require.NoError(t, service.Register(&mockPinger{name: "test"}))

	stats, err := service.GetStats("test")
	require.NoError(t, err)
	require.True(t, stats.IsReady)
	require.True(t, stats.IsHealthy)

	_, err = service.GetStats("nonexistent")
	require.ErrorIs(t, err, pinger.ErrPingerNotFound)
}

func TestService_Start_Shutdown(t *testing.T) {
	t.Parallel()

	service := pinger.New(slog.Default(), 50*time.Millisecond)

	require.NoError(t, service.Register(&mockPinger{name: "ok"}))
	require.NoError(t, service.Register(&mockPinger{name: "failing", shouldError: true}))
	require.NoError(t, service.Register(&nonCriticalPinger{mockPinger{name: "optional", shouldError: true}}))
	require.NoError(t, service.Register(&timeoutPinger{mockPinger{name: "slow", timeout: 10 * time.Millisecond}}))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	select {
	case <-service.Ready():
	case <-time.After(time.Second):
		t.Fatal("service did not become ready")
	}

	all := service.GetAllStats()
	require.Len(t, all, 4)

	require.True(t, all["ok"].IsReady)
	require.True(t, all["ok"].IsHealthy)
	require.Equal(t, 1, all["ok"].SuccessCount)

	require.False(t, all["failing"].IsReady)
	require.False(t, all["failing"].IsHealthy)
	require.Equal(t, 1, all["failing"].ErrorCount)

	require.False(t, all["optional"].IsReady)
	require.True(t, all["optional"].IsHealthy)

	require.ErrorIs(t, all["slow"].LastError, context.DeadlineExceeded)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	require.NoError(t, service.Shutdown(shutdownCtx))
	require.NoError(t, service.Shutdown(shutdownCtx))
}
