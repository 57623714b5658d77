package refresh

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"jsonplaceholder/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSyncer struct {
	mock.Mock
	calls atomic.Int32
}

func (m *mockSyncer) Name() string { return "posts" }

func (m *mockSyncer) Sync(ctx context.Context) (int, error) {
	m.calls.Add(1)
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type fixedSource struct {
	settings settings.Settings
	err      error
}

func (f fixedSource) Load(context.Context) (settings.Settings, error) {
	return f.settings, f.err
}

func newTestScheduler(source PeriodSource, syncers ...Syncer) *Scheduler {
	s := NewScheduler(Config{}, source, nil, syncers...)
	s.unit = time.Millisecond
	s.retryInitial = time.Millisecond
	return s
}

func TestScheduler_Period(t *testing.T) {
	t.Run("FromSettings", func(t *testing.T) {
		s := newTestScheduler(fixedSource{settings: settings.Settings{RefreshPeriodMinutes: 7}})
		assert.Equal(t, 7*time.Millisecond, s.Period(context.Background()))
	})

	t.Run("Clamped", func(t *testing.T) {
		s := newTestScheduler(fixedSource{settings: settings.Settings{RefreshPeriodMinutes: math.MaxInt32}})
		got := s.Period(context.Background())
		assert.Equal(t, time.Duration(settings.MaxRefreshPeriodMinutes)*time.Millisecond, got)

		s.unit = time.Minute
		assert.Positive(t, s.Period(context.Background()))

		s = newTestScheduler(fixedSource{settings: settings.Settings{RefreshPeriodMinutes: -3}})
		assert.Equal(t, time.Millisecond, s.Period(context.Background()))
	})

	t.Run("DefaultOnError", func(t *testing.T) {
		s := newTestScheduler(fixedSource{err: errors.New("disk gone")})
		assert.Equal(t, time.Duration(settings.DefaultRefreshPeriodMinutes)*time.Millisecond, s.Period(context.Background()))
	})
}

func TestScheduler_RunOnce_RetriesUntilSuccess(t *testing.T) {
	syncer := new(mockSyncer)
	syncer.On("Sync", mock.Anything).Return(0, errors.New("offline")).Twice()
	syncer.On("Sync", mock.Anything).Return(3, nil).Once()

	s := newTestScheduler(fixedSource{settings: settings.Default()}, syncer)
	results := s.RunOnce(context.Background(), time.Second)

	assert.Equal(t, []Result{{Resource: "posts", Count: 3}}, results)
	assert.Equal(t, int32(3), syncer.calls.Load())
	syncer.AssertExpectations(t)
}

func TestScheduler_RunOnce_BoundedByBudget(t *testing.T) {
	syncer := new(mockSyncer)
	syncer.On("Sync", mock.Anything).Return(0, errors.New("offline"))

	s := newTestScheduler(fixedSource{settings: settings.Default()}, syncer)
	start := time.Now()
	results := s.RunOnce(context.Background(), 50*time.Millisecond)

	require.Len(t, results, 1)
	assert.Equal(t, "offline", results[0].Error)
	assert.Less(t, time.Since(start), time.Second)
	assert.GreaterOrEqual(t, syncer.calls.Load(), int32(1))
}

func TestScheduler_RunOnce_StopsOnCancel(t *testing.T) {
	syncer := new(mockSyncer)
	syncer.On("Sync", mock.Anything).Return(0, context.Canceled)

	s := newTestScheduler(fixedSource{settings: settings.Default()}, syncer)
	s.RunOnce(context.Background(), time.Second)

	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestScheduler_Run(t *testing.T) {
	syncer := new(mockSyncer)
	syncer.On("Sync", mock.Anything).Return(1, nil)

	s := newTestScheduler(fixedSource{settings: settings.Settings{RefreshPeriodMinutes: 5}}, syncer)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
