package settings

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store loads and updates the settings document. Updates are serialized.
type Store struct {
	backend Backend
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewStore creates a store over backend.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

// Load returns the stored settings, or the defaults when nothing valid is stored.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update applies fn to the current settings and stores the result.
func (s *Store) Update(ctx context.Context, fn func(Settings) Settings) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return Settings{}, err
	}
	next := fn(current)
	if err := next.Validate(); err != nil {
		return current, err
	}

	data, err := Marshal(next)
	if err != nil {
		return current, err
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return current, fmt.Errorf("failed to store settings: %w", err)
	}
	s.logger.Info("Settings updated", zap.Int32("refresh_period_minutes", next.RefreshPeriodMinutes))
	return next, nil
}

// SetRefreshPeriod stores a new refresh period.
func (s *Store) SetRefreshPeriod(ctx context.Context, minutes int32) (Settings, error) {
	return s.Update(ctx, func(cur Settings) Settings {
		cur.RefreshPeriodMinutes = minutes
		return cur
	})
}

// Reset removes the stored document so the defaults apply again.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(ctx); err != nil {
		return err
	}
	s.logger.Info("Settings reset to defaults")
	return nil
}

func (s *Store) load(ctx context.Context) (Settings, error) {
	data, err := s.backend.Read(ctx)
	if err != nil {
		return Settings{}, err
	}
	settings, ok := Unmarshal(data)
	if !ok && len(data) > 0 {
		s.logger.Warn("Settings document is corrupt, using defaults", zap.Int("bytes", len(data)))
	}
	return settings, nil
}
