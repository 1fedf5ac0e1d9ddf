package preference

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Service is the persistence adapter for the theme flag and the click
// counter. Store failures never reach callers: loads degrade to defaults
// and saves are dropped after being logged.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a store. A nil store behaves as a disabled storage.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

func (s *Service) LoadThemeFlag(ctx context.Context, visitorID string) bool {
	v, ok := s.get(ctx, visitorID, KeyThemeEnabled)
	return ok && decodeTheme(v)
}

func (s *Service) SaveThemeFlag(ctx context.Context, visitorID string, enabled bool) {
	s.set(ctx, visitorID, KeyThemeEnabled, strconv.FormatBool(enabled))
}

// ToggleTheme flips the stored flag and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context, visitorID string) bool {
	enabled := !s.LoadThemeFlag(ctx, visitorID)
	s.SaveThemeFlag(ctx, visitorID, enabled)
	return enabled
}

func (s *Service) LoadClickCounter(ctx context.Context, visitorID string) int {
	v, ok := s.get(ctx, visitorID, KeyClickCount)
	if !ok {
		return 0
	}
	return decodeCounter(v)
}

func (s *Service) SaveClickCounter(ctx context.Context, visitorID string, n int) {
	if n < 0 {
		n = 0
	}
	s.set(ctx, visitorID, KeyClickCount, strconv.Itoa(n))
}

// IncrementClickCounter adds one to the counter in a single store operation
// and returns the new value. Without a usable store the value is computed
// from the last readable count and not persisted.
func (s *Service) IncrementClickCounter(ctx context.Context, visitorID string) int {
	if s.store == nil || visitorID == "" {
		return 1
	}
	n, err := s.store.Increment(ctx, visitorID, KeyClickCount)
	if err != nil {
		s.logger.Warn("preferences: increment dropped", zap.String("key", KeyClickCount), zap.Error(err))
		return s.LoadClickCounter(ctx, visitorID) + 1
	}
	return n
}

// Load hydrates both scalars in one round trip.
func (s *Service) Load(ctx context.Context, visitorID string) Preferences {
	if s.store == nil || visitorID == "" {
		return Preferences{}
	}
	vals, err := s.store.GetMany(ctx, visitorID, []string{KeyThemeEnabled, KeyClickCount})
	if err != nil {
		s.logger.Warn("preferences: load failed, using defaults", zap.String("visitor", visitorID), zap.Error(err))
		return Preferences{}
	}
	p := Preferences{ThemeEnabled: decodeTheme(vals[KeyThemeEnabled])}
	if raw, ok := vals[KeyClickCount]; ok {
		p.ClickCount = decodeCounter(raw)
	}
	return p
}

func (s *Service) get(ctx context.Context, visitorID, key string) (string, bool) {
	if s.store == nil || visitorID == "" {
		return "", false
	}
	v, ok, err := s.store.Get(ctx, visitorID, key)
	if err != nil {
		s.logger.Warn("preferences: read failed, using default", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (s *Service) set(ctx context.Context, visitorID, key, value string) {
	if s.store == nil || visitorID == "" {
		return
	}
	if err := s.store.Set(ctx, visitorID, key, value); err != nil {
		s.logger.Warn("preferences: write dropped", zap.String("key", key), zap.Error(err))
	}
}

func decodeTheme(v string) bool {
	return v == "true"
}

// decodeCounter maps anything that is not a non-negative decimal to 0.
func decodeCounter(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
