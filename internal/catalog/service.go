package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Snapshot is the outcome of the latest fetch cycle.
type Snapshot struct {
	Products  []DisplayProduct
	Err       error
	FetchedAt time.Time
}

// Service runs fetch, translate and render, and keeps the latest snapshot
// for page renders between refreshes.
type Service struct {
	client     Client
	translator *Translator
	limit      int
	logger     *zap.Logger

	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

func NewService(client Client, translator *Translator, limit int, logger *zap.Logger) *Service {
	if translator == nil {
		translator = NewTranslator()
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, translator: translator, limit: limit, logger: logger, now: time.Now}
}

// Refresh fetches one page of products and swaps the snapshot. A failed
// fetch replaces the products with none and keeps the error for rendering.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	raw, err := s.client.FetchProducts(ctx, s.limit)
	snap := Snapshot{FetchedAt: s.now()}
	if err != nil {
		s.logger.Error("catalog: fetch products", zap.Error(err))
		snap.Err = err
		snap.Products = []DisplayProduct{}
	} else {
		snap.Products = s.translator.TranslateAll(raw)
		s.logger.Info("catalog: products refreshed", zap.Int("count", len(snap.Products)))
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}

func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// View renders the current snapshot.
func (s *Service) View() GridView {
	snap := s.Snapshot()
	return Render(snap.Products, snap.Err)
}
