package services

import (
	"context"
	"sync"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/store"
)

// RateService keeps the active base interest rate in memory and writes
// changes through to the rate configuration repository.
type RateService struct {
	rates *store.RateConfigRepository

	mu       sync.RWMutex
	baseRate float64
}

func NewRateService(rates *store.RateConfigRepository, defaultRate float64) *RateService {
	return &RateService{
		rates:    rates,
		baseRate: defaultRate,
	}
}

// Seed applies a rate configuration already fetched during the startup
// probe, saving a second remote round trip.
func (s *RateService) Seed(cfg *models.RateConfig) {
	if cfg == nil {
		return
	}
	s.mu.Lock()
	s.baseRate = cfg.Rate
	s.mu.Unlock()
}

// Init loads the persisted base rate. A load failure keeps the default.
func (s *RateService) Init(ctx context.Context) {
	loaded, err := s.rates.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "base rate load failed, keeping default %.2f: %v", s.BaseRate(), err)
		return
	}

	s.mu.Lock()
	s.baseRate = loaded
	s.mu.Unlock()
	logger.Info(ctx, "base rate loaded: %.2f", loaded)
}

func (s *RateService) BaseRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseRate
}

// UpdateBaseRate persists a new base rate and applies it to subsequent
// quotes. Rates outside the 5.0-10.0 percent band are rejected before
// anything is written.
func (s *RateService) UpdateBaseRate(ctx context.Context, newRate float64) error {
	if newRate < 5.0 || newRate > 10.0 {
		return consts.ErrorInvalidRate
	}

	if err := s.rates.Save(ctx, newRate); err != nil {
		return err
	}

	s.mu.Lock()
	s.baseRate = newRate
	s.mu.Unlock()
	logger.Info(ctx, "base rate updated to %.2f", newRate)
	return nil
}
