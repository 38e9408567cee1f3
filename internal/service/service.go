package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/matchsim/internal/cache/mem"
	"github.com/goserg/matchsim/internal/config"
	"github.com/goserg/matchsim/internal/domain"
	"github.com/goserg/matchsim/internal/elo"
	"github.com/goserg/matchsim/internal/sim"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("simulation not found")

type SimulationService struct {
	cfg   config.Simulation
	cache *mem.Cache
	log   *logrus.Entry

	mu        sync.RWMutex
	listeners []func(domain.Report)
}

func New(cfg config.Simulation, cache *mem.Cache, l *logrus.Logger) *SimulationService {
	return &SimulationService{
		cfg:   cfg,
		cache: cache,
		log:   l.WithField("from", "simulation-service"),
	}
}

// NewParams builds params for a run, falling back to the configured best-of
// and enforcing the configured simulation limit.
func (s *SimulationService) NewParams(abilityA, abilityB float64, simulations, bestOf int, seed int64) (domain.Params, error) {
	if bestOf == 0 {
		bestOf = s.cfg.BestOf
	}
	p, err := domain.NewParams(abilityA, abilityB, simulations, bestOf, seed)
	if err != nil {
		return domain.Params{}, err
	}
	if s.cfg.MaxSimulations > 0 && p.Simulations > s.cfg.MaxSimulations {
		return domain.Params{}, fmt.Errorf("%w: at most %d simulations per run, got %d",
			domain.ErrInvalidArgument, s.cfg.MaxSimulations, p.Simulations)
	}
	return p, nil
}

// Simulate runs the trials described by p with a generator of its own and
// stores the report. A zero p.Seed is replaced by the configured seed or, if
// that is zero too, a random one; the report keeps the seed actually used.
func (s *SimulationService) Simulate(p domain.Params) (domain.Report, error) {
	if err := p.Validate(); err != nil {
		return domain.Report{}, err
	}
	if p.Seed == 0 {
		p.Seed = s.cfg.Seed
	}
	if p.Seed == 0 {
		seed, err := newSeed()
		if err != nil {
			return domain.Report{}, err
		}
		p.Seed = seed
	}
	log := s.log.WithFields(logrus.Fields{
		"ability_a":   p.AbilityA,
		"ability_b":   p.AbilityB,
		"simulations": p.Simulations,
		"best_of":     p.BestOf,
		"seed":        p.Seed,
	})

	start := time.Now()
	result, err := sim.Aggregate(rand.New(rand.NewSource(p.Seed)), p)
	if err != nil {
		log.WithError(err).Warn("simulation rejected")
		return domain.Report{}, err
	}
	report := domain.Report{
		ID:        uuid.New(),
		Params:    p,
		Result:    result,
		CreatedAt: start,
		Duration:  time.Since(start),
	}
	if gap, ok := elo.Gap(result.RateA / 100); ok {
		report.EloGap = &gap
	}
	s.cache.Add(report)
	log.WithFields(logrus.Fields{
		"id":       report.ID,
		"wins_a":   result.WinsA,
		"wins_b":   result.WinsB,
		"duration": report.Duration,
	}).Info("simulation finished")

	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(report)
	}
	return report, nil
}

func (s *SimulationService) Get(id uuid.UUID) (domain.Report, error) {
	report, ok := s.cache.Get(id)
	if !ok {
		return domain.Report{}, ErrNotFound
	}
	return report, nil
}

// ListReports returns the remembered reports, newest first.
func (s *SimulationService) ListReports() []domain.Report {
	return s.cache.List()
}

func (s *SimulationService) Last() (domain.Report, error) {
	reports := s.cache.List()
	if len(reports) == 0 {
		return domain.Report{}, ErrNotFound
	}
	return reports[0], nil
}

// OnReport registers fn to be called after every finished simulation.
func (s *SimulationService) OnReport(fn func(domain.Report)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
