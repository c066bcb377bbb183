package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	idgen "github.com/riskibarqy/cricviz/internal/platform/id"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"github.com/riskibarqy/cricviz/internal/platform/resilience"
	"github.com/riskibarqy/cricviz/internal/platform/tracing"
)

// CreateCricketerInput is the payload for ad-hoc record creation.
type CreateCricketerInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Country string `json:"country" validate:"omitempty,max=100"`
	Role    string `json:"role" validate:"omitempty,max=50"`
}

// BattingSummary pairs a record with its derived batting metrics.
type BattingSummary struct {
	Cricketer     cricketer.Cricketer `json:"cricketer"`
	Average       float64             `json:"average"`
	HasAverage    bool                `json:"has_average"`
	StrikeRate    float64             `json:"strike_rate"`
	HasStrikeRate bool                `json:"has_strike_rate"`
}

type CricketerService struct {
	repo      cricketer.Repository
	idGen     idgen.Generator
	validator *validator.Validate
	locks     *resilience.KeyedMutex
	logger    *logging.Logger
}

func NewCricketerService(repo cricketer.Repository, idGen idgen.Generator, logger *logging.Logger) *CricketerService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = idgen.NewUUIDGenerator()
	}

	return &CricketerService{
		repo:      repo,
		idGen:     idGen,
		validator: validator.New(),
		locks:     resilience.NewKeyedMutex(),
		logger:    logger,
	}
}

func (s *CricketerService) List(ctx context.Context, query cricketer.Query) ([]cricketer.Cricketer, error) {
	ctx, span := tracing.Start(ctx, "CricketerService.List")
	defer span.End()

	items, err := s.repo.List(ctx, query)
	if err != nil {
		tracing.Fail(span, err)
		return nil, crerr.Wrap(err, "list cricketers")
	}
	span.SetAttributes(tracing.Records(len(items)))
	return items, nil
}

func (s *CricketerService) Get(ctx context.Context, name string) (cricketer.Cricketer, error) {
	ctx, span := tracing.Start(ctx, "CricketerService.Get", tracing.Player(name))
	defer span.End()

	item, exists, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return cricketer.Cricketer{}, crerr.Wrapf(err, "get cricketer %q", name)
	}
	if !exists {
		return cricketer.Cricketer{}, s.notFound(ctx, name)
	}
	return item, nil
}

func (s *CricketerService) BattingSummary(ctx context.Context, name string) (BattingSummary, error) {
	item, err := s.Get(ctx, name)
	if err != nil {
		return BattingSummary{}, err
	}

	out := BattingSummary{Cricketer: item}
	out.Average, out.HasAverage = item.BattingAverage()
	out.StrikeRate, out.HasStrikeRate = item.BattingStrikeRate()
	return out, nil
}

func (s *CricketerService) Create(ctx context.Context, input CreateCricketerInput) (cricketer.Cricketer, error) {
	ctx, span := tracing.Start(ctx, "CricketerService.Create", tracing.Player(input.Name))
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Country = strings.TrimSpace(input.Country)
	input.Role = strings.TrimSpace(input.Role)
	if err := s.validate(ctx, input); err != nil {
		return cricketer.Cricketer{}, err
	}

	item := cricketer.New(input.Name, input.Country, cricketer.Role(input.Role))
	id, err := s.idGen.NewID()
	if err != nil {
		return cricketer.Cricketer{}, crerr.Wrap(err, "generate cricketer id")
	}
	item.ID = id
	if err := item.Validate(); err != nil {
		return cricketer.Cricketer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return cricketer.Cricketer{}, crerr.Wrapf(err, "create cricketer %q", item.Name)
	}

	s.logger.InfoContext(ctx, "cricketer created", "name", created.Name, "id", created.ID)
	return created, nil
}

// ImportClassicalBatters inserts the fixed set of classical batters. Existing records
// are not consulted, so importing twice yields duplicate names.
func (s *CricketerService) ImportClassicalBatters(ctx context.Context) ([]cricketer.Cricketer, error) {
	ctx, span := tracing.Start(ctx, "CricketerService.ImportClassicalBatters")
	defer span.End()

	items := cricketer.ClassicalBatters()
	for i := range items {
		id, err := s.idGen.NewID()
		if err != nil {
			return nil, crerr.Wrap(err, "generate cricketer id")
		}
		items[i].ID = id
	}

	created, err := s.repo.CreateMany(ctx, items)
	if err != nil {
		return nil, crerr.Wrap(err, "import classical batters")
	}

	span.SetAttributes(tracing.Records(len(created)))
	s.logger.InfoContext(ctx, "classical batters imported", "count", len(created))
	return created, nil
}

// Bootstrap imports the classical batters only when the store is empty.
func (s *CricketerService) Bootstrap(ctx context.Context) (bool, error) {
	ctx, span := tracing.Start(ctx, "CricketerService.Bootstrap")
	defer span.End()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, crerr.Wrap(err, "count cricketers for bootstrap")
	}
	if count > 0 {
		s.logger.DebugContext(ctx, "bootstrap skipped, store not empty", "count", count)
		return false, nil
	}

	if _, err := s.ImportClassicalBatters(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateInnings applies one innings scorecard: batting lines first, then bowling lines,
// each in input order and persisted individually. An unknown player stops processing
// with a not-found error; lines applied before it stay persisted.
func (s *CricketerService) UpdateInnings(ctx context.Context, card cricketer.Scorecard) error {
	ctx, span := tracing.Start(ctx, "CricketerService.UpdateInnings", tracing.Scorecard(len(card.Batting), len(card.Bowling))...)
	defer span.End()

	if err := s.validate(ctx, card); err != nil {
		return err
	}

	for _, entry := range card.Batting {
		if err := s.applyToPlayer(ctx, entry.PlayerName, func(c *cricketer.Cricketer) {
			c.ApplyBatting(entry)
		}); err != nil {
			tracing.Fail(span, err)
			return err
		}
	}
	for _, entry := range card.Bowling {
		if err := s.applyToPlayer(ctx, entry.PlayerName, func(c *cricketer.Cricketer) {
			c.ApplyBowling(entry)
		}); err != nil {
			tracing.Fail(span, err)
			return err
		}
	}

	s.logger.InfoContext(ctx, "innings applied", "batting", len(card.Batting), "bowling", len(card.Bowling))
	return nil
}

// Ban deletes the oldest record with the given name.
func (s *CricketerService) Ban(ctx context.Context, name string) error {
	ctx, span := tracing.Start(ctx, "CricketerService.Ban", tracing.Player(name))
	defer span.End()

	return s.locks.Do(name, func() error {
		item, exists, err := s.repo.GetByNameForUpdate(ctx, name)
		if err != nil {
			return crerr.Wrapf(err, "get cricketer %q", name)
		}
		if !exists {
			return s.notFound(ctx, name)
		}

		if err := s.repo.Delete(ctx, item.ID); err != nil {
			return crerr.Wrapf(err, "delete cricketer %q", name)
		}

		s.logger.InfoContext(ctx, "cricketer banned", "name", name, "id", item.ID)
		return nil
	})
}

func (s *CricketerService) applyToPlayer(ctx context.Context, name string, apply func(*cricketer.Cricketer)) error {
	unlock := s.locks.Lock(name)
	defer unlock()

	item, exists, err := s.repo.GetByNameForUpdate(ctx, name)
	if err != nil {
		return crerr.Wrapf(err, "get cricketer %q", name)
	}
	if !exists {
		return s.notFound(ctx, name)
	}

	apply(&item)
	if err := s.repo.Update(ctx, item); err != nil {
		var nf *cricketer.NotFoundError
		if errors.As(err, &nf) {
			return s.notFound(ctx, nf.Name)
		}
		return crerr.Wrapf(err, "update cricketer %q", name)
	}
	return nil
}

func (s *CricketerService) validate(ctx context.Context, payload any) error {
	if err := s.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *CricketerService) notFound(ctx context.Context, name string) error {
	s.logger.WarnContext(ctx, "cricketer not found", "name", name)
	return fmt.Errorf("%w: %w", ErrNotFound, &cricketer.NotFoundError{Name: name})
}
