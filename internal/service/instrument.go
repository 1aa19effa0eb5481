package service

import (
	"context"
	"fmt"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type Instrument struct {
	store  model.InstrumentStore
	logger *logger.Logger
}

func NewInstrument(store model.InstrumentStore, logger *logger.Logger) *Instrument {
	return &Instrument{
		store:  store,
		logger: logger,
	}
}

func (s *Instrument) List(ctx context.Context, params model.ListParams) ([]model.Instrument, int64, error) {
	instruments, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list instruments: %w", err)
	}
	return instruments, total, nil
}

func (s *Instrument) GetByID(ctx context.Context, id int64) (model.Instrument, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Instrument) Create(ctx context.Context, in model.InstrumentCreate) (model.Instrument, error) {
	instrument, err := s.store.Create(ctx, in)
	if err != nil {
		return model.Instrument{}, err
	}

	s.logger.Info("Instrument service: instrument created", "instrument_id", instrument.ID)

	return instrument, nil
}

func (s *Instrument) Update(ctx context.Context, id int64, in model.InstrumentUpdate) (model.Instrument, error) {
	return s.store.Update(ctx, id, in)
}

func (s *Instrument) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Instrument service: instrument deleted", "instrument_id", id)
	return nil
}
