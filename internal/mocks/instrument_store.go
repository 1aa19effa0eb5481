package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/musicschool-server/internal/model"
)

// InstrumentStore is a mock implementation of model.InstrumentStore.
type InstrumentStore struct {
	mock.Mock
}

func (m *InstrumentStore) GetByID(ctx context.Context, id int64) (model.Instrument, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Instrument), args.Error(1)
}

func (m *InstrumentStore) List(ctx context.Context, params model.ListParams) ([]model.Instrument, int64, error) {
	args := m.Called(ctx, params)
	var instruments []model.Instrument
	if args.Get(0) != nil {
		instruments = args.Get(0).([]model.Instrument)
	}
	return instruments, args.Get(1).(int64), args.Error(2)
}

func (m *InstrumentStore) Create(ctx context.Context, in model.InstrumentCreate) (model.Instrument, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Instrument), args.Error(1)
}

func (m *InstrumentStore) Update(ctx context.Context, id int64, in model.InstrumentUpdate) (model.Instrument, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Instrument), args.Error(1)
}

func (m *InstrumentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
