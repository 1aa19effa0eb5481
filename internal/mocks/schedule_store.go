package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/musicschool-server/internal/model"
)

// ScheduleStore is a mock implementation of model.ScheduleStore.
type ScheduleStore struct {
	mock.Mock
}

func (m *ScheduleStore) GetByID(ctx context.Context, id int64) (model.ScheduleEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleStore) List(ctx context.Context, params model.ListParams) ([]model.ScheduleEntry, int64, error) {
	args := m.Called(ctx, params)
	var entries []model.ScheduleEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]model.ScheduleEntry)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *ScheduleStore) Create(ctx context.Context, in model.ScheduleCreate) (model.ScheduleEntry, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleStore) Update(ctx context.Context, id int64, in model.ScheduleUpdate) (model.ScheduleEntry, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
