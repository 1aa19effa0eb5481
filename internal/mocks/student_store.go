package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/musicschool-server/internal/model"
)

// StudentStore is a mock implementation of model.StudentStore.
type StudentStore struct {
	mock.Mock
}

func (m *StudentStore) GetByID(ctx context.Context, id int64) (model.Student, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *StudentStore) GetByEmail(ctx context.Context, email string) (model.Student, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *StudentStore) List(ctx context.Context, params model.ListParams) ([]model.Student, int64, error) {
	args := m.Called(ctx, params)
	var students []model.Student
	if args.Get(0) != nil {
		students = args.Get(0).([]model.Student)
	}
	return students, args.Get(1).(int64), args.Error(2)
}

func (m *StudentStore) Create(ctx context.Context, in model.StudentCreate) (model.Student, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *StudentStore) Update(ctx context.Context, id int64, in model.StudentUpdate) (model.Student, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Student), args.Error(1)
}

func (m *StudentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
