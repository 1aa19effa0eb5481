package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/musicschool-server/internal/model"
)

// TeacherStore is a mock implementation of model.TeacherStore.
type TeacherStore struct {
	mock.Mock
}

func (m *TeacherStore) GetByID(ctx context.Context, id int64) (model.Teacher, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Teacher), args.Error(1)
}

func (m *TeacherStore) GetByEmail(ctx context.Context, email string) (model.Teacher, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Teacher), args.Error(1)
}

func (m *TeacherStore) List(ctx context.Context, params model.ListParams) ([]model.Teacher, int64, error) {
	args := m.Called(ctx, params)
	var teachers []model.Teacher
	if args.Get(0) != nil {
		teachers = args.Get(0).([]model.Teacher)
	}
	return teachers, args.Get(1).(int64), args.Error(2)
}

func (m *TeacherStore) Create(ctx context.Context, in model.TeacherCreate) (model.Teacher, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Teacher), args.Error(1)
}

func (m *TeacherStore) Update(ctx context.Context, id int64, in model.TeacherUpdate) (model.Teacher, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Teacher), args.Error(1)
}

func (m *TeacherStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
