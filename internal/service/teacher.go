package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type Teacher struct {
	store  model.TeacherStore
	logger *logger.Logger
}

func NewTeacher(store model.TeacherStore, logger *logger.Logger) *Teacher {
	return &Teacher{
		store:  store,
		logger: logger,
	}
}

func (s *Teacher) List(ctx context.Context, params model.ListParams) ([]model.Teacher, int64, error) {
	teachers, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teachers: %w", err)
	}
	return teachers, total, nil
}

func (s *Teacher) GetByID(ctx context.Context, id int64) (model.Teacher, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Teacher) Create(ctx context.Context, in model.TeacherCreate) (model.Teacher, error) {
	_, err := s.store.GetByEmail(ctx, in.Email)
	if err == nil {
		return model.Teacher{}, &model.ConflictError{Field: "email", Value: in.Email}
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Teacher{}, fmt.Errorf("failed to get teacher by email: %w", err)
	}

	teacher, err := s.store.Create(ctx, in)
	if err != nil {
		return model.Teacher{}, err
	}

	s.logger.Info("Teacher service: teacher created", "teacher_id", teacher.ID)

	return teacher, nil
}

func (s *Teacher) Update(ctx context.Context, id int64, in model.TeacherUpdate) (model.Teacher, error) {
	if in.Email != nil {
		existing, err := s.store.GetByEmail(ctx, *in.Email)
		if err == nil && existing.ID != id {
			return model.Teacher{}, &model.ConflictError{Field: "email", Value: *in.Email}
		}
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.Teacher{}, fmt.Errorf("failed to get teacher by email: %w", err)
		}
	}

	return s.store.Update(ctx, id, in)
}

func (s *Teacher) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Teacher service: teacher deleted", "teacher_id", id)
	return nil
}
