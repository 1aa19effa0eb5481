package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type Student struct {
	store  model.StudentStore
	logger *logger.Logger
}

func NewStudent(store model.StudentStore, logger *logger.Logger) *Student {
	return &Student{
		store:  store,
		logger: logger,
	}
}

func (s *Student) List(ctx context.Context, params model.ListParams) ([]model.Student, int64, error) {
	students, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	return students, total, nil
}

func (s *Student) GetByID(ctx context.Context, id int64) (model.Student, error) {
	return s.store.GetByID(ctx, id)
}

// Create rejects an already-taken email before inserting. The unique
// index still backs this check-then-act sequence under concurrency.
func (s *Student) Create(ctx context.Context, in model.StudentCreate) (model.Student, error) {
	_, err := s.store.GetByEmail(ctx, in.Email)
	if err == nil {
		return model.Student{}, &model.ConflictError{Field: "email", Value: in.Email}
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Student{}, fmt.Errorf("failed to get student by email: %w", err)
	}

	student, err := s.store.Create(ctx, in)
	if err != nil {
		return model.Student{}, err
	}

	s.logger.Info("Student service: student created", "student_id", student.ID)

	return student, nil
}

// Update applies the provided fields. A new email must not belong to a
// different student.
func (s *Student) Update(ctx context.Context, id int64, in model.StudentUpdate) (model.Student, error) {
	if in.Email != nil {
		existing, err := s.store.GetByEmail(ctx, *in.Email)
		if err == nil && existing.ID != id {
			return model.Student{}, &model.ConflictError{Field: "email", Value: *in.Email}
		}
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.Student{}, fmt.Errorf("failed to get student by email: %w", err)
		}
	}

	return s.store.Update(ctx, id, in)
}

func (s *Student) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Student service: student deleted", "student_id", id)
	return nil
}
