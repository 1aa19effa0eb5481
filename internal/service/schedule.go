package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
)

type Schedule struct {
	store        model.ScheduleStore
	studentStore model.StudentStore
	teacherStore model.TeacherStore
	logger       *logger.Logger
}

func NewSchedule(
	store model.ScheduleStore,
	studentStore model.StudentStore,
	teacherStore model.TeacherStore,
	logger *logger.Logger,
) *Schedule {
	return &Schedule{
		store:        store,
		studentStore: studentStore,
		teacherStore: teacherStore,
		logger:       logger,
	}
}

func (s *Schedule) List(ctx context.Context, params model.ListParams) ([]model.ScheduleEntry, int64, error) {
	entries, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, total, nil
}

func (s *Schedule) GetByID(ctx context.Context, id int64) (model.ScheduleEntry, error) {
	return s.store.GetByID(ctx, id)
}

// Create checks both references resolve before inserting. The foreign
// keys still back this check-then-act sequence under concurrency.
func (s *Schedule) Create(ctx context.Context, in model.ScheduleCreate) (model.ScheduleEntry, error) {
	if err := s.checkStudent(ctx, in.StudentID); err != nil {
		return model.ScheduleEntry{}, err
	}
	if err := s.checkTeacher(ctx, in.TeacherID); err != nil {
		return model.ScheduleEntry{}, err
	}

	entry, err := s.store.Create(ctx, in)
	if err != nil {
		return model.ScheduleEntry{}, err
	}

	s.logger.Info("Schedule service: entry created",
		"schedule_id", entry.ID,
		"student_id", entry.StudentID,
		"teacher_id", entry.TeacherID)

	return entry, nil
}

func (s *Schedule) Update(ctx context.Context, id int64, in model.ScheduleUpdate) (model.ScheduleEntry, error) {
	if in.StudentID != nil {
		if err := s.checkStudent(ctx, *in.StudentID); err != nil {
			return model.ScheduleEntry{}, err
		}
	}
	if in.TeacherID != nil {
		if err := s.checkTeacher(ctx, *in.TeacherID); err != nil {
			return model.ScheduleEntry{}, err
		}
	}

	return s.store.Update(ctx, id, in)
}

func (s *Schedule) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Schedule service: entry deleted", "schedule_id", id)
	return nil
}

func (s *Schedule) checkStudent(ctx context.Context, id int64) error {
	_, err := s.studentStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return &model.BadReferenceError{Entity: "student", ID: id}
	}
	if err != nil {
		return fmt.Errorf("failed to check student reference: %w", err)
	}
	return nil
}

func (s *Schedule) checkTeacher(ctx context.Context, id int64) error {
	_, err := s.teacherStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return &model.BadReferenceError{Entity: "teacher", ID: id}
	}
	if err != nil {
		return fmt.Errorf("failed to check teacher reference: %w", err)
	}
	return nil
}
