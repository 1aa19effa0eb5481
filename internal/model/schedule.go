package model

import (
	"context"
	"time"
)

// ScheduleStore defines persistence operations for lesson slots.
type ScheduleStore interface {
	GetByID(ctx context.Context, id int64) (ScheduleEntry, error)
	List(ctx context.Context, params ListParams) ([]ScheduleEntry, int64, error)
	Create(ctx context.Context, in ScheduleCreate) (ScheduleEntry, error)
	Update(ctx context.Context, id int64, in ScheduleUpdate) (ScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleEntry represents a weekly lesson slot. StudentName and
// TeacherName are derived from the referenced rows, not stored.
type ScheduleEntry struct {
	ID          int64
	StudentID   int64
	TeacherID   int64
	StudentName string
	TeacherName string
	DayOfWeek   string
	StartTime   string
	EndTime     string
	Room        string
	CreatedAt   time.Time
}

// ScheduleCreate carries the fields of a new lesson slot.
type ScheduleCreate struct {
	StudentID int64
	TeacherID int64
	DayOfWeek string
	StartTime string
	EndTime   string
	Room      string
}

// ScheduleUpdate carries a partial update. Nil means the field was not
// provided and keeps its stored value.
type ScheduleUpdate struct {
	StudentID *int64
	TeacherID *int64
	DayOfWeek *string
	StartTime *string
	EndTime   *string
	Room      *string
}
