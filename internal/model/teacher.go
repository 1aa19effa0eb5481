package model

import (
	"context"
	"time"
)

// TeacherStore defines persistence operations for teachers.
type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (Teacher, error)
	GetByEmail(ctx context.Context, email string) (Teacher, error)
	List(ctx context.Context, params ListParams) ([]Teacher, int64, error)
	Create(ctx context.Context, in TeacherCreate) (Teacher, error)
	Update(ctx context.Context, id int64, in TeacherUpdate) (Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// Teacher represents an instructor on staff.
type Teacher struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Specialization string
	CreatedAt      time.Time
}

// TeacherCreate carries the fields of a new teacher.
type TeacherCreate struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Specialization string
}

// TeacherUpdate carries a partial update. Nil means the field was not
// provided and keeps its stored value.
type TeacherUpdate struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Specialization *string
}
